package rawio

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// DefaultEncoding is used when a caller passes an empty encoding name.
const DefaultEncoding = "utf-8"

// LookupEncoding resolves a WHATWG label or IANA charset name.
func LookupEncoding(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultEncoding
	}
	if enc, err := htmlindex.Get(name); err == nil {
		return enc, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	return enc, nil
}

func decode(enc encoding.Encoding, data []byte) (string, error) {
	if enc == unicode.UTF8 {
		// x/text's UTF-8 decoder substitutes U+FFFD; reads must be strict.
		if !utf8.Valid(data) {
			return "", ErrDecode
		}
		return string(data), nil
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return string(out), nil
}

func encode(enc encoding.Encoding, content string) ([]byte, error) {
	if enc == unicode.UTF8 {
		return []byte(content), nil
	}
	out, err := enc.NewEncoder().String(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return []byte(out), nil
}
