// Package rawio reads and writes text files at caller-supplied absolute paths.
//
// Every operation passes the path through IsSafePath before touching the
// filesystem. Failures are classified into the sentinel errors declared in
// errors.go so the HTTP boundary can map them to distinct statuses.
package rawio
