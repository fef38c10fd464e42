package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/localplatform/localplatform/internal/docstore"
)

// validate is the singleton validator instance used across all handlers.
var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("collection", func(fl validator.FieldLevel) bool {
		return docstore.ValidCollection(fl.Field().String())
	})
	_ = validate.RegisterValidation("docname", func(fl validator.FieldLevel) bool {
		return docstore.ValidFilename(fl.Field().String())
	})
}

// ValidationError wraps validation errors with user-friendly messages.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors contains multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, e := range v.Errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return strings.Join(msgs, "; ")
}

// translateValidationError converts a validator.FieldError to a user-friendly message.
func translateValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "collection":
		return "Must contain only letters, digits and underscores"
	case "docname":
		return "Must contain only letters, digits, underscores and hyphens"
	default:
		return fmt.Sprintf("Failed validation: %s", fe.Tag())
	}
}

// formatValidationErrors converts validator errors to ValidationErrors.
func formatValidationErrors(err error) ValidationErrors {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return ValidationErrors{
			Errors: []ValidationError{{Field: "unknown", Message: err.Error()}},
		}
	}

	var valErrors []ValidationError
	for _, fe := range ve {
		valErrors = append(valErrors, ValidationError{
			Field:   strings.ToLower(fe.Field()),
			Message: translateValidationError(fe),
		})
	}
	return ValidationErrors{Errors: valErrors}
}

// errBodyTooLarge marks a request body cut off by maxBodySize.
var errBodyTooLarge = errors.New("request body too large")

// decodeAndValidate decodes a JSON request body and validates it.
func decodeAndValidate[T any](r *http.Request) (*T, error) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, errBodyTooLarge
		}
		return nil, fmt.Errorf("invalid request body: %w", err)
	}
	if err := validate.Struct(&req); err != nil {
		return nil, formatValidationErrors(err)
	}
	return &req, nil
}

// writeDecodeError reports a decodeAndValidate failure.
func writeDecodeError(w http.ResponseWriter, err error) {
	if errors.Is(err, errBodyTooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, ErrCodeRequestTooLarge, "Request body exceeds limit")
		return
	}
	writeError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
}

// validateDocumentID checks identifiers taken from the URL path.
func validateDocumentID(collection, filename string) error {
	if !docstore.ValidCollection(collection) {
		return fmt.Errorf("invalid collection %q: must match [A-Za-z0-9_]+", collection)
	}
	if !docstore.ValidFilename(filename) {
		return fmt.Errorf("invalid filename %q: must match [A-Za-z0-9_-]+", filename)
	}
	return nil
}
