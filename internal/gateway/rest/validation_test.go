package rest

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStoreSavePayload(t *testing.T) {
	tests := []struct {
		name    string
		payload StoreSavePayload
		fields  []string
	}{
		{"valid", StoreSavePayload{Collection: "notes_2024", Filename: "draft-1", Data: json.RawMessage(`{}`)}, nil},
		{"bad collection", StoreSavePayload{Collection: "no/slash", Filename: "f", Data: json.RawMessage(`{}`)}, []string{"collection"}},
		{"bad filename", StoreSavePayload{Collection: "c", Filename: "../etc", Data: json.RawMessage(`{}`)}, []string{"filename"}},
		{"all missing", StoreSavePayload{}, []string{"collection", "filename", "data"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(&tt.payload)
			if tt.fields == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			ve := formatValidationErrors(err)
			var got []string
			for _, e := range ve.Errors {
				got = append(got, e.Field)
			}
			assert.Equal(t, tt.fields, got)
		})
	}
}

func TestTranslateValidationError_Messages(t *testing.T) {
	err := validate.Struct(&StoreSavePayload{Collection: "a.b", Filename: "x y", Data: json.RawMessage(`{}`)})
	require.Error(t, err)

	ve := formatValidationErrors(err)
	require.Len(t, ve.Errors, 2)
	assert.Equal(t, "Must contain only letters, digits and underscores", ve.Errors[0].Message)
	assert.Equal(t, "Must contain only letters, digits, underscores and hyphens", ve.Errors[1].Message)
	assert.Contains(t, ve.Error(), "collection: ")
}

func TestValidateDocumentID(t *testing.T) {
	assert.NoError(t, validateDocumentID("tests", "integration_test"))
	assert.Error(t, validateDocumentID("", "f"))
	assert.Error(t, validateDocumentID("c", ""))
	assert.Error(t, validateDocumentID("c", "a.json"))
}
