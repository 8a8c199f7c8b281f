package helpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nameRequest struct {
	Name string `json:"name"`
}

func (r nameRequest) Validate() []string {
	if strings.TrimSpace(r.Name) == "" {
		return []string{"name is required"}
	}
	return nil
}

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantOK      bool
		wantMessage string
	}{
		{name: "valid", body: `{"name":"Tennis"}`, wantOK: true},
		{name: "empty body", body: ``, wantMessage: "request body is required"},
		{name: "malformed", body: `{"name":`, wantMessage: "unexpected EOF"},
		{name: "unknown field", body: `{"name":"Tennis","id":"x"}`, wantMessage: "unknown field"},
		{name: "trailing object", body: `{"name":"Tennis"}{"name":"Padel"}`, wantMessage: "single JSON object"},
		{name: "too large", body: `{"name":"` + strings.Repeat("a", MaxRequestBodyBytes) + `"}`, wantMessage: "too large"},
		{name: "fails validation", body: `{"name":" "}`, wantMessage: "name is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/sports", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			var dest nameRequest
			ok := DecodeAndValidate(rec, req, &dest)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, "Tennis", dest.Name)
				return
			}

			require.Equal(t, http.StatusBadRequest, rec.Code)
			var resp APIResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			require.NotNil(t, resp.Error)
			assert.Equal(t, ErrCodeBadRequest, resp.Error.Code)
			assert.Contains(t, resp.Error.Message, tt.wantMessage)
		})
	}
}
