package httputil

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalString(t *testing.T) {
	type body struct {
		FolderID OptionalString `json:"folderId"`
	}

	tests := []struct {
		name        string
		json        string
		wantPresent bool
		wantValue   *string
		wantErr     bool
	}{
		{name: "absent", json: `{}`},
		{name: "null", json: `{"folderId":null}`, wantPresent: true},
		{name: "value", json: `{"folderId":"F1"}`, wantPresent: true, wantValue: ptr("F1")},
		{name: "empty", json: `{"folderId":""}`, wantPresent: true, wantValue: ptr("")},
		{name: "number", json: `{"folderId":12}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b body
			err := json.Unmarshal([]byte(tt.json), &b)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPresent, b.FolderID.Present)
			assert.Equal(t, tt.wantValue, b.FolderID.Value)
		})
	}
}

func ptr(s string) *string { return &s }

func TestParseJSON(t *testing.T) {
	type payload struct {
		IDs []string `json:"ids"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "valid", body: `{"ids":["a"]}`},
		{name: "unknown fields ignored", body: `{"ids":["a"],"extra":1}`},
		{name: "empty", body: ``, wantErr: "empty request body"},
		{name: "malformed", body: `{"ids":`, wantErr: "invalid JSON"},
		{name: "trailing data", body: `{"ids":[]} {}`, wantErr: "unexpected data"},
		{name: "truncated", body: `{"ids":["a"`, wantErr: "unexpected end of body"},
		{name: "syntax", body: `{"ids" 1}`, wantErr: "syntax error at offset"},
		{name: "wrong field type", body: `{"ids":"a"}`, wantErr: "invalid JSON: ids: invalid type"},
		{name: "wrong top-level type", body: `[1]`, wantErr: "invalid JSON: body: invalid type"},
		{name: "too large", body: `{"ids":["` + strings.Repeat("a", MaxBodyBytes) + `"]}`, wantErr: "exceeds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(tt.body))

			var p payload
			err := ParseJSON(w, r, &p)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.NotContains(t, err.Error(), "payload")
				assert.NotContains(t, err.Error(), "Go ")
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestParseJSON_TypeError(t *testing.T) {
	r := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"ids":{"a":1}}`))

	var p struct {
		IDs []string `json:"ids"`
	}
	err := ParseJSON(httptest.NewRecorder(), r, &p)

	var typeErr *TypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "ids", typeErr.Field)
}

func TestRespondJSON(t *testing.T) {
	w := httptest.NewRecorder()

	RespondJSON(w, http.StatusOK, map[string]int{"updatedCount": 2})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"updatedCount":2}`, w.Body.String())
}

func TestRespondJSON_EncodingFailure(t *testing.T) {
	w := httptest.NewRecorder()

	RespondJSON(w, http.StatusOK, map[string]any{"bad": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal Server Error", w.Body.String())
}

func TestRespondText(t *testing.T) {
	w := httptest.NewRecorder()

	RespondText(w, http.StatusForbidden, "Forbidden")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Forbidden", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
}

func TestRequestIDContext(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, GetRequestID(r.Context()))

	r = WithRequestID(r, "req-1")
	assert.Equal(t, "req-1", GetRequestID(r.Context()))
	assert.Empty(t, GetRequestID(context.Background()))
}
