package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// newJSONRequest prépare une requête avec un corps JSON (ou brut si body est une chaîne)
func newJSONRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()

	var raw []byte
	switch b := body.(type) {
	case nil:
	case string:
		raw = []byte(b)
	default:
		var err error
		raw, err = json.Marshal(b)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// withURLParam simule le paramètre {id} résolu par chi
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

// AssertSuccess vérifie une réponse success=true
func AssertSuccess(t *testing.T, response map[string]interface{}) {
	t.Helper()
	success, ok := response["success"].(bool)
	if !ok || !success {
		t.Errorf("Expected success=true, got %v", response)
	}
}

// AssertError vérifie une réponse success=false
func AssertError(t *testing.T, response map[string]interface{}) {
	t.Helper()
	success, ok := response["success"].(bool)
	if !ok || success {
		t.Errorf("Expected success=false, got %v", response)
	}
}
