package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertMiddleware(t *testing.T, authHeader string, expectedCode int) {
	t.Helper()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capID, _ := r.Context().Value(CapabilityIDKey).(string)
		kind, _ := r.Context().Value(CapabilityKindKey).(string)
		assert.NotEmpty(t, capID)
		assert.NotEmpty(t, kind)
		w.WriteHeader(http.StatusOK)
	})

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		r.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()

	CapabilityMiddleware(next).ServeHTTP(w, r)
	assert.Equal(t, expectedCode, w.Code)
}
