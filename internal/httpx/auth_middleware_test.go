package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookcatalog/internal/testutil"

	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func TestRequireAuth(t *testing.T) {
	var gotUserID int64
	var gotOK bool
	protected := RequireAuth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, gotOK = UserIDFrom(r)
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("valid token", func(t *testing.T) {
		token := testutil.GenerateTestToken(testSecret, 42)

		w := httptest.NewRecorder()
		r := testutil.NewRequestWithAuth(http.MethodGet, "/api/profile/", nil, token)

		protected.ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, gotOK)
		assert.Equal(t, int64(42), gotUserID)
	})

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := testutil.NewRequestWithAuth(http.MethodGet, "/api/profile/", nil, "")

		protected.ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var resp map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		errObj, _ := resp["error"].(map[string]interface{})
		assert.Equal(t, "Authentication credentials were not provided.", errObj["message"])
	})

	t.Run("not a bearer token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/profile/", nil)
		r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

		protected.ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := testutil.NewRequestWithAuth(http.MethodGet, "/api/profile/", nil, "not.a.token")

		protected.ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var resp map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		errObj, _ := resp["error"].(map[string]interface{})
		assert.Equal(t, "Invalid token.", errObj["message"])
	})

	t.Run("expired token", func(t *testing.T) {
		token := testutil.GenerateExpiredToken(testSecret, 42)

		w := httptest.NewRecorder()
		r := testutil.NewRequestWithAuth(http.MethodGet, "/api/profile/", nil, token)

		protected.ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		token := testutil.GenerateTestToken("other-secret", 42)

		w := httptest.NewRecorder()
		r := testutil.NewRequestWithAuth(http.MethodGet, "/api/profile/", nil, token)

		protected.ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
