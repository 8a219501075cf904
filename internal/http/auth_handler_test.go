package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookcatalog/internal/auth"
	"bookcatalog/internal/entity"
	"bookcatalog/internal/store/mocks"
	"bookcatalog/internal/testutil"
	"bookcatalog/internal/usecase"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func newAuthHandlerMock(t *testing.T) (*AuthHandler, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockUsers := mocks.NewMockUserRepository(ctrl)
	return NewAuthHandler(mockUsers, testSecret), mockUsers
}

func TestAuthHandler_Token(t *testing.T) {
	handler, mockUsers := newAuthHandlerMock(t)

	hash, err := auth.HashPassword("Password123")
	assert.NoError(t, err)
	user := entity.User{ID: 1, Username: "john_doe", PasswordHash: hash}

	t.Run("success", func(t *testing.T) {
		mockUsers.EXPECT().
			GetByUsername(gomock.Any(), "john_doe").
			Return(user, nil)

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPost, "/api/auth/token/", map[string]interface{}{
			"username": "john_doe",
			"password": "Password123",
		})

		handler.Token(w, r)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data, _ := resp["data"].(map[string]interface{})
		assert.NotEmpty(t, data["token"])
		assert.Equal(t, float64(86400), data["expires_in"])
	})

	t.Run("wrong password", func(t *testing.T) {
		mockUsers.EXPECT().
			GetByUsername(gomock.Any(), "john_doe").
			Return(user, nil)

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPost, "/api/auth/token/", map[string]interface{}{
			"username": "john_doe",
			"password": "wrong",
		})

		handler.Token(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown username", func(t *testing.T) {
		mockUsers.EXPECT().
			GetByUsername(gomock.Any(), "ghost").
			Return(entity.User{}, usecase.ErrNotFound)

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPost, "/api/auth/token/", map[string]interface{}{
			"username": "ghost",
			"password": "Password123",
		})

		handler.Token(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var resp map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		errObj, _ := resp["error"].(map[string]interface{})
		assert.Equal(t, "Unable to log in with provided credentials.", errObj["message"])
	})

	t.Run("validation error - missing password", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPost, "/api/auth/token/", map[string]interface{}{
			"username": "john_doe",
		})

		handler.Token(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Register(t *testing.T) {
	handler, mockUsers := newAuthHandlerMock(t)

	body := map[string]interface{}{
		"username":   "new_user",
		"email":      "new@example.com",
		"password":   "Password123",
		"first_name": "New",
		"last_name":  "User",
	}

	t.Run("success", func(t *testing.T) {
		mockUsers.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, u *entity.User) error {
				assert.Equal(t, "new_user", u.Username)
				assert.True(t, auth.VerifyPassword(u.PasswordHash, "Password123"))
				u.ID = 5
				return nil
			})

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPost, "/api/auth/register/", body)

		handler.Register(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)

		// The password hash must never appear in the response.
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("conflict - username taken", func(t *testing.T) {
		mockUsers.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(&usecase.ConstraintError{Field: "username", Message: "user with this username already exists."})

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPost, "/api/auth/register/", body)

		handler.Register(w, r)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("validation error - weak password", func(t *testing.T) {
		weak := map[string]interface{}{
			"username": "new_user",
			"email":    "new@example.com",
			"password": "short",
		}

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPost, "/api/auth/register/", weak)

		handler.Register(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("validation error - username too short", func(t *testing.T) {
		bad := map[string]interface{}{
			"username": "ab",
			"email":    "new@example.com",
			"password": "Password123",
		}

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPost, "/api/auth/register/", bad)

		handler.Register(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
