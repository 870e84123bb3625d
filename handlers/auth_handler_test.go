package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cvscanner/apperrors"
	"cvscanner/handlers"
	"cvscanner/models"
)

// stubAccountService returns canned results so the handler's
// translation to HTTP can be tested in isolation.
type stubAccountService struct {
	err        error
	user       *models.UserInfo
	users      []models.UserInfo
	categories models.CategorySet
}

func (s *stubAccountService) Register(*models.RegisterRequest) error             { return s.err }
func (s *stubAccountService) Login(*models.LoginRequest) error                   { return s.err }
func (s *stubAccountService) ChangePassword(*models.ChangePasswordRequest) error { return s.err }
func (s *stubAccountService) GetCurrentUser(string) (*models.UserInfo, error) {
	return s.user, s.err
}
func (s *stubAccountService) ListUsers() ([]models.UserInfo, error)   { return s.users, s.err }
func (s *stubAccountService) SearchUsers(string) ([]models.UserInfo, error) {
	return s.users, s.err
}
func (s *stubAccountService) FilterUsers(string) ([]models.UserInfo, error) {
	return s.users, s.err
}
func (s *stubAccountService) AddUser(*models.AdminUserRequest) error          { return s.err }
func (s *stubAccountService) EditUser(*models.AdminUserRequest) error         { return s.err }
func (s *stubAccountService) DeleteUser(string) error                         { return s.err }
func (s *stubAccountService) UpdateProfile(*models.UpdateProfileRequest) error { return s.err }
func (s *stubAccountService) GetCategories() (models.CategorySet, error) {
	return s.categories, s.err
}
func (s *stubAccountService) UpdateCategories(map[string][]any) error { return s.err }

func newAuthHandler(stub *stubAccountService) *handlers.AuthHandler {
	return &handlers.AuthHandler{Service: stub, Logger: zap.NewNop()}
}

func decodeMessage(t *testing.T, body *bytes.Buffer) string {
	t.Helper()
	var resp map[string]string
	require.NoError(t, json.Unmarshal(body.Bytes(), &resp))
	return resp["message"]
}

func TestRegisterHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		h := newAuthHandler(&stubAccountService{})

		req := httptest.NewRequest(http.MethodPost, "/auth/register",
			bytes.NewBufferString(`{"username":"alice","password":"pw","email":"alice@test.com"}`))
		w := httptest.NewRecorder()
		h.Register(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "User registered successfully", decodeMessage(t, w.Body))
	})

	t.Run("Service error carries status and message", func(t *testing.T) {
		h := newAuthHandler(&stubAccountService{
			err: apperrors.BadRequest("Username or email already exists."),
		})

		req := httptest.NewRequest(http.MethodPost, "/auth/register",
			bytes.NewBufferString(`{"username":"alice","password":"pw","email":"alice@test.com"}`))
		w := httptest.NewRecorder()
		h.Register(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Username or email already exists.", decodeMessage(t, w.Body))
	})

	t.Run("Malformed body", func(t *testing.T) {
		h := newAuthHandler(&stubAccountService{})

		req := httptest.NewRequest(http.MethodPost, "/auth/register",
			bytes.NewBufferString(`{not json`))
		w := httptest.NewRecorder()
		h.Register(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLoginHandler(t *testing.T) {
	h := newAuthHandler(&stubAccountService{
		err: apperrors.Unauthorized("Invalid email or password."),
	})

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		bytes.NewBufferString(`{"email":"ghost@test.com","password":"pw"}`))
	w := httptest.NewRecorder()
	h.Login(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid email or password.", decodeMessage(t, w.Body))
}

func TestMeHandler(t *testing.T) {
	t.Run("Unknown user", func(t *testing.T) {
		h := newAuthHandler(&stubAccountService{err: apperrors.NotFound("User not found.")})

		req := httptest.NewRequest(http.MethodGet, "/auth/me?email=ghost@test.com", nil)
		w := httptest.NewRecorder()
		h.Me(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "User not found.", decodeMessage(t, w.Body))
	})

	t.Run("Projection has no password hash", func(t *testing.T) {
		h := newAuthHandler(&stubAccountService{user: &models.UserInfo{
			Username: "alice", Email: "alice@test.com",
			FirstName: "Alice", LastName: "Smith", Role: "user",
		}})

		req := httptest.NewRequest(http.MethodGet, "/auth/me?email=alice@test.com", nil)
		w := httptest.NewRecorder()
		h.Me(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "alice", resp["username"])
		assert.Equal(t, "alice@test.com", resp["email"])
		assert.Equal(t, "Alice", resp["first_name"])
		assert.Equal(t, "Smith", resp["last_name"])
		assert.Equal(t, "user", resp["role"])
		assert.NotContains(t, resp, "password_hash")
	})
}

func TestCategoriesHandlerDispatch(t *testing.T) {
	t.Run("GET returns the set", func(t *testing.T) {
		h := newAuthHandler(&stubAccountService{categories: models.CategorySet{
			"Skills": {"Backend"},
		}})

		req := httptest.NewRequest(http.MethodGet, "/auth/categories", nil)
		w := httptest.NewRecorder()
		h.Categories(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"Skills":["Backend"]}`, w.Body.String())
	})

	t.Run("PUT rejects non-string labels", func(t *testing.T) {
		h := newAuthHandler(&stubAccountService{
			err: apperrors.BadRequest("All category values must be strings."),
		})

		req := httptest.NewRequest(http.MethodPut, "/auth/categories",
			bytes.NewBufferString(`{"Skills":["Writer",42]}`))
		w := httptest.NewRecorder()
		h.Categories(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeMessage(t, w.Body), "must be strings")
	})

	t.Run("Other methods rejected", func(t *testing.T) {
		h := newAuthHandler(&stubAccountService{})

		req := httptest.NewRequest(http.MethodDelete, "/auth/categories", nil)
		w := httptest.NewRecorder()
		h.Categories(w, req)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}

func TestDeleteUserHandler(t *testing.T) {
	h := newAuthHandler(&stubAccountService{err: apperrors.NotFound("User not found.")})

	req := httptest.NewRequest(http.MethodDelete, "/auth/delete-user?email=ghost@test.com", nil)
	w := httptest.NewRecorder()
	h.DeleteUser(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found.", decodeMessage(t, w.Body))
}
