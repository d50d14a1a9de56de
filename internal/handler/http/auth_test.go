package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/factrack/factrack-backend-go/internal/domain/user"
	"github.com/factrack/factrack-backend-go/internal/pkg/jwt"
	authService "github.com/factrack/factrack-backend-go/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-key-for-jwt"

type fakeUserRepo struct {
	users map[string]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]user.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	if _, ok := r.users[u.Username]; ok {
		return user.User{}, user.ErrUsernameExists
	}
	u.ID = "u-" + u.Username
	r.users[u.Username] = u
	return u, nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	u, ok := r.users[username]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func newAuthTestHandler(repo *fakeUserRepo) AuthHandler {
	jwtService := jwt.NewJWTService(testSecret, "1h")
	return NewAuthHandler(authService.NewAuthService(repo, jwtService))
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSignup_Success(t *testing.T) {
	handler := newAuthTestHandler(newFakeUserRepo())

	payload := []byte(`{"username":"owner","password":"password123"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", bytes.NewReader(payload))
	rec := httptest.NewRecorder()

	handler.Signup(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "owner", data["username"])
	assert.Equal(t, "admin", data["role"])
}

func TestSignup_ShortPasswordFailsValidation(t *testing.T) {
	handler := newAuthTestHandler(newFakeUserRepo())

	payload := []byte(`{"username":"owner","password":"short"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", bytes.NewReader(payload))
	rec := httptest.NewRecorder()

	handler.Signup(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	errDetail := body["error"].(map[string]interface{})
	assert.Equal(t, "VALIDATION_ERROR", errDetail["code"])
}

func TestSignup_DuplicateUsernameConflicts(t *testing.T) {
	repo := newFakeUserRepo()
	handler := newAuthTestHandler(repo)

	payload := `{"username":"owner","password":"password123"}`
	first := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", bytes.NewReader([]byte(payload)))
	rec := httptest.NewRecorder()
	handler.Signup(rec, first)
	require.Equal(t, http.StatusCreated, rec.Code)

	second := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", bytes.NewReader([]byte(payload)))
	rec = httptest.NewRecorder()
	handler.Signup(rec, second)

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decodeBody(t, rec)
	errDetail := body["error"].(map[string]interface{})
	assert.Equal(t, "CONFLICT", errDetail["code"])
}

func TestLogin_Success(t *testing.T) {
	repo := newFakeUserRepo()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	repo.users["owner"] = user.User{ID: "u-owner", Username: "owner", PasswordHash: string(hash), Role: user.RoleAdmin}

	handler := newAuthTestHandler(repo)

	payload := []byte(`{"username":"owner","password":"password123"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(payload))
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["access_token"])
	assert.NotZero(t, data["expires_at"])
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	repo.users["owner"] = user.User{ID: "u-owner", Username: "owner", PasswordHash: string(hash), Role: user.RoleAdmin}

	handler := newAuthTestHandler(repo)

	payload := []byte(`{"username":"owner","password":"wrong-password"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(payload))
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_UnknownUserLooksLikeWrongPassword(t *testing.T) {
	handler := newAuthTestHandler(newFakeUserRepo())

	payload := []byte(`{"username":"ghost","password":"password123"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(payload))
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody(t, rec)
	errDetail := body["error"].(map[string]interface{})
	assert.Equal(t, "Invalid username or password", errDetail["message"])
}

func TestLogin_MalformedBody(t *testing.T) {
	handler := newAuthTestHandler(newFakeUserRepo())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader([]byte("{not-json")))
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
