package delivery

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	authdomain "github.com/whoisanshul/insight-dump/internal/auth/domain"
	authdto "github.com/whoisanshul/insight-dump/internal/auth/dto"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuthUsecase accepts exactly one token and rejects everything else
type fakeAuthUsecase struct {
	validToken string
	user       *authdomain.User
}

func (f *fakeAuthUsecase) Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeAuthUsecase) Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeAuthUsecase) RefreshToken(refreshToken string) (*authdto.TokenResponse, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeAuthUsecase) Logout(refreshToken string) error {
	return errors.New("not implemented")
}

func (f *fakeAuthUsecase) ValidateToken(tokenString string) (*authdomain.User, error) {
	if tokenString == f.validToken {
		return f.user, nil
	}
	return nil, errors.New("invalid token")
}

func (f *fakeAuthUsecase) UpdateProfile(userID, name string) (*authdomain.User, error) {
	return nil, errors.New("not implemented")
}

func setupProtectedRoute(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	authUc := &fakeAuthUsecase{
		validToken: "good-token",
		user:       &authdomain.User{ID: "user-1", Email: "ada@example.com"},
	}

	r := gin.New()
	r.GET("/protected", AuthMiddleware(authUc), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("userID")})
	})
	return r
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	r := setupProtectedRoute(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error": "authorization header required"}`, w.Body.String())
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	r := setupProtectedRoute(t)

	for _, header := range []string{"good-token", "Basic good-token", "Bearer a b"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", header)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
		assert.JSONEq(t, `{"error": "invalid authorization header format"}`, w.Body.String())
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	r := setupProtectedRoute(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error": "invalid or expired token"}`, w.Body.String())
}

func TestAuthMiddleware_ValidTokenSetsUserID(t *testing.T) {
	r := setupProtectedRoute(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id": "user-1"}`, w.Body.String())
}
