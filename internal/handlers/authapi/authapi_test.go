package authapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	gormlog "gorm.io/gorm/logger"

	"github.com/wellmind-app/backend/internal/auth"
	"github.com/wellmind-app/backend/internal/gormw"
	"github.com/wellmind-app/backend/internal/handlers/middleware"
	"github.com/wellmind-app/backend/internal/models"
	"github.com/wellmind-app/backend/internal/storage"
	"github.com/wellmind-app/backend/testdata"
)

func setupTestHandlers(t *testing.T) (*gormw.DB, *auth.Authenticator, *gin.Engine) {
	t.Helper()

	database, err := gormw.Open(&gormw.Config{
		LogLevel: gormlog.Silent,
	})
	require.NoError(t, err)

	err = database.Migrate()
	require.NoError(t, err)

	cfg := &auth.Config{
		PrivateKeyPEM:   testdata.PrivateKeyPEM,
		Issuer:          "http://localhost:8080",
		AccessTokenTTL:  900,
		RefreshTokenTTL: 3600,
	}
	authenticator := auth.New(cfg, database)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	mw := middleware.NewAuthMiddleware(authenticator, database)
	New(authenticator, database).RegisterHandlers(router.Group("/"), mw)

	return database, authenticator, router
}

func registerTestUser(t *testing.T, router *gin.Engine, name, email, password string) {
	t.Helper()

	body, err := json.Marshal(map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, "register failed: %s", rec.Body.String())
}

func loginTestUser(t *testing.T, router *gin.Engine, email, password string) *tokenPairResponse {
	t.Helper()

	formData := url.Values{
		"username": {email},
		"password": {password},
	}
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(formData.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, "login failed: %s", rec.Body.String())

	tokens := &tokenPairResponse{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), tokens))
	return tokens
}

func createAdminUser(t *testing.T, db *gormw.DB, email, password string) *models.User {
	t.Helper()

	hashed, err := auth.HashPassword(password)
	require.NoError(t, err)

	admin := &models.User{
		Name:           "Admin",
		Email:          email,
		HashedPassword: hashed,
		Role:           models.RoleAdmin,
	}
	require.NoError(t, storage.CreateUser(db, admin))
	return admin
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func getWithBearer(t *testing.T, router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
