package moodapi

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
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

func setupTestHandlers(t *testing.T) (*gormw.DB, *gin.Engine, *models.User, string) {
	t.Helper()

	database, err := gormw.Open(&gormw.Config{
		LogLevel: gormlog.Silent,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate())

	cfg := &auth.Config{
		PrivateKeyPEM:   testdata.PrivateKeyPEM,
		Issuer:          "http://localhost:8080",
		AccessTokenTTL:  900,
		RefreshTokenTTL: 3600,
	}
	authenticator := auth.New(cfg, database)
	mw := middleware.NewAuthMiddleware(authenticator, database)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	New(database, storage.NewAnalyticsCache()).RegisterHandlers(router.Group("/"), mw)

	user := &models.User{Name: "Mood User", Email: "mood@example.com", Role: models.RoleUser}
	require.NoError(t, storage.CreateUser(database, user))
	token, err := authenticator.IssueAccessToken(user)
	require.NoError(t, err)

	return database, router, user, token
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
