//go:build unit

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"droidforge/internal/domain/user"
	"droidforge/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthRouter(t *testing.T, svc *jwt.Service, minRole *user.Role) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m := NewAuthMiddleware(svc)
	router := gin.New()

	handlers := []gin.HandlerFunc{m.RequireAuth()}
	if minRole != nil {
		handlers = append(handlers, m.RequireRoleAtLeast(*minRole))
	}
	handlers = append(handlers, func(c *gin.Context) {
		id, _ := GetUserID(c)
		role, _ := GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id.String(), "role": string(role)})
	})

	router.GET("/protected", handlers...)
	return router
}

func perform(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)
	router := setupAuthRouter(t, svc, nil)

	t.Run("accepts a valid bearer token", func(t *testing.T) {
		token, err := svc.GenerateToken(uuid.New(), user.RoleCustomer)
		require.NoError(t, err)

		rec := perform(router, "Bearer "+token)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects a missing header", func(t *testing.T) {
		rec := perform(router, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects a non-bearer header", func(t *testing.T) {
		rec := perform(router, "Basic dXNlcjpwYXNz")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects a token signed with another key", func(t *testing.T) {
		other := jwt.NewService("other-secret", time.Hour)
		token, err := other.GenerateToken(uuid.New(), user.RoleCustomer)
		require.NoError(t, err)

		rec := perform(router, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		expired := jwt.NewService("test-secret", -time.Minute)
		token, err := expired.GenerateToken(uuid.New(), user.RoleCustomer)
		require.NoError(t, err)

		rec := perform(router, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRoleAtLeast(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)
	minRole := user.RoleAdmin
	router := setupAuthRouter(t, svc, &minRole)

	tests := []struct {
		name     string
		role     user.Role
		wantCode int
	}{
		{name: "admin passes the admin gate", role: user.RoleAdmin, wantCode: http.StatusOK},
		{name: "printer owner is below admin", role: user.RolePrinterOwner, wantCode: http.StatusForbidden},
		{name: "customer is below admin", role: user.RoleCustomer, wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := svc.GenerateToken(uuid.New(), tt.role)
			require.NoError(t, err)

			rec := perform(router, "Bearer "+token)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}

	t.Run("printer owner clears the customer gate", func(t *testing.T) {
		min := user.RoleCustomer
		r := setupAuthRouter(t, svc, &min)

		token, err := svc.GenerateToken(uuid.New(), user.RolePrinterOwner)
		require.NoError(t, err)

		rec := perform(r, "Bearer "+token)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
