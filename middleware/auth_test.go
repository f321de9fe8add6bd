package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret-0123456789abcdef"

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/whoami", AuthMiddleware, func(c *fiber.Ctx) error {
		id, err := GetUserID(c)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"user_id": id})
	})
	return app
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := newProtectedApp()

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{
			name: "missing header",
			want: http.StatusUnauthorized,
		},
		{
			name:   "malformed header",
			header: "Token abc",
			want:   http.StatusUnauthorized,
		},
		{
			name: "wrong secret",
			header: "Bearer " + signToken(t, "some-other-secret", jwt.MapClaims{
				"user_id": 1, "exp": time.Now().Add(time.Hour).Unix(),
			}),
			want: http.StatusUnauthorized,
		},
		{
			name: "expired token",
			header: "Bearer " + signToken(t, testSecret, jwt.MapClaims{
				"user_id": 1, "exp": time.Now().Add(-time.Hour).Unix(),
			}),
			want: http.StatusUnauthorized,
		},
		{
			name: "valid token",
			header: "Bearer " + signToken(t, testSecret, jwt.MapClaims{
				"user_id": 42, "nickname": "tester", "exp": time.Now().Add(time.Hour).Unix(),
			}),
			want: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			require.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestGetUserIDOutsideMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/bare", func(c *fiber.Ctx) error {
		_, err := GetUserID(c)
		require.Error(t, err)
		return c.SendStatus(http.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/bare", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
