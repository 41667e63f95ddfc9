// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"spis_backend/internals/configs"
)

// AuthMiddleware validates the access token (Authorization header or cookie)
// and stores the admin identity in the request locals.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		adminID, err := extractAdminID(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing admin ID")
		}
		c.Locals("admin_id", adminID)

		if role, ok := claims["role"].(string); ok {
			c.Locals("role", role)
		}

		return c.Next()
	}
}

// RequireRole rejects requests whose token role is not in the allowed set.
// Accounts with no role yet (fresh Google sign-ins) are always rejected.
func RequireRole(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		for _, a := range allowed {
			if strings.EqualFold(role, a) {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "Forbidden - insufficient role")
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := strings.TrimSpace(c.Get("Authorization"))
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer ")), nil
	}
	if cookie := strings.TrimSpace(c.Cookies("access_token")); cookie != "" {
		return cookie, nil
	}
	return "", fmt.Errorf("missing access token")
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	exp, ok := claims["exp"].(float64)
	if !ok {
		return fmt.Errorf("missing exp claim")
	}
	if time.Now().After(time.Unix(int64(exp), 0).Add(leeway)) {
		return fmt.Errorf("token expired")
	}
	return nil
}

func extractAdminID(claims jwt.MapClaims) (int, error) {
	switch v := claims["admin_id"].(type) {
	case float64:
		return int(v), nil
	case int:
		return v, nil
	default:
		return 0, fmt.Errorf("admin_id claim missing")
	}
}
