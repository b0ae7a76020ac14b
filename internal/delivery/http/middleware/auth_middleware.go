package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"jobpilot-backend/config"
	"jobpilot-backend/internal/delivery/http/response"
	"jobpilot-backend/internal/domain"
	"jobpilot-backend/pkg/auth"
	"jobpilot-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates the bearer token (HS256 via shared secret or
// RS256 via JWKS) and stores the authenticated user's id and email in
// both the gin context and the request context, so handlers and
// usecases can read them.
func AuthMiddleware(jwksProvider *auth.Provider, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		var tokenString string

		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else {
			cookie, err := c.Cookie("auth_token")
			if err == nil && cookie != "" {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); ok {
				if cfg.JWTSecret == "" {
					return nil, fmt.Errorf("HS256 token received but JWT_SECRET is not configured")
				}
				return []byte(cfg.JWTSecret), nil
			}
			if _, ok := token.Method.(*jwt.SigningMethodRSA); ok {
				return jwksProvider.KeyFunc(token)
			}
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		})

		if err != nil || !token.Valid {
			logger.Log.Debug("Token validation failed", "error", err)
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Invalid token claims", nil)
			c.Abort()
			return
		}

		userID, _ := claims["sub"].(string)
		if userID == "" {
			response.Error(c, http.StatusUnauthorized, "Token is missing subject claim", nil)
			c.Abort()
			return
		}
		email, _ := claims["email"].(string)

		c.Set(string(domain.KeyUserID), userID)
		c.Set(string(domain.KeyUserEmail), email)

		ctx := context.WithValue(c.Request.Context(), domain.KeyUserID, userID)
		ctx = context.WithValue(ctx, domain.KeyUserEmail, email)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
