package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/model"
	"github.com/Sohidul-Islam/fashionglory-pos-server/pkg/jwtutil"
	"github.com/Sohidul-Islam/fashionglory-pos-server/pkg/logger"
	"github.com/Sohidul-Islam/fashionglory-pos-server/prometheus"
)

const userContextKey = "user"

// Auth returns a middleware that validates the bearer token, loads the
// referenced user and attaches it to the request context. The token is
// accepted from the Authorization header or the `token` query
// parameter.
func Auth(db *gorm.DB) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			log := logger.FromContext(c)
			prometheus.RecordAuthAttempt()

			tokenString := extractToken(c)
			if tokenString == "" {
				log.Warn("Missing authorization token")
				prometheus.RecordAuthError()
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"status":  false,
					"message": "No token provided",
				})
			}

			claims, err := jwtutil.ValidateToken(tokenString)
			if err != nil {
				log.Warn("Invalid JWT token", zap.Error(err))
				prometheus.RecordAuthError()
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"status":  false,
					"message": "Invalid or expired token",
				})
			}

			var user model.User
			if err := db.First(&user, claims.UserID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					log.Warn("Token subject no longer exists", zap.Uint("user_id", claims.UserID))
					prometheus.RecordAuthError()
					return c.JSON(http.StatusNotFound, echo.Map{
						"status":  false,
						"message": "User not found",
					})
				}
				log.Error("Failed to load user for token", zap.Error(err))
				prometheus.RecordAuthError()
				return c.JSON(http.StatusInternalServerError, echo.Map{
					"status":  false,
					"message": "Authentication failed",
				})
			}

			prometheus.RecordAuthSuccess()
			c.Set(userContextKey, &user)
			c.Set("user_id", user.ID)
			return next(c)
		}
	}
}

// CurrentUser retrieves the authenticated user from the context
func CurrentUser(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(userContextKey).(*model.User)
	return user, ok
}

func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
	}
	return c.QueryParam("token")
}
