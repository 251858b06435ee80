package middleware

import (
	"net/http"
	"strings"

	"github.com/eventlodge/room-assignment-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// OperatorContextKey is the key used to store operator information in Gin context
const OperatorContextKey = "operator"

// OperatorContext represents the authenticated operator's information
type OperatorContext struct {
	OperatorID string   `json:"operator_id"`
	Name       string   `json:"name"`
	Roles      []string `json:"roles"`
}

// AuthMiddleware validates an operator's Bearer JWT, or alternatively an
// X-API-Key compared against the configured bcrypt hash. Either mechanism
// is accepted; tooling uses the API key, the back-office UI uses tokens.
func AuthMiddleware(jwtService *jwt.Service, apiKeyHash string, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey := c.GetHeader("X-API-Key"); apiKey != "" && apiKeyHash != "" {
			if err := bcrypt.CompareHashAndPassword([]byte(apiKeyHash), []byte(apiKey)); err != nil {
				logger.WithFields(logrus.Fields{
					"path": c.Request.URL.Path,
					"ip":   c.ClientIP(),
				}).Warn("Auth failed: invalid API key")
				c.JSON(http.StatusUnauthorized, gin.H{
					"error":   "unauthorized",
					"message": "Invalid API key",
					"code":    "INVALID_API_KEY",
				})
				c.Abort()
				return
			}
			c.Set(OperatorContextKey, OperatorContext{
				OperatorID: "api-key",
				Name:       "api-key",
				Roles:      []string{"operator"},
			})
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.WithFields(logrus.Fields{
				"path": c.Request.URL.Path,
				"ip":   c.ClientIP(),
			}).Warn("Auth failed: missing authorization header")
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": "Authorization header is required",
				"code":    "MISSING_AUTH_HEADER",
			})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": "Invalid authorization header format. Expected: Bearer <token>",
				"code":    "INVALID_AUTH_FORMAT",
			})
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": "Token cannot be empty",
				"code":    "INVALID_AUTH_FORMAT",
			})
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			logger.WithFields(logrus.Fields{
				"path":  c.Request.URL.Path,
				"ip":    c.ClientIP(),
				"error": err.Error(),
			}).Warn("Auth failed: invalid token")
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "invalid_token",
				"message": "Invalid access token",
				"code":    "INVALID_TOKEN",
			})
			c.Abort()
			return
		}

		c.Set(OperatorContextKey, OperatorContext{
			OperatorID: claims.OperatorID,
			Name:       claims.Name,
			Roles:      claims.Roles,
		})

		c.Next()
	}
}

// GetOperatorContext retrieves the authenticated operator from Gin context
func GetOperatorContext(c *gin.Context) (OperatorContext, bool) {
	value, exists := c.Get(OperatorContextKey)
	if !exists {
		return OperatorContext{}, false
	}
	operator, ok := value.(OperatorContext)
	return operator, ok
}

// RequireRole checks that the authenticated operator carries one of the
// given roles. Must run after AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		operator, exists := GetOperatorContext(c)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": "Operator context not found. Auth middleware may not be applied.",
				"code":    "MISSING_OPERATOR_CONTEXT",
			})
			c.Abort()
			return
		}

		for _, required := range roles {
			for _, role := range operator.Roles {
				if role == required {
					c.Next()
					return
				}
			}
		}

		c.JSON(http.StatusForbidden, gin.H{
			"error":   "forbidden",
			"message": "Insufficient role for this operation",
			"code":    "INSUFFICIENT_ROLE",
		})
		c.Abort()
	}
}
