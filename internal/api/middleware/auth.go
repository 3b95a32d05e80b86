package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const RoleKey = "role"

// AuthMiddleware определяет роль по Bearer токену. Запрос без заголовка проходит без роли.
func AuthMiddleware(adminToken, userToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format"})
				c.Abort()
				return
			}

			token := parts[1]

			switch {
			case adminToken != "" && token == adminToken:
				c.Set(RoleKey, "admin")
			case userToken != "" && token == userToken:
				c.Set(RoleKey, "user")
			default:
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
				c.Abort()
				return
			}
		}

		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(RoleKey)
		if role != "admin" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "admin token required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(RoleKey)
		if role != "user" && role != "admin" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user token required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
