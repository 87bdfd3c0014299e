package middleware

import (
	"strings"

	"facility/response"
	"facility/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware lấy danh tính phiên từ token của identity provider bên ngoài
func AuthMiddleware(roles ...int) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		identity, err := services.GetIdentityFromToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Kiểm tra role nếu có yêu cầu
		if len(roles) > 0 {
			hasRole := false
			for _, role := range roles {
				if role == identity.Role {
					hasRole = true
					break
				}
			}
			if !hasRole {
				response.Forbidden(c)
				c.Abort()
				return
			}
		}

		// Lưu danh tính vào context, không dùng trạng thái toàn cục
		c.Set("userID", identity.UserID)
		c.Set("userRole", identity.Role)
		c.Set("hotelID", identity.HotelID)
		c.Next()
	}
}

// RoleMiddleware kiểm tra role của user đã xác thực trước đó
func RoleMiddleware(roles ...int) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("userRole")
		if !exists {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		role := userRole.(int)
		hasRole := false
		for _, r := range roles {
			if r == role {
				hasRole = true
				break
			}
		}

		if !hasRole {
			response.Forbidden(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
