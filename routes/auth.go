package routes

import (
	"github.com/Dhanasriganesh/powder/auth"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		// Anonymous shopper session
		authGroup.POST("/session", auth.CreateSession(db))
	}
}
