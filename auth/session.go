package auth

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"os"
	"time"

	"github.com/Dhanasriganesh/powder/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// POST /auth/session
// Issues an anonymous shopper session and its empty cart. The storefront keeps
// the token for the lifetime of the browsing session.
func CreateSession(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {

		sessionID := "sess_" + generateRandomString(16)

		if err := db.Create(&models.Cart{SessionID: sessionID}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session cart"})
			return
		}

		// Issue JWT for the session
		token, err := issueSessionToken(sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"session_id": sessionID,
			"token":      token,
			"expires_at": time.Now().Add(30 * 24 * time.Hour),
		})
	}
}

func generateRandomString(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "rand_session"
	}
	return hex.EncodeToString(bytes)
}

func issueSessionToken(id string) (string, error) {
	claims := jwt.MapClaims{
		"session_id": id,
		"role":       "shopper",
		"exp":        time.Now().Add(30 * 24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
