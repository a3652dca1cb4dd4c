package helper

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

const FlashCookieName = "blogly_flash"

// FlashStore keeps one-shot status messages in an HMAC-signed cookie.
type FlashStore struct {
	secret []byte
	ttl    time.Duration
}

type flashClaims struct {
	Messages []string `json:"messages"`
	jwt.RegisteredClaims
}

func NewFlashStore(secret []byte, ttl time.Duration) *FlashStore {
	return &FlashStore{secret: secret, ttl: ttl}
}

// Add appends message to the messages already pending for this client.
func (s *FlashStore) Add(c *gin.Context, message string) error {
	now := time.Now()
	claims := flashClaims{
		Messages: append(s.read(c), message),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return fmt.Errorf("sign flash: %w", err)
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(FlashCookieName, token, int(s.ttl.Seconds()), "/", "", false, true)
	return nil
}

// Pop returns the pending messages and clears the cookie.
func (s *FlashStore) Pop(c *gin.Context) []string {
	if _, err := c.Cookie(FlashCookieName); err != nil {
		return nil
	}
	messages := s.read(c)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(FlashCookieName, "", -1, "/", "", false, true)
	return messages
}

// read ignores missing, tampered or expired cookies.
func (s *FlashStore) read(c *gin.Context) []string {
	raw, err := c.Cookie(FlashCookieName)
	if err != nil || raw == "" {
		return nil
	}

	claims := &flashClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil
	}
	return claims.Messages
}
