package tokens

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/hairloom/salon-booking/internal/models"
)

const (
	accessTokenTTL = 24 * time.Hour
	resetTokenTTL  = 15 * time.Minute

	PurposeReset = "reset"
)

var ErrInvalidToken = errors.New("invalid token")

// -------- Passwords --------

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hashed), err
}

func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// -------- JWT --------

type Claims struct {
	UserID  uint
	Role    models.Role
	Purpose string
	JTI     string
}

func GenerateAccessToken(secret string, user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  float64(user.ID),
		"role": string(user.Role),
		"exp":  time.Now().Add(accessTokenTTL).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// GenerateResetToken issues a short-lived token scoped to password reset.
// The jti lets the reset endpoint enforce single use.
func GenerateResetToken(secret string, userID uint) (string, string, error) {
	jti := uuid.NewString()
	claims := jwt.MapClaims{
		"sub":     float64(userID),
		"purpose": PurposeReset,
		"jti":     jti,
		"exp":     time.Now().Add(resetTokenTTL).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	return signed, jti, err
}

func ResetTokenTTL() time.Duration {
	return resetTokenTTL
}

func Parse(secret, tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, ok := mapClaims["sub"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}

	claims := &Claims{UserID: uint(sub)}
	if role, ok := mapClaims["role"].(string); ok {
		claims.Role = models.Role(role)
	}
	if purpose, ok := mapClaims["purpose"].(string); ok {
		claims.Purpose = purpose
	}
	if jti, ok := mapClaims["jti"].(string); ok {
		claims.JTI = jti
	}

	return claims, nil
}
