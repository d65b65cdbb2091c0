package security

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

var ErrInvalidToken = errors.New("invalid token")

type AuthService struct {
	JWTSecret         string
	AccessTokenExpiry time.Duration
}

func NewAuthService(secret string, accessTokenExpiry time.Duration) *AuthService {
	return &AuthService{
		JWTSecret:         secret,
		AccessTokenExpiry: accessTokenExpiry,
	}
}

func (a *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (a *AuthService) CompareHashAndPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// GenerateToken issues an HS256 access token whose subject is the user id.
func (a *AuthService) GenerateToken(userID int64) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(a.AccessTokenExpiry)
	claims := jwt.MapClaims{
		"sub": strconv.FormatInt(userID, 10),
		"exp": expiresAt.Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(a.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ValidateToken checks signature and expiry and returns the user id in the subject claim.
func (a *AuthService) ValidateToken(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(a.JWTSecret), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, ErrInvalidToken
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return 0, errors.New("invalid token: 'sub' claim missing or not a string")
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, errors.New("invalid token: 'sub' claim is not a user id")
	}
	return userID, nil
}
