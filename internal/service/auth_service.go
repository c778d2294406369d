package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"

	"github.com/witherings/PocePao-sub001/internal/repository"
)

// AuthService signs in admin panel users and validates their sessions.
type AuthService struct {
	repo repository.AdminUserRepository
	rdb  *redis.Client
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(repo repository.AdminUserRepository, rdb *redis.Client) *AuthService {
	return &AuthService{repo: repo, rdb: rdb}
}

type JwtCustomClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTSecret is shared between token issuing here and the echo-jwt middleware.
func JWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "secret"
	}
	return []byte(secret)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (token string, err error) {
	user, err := s.repo.GetUserByEmailAndPassword(ctx, email, password)
	if err != nil {
		return "", err
	}

	// After validation, generate JWT token
	claims := &JwtCustomClaims{
		Name:  user.Username,
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 24)),
		},
	}

	tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := tkn.SignedString(JWTSecret())
	if err != nil {
		return "", err
	}

	// Store the JWT token in Redis with the user email as the key
	err = s.rdb.Set(ctx, sessionKey(email), t, time.Hour*24).Err()
	if err != nil {
		return "", err
	}

	return t, nil
}

func (s *AuthService) ValidateSession(ctx context.Context, email string) (string, error) {
	token, err := s.rdb.Get(ctx, sessionKey(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", fmt.Errorf("session not found")
		}
		return "", err
	}

	return token, nil
}

func sessionKey(email string) string {
	return fmt.Sprintf("admin-session:%s", email)
}
