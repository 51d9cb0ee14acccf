package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"backend/internal/app/user"
	"backend/internal/providers/redis"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

const refreshKeyPrefix = "auth:refresh:"

type Service interface {
	IssueTokens(ctx context.Context, username, password string) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	Authenticate(token string) (uint64, error)
}

type service struct {
	users      user.Service
	redisP     *redis.RedisProvider
	logger     *zap.SugaredLogger
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewService(
	users user.Service,
	redisP *redis.RedisProvider,
	logger *zap.Logger,
	secret string,
	accessTTL time.Duration,
	refreshTTL time.Duration,
) Service {
	return &service{
		users:      users,
		redisP:     redisP,
		logger:     logger.Sugar(),
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (s *service) IssueTokens(ctx context.Context, username, password string) (*TokenPair, error) {
	u, err := s.users.GetUserByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !s.users.CheckPassword(u, password) {
		return nil, ErrInvalidCredentials
	}

	pair, err := s.issuePair(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("Issued token pair", "user_id", u.ID, "username", u.Username)
	return pair, nil
}

// Refresh rotates the refresh token: the presented token's JTI is deleted from
// the allow-list, so replaying it fails.
func (s *service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.parse(refreshToken)
	if err != nil || claims.TokenType != "refresh" || claims.ID == "" {
		return nil, ErrInvalidToken
	}

	key := refreshKeyPrefix + claims.ID
	exists, err := s.redisP.Exists(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if exists == 0 {
		return nil, ErrInvalidToken
	}
	s.redisP.Del(ctx, key)

	return s.issuePair(ctx, claims.UserID)
}

func (s *service) Authenticate(token string) (uint64, error) {
	claims, err := s.parse(token)
	if err != nil || claims.TokenType != "access" {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}

func (s *service) issuePair(ctx context.Context, userID uint64) (*TokenPair, error) {
	now := time.Now().UTC()

	access, err := s.sign(Claims{
		UserID:    userID,
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	jti := uuid.NewString()
	refresh, err := s.sign(Claims{
		UserID:    userID,
		TokenType: "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.refreshTTL)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	if err := s.redisP.SetEX(ctx, refreshKeyPrefix+jti, userID, s.refreshTTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &TokenPair{Access: access, Refresh: refresh}, nil
}

func (s *service) sign(claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *service) parse(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
