package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/viltrumflow/taskflow-api/internal/constants"
	"github.com/viltrumflow/taskflow-api/internal/dto"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrWrongTokenKind = errors.New("wrong token type")
)

// TokenIssuer signs and verifies the access/refresh token pair.
type TokenIssuer interface {
	Issue(userID uint64) (dto.TokenResponse, error)
	Verify(token, kind string) (uint64, error)
}

// Claims are the JWT claims carried by both token kinds
type Claims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// TokenManager is the HS256 implementation of TokenIssuer
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewTokenManager creates a new TokenManager
func NewTokenManager(secret string, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// Issue returns a fresh access and refresh token for the user
func (m *TokenManager) Issue(userID uint64) (dto.TokenResponse, error) {
	access, err := m.sign(userID, constants.TokenKindAccess, m.accessTTL)
	if err != nil {
		return dto.TokenResponse{}, err
	}
	refresh, err := m.sign(userID, constants.TokenKindRefresh, m.refreshTTL)
	if err != nil {
		return dto.TokenResponse{}, err
	}
	return dto.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    constants.TokenTypeBearer,
	}, nil
}

func (m *TokenManager) sign(userID uint64, kind string, ttl time.Duration) (string, error) {
	now := m.now()
	claims := Claims{
		Type: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature, expiry and kind of token and returns the user ID it carries.
func (m *TokenManager) Verify(token, kind string) (uint64, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Type != kind {
		return 0, ErrWrongTokenKind
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}
	return userID, nil
}
