package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"ministryshare/internal/shared/authorization"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims carries the identity a request acts as. ChurchID is nil for
// admins, who are not bound to a church.
type Claims struct {
	UserID    uint                   `json:"user_id"`
	Role      authorization.UserRole `json:"role"`
	ChurchID  *uint                  `json:"church_id,omitempty"`
	TokenType TokenType              `json:"token_type"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type JWTService struct {
	secret         []byte
	accessExpDays  int
	refreshExpDays int
}

func NewJWTService(secret string, accessExpDays, refreshExpDays int) *JWTService {
	return &JWTService{
		secret:         []byte(secret),
		accessExpDays:  accessExpDays,
		refreshExpDays: refreshExpDays,
	}
}

func (s *JWTService) Generate(userID uint, role authorization.UserRole, churchID *uint) (*TokenPair, error) {
	now := time.Now().UTC()

	accessExp := now.Add(time.Duration(s.accessExpDays) * 24 * time.Hour)
	accessString, err := s.sign(userID, role, churchID, TokenTypeAccess, now, accessExp)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshExp := now.Add(time.Duration(s.refreshExpDays) * 24 * time.Hour)
	refreshString, err := s.sign(userID, role, churchID, TokenTypeRefresh, now, refreshExp)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  accessString,
		RefreshToken: refreshString,
		ExpiresIn:    int64(s.accessExpDays) * 24 * 60 * 60,
	}, nil
}

func (s *JWTService) sign(userID uint, role authorization.UserRole, churchID *uint, tokenType TokenType, now, exp time.Time) (string, error) {
	claims := &Claims{
		UserID:    userID,
		Role:      role,
		ChurchID:  churchID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// ShouldRefresh reports whether the access token is close enough to expiry
// that the middleware should reissue it on this request.
func (s *JWTService) ShouldRefresh(claims *Claims) bool {
	if claims == nil || claims.ExpiresAt == nil {
		return false
	}
	threshold := time.Hour
	return time.Now().UTC().Add(threshold).After(claims.ExpiresAt.Time)
}

// RefreshAccessToken generates a new access token carrying the same identity.
func (s *JWTService) RefreshAccessToken(claims *Claims) (string, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(s.accessExpDays) * 24 * time.Hour)
	return s.sign(claims.UserID, claims.Role, claims.ChurchID, TokenTypeAccess, now, exp)
}

// Refresh rotates a refresh token into a new token pair.
func (s *JWTService) Refresh(refreshTokenString string) (*TokenPair, error) {
	claims, err := s.Verify(refreshTokenString)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}
	if claims.TokenType != TokenTypeRefresh {
		return nil, fmt.Errorf("token is not a refresh token")
	}
	return s.Generate(claims.UserID, claims.Role, claims.ChurchID)
}

// AccessExpSeconds returns the access token lifetime in seconds, which the
// handlers use as the cookie max age.
func (s *JWTService) AccessExpSeconds() int {
	return s.accessExpDays * 24 * 60 * 60
}
