package auth

import (
	"errors"
	"fmt"
	"time"

	"barbearia/internal/domain/entities"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// TokenService issues and validates operator tokens.
type TokenService interface {
	GenerateToken(employeeID string, level entities.AccessLevel) (string, error)
	ValidateToken(tokenString string) (*CustomClaims, error)
}

// CustomClaims carries the operator identity and access level.
type CustomClaims struct {
	EmployeeID  string               `json:"employee_id"`
	AccessLevel entities.AccessLevel `json:"access_level"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey []byte
	expiry    time.Duration
	issuer    string
}

var _ TokenService = (*Service)(nil)

func NewService(secretKey string, expiry time.Duration, issuer string) *Service {
	return &Service{secretKey: []byte(secretKey), expiry: expiry, issuer: issuer}
}

func (s *Service) GenerateToken(employeeID string, level entities.AccessLevel) (string, error) {
	now := time.Now()
	claims := CustomClaims{
		EmployeeID:  employeeID,
		AccessLevel: level,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			Subject:   employeeID,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (s *Service) ValidateToken(tokenString string) (*CustomClaims, error) {
	claims := &CustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(s.issuer))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
