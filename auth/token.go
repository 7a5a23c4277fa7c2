package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleCustomer        = "customer"
	RoleRestaurantOwner = "restaurant_owner"
)

var (
	ErrMissingSecret = errors.New("jwt secret not configured")
	ErrInvalidToken  = errors.New("invalid token")
)

type Claims struct {
	UserID       string
	Role         string
	RestaurantID string
}

type Signer struct {
	secret []byte
	ttl    time.Duration
}

func NewSigner(secret string, ttl time.Duration) *Signer {
	return &Signer{secret: []byte(secret), ttl: ttl}
}

func (s *Signer) Generate(c Claims) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrMissingSecret
	}
	if c.UserID == "" {
		return "", errors.New("empty userID passed to Generate")
	}

	claims := jwt.MapClaims{
		"userID":       c.UserID,
		"role":         c.Role,
		"restaurantID": c.RestaurantID,
		"exp":          time.Now().Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Signer) Validate(tokenString string) (Claims, error) {
	if len(s.secret) == 0 {
		return Claims{}, ErrMissingSecret
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}

	var c Claims
	c.UserID, _ = mapClaims["userID"].(string)
	c.Role, _ = mapClaims["role"].(string)
	c.RestaurantID, _ = mapClaims["restaurantID"].(string)
	if c.UserID == "" {
		return Claims{}, ErrInvalidToken
	}
	return c, nil
}
