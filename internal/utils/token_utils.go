package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// EmployeeClaims are the JWT claims issued at login. Role is embedded so the
// auth middleware can populate the request context without a lookup; policy
// checks still read the employee row.
type EmployeeClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateJWT generates a signed token for an employee.
func GenerateJWT(employeeID string, role string, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	claims := EmployeeClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   employeeID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAndValidateJWT parses a token string and validates its signature and
// standard claims. It returns the EmployeeClaims if the token is valid.
func ParseAndValidateJWT(tokenString string, secretKey string) (*EmployeeClaims, error) {
	claims := &EmployeeClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Don't forget to validate the alg is what you expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	})

	if err != nil {
		return nil, err // This will include errors like token expired, signature invalid, etc.
	}

	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	return claims, nil
}
