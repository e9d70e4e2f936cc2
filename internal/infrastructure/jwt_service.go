package infrastructure

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cecobask/socialdeck-api/internal/domain/entities"
)

// JWTService issues and verifies the signed bearer credential returned by
// signUp and logIn. The payload is the minimal user snapshot.
type JWTService struct {
	secretKey []byte
	ttl       time.Duration
}

func NewJWTService(secret string, ttl time.Duration) *JWTService {
	return &JWTService{
		secretKey: []byte(secret),
		ttl:       ttl,
	}
}

func (j *JWTService) GenerateToken(identity *entities.Identity) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   identity.ID,
		"email":     identity.Email,
		"firstName": identity.FirstName,
		"lastName":  identity.LastName,
		"exp":       time.Now().Add(j.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// VerifyToken resolves a token string to an identity. Any failure (bad
// signature, expiry, malformed claims) resolves to nil, never an error, so
// the authorization gate can uniformly check for absence.
func (j *JWTService) VerifyToken(tokenString string) *entities.Identity {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return j.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil
	}
	email, _ := claims["email"].(string)
	firstName, _ := claims["firstName"].(string)
	lastName, _ := claims["lastName"].(string)

	return &entities.Identity{
		ID:        userID,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
	}
}
