package services

import (
	"errors"
	"time"

	"month_balance_ms/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hashicorp/go-uuid"
)

type IJWTService interface {
	ParseJWT(tokenStr string) (*jwt.Token, error)
	GetClaims(token *jwt.Token) (jwt.MapClaims, error)
	GenerateUserToken(user *domain.User) (string, error)
}

type JWTService struct {
	Secret    []byte
	Issuer    string
	AccessTTL time.Duration
}

func NewJWTService(secret []byte, issuer string, accessTtl time.Duration) *JWTService {
	return &JWTService{
		Secret:    secret,
		Issuer:    issuer,
		AccessTTL: accessTtl,
	}
}

func (j *JWTService) ParseJWT(tokenStr string) (*jwt.Token, error) {
	if len(j.Secret) == 0 {
		return nil, errors.New("JWT secret is not configured")
	}

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return j.Secret, nil
	})

	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return token, nil
}

func (j *JWTService) GetClaims(token *jwt.Token) (jwt.MapClaims, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["sub"] == nil {
		return nil, errors.New("no claims")
	}
	return claims, nil
}

// GenerateUserToken issues the bearer token handed out after a successful
// authentication ceremony. The jti claim makes each issued token unique.
func (j *JWTService) GenerateUserToken(user *domain.User) (string, error) {
	jti, err := uuid.GenerateUUID()
	if err != nil {
		return "", err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.Id,
		"email": user.Email,
		"name":  user.Name,
		"jti":   jti,
		"iss":   j.Issuer,
		"exp":   time.Now().Add(j.AccessTTL).Unix(),
	})

	return token.SignedString(j.Secret)
}
