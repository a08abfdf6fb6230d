package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/usama228/AMS-Backend/config"
	"github.com/usama228/AMS-Backend/models"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// tokenDuration is fixed at one day; clients re-login after expiry.
const tokenDuration = 24 * time.Hour

type jwtClaims struct {
	ID         string `json:"id"`
	UserType   string `json:"userType"`
	IsTeamLead bool   `json:"isTeamLead"`
	jwt.RegisteredClaims
}

type Maker struct {
	secret []byte
}

func NewMaker(cfg *config.AppConfig) *Maker {
	return &Maker{secret: []byte(cfg.JWT_SECRET)}
}

// GenerateToken signs a bearer token carrying the user's id, type and
// team-lead flag.
func (m *Maker) GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &jwtClaims{
		ID:         user.ID.Hex(),
		UserType:   user.UserType,
		IsTeamLead: user.IsTeamLead,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// ValidateToken checks signature and expiry and returns the embedded claims.
// It does not consult the user store; callers needing live verification must
// look the user up themselves.
func (m *Maker) ValidateToken(tokenString string) (*models.Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwtClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*jwtClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	userID, err := primitive.ObjectIDFromHex(claims.ID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &models.Claims{
		UserID:     userID,
		UserType:   claims.UserType,
		IsTeamLead: claims.IsTeamLead,
	}, nil
}
