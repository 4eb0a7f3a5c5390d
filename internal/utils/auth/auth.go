package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/talx-hub/likeboard/internal/model"
	"github.com/talx-hub/likeboard/internal/serviceerrs"
)

const TokenExpire = time.Hour

type Claims struct {
	jwt.RegisteredClaims
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
}

type Issuer struct {
	now    func() time.Time
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string) *Issuer {
	return &Issuer{
		now:    time.Now,
		secret: []byte(secret),
		ttl:    TokenExpire,
	}
}

func (i *Issuer) Issue(userID int64, username string) (string, error) {
	return buildJWTString(userID, username, i.secret, i.now(), i.ttl)
}

func (i *Issuer) Check(tokenString string) (Claims, error) {
	return CheckToken(tokenString, i.secret)
}

func buildJWTString(userID int64, username string,
	secret []byte, now time.Time, ttl time.Duration,
) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256,
		Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ID:        uuid.NewString(),
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			},
			UserID:   userID,
			Username: username,
		},
	)
	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("JWT signing: %w", err)
	}
	return tokenString, nil
}

func CheckToken(tokenString string, secret []byte) (Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(
		tokenString, claims,
		func(token *jwt.Token) (any, error) {
			return secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, serviceerrs.ErrTokenExpired
		}
		return Claims{}, fmt.Errorf("%w: %w", serviceerrs.ErrInvalidToken, err)
	}
	if claims.UserID < 1 || claims.Username == "" {
		return Claims{}, fmt.Errorf("%w: missing identity", serviceerrs.ErrInvalidToken)
	}

	return *claims, nil
}

// BearerToken extracts the token from an "Authorization: bearer <token>" header.
func BearerToken(r *http.Request) (string, error) {
	header := strings.TrimSpace(r.Header.Get(model.HeaderAuthorization))
	if header == "" {
		return "", fmt.Errorf("%w: header is empty", serviceerrs.ErrBadAuthorizationHeader)
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", fmt.Errorf("%w: bearer scheme expected", serviceerrs.ErrBadAuthorizationHeader)
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", fmt.Errorf("%w: token is empty", serviceerrs.ErrBadAuthorizationHeader)
	}
	return token, nil
}
