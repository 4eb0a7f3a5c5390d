package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talx-hub/likeboard/internal/serviceerrs"
)

const testSecret = "super-secret-key"

func TestIssuer_roundTrip(t *testing.T) {
	issuer := NewIssuer(testSecret)
	token, err := issuer.Issue(42, "alice")
	require.NoError(t, err)

	claims, err := issuer.Check(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.NotEmpty(t, claims.ID)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t,
		claims.IssuedAt.Add(TokenExpire), claims.ExpiresAt.Time, time.Second)
}

func TestIssuer_uniqueTokenIDs(t *testing.T) {
	issuer := NewIssuer(testSecret)
	first, err := issuer.Issue(1, "alice")
	require.NoError(t, err)
	second, err := issuer.Issue(1, "alice")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestCheckToken(t *testing.T) {
	now := time.Now()
	valid, err := buildJWTString(7, "bob", []byte(testSecret), now, TokenExpire)
	require.NoError(t, err)
	expired, err := buildJWTString(7, "bob", []byte(testSecret), now.Add(-2*TokenExpire), TokenExpire)
	require.NoError(t, err)
	foreign, err := buildJWTString(7, "bob", []byte("another-secret"), now, TokenExpire)
	require.NoError(t, err)
	anonymous, err := buildJWTString(0, "", []byte(testSecret), now, TokenExpire)
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: 7, Username: "bob"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"valid", valid, nil},
		{"expired", expired, serviceerrs.ErrTokenExpired},
		{"wrong secret", foreign, serviceerrs.ErrInvalidToken},
		{"no identity", anonymous, serviceerrs.ErrInvalidToken},
		{"alg none", noneAlg, serviceerrs.ErrInvalidToken},
		{"garbage", "not.a.token", serviceerrs.ErrInvalidToken},
		{"empty", "", serviceerrs.ErrInvalidToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := CheckToken(tt.token, []byte(testSecret))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, Claims{}, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(7), claims.UserID)
			assert.Equal(t, "bob", claims.Username)
		})
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"lower case scheme", "bearer abc.def.ghi", "abc.def.ghi", false},
		{"canonical scheme", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"extra spaces", "  Bearer   abc.def.ghi  ", "abc.def.ghi", false},
		{"no header", "", "", true},
		{"basic scheme", "Basic dXNlcjpwYXNz", "", true},
		{"no token", "Bearer", "", true},
		{"blank token", "Bearer    ", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/me", http.NoBody)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			got, err := BearerToken(r)
			if tt.wantErr {
				require.ErrorIs(t, err, serviceerrs.ErrBadAuthorizationHeader)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
