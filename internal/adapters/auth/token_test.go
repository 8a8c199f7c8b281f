package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportsessions/internal/domain"
)

func TestJWTIssuer_Issue(t *testing.T) {
	secret := "test-secret"
	issuer := NewJWTIssuer(secret)
	principal := domain.Principal{ID: "user-123", Name: "Alice", Email: "u@example.com", Role: domain.RoleAdmin}

	token, err := issuer.Issue(principal, 24*time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// Parse and verify claims
	parsed, err := jwt.ParseWithClaims(token, &jwtClaims{}, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	claims, ok := parsed.Claims.(*jwtClaims)
	require.True(t, ok)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "Alice", claims.Name)
	assert.Equal(t, "u@example.com", claims.Email)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestJWTVerifier_Verify(t *testing.T) {
	secret := "test-secret"
	player := domain.Principal{ID: "user-b", Name: "Bob", Email: "bob@example.com", Role: domain.RolePlayer}

	sign := func(t *testing.T, method jwt.SigningMethod, key any, claims jwtClaims) string {
		t.Helper()
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}
	valid := func(p domain.Principal) jwtClaims {
		return jwtClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   p.ID,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
			Name: p.Name, Email: p.Email, Role: p.Role,
		}
	}

	tests := []struct {
		name    string
		token   func(t *testing.T) string
		want    domain.Principal
		wantErr bool
	}{
		{
			name: "issued token round trips",
			token: func(t *testing.T) string {
				s, err := NewJWTIssuer(secret).Issue(player, time.Hour)
				require.NoError(t, err)
				return s
			},
			want: player,
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, []byte("other"), valid(player))
			},
			wantErr: true,
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				c := valid(player)
				c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
				return sign(t, jwt.SigningMethodHS256, []byte(secret), c)
			},
			wantErr: true,
		},
		{
			name: "no expiry",
			token: func(t *testing.T) string {
				c := valid(player)
				c.ExpiresAt = nil
				return sign(t, jwt.SigningMethodHS256, []byte(secret), c)
			},
			wantErr: true,
		},
		{
			name: "unexpected algorithm",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS512, []byte(secret), valid(player))
			},
			wantErr: true,
		},
		{
			name: "missing subject",
			token: func(t *testing.T) string {
				c := valid(player)
				c.Subject = ""
				return sign(t, jwt.SigningMethodHS256, []byte(secret), c)
			},
			wantErr: true,
		},
		{
			name: "unknown role",
			token: func(t *testing.T) string {
				c := valid(player)
				c.Role = "superuser"
				return sign(t, jwt.SigningMethodHS256, []byte(secret), c)
			},
			wantErr: true,
		},
		{
			name:    "garbage",
			token:   func(*testing.T) string { return "not-a-jwt" },
			wantErr: true,
		},
	}

	verifier := NewJWTVerifier(secret)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := verifier.Verify(tt.token(t))
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidToken)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
