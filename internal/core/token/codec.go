package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shopsmith/ecommerce-api/internal/core/domain"
)

const defaultTTL = 24 * time.Hour

// Claims is the decoded view of an identity token: who the token is for and
// what role they held when it was issued.
type Claims struct {
	SubjectID string
	Role      string
}

type jwtClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Codec issues and verifies HS256-signed identity tokens. The signing secret
// is injected once at construction and never changes for the process lifetime.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec builds a Codec with the given secret and token lifetime.
// A non-positive ttl falls back to 24 hours.
func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for subjectID carrying the role claim.
// Expiry is always issued-at plus the configured lifetime.
func (c *Codec) Issue(subjectID, role string) (string, error) {
	now := time.Now().UTC()
	claims := jwtClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Decode verifies signature and expiry and returns the embedded claims.
// Any failure (malformed token, wrong algorithm, bad signature, expired,
// unknown role) collapses to domain.ErrInvalidToken; callers never see
// parser internals.
func (c *Codec) Decode(tokenString string) (Claims, error) {
	var claims jwtClaims
	tkn, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !tkn.Valid || claims.Subject == "" || !domain.ValidRole(claims.Role) {
		return Claims{}, domain.ErrInvalidToken
	}
	return Claims{SubjectID: claims.Subject, Role: claims.Role}, nil
}

// TTL returns the configured token lifetime, which is also the session
// cookie lifetime.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}
