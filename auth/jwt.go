package auth

import (
	"errors"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"

	"github.com/kbukum/apikit/transport"
)

const defaultJWTTTL = 15 * time.Minute

// JWT authenticates by signing a short-lived HMAC token and sending it as
// a bearer header. Only HS256/HS384/HS512 are supported so that signing
// cannot fail once the method is constructed.
type JWT struct {
	secret   []byte
	method   *gojwt.SigningMethodHMAC
	issuer   string
	subject  string
	audience []string
	ttl      time.Duration
	now      func() time.Time
}

// JWTOption configures a JWT authentication method.
type JWTOption func(*JWT)

// WithIssuer sets the "iss" claim.
func WithIssuer(issuer string) JWTOption {
	return func(j *JWT) { j.issuer = issuer }
}

// WithSubject sets the "sub" claim.
func WithSubject(subject string) JWTOption {
	return func(j *JWT) { j.subject = subject }
}

// WithAudience sets the "aud" claim.
func WithAudience(audience ...string) JWTOption {
	return func(j *JWT) { j.audience = audience }
}

// WithTTL sets the token lifetime. Defaults to 15m.
func WithTTL(ttl time.Duration) JWTOption {
	return func(j *JWT) {
		if ttl > 0 {
			j.ttl = ttl
		}
	}
}

// WithSigningMethod selects the HMAC variant (HS256, HS384, HS512).
func WithSigningMethod(method *gojwt.SigningMethodHMAC) JWTOption {
	return func(j *JWT) {
		if method != nil {
			j.method = method
		}
	}
}

// NewJWT creates a JWT authentication method signing with the given secret.
func NewJWT(secret string, opts ...JWTOption) (*JWT, error) {
	if secret == "" {
		return nil, errors.New("auth: jwt secret is required")
	}
	j := &JWT{
		secret: []byte(secret),
		method: gojwt.SigningMethodHS256,
		ttl:    defaultJWTTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j, nil
}

// Headers returns a freshly signed bearer token.
func (j *JWT) Headers() map[string]string {
	now := j.now()
	claims := gojwt.RegisteredClaims{
		Issuer:    j.issuer,
		Subject:   j.subject,
		Audience:  gojwt.ClaimStrings(j.audience),
		IssuedAt:  gojwt.NewNumericDate(now),
		ExpiresAt: gojwt.NewNumericDate(now.Add(j.ttl)),
	}
	// HMAC signing with a byte-slice key does not fail.
	signed, _ := gojwt.NewWithClaims(j.method, claims).SignedString(j.secret)
	return map[string]string{"Authorization": "Bearer " + signed}
}

// QueryParams returns no query parameters.
func (*JWT) QueryParams() map[string]string { return nil }

// BasicAuth returns no credentials.
func (*JWT) BasicAuth() *transport.BasicAuth { return nil }
