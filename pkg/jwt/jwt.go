package jwt

import (
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Alcances de los tokens de servicio.
const (
	ScopeRead  = "read"  // historiales y estados
	ScopeWrite = "write" // operaciones masivas
)

// Claims claims estándar más el alcance del token de servicio.
type Claims struct {
	jwt.RegisteredClaims
	Scope string `json:"scope"`
}

// CanWrite indica si el token habilita mutaciones.
func (c *Claims) CanWrite() bool {
	return c.Scope == ScopeWrite
}

// Generate genera un token HS256 para subject con el alcance indicado.
func Generate(secret, subject, scope, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		Scope: scope,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma y expiración y devuelve los claims.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}

// Source entrega tokens de servicio firmados, renovándolos antes de expirar.
type Source struct {
	secret, subject, scope, issuer string
	expMinutes                     int
	now                            func() time.Time

	mu      sync.Mutex
	token   string
	expires time.Time
}

// NewSource crea la fuente de tokens salientes. Con secret vacío Token devuelve "".
func NewSource(secret, subject, scope, issuer string, expMinutes int) *Source {
	if expMinutes <= 0 {
		expMinutes = 60
	}
	return &Source{secret: secret, subject: subject, scope: scope, issuer: issuer, expMinutes: expMinutes, now: time.Now}
}

// Token devuelve un token vigente (al menos un minuto de margen).
func (s *Source) Token() (string, error) {
	if s == nil || s.secret == "" {
		return "", nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	if s.token != "" && now.Add(time.Minute).Before(s.expires) {
		return s.token, nil
	}
	tok, err := Generate(s.secret, s.subject, s.scope, s.issuer, s.expMinutes)
	if err != nil {
		return "", err
	}
	s.token = tok
	s.expires = now.Add(time.Duration(s.expMinutes) * time.Minute)
	return tok, nil
}
