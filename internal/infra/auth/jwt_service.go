// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"machone/config"
	"machone/internal/domain/entity"
	domainerrors "machone/internal/domain/errors"
	"machone/internal/domain/service"
	"machone/internal/errors"
)

// supportedAlgorithms lists the HMAC signing methods the service accepts.
// Asymmetric methods are rejected at construction time.
var supportedAlgorithms = map[string]bool{
	"HS256": true,
	"HS384": true,
	"HS512": true,
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration

	// now is swappable in tests to control issued-at and expiry.
	now func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It fails fast when the secret is empty or the algorithm is not a
// supported HMAC method, so misconfiguration surfaces at startup rather
// than on the first login.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT == nil || cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	algorithm := cfg.JWT.Algorithm
	if algorithm == "" {
		algorithm = "HS256"
	}
	if !supportedAlgorithms[algorithm] {
		return nil, errors.Errorf("unsupported jwt algorithm: %s", algorithm)
	}

	ttl := cfg.JWT.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}

	return &jwtService{
		secret: []byte(cfg.JWT.Secret),
		method: jwt.GetSigningMethod(algorithm),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue creates a signed token carrying the user's identity and role.
// Every token gets a fresh jti so two tokens for the same user are
// distinguishable.
func (s *jwtService) Issue(userID uuid.UUID, role entity.Role) (string, error) {
	issuedAt := s.now()
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"role": role.String(),
		"iat":  issuedAt.Unix(),
		"exp":  issuedAt.Add(s.ttl).Unix(),
		"jti":  uuid.NewString(),
	}

	token := jwt.NewWithClaims(s.method, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// Verify parses and validates a token string, returning the decoded claims.
// Failures map onto the domain token errors so callers never see library
// error types.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, translateJWTError(err)
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domainerrors.ErrTokenMalformed
	}

	return claimsFromMap(mapClaims)
}

// translateJWTError maps jwt/v5 sentinel errors onto the domain taxonomy.
// Expiry is checked before signature problems because jwt.Parse can join
// several failures into one error.
func translateJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return domainerrors.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrSignatureInvalid):
		return domainerrors.ErrTokenSignatureInvalid
	default:
		return domainerrors.ErrTokenMalformed
	}
}

func claimsFromMap(mapClaims jwt.MapClaims) (*service.Claims, error) {
	sub, ok := mapClaims["sub"].(string)
	if !ok {
		return nil, domainerrors.ErrTokenMalformed
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, domainerrors.ErrTokenMalformed
	}

	roleString, ok := mapClaims["role"].(string)
	if !ok {
		return nil, domainerrors.ErrTokenMalformed
	}

	tokenID, _ := mapClaims["jti"].(string)

	claims := &service.Claims{
		UserID:  userID,
		Role:    entity.RoleFromString(roleString),
		TokenID: tokenID,
	}

	if issuedAt, err := mapClaims.GetIssuedAt(); err == nil && issuedAt != nil {
		claims.IssuedAt = issuedAt.Time
	}
	if expiresAt, err := mapClaims.GetExpirationTime(); err == nil && expiresAt != nil {
		claims.ExpiresAt = expiresAt.Time
	}

	return claims, nil
}
