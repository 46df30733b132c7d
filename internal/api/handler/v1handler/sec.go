package v1handler

import (
	"context"
	"crypto/rsa"
	"errors"
	"mangatrade/internal/config"
	"mangatrade/pkg/domain"
	"mangatrade/pkg/logger"
	"mangatrade/pkg/serrors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// CtxKey is the type of context keys set by the v1 handlers.
type CtxKey string

// OwnerIDKey stores the authenticated owner in the request context.
const OwnerIDKey CtxKey = "OwnerID"

// GetOwnerIDFromContext returns the authenticated owner, or an empty id.
func GetOwnerIDFromContext(ctx context.Context) domain.OwnerID {
	id, _ := ctx.Value(OwnerIDKey).(domain.OwnerID)

	return id
}

// SecHandlerOptions configures bearer token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key verifying RS256 tokens.
	PublicKey string
}

// NewSecHandlerOptions reads the JWT public key from the application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

// SecHandler authenticates requests with RS256 bearer tokens. The token
// subject is the owner id, the same id the chat platform assigns.
type SecHandler struct {
	key    *rsa.PublicKey
	parser *jwt.Parser
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	if opts == nil || opts.PublicKey == "" {
		return nil, errors.New("jwt public key is not configured")
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &SecHandler{
		key: key,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// HandleBearerAuth verifies token and returns a context carrying its owner.
func (s SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	var claims jwt.RegisteredClaims
	if _, err := s.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	}); err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	owner := strings.TrimSpace(claims.Subject)
	if owner == "" {
		return ctx, serrors.With(serrors.ErrUnauthorized, "token has no subject")
	}

	ctx = context.WithValue(ctx, OwnerIDKey, domain.OwnerID(owner))
	ctx = logger.WithFields(ctx, zap.String("owner_id", owner))

	return ctx, nil
}

// Wrap rejects requests without a valid "Authorization: Bearer" header
// through onError and passes authenticated ones to next.
func (s SecHandler) Wrap(next http.Handler, onError func(http.ResponseWriter, *http.Request, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			onError(w, r, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		ctx, err := s.HandleBearerAuth(r.Context(), strings.TrimSpace(token))
		if err != nil {
			onError(w, r, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
