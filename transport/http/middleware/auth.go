package middleware

import (
	"context"
	"errors"
	"net/http"

	"frontdesk/infras/jwt"
	"frontdesk/infras/otel"
	authSvc "frontdesk/internal/domains/auth/service"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/transport/http/response"
)

// Auth guards the lifecycle and invoice routes: no request passes without a
// valid, non-revoked access token.
type Auth interface {
	Auth(http.Handler) http.Handler
}

type authImpl struct {
	jwtService jwt.JWT
	cache      cache.RedisCache
	otel       otel.Otel
}

func NewAuthMiddleware(jwtService jwt.JWT, cache cache.RedisCache, otel otel.Otel) Auth {
	return &authImpl{
		jwtService: jwtService,
		cache:      cache,
		otel:       otel,
	}
}

func (m *authImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
		if authHeader == "" {
			err := failure.Unauthorized("missing authorization header")

			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
		if err != nil {
			err := failure.Unauthorized("invalid authorization header format")

			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString, jwt.AccessToken)
		if err != nil {
			var message string

			switch {
			case errors.Is(err, jwt.ErrExpiredToken):
				message = "token has expired"
			case errors.Is(err, jwt.ErrInvalidClaim):
				message = "invalid token claims"
			default:
				message = "invalid token"
			}

			err := failure.Unauthorized(message)

			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		// A denylisted token id means the session was logged out before the
		// token's natural expiry.
		var revokedAt string
		if err := m.cache.Get(ctx, authSvc.DenylistKey(claims.TokenID), &revokedAt); err == nil {
			err := failure.Unauthorized("session has been logged out")

			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyUsername, claims.Username)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
