package http

import (
	"strings"

	"parcelhub/internal/core/domain/services"
	"parcelhub/internal/core/ports"
	"parcelhub/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// identityKey is the echo context key holding the verified caller identity.
const identityKey = "identity"

// authenticate verifies the bearer token and stores the resulting identity
// in the request context. Requests without a valid credential stop here.
func (s *Server) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return respondError(ctx, errs.NewUnauthenticatedError("missing bearer token"))
		}

		identity, err := s.verifier.Verify(token)
		if err != nil {
			return respondError(ctx, err)
		}

		ctx.Set(identityKey, identity)
		return next(ctx)
	}
}

// requireOperation gates a route on the access policy. Runs after
// authenticate, so a missing identity is a programming error surfaced
// as 401 rather than a panic.
func (s *Server) requireOperation(op services.Operation) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			identity, ok := ctx.Get(identityKey).(ports.Identity)
			if !ok {
				return respondError(ctx, errs.NewUnauthenticatedError("missing identity"))
			}

			if !s.policy.Allow(identity.Role, op) {
				return respondError(ctx, errs.NewForbiddenError(identity.Role.String(), string(op)))
			}

			return next(ctx)
		}
	}
}

// callerIdentity returns the verified identity stored by authenticate.
func callerIdentity(ctx echo.Context) (ports.Identity, error) {
	identity, ok := ctx.Get(identityKey).(ports.Identity)
	if !ok {
		return ports.Identity{}, errs.NewUnauthenticatedError("missing identity")
	}
	return identity, nil
}
