package http

import (
	"net/http"

	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/domain/model/account"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/ports"
	"parcelhub/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

// handleRegister creates an account and signs the caller in.
// Self-registration may pick customer or agent; admin accounts are only
// created by re-roling through the admin surface.
func (s *Server) handleRegister(ctx echo.Context) error {
	var req registerRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("body"))
	}

	if req.Password == "" {
		return respondError(ctx, errs.NewValueIsRequiredError("password"))
	}

	role := account.RoleCustomer
	if req.Role != "" {
		parsed, err := account.RoleFromString(req.Role)
		if err != nil {
			return respondError(ctx, err)
		}
		if parsed == account.RoleAdmin {
			return respondError(ctx, errs.NewValueIsInvalidError("role"))
		}
		role = parsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRegisterAccountCommand(kernel.NewUUID(), req.Name, req.Email, role, string(hash))
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.register.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return s.respondAuthenticated(ctx, http.StatusCreated, created)
}

// handleLogin verifies credentials and issues a token. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (s *Server) handleLogin(ctx echo.Context) error {
	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("body"))
	}

	if req.Email == "" || req.Password == "" {
		return respondError(ctx, errs.NewUnauthenticatedError("invalid credentials"))
	}

	acc, err := s.accounts.GetByEmail(ctx.Request().Context(), req.Email)
	if err != nil {
		return respondError(ctx, errs.NewUnauthenticatedError("invalid credentials"))
	}

	if bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash()), []byte(req.Password)) != nil {
		return respondError(ctx, errs.NewUnauthenticatedError("invalid credentials"))
	}

	return s.respondAuthenticated(ctx, http.StatusOK, acc)
}

func (s *Server) respondAuthenticated(ctx echo.Context, status int, acc *account.Account) error {
	signed, err := s.issuer.Issue(ports.Identity{ID: acc.ID(), Role: acc.Role()})
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(status, authResponse{
		Token: signed,
		User: userResponse{
			ID:    acc.ID().String(),
			Name:  acc.Name(),
			Email: acc.Email(),
			Role:  acc.Role().String(),
		},
	})
}
