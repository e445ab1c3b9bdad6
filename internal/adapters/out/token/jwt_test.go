package token_test

import (
	"testing"
	"time"

	"parcelhub/internal/adapters/out/token"
	"parcelhub/internal/core/domain/model/account"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/ports"
	"parcelhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTService(t *testing.T) {
	t.Run("rejects an empty secret", func(t *testing.T) {
		_, err := token.NewJWTService("", time.Hour)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects a non-positive ttl", func(t *testing.T) {
		_, err := token.NewJWTService("secret", 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestJWTService_IssueAndVerify_RoundTrip(t *testing.T) {
	svc, err := token.NewJWTService("test-secret", time.Hour)
	require.NoError(t, err)

	identity := ports.Identity{ID: kernel.NewUUID(), Role: account.RoleAgent}

	signed, err := svc.Issue(identity)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	verified, err := svc.Verify(signed)
	require.NoError(t, err)
	assert.True(t, verified.ID.IsEqual(identity.ID))
	assert.Equal(t, account.RoleAgent, verified.Role)
}

func TestJWTService_Verify_Failures(t *testing.T) {
	svc, err := token.NewJWTService("test-secret", time.Hour)
	require.NoError(t, err)

	t.Run("empty token", func(t *testing.T) {
		_, err := svc.Verify("")
		require.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.Verify("not.a.token")
		require.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := token.NewJWTService("other-secret", time.Hour)
		require.NoError(t, err)

		signed, err := other.Issue(ports.Identity{ID: kernel.NewUUID(), Role: account.RoleCustomer})
		require.NoError(t, err)

		_, err = svc.Verify(signed)
		require.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("expired token", func(t *testing.T) {
		shortLived, err := token.NewJWTService("test-secret", time.Millisecond)
		require.NoError(t, err)

		signed, err := shortLived.Issue(ports.Identity{ID: kernel.NewUUID(), Role: account.RoleCustomer})
		require.NoError(t, err)

		time.Sleep(5 * time.Millisecond)

		_, err = svc.Verify(signed)
		require.ErrorIs(t, err, errs.ErrUnauthenticated)
	})
}

func TestJWTService_Issue_RejectsInvalidIdentity(t *testing.T) {
	svc, err := token.NewJWTService("test-secret", time.Hour)
	require.NoError(t, err)

	var unconstructed kernel.UUID
	_, err = svc.Issue(ports.Identity{ID: unconstructed, Role: account.RoleCustomer})
	require.Error(t, err)

	_, err = svc.Issue(ports.Identity{ID: kernel.NewUUID(), Role: account.Role("root")})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
