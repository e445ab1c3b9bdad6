package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	adapterhttp "parcelhub/internal/adapters/in/http"
	"parcelhub/internal/adapters/out/token"
	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/domain/model/account"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/domain/services"
	"parcelhub/internal/core/ports"
	"parcelhub/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// In-memory fakes backing the command handlers in unit tests. Query
// handlers need a database and are covered by the integration suite.

type memParcelRepo struct {
	parcels map[string]*parcel.Parcel
}

func newMemParcelRepo() *memParcelRepo {
	return &memParcelRepo{parcels: make(map[string]*parcel.Parcel)}
}

func (r *memParcelRepo) Add(_ context.Context, aggregate *parcel.Parcel) error {
	r.parcels[aggregate.ID().String()] = aggregate
	return nil
}

func (r *memParcelRepo) Update(_ context.Context, aggregate *parcel.Parcel) error {
	if _, ok := r.parcels[aggregate.ID().String()]; !ok {
		return errs.NewObjectNotFoundError("parcel", aggregate.ID().String())
	}
	r.parcels[aggregate.ID().String()] = aggregate
	return nil
}

func (r *memParcelRepo) UpdateStatus(_ context.Context, aggregate *parcel.Parcel, previous parcel.Status) error {
	stored, ok := r.parcels[aggregate.ID().String()]
	if !ok {
		return errs.NewObjectNotFoundError("parcel", aggregate.ID().String())
	}
	if stored.Status() != previous && stored != aggregate {
		return errs.NewConflictError("parcel", aggregate.ID().String())
	}
	r.parcels[aggregate.ID().String()] = aggregate
	return nil
}

func (r *memParcelRepo) Get(_ context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	stored, ok := r.parcels[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("parcel", id.String())
	}
	return stored, nil
}

func (r *memParcelRepo) CountByStatus(_ context.Context, status parcel.Status) (int64, error) {
	var count int64
	for _, p := range r.parcels {
		if p.Status() == status {
			count++
		}
	}
	return count, nil
}

type memAccountRepo struct {
	accounts map[string]*account.Account
}

func newMemAccountRepo() *memAccountRepo {
	return &memAccountRepo{accounts: make(map[string]*account.Account)}
}

func (r *memAccountRepo) Add(_ context.Context, aggregate *account.Account) error {
	r.accounts[aggregate.ID().String()] = aggregate
	return nil
}

func (r *memAccountRepo) Update(_ context.Context, aggregate *account.Account) error {
	if _, ok := r.accounts[aggregate.ID().String()]; !ok {
		return errs.NewObjectNotFoundError("account", aggregate.ID().String())
	}
	r.accounts[aggregate.ID().String()] = aggregate
	return nil
}

func (r *memAccountRepo) Delete(_ context.Context, id kernel.UUID) error {
	if _, ok := r.accounts[id.String()]; !ok {
		return errs.NewObjectNotFoundError("account", id.String())
	}
	delete(r.accounts, id.String())
	return nil
}

func (r *memAccountRepo) Get(_ context.Context, id kernel.UUID) (*account.Account, error) {
	stored, ok := r.accounts[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("account", id.String())
	}
	return stored, nil
}

func (r *memAccountRepo) GetByEmail(_ context.Context, email string) (*account.Account, error) {
	for _, a := range r.accounts {
		if a.Email() == email {
			return a, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("email", email)
}

type memUoW struct {
	parcels  ports.ParcelRepository
	accounts ports.AccountRepository
}

func (u *memUoW) Begin(context.Context) error                { return nil }
func (u *memUoW) Commit(context.Context) error               { return nil }
func (u *memUoW) Rollback(context.Context) error             { return nil }
func (u *memUoW) ParcelRepository() ports.ParcelRepository   { return u.parcels }
func (u *memUoW) AccountRepository() ports.AccountRepository { return u.accounts }

type memParcelUoWFactory struct{ uow *memUoW }

func (f memParcelUoWFactory) Create() commands.ParcelUoW { return f.uow }

type memAccountUoWFactory struct{ uow *memUoW }

func (f memAccountUoWFactory) Create() commands.AccountUoW { return f.uow }

type memUoWFactory struct{ uow *memUoW }

func (f memUoWFactory) Create() commands.UoW { return f.uow }

type testEnv struct {
	e        *echo.Echo
	svc      *token.JWTService
	parcels  *memParcelRepo
	accounts *memAccountRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	svc, err := token.NewJWTService("test-secret", time.Hour)
	require.NoError(t, err)

	parcels := newMemParcelRepo()
	accounts := newMemAccountRepo()
	uow := &memUoW{parcels: parcels, accounts: accounts}

	server := adapterhttp.NewServer(adapterhttp.Deps{
		Policy:        services.NewAccessPolicy(),
		Verifier:      svc,
		Issuer:        svc,
		Accounts:      accounts,
		BookParcel:    commands.NewBookParcelCommandHandler(memParcelUoWFactory{uow}, ports.NopNotifier{}),
		UpdateStatus:  commands.NewUpdateParcelStatusCommandHandler(memParcelUoWFactory{uow}, ports.NopNotifier{}),
		AssignAgent:   commands.NewAssignAgentCommandHandler(memUoWFactory{uow}),
		Register:      commands.NewRegisterAccountCommandHandler(memAccountUoWFactory{uow}),
		ChangeRole:    commands.NewChangeAccountRoleCommandHandler(memAccountUoWFactory{uow}),
		DeleteAccount: commands.NewDeleteAccountCommandHandler(memAccountUoWFactory{uow}),
	})

	e := echo.New()
	server.RegisterRoutes(e)

	return &testEnv{e: e, svc: svc, parcels: parcels, accounts: accounts}
}

func (env *testEnv) tokenFor(t *testing.T, role account.Role) (kernel.UUID, string) {
	t.Helper()
	id := kernel.NewUUID()
	signed, err := env.svc.Issue(ports.Identity{ID: id, Role: role})
	require.NoError(t, err)
	return id, signed
}

func (env *testEnv) do(method, path, bearer string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func TestAuthentication(t *testing.T) {
	env := newTestEnv(t)

	t.Run("missing token yields 401", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/api/parcels", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed token yields 401", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/api/parcels", "garbage", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthorization(t *testing.T) {
	env := newTestEnv(t)

	t.Run("customer cannot reach admin surface", func(t *testing.T) {
		_, bearer := env.tokenFor(t, account.RoleCustomer)
		rec := env.do(http.MethodGet, "/api/admin/users", bearer, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("agent cannot book parcels", func(t *testing.T) {
		_, bearer := env.tokenFor(t, account.RoleAgent)
		rec := env.do(http.MethodPost, "/api/parcels", bearer, bookParcelBody())
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("customer cannot list agent workload", func(t *testing.T) {
		_, bearer := env.tokenFor(t, account.RoleCustomer)
		rec := env.do(http.MethodGet, "/api/parcels/assigned", bearer, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func bookParcelBody() map[string]any {
	return map[string]any{
		"pickupAddress":   "12 North St",
		"deliveryAddress": "3 Harbor Rd",
		"size":            "medium",
		"cod":             true,
	}
}

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/auth/register", "", map[string]any{
		"name":     "Dana",
		"email":    "dana@example.com",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var registered struct {
		Token string `json:"token"`
		User  struct {
			ID   string `json:"id"`
			Role string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &registered))
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, "customer", registered.User.Role)

	t.Run("login with correct password", func(t *testing.T) {
		rec := env.do(http.MethodPost, "/api/auth/login", "", map[string]any{
			"email":    "dana@example.com",
			"password": "hunter22",
		})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("login with wrong password", func(t *testing.T) {
		rec := env.do(http.MethodPost, "/api/auth/login", "", map[string]any{
			"email":    "dana@example.com",
			"password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("login with unknown email", func(t *testing.T) {
		rec := env.do(http.MethodPost, "/api/auth/login", "", map[string]any{
			"email":    "nobody@example.com",
			"password": "hunter22",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("duplicate registration yields 409", func(t *testing.T) {
		rec := env.do(http.MethodPost, "/api/auth/register", "", map[string]any{
			"name":     "Dana Again",
			"email":    "dana@example.com",
			"password": "hunter22",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("admin self-registration rejected", func(t *testing.T) {
		rec := env.do(http.MethodPost, "/api/auth/register", "", map[string]any{
			"name":     "Eve",
			"email":    "eve@example.com",
			"password": "hunter22",
			"role":     "admin",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBookParcel(t *testing.T) {
	env := newTestEnv(t)
	customerID, bearer := env.tokenFor(t, account.RoleCustomer)

	rec := env.do(http.MethodPost, "/api/parcels", bearer, bookParcelBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		ID       string `json:"id"`
		Customer string `json:"customer"`
		Status   string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, customerID.String(), resp.Customer)
	assert.Equal(t, "Booked", resp.Status)

	t.Run("missing address yields 400", func(t *testing.T) {
		rec := env.do(http.MethodPost, "/api/parcels", bearer, map[string]any{
			"deliveryAddress": "3 Harbor Rd",
			"size":            "medium",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAssignAgent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	_, adminBearer := env.tokenFor(t, account.RoleAdmin)

	agent, err := account.NewAccount(kernel.NewUUID(), "Robin", "robin@example.com", account.RoleAgent, "$2a$10$hash")
	require.NoError(t, err)
	require.NoError(t, env.accounts.Add(ctx, agent))

	p, err := parcel.NewParcel(kernel.NewUUID(), kernel.NewUUID(), "12 North St", "3 Harbor Rd", "medium", false)
	require.NoError(t, err)
	require.NoError(t, env.parcels.Add(ctx, p))

	rec := env.do(http.MethodPut, "/api/admin/parcels/"+p.ID().String()+"/assign", adminBearer,
		map[string]any{"agentId": agent.ID().String()})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Agent string `json:"agent"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, agent.ID().String(), resp.Agent)

	t.Run("assigning a customer account yields 400", func(t *testing.T) {
		customer, err := account.NewAccount(kernel.NewUUID(), "Dana", "dana2@example.com", account.RoleCustomer, "$2a$10$hash")
		require.NoError(t, err)
		require.NoError(t, env.accounts.Add(ctx, customer))

		rec := env.do(http.MethodPut, "/api/admin/parcels/"+p.ID().String()+"/assign", adminBearer,
			map[string]any{"agentId": customer.ID().String()})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown parcel yields 404", func(t *testing.T) {
		rec := env.do(http.MethodPut, "/api/admin/parcels/"+kernel.NewUUID().String()+"/assign", adminBearer,
			map[string]any{"agentId": agent.ID().String()})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUserManagement(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	_, adminBearer := env.tokenFor(t, account.RoleAdmin)

	target, err := account.NewAccount(kernel.NewUUID(), "Dana", "dana@example.com", account.RoleCustomer, "$2a$10$hash")
	require.NoError(t, err)
	require.NoError(t, env.accounts.Add(ctx, target))

	t.Run("promote customer to agent", func(t *testing.T) {
		rec := env.do(http.MethodPut, "/api/admin/users/"+target.ID().String()+"/role", adminBearer,
			map[string]any{"role": "agent"})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Role string `json:"role"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "agent", resp.Role)
	})

	t.Run("invalid role yields 400", func(t *testing.T) {
		rec := env.do(http.MethodPut, "/api/admin/users/"+target.ID().String()+"/role", adminBearer,
			map[string]any{"role": "root"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("delete account", func(t *testing.T) {
		rec := env.do(http.MethodDelete, "/api/admin/users/"+target.ID().String(), adminBearer, nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = env.do(http.MethodDelete, "/api/admin/users/"+target.ID().String(), adminBearer, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestPasswordHashingRoundTrip(t *testing.T) {
	// Registration stores a bcrypt hash, never the password.
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/auth/register", "", map[string]any{
		"name":     "Dana",
		"email":    "dana@example.com",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	stored, err := env.accounts.GetByEmail(context.Background(), "dana@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", stored.PasswordHash())
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash()), []byte("hunter22")))
}
