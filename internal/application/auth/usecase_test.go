package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shineinfosolutions/crm-api/internal/application/auth"
	"github.com/shineinfosolutions/crm-api/internal/application/dto"
	"github.com/shineinfosolutions/crm-api/internal/domain"
	"github.com/shineinfosolutions/crm-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test helpers
// ──────────────────────────────────────────────────────────────────────────────

// memUserRepo is an in-memory UserRepository. findErr, when set, is returned
// by every FindByEmail call to simulate a storage failure.
type memUserRepo struct {
	byEmail map[string]*entity.User
	findErr error
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	cp := *u
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func testJWTConfig() auth.JWTConfig {
	return auth.JWTConfig{Secret: "unit-test-secret", ExpMinutes: 60, Issuer: "crm-api-test"}
}

// ──────────────────────────────────────────────────────────────────────────────
// Register / Login
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterThenLogin(t *testing.T) {
	uc := auth.NewUseCase(newMemUserRepo(), testJWTConfig())
	ctx := context.Background()

	user, err := uc.Register(ctx, dto.RegisterRequest{Email: "a@b.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "a@b.com", user.Name, "name defaults to the email when omitted")

	session, err := uc.Login(ctx, dto.LoginRequest{Email: "a@b.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, user.ID, session.User.ID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc := auth.NewUseCase(newMemUserRepo(), testJWTConfig())
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "a@b.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = uc.Register(ctx, dto.RegisterRequest{Email: "a@b.com", Password: "other456"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_LookupFailurePropagates(t *testing.T) {
	repo := newMemUserRepo()
	repo.findErr = errors.New("connection reset")
	uc := auth.NewUseCase(repo, testJWTConfig())

	// A storage failure must surface, not be misread as "email free".
	_, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "a@b.com", Password: "secret123"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "connection reset")
	assert.Empty(t, repo.byEmail, "no user may be created on a failed lookup")
}

func TestRegister_MissingFields(t *testing.T) {
	uc := auth.NewUseCase(newMemUserRepo(), testJWTConfig())

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "a@b.com"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(context.Background(), dto.RegisterRequest{Password: "secret123"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc := auth.NewUseCase(newMemUserRepo(), testJWTConfig())
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "a@b.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "a@b.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UnknownEmail(t *testing.T) {
	uc := auth.NewUseCase(newMemUserRepo(), testJWTConfig())

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "nobody@b.com", Password: "secret123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
