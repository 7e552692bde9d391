package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/barberbook/internal/domain"
	"github.com/m04kA/barberbook/internal/infra/sessionstore"
	accountRepo "github.com/m04kA/barberbook/internal/infra/storage/account"
	"github.com/m04kA/barberbook/internal/service/session/models"
	"github.com/m04kA/barberbook/pkg/logger"
	"github.com/m04kA/barberbook/pkg/ptr"
)

const secret = "test-secret"

type fakeAccounts struct {
	account *domain.Account
}

func (f *fakeAccounts) GetByEmail(_ context.Context, email string) (*domain.Account, error) {
	if f.account == nil || f.account.Email != email {
		return nil, accountRepo.ErrAccountNotFound
	}
	return f.account, nil
}

func (f *fakeAccounts) GetByID(_ context.Context, id uuid.UUID) (*domain.Account, error) {
	if f.account == nil || f.account.ID != id {
		return nil, accountRepo.ErrAccountNotFound
	}
	return f.account, nil
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

type countingMetrics struct {
	transitions []string
}

func (c *countingMetrics) ObserveSession(transition string) {
	c.transitions = append(c.transitions, transition)
}

func newTestService(t *testing.T) (*Service, *domain.Account, *countingMetrics) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	account := &domain.Account{
		ID:           uuid.New(),
		Email:        "owner@fade.house",
		PasswordHash: string(hash),
		Role:         domain.RoleOwner,
		Slug:         ptr.Ptr("fade-house"),
		BusinessName: "Fade House",
	}
	m := &countingMetrics{}
	svc := NewService(&fakeAccounts{account: account}, sessionstore.NewMemoryStore(), m, secret, time.Hour, logger.NewNop())
	return svc, account, m
}

func TestService_SignInResolveSignOut(t *testing.T) {
	svc, account, m := newTestService(t)
	ctx := context.Background()

	resp, err := svc.SignIn(ctx, &models.SignInRequest{Email: "owner@fade.house", Password: "s3cret"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "fade-house", resp.Session.Slug)
	assert.Equal(t, "Fade House", resp.Session.BusinessName)

	sess, err := svc.Resolve(ctx, resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, account.ID, sess.AccountID)
	assert.Equal(t, domain.RoleOwner, sess.Role)

	described, err := svc.Describe(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, "owner@fade.house", described.Email)

	require.NoError(t, svc.SignOut(ctx, resp.AccessToken))

	_, err = svc.Resolve(ctx, resp.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Equal(t, []string{transitionSignIn, transitionSignOut}, m.transitions)
}

func TestService_SignIn_InvalidCredentials(t *testing.T) {
	svc, _, m := newTestService(t)

	tests := []struct {
		name string
		req  models.SignInRequest
	}{
		{name: "wrong password", req: models.SignInRequest{Email: "owner@fade.house", Password: "nope"}},
		{name: "unknown email", req: models.SignInRequest{Email: "who@fade.house", Password: "s3cret"}},
		{name: "empty", req: models.SignInRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SignIn(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
			assert.Equal(t, "Invalid login credentials", err.Error())
		})
	}
	assert.Len(t, m.transitions, 3)
}

func TestService_Resolve_RejectsExpiredToken(t *testing.T) {
	svc, _, _ := newTestService(t)
	clock := &fixedTime{now: time.Now()}
	svc.timeProvider = clock

	resp, err := svc.SignIn(context.Background(), &models.SignInRequest{Email: "owner@fade.house", Password: "s3cret"})
	require.NoError(t, err)

	clock.now = clock.now.Add(2 * time.Hour)

	_, err = svc.Resolve(context.Background(), resp.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_Resolve_RejectsForeignTokens(t *testing.T) {
	svc, account, _ := newTestService(t)

	foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Role: "owner",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   account.ID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("another-secret"))
	require.NoError(t, err)

	for _, token := range []string{"", "garbage", foreign} {
		_, err := svc.Resolve(context.Background(), token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}
