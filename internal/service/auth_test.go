package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lenscraft-server/internal/client"
	"lenscraft-server/internal/dbtest"
	"lenscraft-server/internal/dto"
	"lenscraft-server/internal/model"
	"lenscraft-server/internal/repository"
)

func TestToken_RoundTrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue("a@example.com")
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", claims.Email)
}

func TestToken_Rejects(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	other := NewTokenService("other", time.Hour)

	foreign, err := other.Issue("a@example.com")
	require.NoError(t, err)
	_, err = svc.Verify(foreign)
	assert.ErrorIs(t, err, ErrUnauthorized)

	expired := &tokenServiceImpl{secret: []byte("secret"), ttl: time.Minute, now: func() time.Time {
		return time.Now().Add(-time.Hour)
	}}
	old, err := expired.Issue("a@example.com")
	require.NoError(t, err)
	_, err = svc.Verify(old)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.Verify("garbage")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUser_RegisterIsIdempotent(t *testing.T) {
	db := dbtest.New(t)
	svc := NewUserService(repository.NewUserRepository(db))
	ctx := context.Background()

	first, err := svc.Register(ctx, &dto.CreateUserRequest{Email: "a@example.com", Name: "A"})
	require.NoError(t, err)
	assert.Equal(t, model.RoleStudent, first.Role)

	second, err := svc.Register(ctx, &dto.CreateUserRequest{Email: "a@example.com", Name: "Other"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "A", second.Name)
}

func TestUser_SetRole(t *testing.T) {
	db := dbtest.New(t)
	svc := NewUserService(repository.NewUserRepository(db))
	ctx := context.Background()

	user, err := svc.Register(ctx, &dto.CreateUserRequest{Email: "a@example.com"})
	require.NoError(t, err)

	require.NoError(t, svc.SetRole(ctx, user.ID, model.RoleInstructor))
	got, err := svc.Get(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, model.RoleInstructor, got.Role)

	assert.ErrorIs(t, svc.SetRole(ctx, user.ID, "owner"), ErrInvalidInput)
	assert.ErrorIs(t, svc.SetRole(ctx, uuid.NewString(), model.RoleAdmin), ErrNotFound)

	_, err = svc.Get(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

type fakeGateway struct {
	err error
}

func (g fakeGateway) CreatePaymentIntent(_ context.Context, amount decimal.Decimal, currency string) (*client.PaymentIntent, error) {
	if g.err != nil {
		return nil, g.err
	}
	return &client.PaymentIntent{ClientSecret: "secret_1", Amount: client.ToMinorUnits(amount), Currency: currency}, nil
}

func TestPayment_CreateIntent(t *testing.T) {
	svc := NewPaymentService(fakeGateway{}, "usd")

	intent, err := svc.CreateIntent(context.Background(), decimal.RequireFromString("49.99"))
	require.NoError(t, err)
	assert.EqualValues(t, 4999, intent.Amount)
	assert.Equal(t, "usd", intent.Currency)

	_, err = svc.CreateIntent(context.Background(), decimal.Zero)
	assert.ErrorIs(t, err, ErrInvalidInput)

	failing := NewPaymentService(fakeGateway{err: errors.New("processor down")}, "usd")
	_, err = failing.CreateIntent(context.Background(), decimal.NewFromInt(5))
	assert.ErrorContains(t, err, "processor down")
}
