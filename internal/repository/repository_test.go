package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lenscraft-server/internal/dbtest"
	"lenscraft-server/internal/model"
)

func TestCartCreate_DuplicatePair(t *testing.T) {
	db := dbtest.New(t)
	repo := NewCartRepository(db)
	ctx := context.Background()
	class := dbtest.SeedClass(t, db, 10, 0, model.ClassStatusApproved)

	first := &model.CartItem{ID: uuid.NewString(), ClassID: class.ID, Email: "a@example.com", Price: class.Price}
	require.NoError(t, repo.Create(ctx, db, first))

	second := &model.CartItem{ID: uuid.NewString(), ClassID: class.ID, Email: "a@example.com", Price: class.Price}
	assert.ErrorIs(t, repo.Create(ctx, db, second), ErrDuplicate)

	other := &model.CartItem{ID: uuid.NewString(), ClassID: class.ID, Email: "b@example.com", Price: class.Price}
	assert.NoError(t, repo.Create(ctx, db, other))
}

func TestCartDelete_MissingIsZeroRows(t *testing.T) {
	db := dbtest.New(t)
	repo := NewCartRepository(db)

	n, err := repo.Delete(context.Background(), db, uuid.NewString())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCartDeleteOwned_ChecksOwner(t *testing.T) {
	db := dbtest.New(t)
	repo := NewCartRepository(db)
	ctx := context.Background()
	class := dbtest.SeedClass(t, db, 10, 0, model.ClassStatusApproved)
	item := dbtest.SeedCartItem(t, db, class, "a@example.com")

	n, err := repo.DeleteOwned(ctx, db, item.ID, "b@example.com", class.ID)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = repo.DeleteOwned(ctx, db, item.ID, "a@example.com", class.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestCartListSelected_AvailableSeats(t *testing.T) {
	db := dbtest.New(t)
	repo := NewCartRepository(db)
	ctx := context.Background()

	c1 := dbtest.SeedClass(t, db, 10, 3, model.ClassStatusApproved)
	c2 := dbtest.SeedClass(t, db, 5, 5, model.ClassStatusApproved)
	dbtest.SeedCartItem(t, db, c1, "a@example.com")
	dbtest.SeedCartItem(t, db, c2, "a@example.com")
	dbtest.SeedCartItem(t, db, c1, "b@example.com")

	rows, err := repo.ListSelected(ctx, "a@example.com")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	seats := map[string]int{}
	for _, row := range rows {
		assert.Equal(t, "a@example.com", row.Email)
		assert.Nil(t, row.Class)
		seats[row.ClassID] = row.AvailableSeats
	}
	assert.Equal(t, 7, seats[c1.ID])
	assert.Equal(t, 0, seats[c2.ID])
}

func TestPaymentListEnrolled_MostRecentFirst(t *testing.T) {
	db := dbtest.New(t)
	repo := NewPaymentRepository(db)

	day := func(d int) time.Time { return time.Date(2026, time.January, d, 9, 0, 0, 0, time.UTC) }
	jan1 := dbtest.SeedPayment(t, db, dbtest.SeedClass(t, db, 10, 1, model.ClassStatusApproved), "a@example.com", day(1))
	jan5 := dbtest.SeedPayment(t, db, dbtest.SeedClass(t, db, 10, 1, model.ClassStatusApproved), "a@example.com", day(5))
	jan3 := dbtest.SeedPayment(t, db, dbtest.SeedClass(t, db, 10, 1, model.ClassStatusApproved), "a@example.com", day(3))
	dbtest.SeedPayment(t, db, dbtest.SeedClass(t, db, 10, 1, model.ClassStatusApproved), "b@example.com", day(4))

	records, err := repo.ListEnrolled(context.Background(), "a@example.com")
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, jan5.ID, records[0].ID)
	assert.Equal(t, jan3.ID, records[1].ID)
	assert.Equal(t, jan1.ID, records[2].ID)
	for _, r := range records {
		require.NotNil(t, r.Class)
		assert.Equal(t, r.ClassID, r.Class.ID)
	}
}

func TestPaymentCreate_DuplicatePurchase(t *testing.T) {
	db := dbtest.New(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()
	class := dbtest.SeedClass(t, db, 10, 0, model.ClassStatusApproved)
	dbtest.SeedPayment(t, db, class, "a@example.com", time.Now())

	exists, err := repo.Exists(ctx, db, class.ID, "a@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	err = repo.Create(ctx, db, &model.PaymentRecord{
		ID:            uuid.NewString(),
		Email:         "a@example.com",
		ClassID:       class.ID,
		PaymentAmount: class.Price,
		TransactionID: "txn_other",
		Date:          time.Now().UTC(),
	})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestClassIncrementEnrolled_StopsAtCapacity(t *testing.T) {
	db := dbtest.New(t)
	repo := NewClassRepository(db)
	ctx := context.Background()
	class := dbtest.SeedClass(t, db, 2, 1, model.ClassStatusApproved)

	n, err := repo.IncrementEnrolled(ctx, db, class.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = repo.IncrementEnrolled(ctx, db, class.ID)
	require.NoError(t, err)
	assert.Zero(t, n)

	got, err := repo.FindByID(ctx, db, class.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.EnrolledCount)
}

func TestClassIncrementEnrolled_MissingClassCreatesNothing(t *testing.T) {
	db := dbtest.New(t)
	repo := NewClassRepository(db)
	ctx := context.Background()
	id := uuid.NewString()

	n, err := repo.IncrementEnrolled(ctx, db, id)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = repo.FindByID(ctx, db, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClassIncrementEnrolled_Concurrent(t *testing.T) {
	db := dbtest.New(t)
	repo := NewClassRepository(db)
	ctx := context.Background()
	class := dbtest.SeedClass(t, db, 100, 0, model.ClassStatusApproved)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.IncrementEnrolled(ctx, db, class.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := repo.FindByID(ctx, db, class.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, got.EnrolledCount)
}

func TestClassTransitionStatus_OnlyFromExpected(t *testing.T) {
	db := dbtest.New(t)
	repo := NewClassRepository(db)
	ctx := context.Background()
	class := dbtest.SeedClass(t, db, 10, 0, model.ClassStatusPending)

	n, err := repo.TransitionStatus(ctx, db, class.ID, model.ClassStatusPending, model.ClassStatusDenied)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = repo.TransitionStatus(ctx, db, class.ID, model.ClassStatusPending, model.ClassStatusApproved)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestClassListingsFilterStatus(t *testing.T) {
	db := dbtest.New(t)
	repo := NewClassRepository(db)
	ctx := context.Background()

	low := dbtest.SeedClass(t, db, 10, 1, model.ClassStatusApproved)
	high := dbtest.SeedClass(t, db, 10, 8, model.ClassStatusApproved)
	dbtest.SeedClass(t, db, 10, 9, model.ClassStatusPending)
	dbtest.SeedClass(t, db, 10, 0, model.ClassStatusDenied)

	approved, err := repo.ListByStatus(ctx, model.ClassStatusApproved)
	require.NoError(t, err)
	assert.Len(t, approved, 2)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	popular, err := repo.Popular(ctx, 6)
	require.NoError(t, err)
	require.Len(t, popular, 2)
	assert.Equal(t, high.ID, popular[0].ID)
	assert.Equal(t, low.ID, popular[1].ID)
}

func TestUserFirstOrCreate_KeepsExisting(t *testing.T) {
	db := dbtest.New(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	created, err := repo.FirstOrCreate(ctx, &model.User{ID: uuid.NewString(), Email: "a@example.com", Role: model.RoleStudent})
	require.NoError(t, err)
	require.NoError(t, repo.UpdateRole(ctx, created.ID, model.RoleAdmin))

	again, err := repo.FirstOrCreate(ctx, &model.User{ID: uuid.NewString(), Email: "a@example.com", Role: model.RoleStudent})
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)
	assert.Equal(t, model.RoleAdmin, again.Role)

	assert.ErrorIs(t, repo.UpdateRole(ctx, uuid.NewString(), model.RoleAdmin), ErrNotFound)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}
