package blob

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"crave/config"
	"crave/internal/domain/entity"
	"crave/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func createTestRepository(t *testing.T) repository.SnapshotRepository {
	t.Helper()

	lifecycle := fxtest.NewLifecycle(t)
	repo, err := NewSnapshotRepository(BucketParams{
		Lifecycle: lifecycle,
		Config: &config.Config{
			Snapshot: config.SnapshotConfig{BucketURL: "mem://"},
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	lifecycle.RequireStart()
	t.Cleanup(lifecycle.RequireStop)

	return repo
}

func TestSnapshotRepository_UserRoundTrip(t *testing.T) {
	repo := createTestRepository(t)
	ctx := context.Background()

	user := &entity.User{
		ID:    "user-1",
		Name:  "Alice",
		Email: "alice@example.com",
		Role:  entity.RoleCustomer,
		Coins: 120,
	}
	require.NoError(t, repo.SaveUser(ctx, user))

	loaded, err := repo.LoadUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, user, loaded)
}

func TestSnapshotRepository_LoadUser_Missing(t *testing.T) {
	repo := createTestRepository(t)

	_, err := repo.LoadUser(context.Background())
	assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)
}

func TestSnapshotRepository_DeleteUser(t *testing.T) {
	repo := createTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveUser(ctx, &entity.User{ID: "user-1", Role: entity.RoleCustomer}))
	require.NoError(t, repo.DeleteUser(ctx))

	_, err := repo.LoadUser(ctx)
	assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)

	// Deleting an absent snapshot is a no-op, not an error.
	assert.NoError(t, repo.DeleteUser(ctx))
}

func TestSnapshotRepository_CartRoundTrip(t *testing.T) {
	repo := createTestRepository(t)
	ctx := context.Background()

	cart := &entity.Cart{
		Items: []entity.CartItem{
			{
				MenuItemID: "item-1",
				Name:       "Classic Burger",
				Variant:    "large",
				UnitPrice:  decimal.RequireFromString("9.99"),
				Quantity:   2,
			},
			{
				MenuItemID: "item-2",
				Name:       "Pepperoni Pizza",
				UnitPrice:  decimal.NewFromInt(250),
				Quantity:   1,
			},
		},
	}
	require.NoError(t, repo.SaveCart(ctx, cart))

	loaded, err := repo.LoadCart(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 2)
	assert.Equal(t, "large", loaded.Items[0].Variant)
	assert.True(t, loaded.Items[0].UnitPrice.Equal(decimal.RequireFromString("9.99")))
	assert.Equal(t, 1, loaded.Items[1].Quantity)
}

func TestSnapshotRepository_LoadCart_Missing(t *testing.T) {
	repo := createTestRepository(t)

	_, err := repo.LoadCart(context.Background())
	assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)
}

func TestSnapshotRepository_DeleteCart(t *testing.T) {
	repo := createTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveCart(ctx, &entity.Cart{
		Items: []entity.CartItem{{MenuItemID: "item-1", UnitPrice: decimal.NewFromInt(100), Quantity: 1}},
	}))
	require.NoError(t, repo.DeleteCart(ctx))

	_, err := repo.LoadCart(ctx)
	assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)
}
