package database

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64, active bool) *entity.Product {
	t.Helper()

	product := &entity.Product{
		Name:     name,
		Price:    price,
		Category: "test",
		IsActive: active,
	}
	require.NoError(t, NewProductRepository(db).Create(context.Background(), product))

	return product
}

func seedUser(t *testing.T, db *gorm.DB, username string) *entity.User {
	t.Helper()

	user := &entity.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func TestUserRepository_DuplicateMapping(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	seedUser(t, db, "alice")

	err := repo.Create(ctx, &entity.User{
		Username:     "alice",
		Email:        "other@example.com",
		PasswordHash: "x",
	})
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateUsername)

	err = repo.Create(ctx, &entity.User{
		Username:     "bob",
		Email:        "alice@example.com",
		PasswordHash: "x",
	})
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateEmail)
}

func TestCartRepository_UpsertMergesQuantities(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	user := seedUser(t, db, "alice")
	product := seedProduct(t, db, "camera", 10, true)
	repo := NewCartRepository(db)

	require.NoError(t, repo.Upsert(ctx, &entity.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: 2}))
	require.NoError(t, repo.Upsert(ctx, &entity.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: 3}))

	items, err := repo.FindByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	require.NotNil(t, items[0].Product)
	assert.Equal(t, "camera", items[0].Product.Name)
	assert.InDelta(t, 50.0, items[0].LineTotal(), 1e-9)
}

func TestCartRepository_UpsertKeepsCartsSeparate(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	product := seedProduct(t, db, "camera", 10, true)
	repo := NewCartRepository(db)

	require.NoError(t, repo.Upsert(ctx, &entity.CartItem{UserID: alice.ID, ProductID: product.ID, Quantity: 1}))
	require.NoError(t, repo.Upsert(ctx, &entity.CartItem{UserID: bob.ID, ProductID: product.ID, Quantity: 4}))

	aliceItems, err := repo.FindByUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, aliceItems, 1)
	assert.Equal(t, 1, aliceItems[0].Quantity)

	bobItems, err := repo.FindByUser(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, bobItems, 1)
	assert.Equal(t, 4, bobItems[0].Quantity)
}

func TestProductRepository_CreatePersistsInactiveFlag(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewProductRepository(db)

	hidden := seedProduct(t, db, "Hidden Camera", 30, false)

	loaded, err := repo.FindByID(ctx, hidden.ID)
	require.NoError(t, err)
	assert.False(t, loaded.IsActive)

	page, err := repo.FindPage(ctx, repository.ProductFilter{ActiveOnly: true}, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Products)
}

func TestProductRepository_FindPageFiltersAndPaginates(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewProductRepository(db)

	seedProduct(t, db, "Red Camera", 10, true)
	seedProduct(t, db, "Blue Camera", 20, true)
	seedProduct(t, db, "Hidden Camera", 30, false)
	seedProduct(t, db, "Tripod", 40, true)

	page, err := repo.FindPage(ctx, repository.ProductFilter{ActiveOnly: true}, 1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, page.TotalCount)
	assert.Len(t, page.Products, 2)

	// Search is case-insensitive and excludes inactive rows.
	page, err = repo.FindPage(ctx, repository.ProductFilter{Search: "camera", ActiveOnly: true}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.TotalCount)

	// Out-of-range page yields an empty page, not an error.
	page, err = repo.FindPage(ctx, repository.ProductFilter{ActiveOnly: true}, 9, 2)
	require.NoError(t, err)
	assert.Empty(t, page.Products)
	assert.EqualValues(t, 3, page.TotalCount)
}

func TestOrderRepository_ItemsSnapshotRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewOrderRepository(db)

	order := &entity.Order{
		UserID: 1,
		Total:  35,
		Status: entity.OrderStatusPending,
		Items: []entity.OrderItem{
			{ProductID: 1, ProductName: "camera", Quantity: 2, Price: 10},
			{ProductID: 2, ProductName: "tripod", Quantity: 1, Price: 15},
		},
	}
	require.NoError(t, repo.Create(ctx, order))
	require.NotZero(t, order.ID)

	loaded, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.Items, loaded.Items)
	assert.Equal(t, entity.OrderStatusPending, loaded.Status)

	require.NoError(t, repo.UpdateStatus(ctx, order.ID, entity.OrderStatusProcessing))
	count, err := repo.CountByStatus(ctx, entity.OrderStatusProcessing)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	user := seedUser(t, db, "alice")
	product := seedProduct(t, db, "camera", 10, true)
	require.NoError(t, NewCartRepository(db).Upsert(ctx, &entity.CartItem{
		UserID: user.ID, ProductID: product.ID, Quantity: 2,
	}))

	txManager := NewTransactionManager(db)
	sentinel := domainerrors.ErrEmptyCart

	err := txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewOrderRepository().Create(ctx, &entity.Order{
			UserID: user.ID,
			Total:  20,
			Status: entity.OrderStatusPending,
			Items:  []entity.OrderItem{{ProductID: product.ID, ProductName: "camera", Quantity: 2, Price: 10}},
		}); err != nil {
			return err
		}
		if err := f.NewCartRepository().DeleteByUser(ctx, user.ID); err != nil {
			return err
		}

		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	// Both the order insert and the cart wipe must have been undone.
	orders, err := NewOrderRepository(db).FindByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, orders)

	items, err := NewCartRepository(db).FindByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	user := seedUser(t, db, "alice")
	product := seedProduct(t, db, "camera", 10, true)
	require.NoError(t, NewCartRepository(db).Upsert(ctx, &entity.CartItem{
		UserID: user.ID, ProductID: product.ID, Quantity: 2,
	}))

	txManager := NewTransactionManager(db)
	err := txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewOrderRepository().Create(ctx, &entity.Order{
			UserID: user.ID,
			Total:  20,
			Status: entity.OrderStatusPending,
			Items:  []entity.OrderItem{{ProductID: product.ID, ProductName: "camera", Quantity: 2, Price: 10}},
		}); err != nil {
			return err
		}

		return f.NewCartRepository().DeleteByUser(ctx, user.ID)
	})
	require.NoError(t, err)

	orders, err := NewOrderRepository(db).FindByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	items, err := NewCartRepository(db).FindByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}
