package impl

import (
	"context"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/persistence/database"
	"storefront/internal/infra/session"
	"storefront/internal/infra/storage"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testStore wires every service against a shared in-memory database, the
// way the fx graph does in production.
type testStore struct {
	db      *gorm.DB
	users   usecase.UserUsecase
	catalog usecase.CatalogUsecase
	cart    usecase.CartUsecase
	admin   usecase.AdminUsecase
}

func newTestStore(t *testing.T) *testStore {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := newTestConfig()
	cfg.Session = &config.SessionConfig{CookieName: "storefront_session", TTL: time.Hour}
	cfg.Auth = &config.AuthConfig{BcryptCost: 4}
	cfg.Uploads = &config.UploadsConfig{Root: t.TempDir()}

	txManager := database.NewTransactionManager(db)
	userRepo := database.NewUserRepository(db)
	productRepo := database.NewProductRepository(db)
	cartRepo := database.NewCartRepository(db)
	orderRepo := database.NewOrderRepository(db)
	uploadRepo := database.NewUploadRepository(db)

	fileStore, err := storage.NewLocalStore(cfg)
	require.NoError(t, err)

	discard := newDiscardLogger()

	return &testStore{
		db: db,
		users: NewUserService(UserServiceParams{
			TxManager: txManager,
			UserRepo:  userRepo,
			Hasher:    auth.NewBcryptHasher(cfg),
			Sessions:  session.NewMemoryStore(cfg),
			Logger:    discard,
		}),
		catalog: NewCatalogService(CatalogServiceParams{
			ProductRepo: productRepo,
			Config:      cfg,
			Logger:      discard,
		}),
		cart: NewCartService(CartServiceParams{
			TxManager:   txManager,
			CartRepo:    cartRepo,
			ProductRepo: productRepo,
			OrderRepo:   orderRepo,
			Logger:      discard,
		}),
		admin: NewAdminService(AdminServiceParams{
			UserRepo:    userRepo,
			ProductRepo: productRepo,
			OrderRepo:   orderRepo,
			UploadRepo:  uploadRepo,
			FileStore:   fileStore,
			Logger:      discard,
		}),
	}
}

// TestStorefrontFlow walks one shopper and one admin through the whole
// purchase cycle against real repositories.
func TestStorefrontFlow(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	// The admin stocks the shelf.
	registered, err := store.users.Register(ctx, usecase.RegisterInput{
		Username: "root", Email: "root@example.com", Password: "rootpw",
	})
	require.NoError(t, err)
	require.NoError(t, database.NewUserRepository(store.db).SetAdmin(ctx, registered.User.ID, true))

	camera, err := store.admin.CreateProduct(ctx, usecase.ProductInput{
		Name: "camera", Price: 120, Stock: 5, Category: "optics", IsActive: true,
	})
	require.NoError(t, err)
	tripod, err := store.admin.CreateProduct(ctx, usecase.ProductInput{
		Name: "tripod", Price: 40, Stock: 9, Category: "optics", IsActive: true,
	})
	require.NoError(t, err)

	// A shopper signs up and logs in.
	_, err = store.users.Register(ctx, usecase.RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "secret",
	})
	require.NoError(t, err)

	login, err := store.users.Login(ctx, usecase.LoginInput{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	require.NotEmpty(t, login.Token)
	shopper := login.User.ID

	// Browsing shows both products.
	listing, err := store.catalog.ListProducts(ctx, usecase.ListProductsInput{Page: 1})
	require.NoError(t, err)
	assert.Len(t, listing.Products, 2)

	// Two adds of the same product merge into one line.
	require.NoError(t, store.cart.AddToCart(ctx, usecase.AddToCartInput{
		UserID: shopper, ProductID: camera.ID, Quantity: 1,
	}))
	require.NoError(t, store.cart.AddToCart(ctx, usecase.AddToCartInput{
		UserID: shopper, ProductID: camera.ID, Quantity: 1,
	}))
	require.NoError(t, store.cart.AddToCart(ctx, usecase.AddToCartInput{
		UserID: shopper, ProductID: tripod.ID, Quantity: 1,
	}))

	cart, err := store.cart.ViewCart(ctx, shopper)
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)
	assert.InDelta(t, 280, cart.Total, 0.001)

	// Checkout snapshots the cart into a pending order and empties it.
	order, err := store.cart.Checkout(ctx, shopper)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.InDelta(t, 280, order.Total, 0.001)
	require.Len(t, order.Items, 2)
	names := []string{order.Items[0].ProductName, order.Items[1].ProductName}
	assert.ElementsMatch(t, []string{"camera", "tripod"}, names)

	emptied, err := store.cart.ViewCart(ctx, shopper)
	require.NoError(t, err)
	assert.Empty(t, emptied.Items)

	// A second checkout has nothing to buy.
	_, err = store.cart.Checkout(ctx, shopper)
	assert.Error(t, err)

	// The order shows up in the shopper's history.
	history, err := store.cart.ListOrders(ctx, shopper)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, order.ID, history[0].ID)

	// Repricing, renaming or retiring a product leaves placed orders alone.
	_, err = store.admin.UpdateProduct(ctx, camera.ID, usecase.ProductInput{
		Name: "camera mk2", Price: 999, Stock: 1, Category: "optics", IsActive: false,
	})
	require.NoError(t, err)

	history, err = store.cart.ListOrders(ctx, shopper)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.InDelta(t, 280, history[0].Total, 0.001)
	snapshot := map[string]float64{}
	for _, item := range history[0].Items {
		snapshot[item.ProductName] = item.Price
	}
	assert.Equal(t, map[string]float64{"camera": 120, "tripod": 40}, snapshot)

	// The admin fulfills it step by step.
	require.NoError(t, store.admin.UpdateOrderStatus(ctx, usecase.UpdateOrderStatusInput{
		OrderID: order.ID, Status: "processing",
	}))
	require.NoError(t, store.admin.UpdateOrderStatus(ctx, usecase.UpdateOrderStatusInput{
		OrderID: order.ID, Status: "shipped",
	}))
	require.NoError(t, store.admin.UpdateOrderStatus(ctx, usecase.UpdateOrderStatusInput{
		OrderID: order.ID, Status: "completed",
	}))

	// Completed orders accept no further transitions.
	err = store.admin.UpdateOrderStatus(ctx, usecase.UpdateOrderStatusInput{
		OrderID: order.ID, Status: "cancelled",
	})
	assert.Error(t, err)

	dashboard, err := store.admin.Dashboard(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, dashboard.ProductCount)
	assert.EqualValues(t, 1, dashboard.OrderCount)
	assert.EqualValues(t, 0, dashboard.PendingOrders)
	assert.EqualValues(t, 2, dashboard.UserCount)
}
