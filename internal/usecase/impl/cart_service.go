package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager   repository.TransactionManager
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	OrderRepo   repository.OrderRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager:   params.TxManager,
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		orderRepo:   params.OrderRepo,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddToCart merges quantity units of the product into the caller's cart.
// The repository upsert makes repeated and concurrent adds accumulate into
// a single line.
func (srv *cartService) AddToCart(ctx context.Context, input usecase.AddToCartInput) error {
	if input.Quantity < 1 {
		return domainerrors.ErrInvalidQuantity
	}

	if _, err := srv.productRepo.FindByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to load product for cart add")
	}

	item := &entity.CartItem{
		UserID:    input.UserID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
	}
	if err := srv.cartRepo.Upsert(ctx, item); err != nil {
		return err
	}

	srv.log(ctx).Debug("Added product to cart",
		slog.Uint64("userID", uint64(input.UserID)),
		slog.Uint64("productID", uint64(input.ProductID)),
		slog.Int("quantity", input.Quantity),
	)

	return nil
}

// ViewCart returns the caller's cart lines and the running total.
func (srv *cartService) ViewCart(ctx context.Context, userID uint) (*usecase.CartOutput, error) {
	items, err := srv.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	var total float64
	for _, item := range items {
		total += item.LineTotal()
	}

	return &usecase.CartOutput{Items: items, Total: total}, nil
}

// UpdateQuantity overwrites a line's quantity. A non-positive quantity
// removes the line, mirroring how storefront quantity steppers behave.
func (srv *cartService) UpdateQuantity(ctx context.Context, input usecase.UpdateCartItemInput) error {
	item, err := srv.ownedItem(ctx, input.UserID, input.ItemID)
	if err != nil {
		return err
	}

	if input.Quantity <= 0 {
		return srv.cartRepo.Delete(ctx, item.ID)
	}

	return srv.cartRepo.UpdateQuantity(ctx, item.ID, input.Quantity)
}

// RemoveItem deletes one line from the caller's cart.
func (srv *cartService) RemoveItem(ctx context.Context, userID, itemID uint) error {
	item, err := srv.ownedItem(ctx, userID, itemID)
	if err != nil {
		return err
	}

	return srv.cartRepo.Delete(ctx, item.ID)
}

// ownedItem loads a cart line and verifies it belongs to the caller.
func (srv *cartService) ownedItem(ctx context.Context, userID, itemID uint) (*entity.CartItem, error) {
	item, err := srv.cartRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil, domainerrors.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to load cart item")
	}

	if item.UserID != userID {
		return nil, domainerrors.ErrNotOwner
	}

	return item, nil
}

// Checkout converts the caller's cart into a pending order. Reading the
// cart, snapshotting prices, creating the order and emptying the cart all
// happen in one transaction, so no failure can leave a half-checked-out
// state.
func (srv *cartService) Checkout(ctx context.Context, userID uint) (*entity.Order, error) {
	var createdOrder *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()
		orderRepo := repoFactory.NewOrderRepository()

		items, err := cartRepo.FindByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to load cart for checkout")
		}
		if len(items) == 0 {
			return domainerrors.ErrEmptyCart
		}

		snapshot := make([]entity.OrderItem, 0, len(items))
		var total float64
		for _, item := range items {
			if item.Product == nil {
				return errors.Errorf("cart item %d has no product loaded", item.ID)
			}

			snapshot = append(snapshot, entity.OrderItem{
				ProductID:   item.ProductID,
				ProductName: item.Product.Name,
				Quantity:    item.Quantity,
				Price:       item.Product.Price,
			})
			total += item.LineTotal()
		}

		order := &entity.Order{
			UserID: userID,
			Total:  total,
			Status: entity.OrderStatusPending,
			Items:  snapshot,
		}
		if err := orderRepo.Create(ctx, order); err != nil {
			return err
		}

		if err := cartRepo.DeleteByUser(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to clear cart after checkout")
		}

		createdOrder = order

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Checkout completed",
		slog.Uint64("userID", uint64(userID)),
		slog.Uint64("orderID", uint64(createdOrder.ID)),
		slog.Float64("total", createdOrder.Total),
	)

	return createdOrder, nil
}

// ListOrders returns the caller's order history, newest first.
func (srv *cartService) ListOrders(ctx context.Context, userID uint) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}
