package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// recentOrderLimit is how many orders the dashboard shows.
const recentOrderLimit = 5

// adminService implements the AdminUsecase interface.
type adminService struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	uploadRepo  repository.UploadRepository
	fileStore   service.FileStore
	logger      *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	ProductRepo repository.ProductRepository
	OrderRepo   repository.OrderRepository
	UploadRepo  repository.UploadRepository
	FileStore   service.FileStore
	Logger      *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		userRepo:    params.UserRepo,
		productRepo: params.ProductRepo,
		orderRepo:   params.OrderRepo,
		uploadRepo:  params.UploadRepo,
		fileStore:   params.FileStore,
		logger:      params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Dashboard returns entity counts, the pending-order count and the most
// recent orders.
func (srv *adminService) Dashboard(ctx context.Context) (*usecase.DashboardOutput, error) {
	productCount, err := srv.productRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count products")
	}

	orderCount, err := srv.orderRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count orders")
	}

	userCount, err := srv.userRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	pendingCount, err := srv.orderRepo.CountByStatus(ctx, entity.OrderStatusPending)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count pending orders")
	}

	recentOrders, err := srv.orderRepo.FindAll(ctx, recentOrderLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load recent orders")
	}

	return &usecase.DashboardOutput{
		ProductCount:  productCount,
		OrderCount:    orderCount,
		UserCount:     userCount,
		PendingOrders: pendingCount,
		RecentOrders:  recentOrders,
	}, nil
}

// ListAllProducts returns every product, active or not.
func (srv *adminService) ListAllProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct returns a single product for the edit form.
func (srv *adminService) GetProduct(ctx context.Context, id uint) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	return product, nil
}

// CreateProduct adds a catalog entry.
func (srv *adminService) CreateProduct(ctx context.Context, input usecase.ProductInput) (*entity.Product, error) {
	product := productFromInput(input)
	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Created product",
		slog.Uint64("productID", uint64(product.ID)),
		slog.String("name", product.Name),
	)

	return product, nil
}

// UpdateProduct overwrites all editable fields of an existing product.
func (srv *adminService) UpdateProduct(ctx context.Context, id uint, input usecase.ProductInput) (*entity.Product, error) {
	product := productFromInput(input)
	product.ID = id

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, err
	}

	return srv.GetProduct(ctx, id)
}

// ListAllOrders returns every order in the system, newest first.
func (srv *adminService) ListAllOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindAll(ctx, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// UpdateOrderStatus applies a fulfillment transition. Setting the current
// status again is an idempotent no-op; anything the transition table does
// not allow is rejected.
func (srv *adminService) UpdateOrderStatus(ctx context.Context, input usecase.UpdateOrderStatusInput) error {
	next := entity.OrderStatus(input.Status)
	if !next.IsValid() {
		return domainerrors.ErrInvalidStatus
	}

	order, err := srv.orderRepo.FindByID(ctx, input.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to load order")
	}

	if order.Status == next {
		return nil
	}
	if !order.Status.CanTransitionTo(next) {
		return domainerrors.ErrInvalidStatusTransition.WithDetails(
			"cannot move from " + order.Status.String() + " to " + next.String(),
		)
	}

	if err := srv.orderRepo.UpdateStatus(ctx, order.ID, next); err != nil {
		return err
	}

	srv.log(ctx).Info("Updated order status",
		slog.Uint64("orderID", uint64(order.ID)),
		slog.String("from", order.Status.String()),
		slog.String("to", next.String()),
	)

	return nil
}

// ListUsers returns every account, oldest first.
func (srv *adminService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// ToggleAdmin flips the target's admin flag. Acting on oneself is rejected
// so an admin can never lock themselves out mid-session.
func (srv *adminService) ToggleAdmin(ctx context.Context, input usecase.ToggleAdminInput) (*entity.User, error) {
	if input.ActorID == input.TargetID {
		return nil, domainerrors.ErrSelfDemotionForbidden
	}

	target, err := srv.userRepo.FindByID(ctx, input.TargetID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	if err := srv.userRepo.SetAdmin(ctx, target.ID, !target.IsAdmin); err != nil {
		return nil, err
	}
	target.IsAdmin = !target.IsAdmin

	srv.log(ctx).Info("Toggled admin flag",
		slog.Uint64("actorID", uint64(input.ActorID)),
		slog.Uint64("targetID", uint64(target.ID)),
		slog.Bool("isAdmin", target.IsAdmin),
	)

	return target, nil
}

// ListUploads returns the upload registry, newest first.
func (srv *adminService) ListUploads(ctx context.Context) ([]*entity.FileUpload, error) {
	uploads, err := srv.uploadRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list uploads")
	}

	return uploads, nil
}

// UploadFile stores the file in its type's bucket and records it in the
// registry. The stored file and the registry row are the only outputs;
// nothing is ever overwritten.
func (srv *adminService) UploadFile(ctx context.Context, input usecase.UploadFileInput) (*usecase.UploadFileOutput, error) {
	if input.OriginalName == "" || input.Content == nil {
		return nil, domainerrors.ErrInvalidUpload
	}

	storedName, _, err := srv.fileStore.Save(input.FileType.Bucket(), input.OriginalName, input.Content)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store uploaded file")
	}

	upload := &entity.FileUpload{
		Filename:         storedName,
		OriginalFilename: input.OriginalName,
		FileType:         input.FileType,
		UploadedBy:       input.UploadedBy,
	}
	if err := srv.uploadRepo.Create(ctx, upload); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Stored upload",
		slog.String("filename", upload.Filename),
		slog.String("fileType", upload.FileType.String()),
		slog.Uint64("uploadedBy", uint64(upload.UploadedBy)),
	)

	return &usecase.UploadFileOutput{Upload: upload}, nil
}

// productFromInput maps the DTO onto a fresh product entity.
func productFromInput(input usecase.ProductInput) *entity.Product {
	return &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		Image:       input.Image,
		Category:    input.Category,
		IsActive:    input.IsActive,
	}
}
