package usecase

import (
	"context"
	"io"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// ProductInput carries the editable fields of a product, for both create
// and update.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	Image       string
	Category    string
	IsActive    bool
}

// UpdateOrderStatusInput moves an order along the fulfillment flow.
type UpdateOrderStatusInput struct {
	OrderID uint
	Status  string
}

// ToggleAdminInput flips the admin flag of the target user. ActorID is the
// calling admin; acting on oneself is rejected.
type ToggleAdminInput struct {
	ActorID  uint
	TargetID uint
}

// UploadFileInput stores a file in the bucket selected by FileType and
// records it in the upload registry.
type UploadFileInput struct {
	UploadedBy   uint
	FileType     entity.FileType
	OriginalName string
	Content      io.Reader
}

// --- Output DTOs ---

// DashboardOutput is the back-office landing summary.
type DashboardOutput struct {
	ProductCount  int64
	OrderCount    int64
	UserCount     int64
	PendingOrders int64
	RecentOrders  []*entity.Order
}

// UploadFileOutput returns the registry row of a stored file.
type UploadFileOutput struct {
	Upload *entity.FileUpload
}

// AdminUsecase defines the interface for the back-office operations. The
// delivery layer gates every call behind an admin check; the use case
// enforces the rules that do not depend on who is asking.
type AdminUsecase interface {
	// Dashboard returns entity counts, the pending-order count and the most
	// recent orders.
	Dashboard(ctx context.Context) (*DashboardOutput, error)

	// ListAllProducts returns every product, active or not, newest first.
	ListAllProducts(ctx context.Context) ([]*entity.Product, error)

	// GetProduct returns a single product for the edit form.
	GetProduct(ctx context.Context, id uint) (*entity.Product, error)

	// CreateProduct adds a catalog entry.
	CreateProduct(ctx context.Context, input ProductInput) (*entity.Product, error)

	// UpdateProduct overwrites all editable fields of an existing product.
	UpdateProduct(ctx context.Context, id uint, input ProductInput) (*entity.Product, error)

	// ListAllOrders returns every order in the system, newest first.
	ListAllOrders(ctx context.Context) ([]*entity.Order, error)

	// UpdateOrderStatus applies a fulfillment transition. Unknown statuses
	// and moves not allowed by the transition table are rejected.
	UpdateOrderStatus(ctx context.Context, input UpdateOrderStatusInput) error

	// ListUsers returns every account, oldest first.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// ToggleAdmin flips the target's admin flag. Admins cannot change their
	// own flag, so the system always keeps at least the acting admin.
	ToggleAdmin(ctx context.Context, input ToggleAdminInput) (*entity.User, error)

	// ListUploads returns the upload registry, newest first.
	ListUploads(ctx context.Context) ([]*entity.FileUpload, error)

	// UploadFile stores the file in its type's bucket and records it.
	UploadFile(ctx context.Context, input UploadFileInput) (*UploadFileOutput, error)
}
