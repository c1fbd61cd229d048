package impl

import (
	"context"
	"strings"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminServiceFixtures struct {
	service     usecase.AdminUsecase
	userRepo    *mockRepo.MockUserRepository
	productRepo *mockRepo.MockProductRepository
	orderRepo   *mockRepo.MockOrderRepository
	uploadRepo  *mockRepo.MockUploadRepository
	fileStore   *mockService.MockFileStore
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	uploadRepo := mockRepo.NewMockUploadRepository(t)
	fileStore := mockService.NewMockFileStore(t)

	service := NewAdminService(AdminServiceParams{
		UserRepo:    userRepo,
		ProductRepo: productRepo,
		OrderRepo:   orderRepo,
		UploadRepo:  uploadRepo,
		FileStore:   fileStore,
		Logger:      newDiscardLogger(),
	})

	return adminServiceFixtures{
		service:     service,
		userRepo:    userRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		uploadRepo:  uploadRepo,
		fileStore:   fileStore,
	}
}

func TestAdminService_Dashboard(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	recent := []*entity.Order{{ID: 10}, {ID: 9}}
	fx.productRepo.EXPECT().Count(ctx).Return(12, nil)
	fx.orderRepo.EXPECT().Count(ctx).Return(30, nil)
	fx.userRepo.EXPECT().Count(ctx).Return(5, nil)
	fx.orderRepo.EXPECT().CountByStatus(ctx, entity.OrderStatusPending).Return(4, nil)
	fx.orderRepo.EXPECT().FindAll(ctx, 5).Return(recent, nil)

	out, err := fx.service.Dashboard(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 12, out.ProductCount)
	assert.EqualValues(t, 30, out.OrderCount)
	assert.EqualValues(t, 5, out.UserCount)
	assert.EqualValues(t, 4, out.PendingOrders)
	assert.Equal(t, recent, out.RecentOrders)
}

func TestAdminService_CreateProduct(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		RunAndReturn(func(_ context.Context, product *entity.Product) error {
			product.ID = 8
			return nil
		})

	product, err := fx.service.CreateProduct(ctx, usecase.ProductInput{
		Name:     "camera",
		Price:    99.5,
		Stock:    3,
		Category: "optics",
		IsActive: true,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 8, product.ID)
	assert.Equal(t, "camera", product.Name)
	assert.True(t, product.IsActive)
}

func TestAdminService_UpdateProduct_NotFound(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Return(repository.ErrProductNotFound)

	_, err := fx.service.UpdateProduct(ctx, 404, usecase.ProductInput{Name: "ghost"})
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestAdminService_UpdateOrderStatus_AllowedTransition(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.orderRepo.EXPECT().
		FindByID(ctx, uint(1)).
		Return(&entity.Order{ID: 1, Status: entity.OrderStatusPending}, nil)
	fx.orderRepo.EXPECT().
		UpdateStatus(ctx, uint(1), entity.OrderStatusProcessing).
		Return(nil)

	err := fx.service.UpdateOrderStatus(ctx, usecase.UpdateOrderStatusInput{OrderID: 1, Status: "processing"})
	require.NoError(t, err)
}

func TestAdminService_UpdateOrderStatus_RejectedTransition(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.orderRepo.EXPECT().
		FindByID(ctx, uint(1)).
		Return(&entity.Order{ID: 1, Status: entity.OrderStatusCompleted}, nil)

	err := fx.service.UpdateOrderStatus(ctx, usecase.UpdateOrderStatusInput{OrderID: 1, Status: "pending"})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidStatusTransition.ErrorCode(), appErr.ErrorCode())
}

func TestAdminService_UpdateOrderStatus_UnknownStatus(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	err := fx.service.UpdateOrderStatus(ctx, usecase.UpdateOrderStatusInput{OrderID: 1, Status: "teleported"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
}

func TestAdminService_UpdateOrderStatus_SameStatusIsNoOp(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.orderRepo.EXPECT().
		FindByID(ctx, uint(1)).
		Return(&entity.Order{ID: 1, Status: entity.OrderStatusShipped}, nil)

	err := fx.service.UpdateOrderStatus(ctx, usecase.UpdateOrderStatusInput{OrderID: 1, Status: "shipped"})
	require.NoError(t, err)
}

func TestAdminService_ToggleAdmin_FlipsFlag(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, uint(2)).
		Return(&entity.User{ID: 2, Username: "bob", IsAdmin: false}, nil)
	fx.userRepo.EXPECT().SetAdmin(ctx, uint(2), true).Return(nil)

	user, err := fx.service.ToggleAdmin(ctx, usecase.ToggleAdminInput{ActorID: 1, TargetID: 2})
	require.NoError(t, err)
	assert.True(t, user.IsAdmin)
}

func TestAdminService_ToggleAdmin_SelfRejected(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	_, err := fx.service.ToggleAdmin(ctx, usecase.ToggleAdminInput{ActorID: 1, TargetID: 1})
	assert.ErrorIs(t, err, domainerrors.ErrSelfDemotionForbidden)
}

func TestAdminService_UploadFile_StoresAndRecords(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	content := strings.NewReader("fake image bytes")
	fx.fileStore.EXPECT().
		Save("products", "cam.jpg", content).
		Return("20240315_093000_cam.jpg", "products/20240315_093000_cam.jpg", nil)
	fx.uploadRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.FileUpload")).
		RunAndReturn(func(_ context.Context, upload *entity.FileUpload) error {
			upload.ID = 1
			return nil
		})

	out, err := fx.service.UploadFile(ctx, usecase.UploadFileInput{
		UploadedBy:   1,
		FileType:     entity.FileTypeProductImage,
		OriginalName: "cam.jpg",
		Content:      content,
	})
	require.NoError(t, err)
	assert.Equal(t, "20240315_093000_cam.jpg", out.Upload.Filename)
	assert.Equal(t, "cam.jpg", out.Upload.OriginalFilename)
	assert.Equal(t, entity.FileTypeProductImage, out.Upload.FileType)
}

func TestAdminService_UploadFile_MissingFile(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	_, err := fx.service.UploadFile(ctx, usecase.UploadFileInput{
		UploadedBy: 1,
		FileType:   entity.FileTypeOther,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidUpload)
}
