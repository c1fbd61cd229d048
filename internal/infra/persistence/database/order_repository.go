package database

import (
	"context"
	"encoding/json"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
// The items snapshot is serialized to JSON here, at the storage boundary;
// the rest of the application only sees []entity.OrderItem.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// FindByID retrieves a single order by its ID.
func (repo *orderRepository) FindByID(ctx context.Context, id uint) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM)
}

// FindByUser retrieves a user's orders, newest first.
func (repo *orderRepository) FindByUser(ctx context.Context, userID uint) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	return toOrderDomainSlice(orderModels)
}

// FindAll retrieves every order, newest first. limit <= 0 means no limit.
func (repo *orderRepository) FindAll(ctx context.Context, limit int) ([]*entity.Order, error) {
	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var orderModels []*model.OrderModel
	if err := query.Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders")
	}

	return toOrderDomainSlice(orderModels)
}

// Count returns the total number of orders.
func (repo *orderRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return count, nil
}

// CountByStatus returns the number of orders in the given status.
func (repo *orderRepository) CountByStatus(ctx context.Context, status entity.OrderStatus) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("status = ?", status.String()).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders by status")
	}

	return count, nil
}

// Create persists a new order including its serialized items snapshot.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM, err := fromOrderDomain(order)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt

	return nil
}

// UpdateStatus sets the status of an existing order. Transition validation
// happens in the use case layer; this only writes the column.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uint, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", status.String())

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity,
// deserializing the items snapshot.
func toOrderDomain(data *model.OrderModel) (*entity.Order, error) {
	if data == nil {
		return nil, nil
	}

	var items []entity.OrderItem
	if data.Items != "" {
		if err := json.Unmarshal([]byte(data.Items), &items); err != nil {
			return nil, errors.Wrap(err, "failed to decode order items")
		}
	}

	return &entity.Order{
		ID:        data.ID,
		UserID:    data.UserID,
		Total:     data.Total,
		Status:    entity.OrderStatus(data.Status),
		Items:     items,
		CreatedAt: data.CreatedAt,
	}, nil
}

func toOrderDomainSlice(orderModels []*model.OrderModel) ([]*entity.Order, error) {
	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		order, err := toOrderDomain(orderM)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel,
// serializing the items snapshot.
func fromOrderDomain(data *entity.Order) (*model.OrderModel, error) {
	if data == nil {
		return nil, nil
	}

	encoded, err := json.Marshal(data.Items)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode order items")
	}

	return &model.OrderModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Total:     data.Total,
		Status:    data.Status.String(),
		Items:     string(encoded),
		CreatedAt: data.CreatedAt,
	}, nil
}
