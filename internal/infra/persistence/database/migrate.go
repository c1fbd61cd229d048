package database

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the database schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.ProductModel{},
		&model.CartItemModel{},
		&model.OrderModel{},
		&model.FileUploadModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}

// SeedAdmin ensures the default administrator account exists. It is
// idempotent: when the username is already taken the seed is skipped, so a
// changed default password never overwrites a live account.
func SeedAdmin(ctx context.Context, db *gorm.DB, cfg *config.Config, hasher service.PasswordHasher, logger *slog.Logger) error {
	users := NewUserRepository(db)

	_, err := users.FindByUsername(ctx, cfg.Auth.DefaultAdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to look up default admin")
	}

	hash, err := hasher.Hash(cfg.Auth.DefaultAdminPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash default admin password")
	}

	admin := &entity.User{
		Username:     cfg.Auth.DefaultAdminUsername,
		Email:        cfg.Auth.DefaultAdminEmail,
		PasswordHash: hash,
		IsAdmin:      true,
	}
	if err := users.Create(ctx, admin); err != nil {
		return errors.Wrap(err, "failed to seed default admin")
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Seeded default admin account",
		slog.String("username", admin.Username),
		slog.Uint64("userID", uint64(admin.ID)),
	)

	return nil
}
