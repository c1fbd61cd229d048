package impl

import (
	"context"
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

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service  usecase.UserUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockService.MockPasswordHasher
	sessions *mockService.MockSessionStore
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	sessions := mockService.NewMockSessionStore(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewUserRepository().Return(userRepo).Maybe()
	txManager := passthroughTxManager(t, factory)

	service := NewUserService(UserServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Hasher:    hasher,
		Sessions:  sessions,
		Logger:    newDiscardLogger(),
	})

	return userServiceFixtures{
		service:  service,
		userRepo: userRepo,
		hasher:   hasher,
		sessions: sessions,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("secret123").Return("hashed", nil)

	fx.userRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "alice@example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			user.ID = 7
			return nil
		})

	out, err := fx.service.Register(ctx, usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 7, out.User.ID)
	assert.Equal(t, "hashed", out.User.PasswordHash)
	assert.False(t, out.User.IsAdmin)
}

func TestUserService_Register_DuplicateUsername(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("secret123").Return("hashed", nil)
	fx.userRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(&entity.User{ID: 1, Username: "alice"}, nil)

	_, err := fx.service.Register(ctx, usecase.RegisterInput{
		Username: "alice",
		Email:    "new@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateUsername)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("secret123").Return("hashed", nil)
	fx.userRepo.EXPECT().
		FindByUsername(ctx, "newuser").
		Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "alice@example.com").
		Return(&entity.User{ID: 1, Email: "alice@example.com"}, nil)

	_, err := fx.service.Register(ctx, usecase.RegisterInput{
		Username: "newuser",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateEmail)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: 3, Username: "alice", PasswordHash: "hashed"}
	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
	fx.hasher.EXPECT().Check("secret123", "hashed").Return(true)
	fx.sessions.EXPECT().Create(ctx, uint(3)).Return("token-abc", nil)

	out, err := fx.service.Login(ctx, usecase.LoginInput{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "token-abc", out.Token)
	assert.Equal(t, user, out.User)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: 3, Username: "alice", PasswordHash: "hashed"}
	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownUserSameError(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByUsername(ctx, "ghost").
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Username: "ghost", Password: "whatever"})

	// Unknown user and wrong password are indistinguishable to the caller.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Logout_DestroysSession(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.sessions.EXPECT().Destroy(ctx, "token-abc").Return()

	require.NoError(t, fx.service.Logout(ctx, "token-abc"))
}
