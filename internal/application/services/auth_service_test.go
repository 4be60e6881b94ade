package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskflow/core/internal/domain/entities"
	"github.com/taskflow/core/internal/infrastructure/config"
	"github.com/taskflow/core/internal/infrastructure/logger"
	"github.com/taskflow/core/internal/ports"
)

type userRepoMock struct {
	mock.Mock
}

func (m *userRepoMock) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)

	var user *entities.User
	if value := args.Get(0); value != nil {
		user = value.(*entities.User)
	}
	return user, args.Error(1)
}

func (m *userRepoMock) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)

	var user *entities.User
	if value := args.Get(0); value != nil {
		user = value.(*entities.User)
	}
	return user, args.Error(1)
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:    "test-secret",
		ExpiresIn: time.Hour,
		Issuer:    "taskflow-test",
	}
}

func TestAuthService_RegisterAndValidateToken(t *testing.T) {
	repo := new(userRepoMock)
	var createdID uuid.UUID
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
		createdID = u.ID
		return u.Email == "a@x.com" && u.Name == "A" && u.PasswordHash != "p"
	})).Return(nil).Once()

	svc := NewAuthService(repo, testJWTConfig(), logger.NewNop())

	resp, err := svc.Register(context.Background(), ports.RegisterRequest{
		Name: "A", Email: "a@x.com", Password: "p",
	})
	require.NoError(t, err)
	require.Equal(t, "A", resp.User.Name)
	require.Equal(t, "a@x.com", resp.User.Email)
	require.NotEmpty(t, resp.Token)

	claims, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	require.Equal(t, createdID, claims.UserID)
	repo.AssertExpectations(t)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := new(userRepoMock)
	repo.On("Create", mock.Anything, mock.Anything).Return(entities.ErrEmailTaken).Once()

	svc := NewAuthService(repo, testJWTConfig(), logger.NewNop())

	_, err := svc.Register(context.Background(), ports.RegisterRequest{
		Name: "A", Email: "a@x.com", Password: "p",
	})
	require.ErrorIs(t, err, entities.ErrEmailTaken)
	repo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("p"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &entities.User{
		ID:           uuid.New(),
		Name:         "A",
		Email:        "a@x.com",
		PasswordHash: string(hash),
	}

	repo := new(userRepoMock)
	repo.On("GetByEmail", mock.Anything, "a@x.com").Return(user, nil)

	svc := NewAuthService(repo, testJWTConfig(), logger.NewNop())

	resp, err := svc.Login(context.Background(), ports.LoginRequest{Email: "a@x.com", Password: "p"})
	require.NoError(t, err)
	require.Equal(t, "A", resp.User.Name)

	claims, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)

	// Wrong password and unknown email collapse to the same error.
	_, err = svc.Login(context.Background(), ports.LoginRequest{Email: "a@x.com", Password: "wrong"})
	require.ErrorIs(t, err, entities.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := new(userRepoMock)
	repo.On("GetByEmail", mock.Anything, "ghost@x.com").Return(nil, entities.ErrUserNotFound).Once()

	svc := NewAuthService(repo, testJWTConfig(), logger.NewNop())

	_, err := svc.Login(context.Background(), ports.LoginRequest{Email: "ghost@x.com", Password: "p"})
	require.ErrorIs(t, err, entities.ErrInvalidCredentials)
	repo.AssertExpectations(t)
}

func TestAuthService_ValidateToken_Garbage(t *testing.T) {
	svc := NewAuthService(new(userRepoMock), testJWTConfig(), logger.NewNop())

	_, err := svc.ValidateToken("not-a-token")
	require.Error(t, err)

	_, err = svc.ValidateToken("")
	require.Error(t, err)
}

func TestAuthService_ValidateToken_WrongSecret(t *testing.T) {
	repo := new(userRepoMock)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	issuer := NewAuthService(repo, testJWTConfig(), logger.NewNop())
	resp, err := issuer.Register(context.Background(), ports.RegisterRequest{
		Name: "A", Email: "a@x.com", Password: "p",
	})
	require.NoError(t, err)

	other := NewAuthService(new(userRepoMock), config.JWTConfig{
		Secret:    "different-secret",
		ExpiresIn: time.Hour,
		Issuer:    "taskflow-test",
	}, logger.NewNop())

	_, err = other.ValidateToken(resp.Token)
	require.Error(t, err)
}
