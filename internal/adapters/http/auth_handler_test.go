package http

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/taskflow/core/internal/application/services"
	"github.com/taskflow/core/internal/domain/entities"
	"github.com/taskflow/core/internal/infrastructure/config"
	"github.com/taskflow/core/internal/infrastructure/logger"
	"github.com/taskflow/core/internal/ports"
)

// memUserRepo is an in-memory UserRepository with a unique email constraint.
type memUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]entities.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]entities.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return entities.ErrEmailTaken
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now().UTC()
	r.users[user.ID] = *user
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	return &user, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

func newAuthRouter(repo ports.UserRepository) (*echo.Echo, *services.AuthService) {
	e := echo.New()
	e.Validator = &testValidator{validate: validator.New()}

	authService := services.NewAuthService(repo, config.JWTConfig{
		Secret:    "test-secret",
		ExpiresIn: time.Hour,
		Issuer:    "taskflow-test",
	}, logger.NewNop())
	handler := NewAuthHandler(authService, logger.NewNop())

	e.POST("/api/auth/register", handler.Register)
	e.POST("/api/auth/login", handler.Login)

	return e, authService
}

func TestAuthHandler_RegisterThenLogin(t *testing.T) {
	e, authService := newAuthRouter(newMemUserRepo())

	rec := doJSON(e, http.MethodPost, "/api/auth/register",
		`{"name":"A","email":"a@x.com","password":"p"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var registered ports.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &registered))
	require.Equal(t, "A", registered.User.Name)
	require.Equal(t, "a@x.com", registered.User.Email)
	require.NotEmpty(t, registered.Token)

	rec = doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"a@x.com","password":"p"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var loggedIn ports.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loggedIn))
	require.Equal(t, registered.User, loggedIn.User)
	require.NotEmpty(t, loggedIn.Token)

	// Both tokens identify the same user.
	c1, err := authService.ValidateToken(registered.Token)
	require.NoError(t, err)
	c2, err := authService.ValidateToken(loggedIn.Token)
	require.NoError(t, err)
	require.Equal(t, c1.UserID, c2.UserID)
}

func TestAuthHandler_RegisterDuplicateEmail(t *testing.T) {
	e, _ := newAuthRouter(newMemUserRepo())

	rec := doJSON(e, http.MethodPost, "/api/auth/register",
		`{"name":"A","email":"a@x.com","password":"p"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/auth/register",
		`{"name":"B","email":"a@x.com","password":"q"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Email already exists")
}

func TestAuthHandler_LoginBadCredentials(t *testing.T) {
	e, _ := newAuthRouter(newMemUserRepo())

	rec := doJSON(e, http.MethodPost, "/api/auth/register",
		`{"name":"A","email":"a@x.com","password":"p"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Wrong password and unknown email produce the same response.
	rec = doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"a@x.com","password":"wrong"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Invalid credentials")

	rec = doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"ghost@x.com","password":"p"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Invalid credentials")
}

func TestAuthHandler_RegisterMissingFields(t *testing.T) {
	e, _ := newAuthRouter(newMemUserRepo())

	rec := doJSON(e, http.MethodPost, "/api/auth/register", `{"email":"a@x.com"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
