package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"foodies/internal/domain/entity"
	domainerrors "foodies/internal/domain/errors"
	"foodies/internal/domain/repository"
	"foodies/internal/infra/auth"
	"foodies/internal/infra/cache"
	mockSvc "foodies/internal/mocks/service"
	"foodies/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryUsers is an in-process UserRepository for end-to-end flows.
type memoryUsers struct {
	mu     sync.Mutex
	byName map[string]*entity.User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{byName: map[string]*entity.User{}}
}

func (m *memoryUsers) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m)
}

func (m *memoryUsers) UserRepo() repository.UserRepository { return m }
func (m *memoryUsers) RelationshipRepo() repository.RelationshipRepository { return nil }
func (m *memoryUsers) RecipeRepo() repository.RecipeRepository { return nil }

func (m *memoryUsers) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.byName {
		if user.ID == id {
			clone := *user

			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (m *memoryUsers) FindByName(_ context.Context, name string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.byName[name]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *user

	return &clone, nil
}

func (m *memoryUsers) FindByNameOrEmail(_ context.Context, name, email string) ([]*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var found []*entity.User
	for _, user := range m.byName {
		if user.Name == name || user.Email == email {
			found = append(found, user)
		}
	}

	return found, nil
}

func (m *memoryUsers) Create(_ context.Context, user *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byName[user.Name]; ok {
		return repository.ErrDuplicateName
	}
	user.ID = uuid.New()
	clone := *user
	m.byName[user.Name] = &clone

	return nil
}

func (m *memoryUsers) Update(_ context.Context, user *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	clone := *user
	m.byName[user.Name] = &clone

	return nil
}

func (m *memoryUsers) SetRefreshToken(_ context.Context, id uuid.UUID, digest string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.byName {
		if user.ID == id {
			user.RefreshToken = digest

			return nil
		}
	}

	return repository.ErrUserNotFound
}

func TestRegisterLoginResolveRotate(t *testing.T) {
	ctx := context.Background()
	cfg := newTestConfig()
	users := newMemoryUsers()

	hasher, err := auth.NewBcryptHasher(cfg)
	require.NoError(t, err)
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	store := cache.NewMemoryStore(time.Minute)
	t.Cleanup(func() { _ = store.Close() })
	identityCache := cache.NewIdentityCache(store)

	userSrv, err := NewUserService(UserServiceParams{
		TxManager:     users,
		Hasher:        hasher,
		TokenService:  tokens,
		IdentityCache: identityCache,
		Uploader:      mockSvc.NewMockObjectUploader(t),
		Config:        cfg,
		Logger:        newDiscardLogger(),
	})
	require.NoError(t, err)
	sessionSrv := NewSessionService(SessionServiceParams{
		TxManager:     users,
		UserRepo:      users,
		TokenService:  tokens,
		IdentityCache: identityCache,
		Config:        cfg,
		Logger:        newDiscardLogger(),
	})

	registered, err := userSrv.RegisterUser(ctx, &usecase.RegisterUserInput{Name: "alice", Email: "alice@example.com", Password: "s3cret!"})
	require.NoError(t, err)

	_, err = userSrv.Login(ctx, &usecase.LoginInput{Name: "alice", Password: "wrong"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	login, err := userSrv.Login(ctx, &usecase.LoginInput{Name: "alice", Password: "s3cret!"})
	require.NoError(t, err)
	assert.NotEqual(t, login.AccessToken, login.RefreshToken)
	assert.Equal(t, "alice", login.Subject)

	resolved, err := sessionSrv.Resolve(ctx, login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, resolved.ID)

	_, err = sessionSrv.Resolve(ctx, login.RefreshToken)
	require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	_, err = sessionSrv.RefreshToken(ctx, login.AccessToken)
	require.ErrorIs(t, err, domainerrors.ErrInvalidRefreshToken)

	refreshed, err := sessionSrv.RefreshToken(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, login.RefreshToken, refreshed.RefreshToken)
	assert.Equal(t, "alice", refreshed.Subject)

	resolved, err = sessionSrv.Resolve(ctx, refreshed.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", resolved.Name)

	require.NoError(t, sessionSrv.Logout(ctx, login.RefreshToken))
	_, err = sessionSrv.RefreshToken(ctx, login.RefreshToken)
	require.ErrorIs(t, err, domainerrors.ErrInvalidRefreshToken)
}
