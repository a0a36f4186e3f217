package impl

import (
	"context"
	"testing"
	"time"

	"foodies/config"
	"foodies/internal/domain/entity"
	domainerrors "foodies/internal/domain/errors"
	"foodies/internal/domain/repository"
	"foodies/internal/domain/service"
	"foodies/internal/infra/cache"
	mockRepo "foodies/internal/mocks/repository"
	mockSvc "foodies/internal/mocks/service"
	"foodies/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionServiceFixture struct {
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	userRepo  *mockRepo.MockUserRepository
	tokens    *mockSvc.MockTokenService
	cache     *mockSvc.MockIdentityCache
}

func newSessionServiceFixture(t *testing.T) *sessionServiceFixture {
	return &sessionServiceFixture{
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		tokens:    mockSvc.NewMockTokenService(t),
		cache:     mockSvc.NewMockIdentityCache(t),
	}
}

func (f *sessionServiceFixture) build(cfg *config.Config) usecase.SessionUsecase {
	return NewSessionService(SessionServiceParams{
		TxManager:     f.txManager,
		UserRepo:      f.userRepo,
		TokenService:  f.tokens,
		IdentityCache: f.cache,
		Config:        cfg,
		Logger:        newDiscardLogger(),
	})
}

func (f *sessionServiceFixture) expectUserTx(t *testing.T) {
	expectTransaction(t, f.txManager, f.factory)
	f.factory.EXPECT().UserRepo().Return(f.userRepo)
}

func TestSessionService_Resolve_CacheHit(t *testing.T) {
	f := newSessionServiceFixture(t)
	srv := f.build(newTestConfig())
	ctx := context.Background()
	cached := &entity.User{ID: uuid.New(), Name: "alice"}

	f.tokens.EXPECT().Verify("access", service.TokenKindAccess).Return(&service.Claims{TokenType: service.TokenKindAccess, RegisteredClaims: subject("alice")}, nil)
	f.cache.EXPECT().Get(ctx, "alice").Return(cached, nil)

	user, err := srv.Resolve(ctx, "access")

	require.NoError(t, err)
	assert.Same(t, cached, user)
}

func TestSessionService_Resolve_CacheMissPopulates(t *testing.T) {
	f := newSessionServiceFixture(t)
	srv := f.build(newTestConfig())
	ctx := context.Background()
	stored := &entity.User{ID: uuid.New(), Name: "alice"}

	f.tokens.EXPECT().Verify("access", service.TokenKindAccess).Return(&service.Claims{RegisteredClaims: subject("alice")}, nil)
	f.cache.EXPECT().Get(ctx, "alice").Return(nil, service.ErrCacheMiss)
	f.userRepo.EXPECT().FindByName(ctx, "alice").Return(stored, nil)
	f.cache.EXPECT().Put(ctx, "alice", stored, 300*time.Second).Return(nil)

	user, err := srv.Resolve(ctx, "access")

	require.NoError(t, err)
	assert.Equal(t, stored.ID, user.ID)
}

func TestSessionService_Resolve_CacheErrorsAreMisses(t *testing.T) {
	f := newSessionServiceFixture(t)
	srv := f.build(newTestConfig())
	ctx := context.Background()
	stored := &entity.User{ID: uuid.New(), Name: "alice"}

	f.tokens.EXPECT().Verify("access", service.TokenKindAccess).Return(&service.Claims{RegisteredClaims: subject("alice")}, nil)
	f.cache.EXPECT().Get(ctx, "alice").Return(nil, errors.New("redis: connection refused"))
	f.userRepo.EXPECT().FindByName(ctx, "alice").Return(stored, nil)
	f.cache.EXPECT().Put(ctx, "alice", stored, 300*time.Second).Return(errors.New("redis: connection refused"))

	user, err := srv.Resolve(ctx, "access")

	require.NoError(t, err)
	assert.Equal(t, stored.ID, user.ID)
}

func TestSessionService_Resolve_RejectsTokens(t *testing.T) {
	for _, reason := range []error{
		service.ErrTokenExpired,
		service.ErrTokenInvalidSignature,
		service.ErrTokenWrongType,
		service.ErrTokenMalformed,
	} {
		t.Run(reason.Error(), func(t *testing.T) {
			f := newSessionServiceFixture(t)
			srv := f.build(newTestConfig())
			f.tokens.EXPECT().Verify("token", service.TokenKindAccess).Return(nil, reason)

			_, err := srv.Resolve(context.Background(), "token")

			assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
		})
	}
}

func TestSessionService_Resolve_UnknownSubject(t *testing.T) {
	f := newSessionServiceFixture(t)
	srv := f.build(newTestConfig())
	ctx := context.Background()

	f.tokens.EXPECT().Verify("access", service.TokenKindAccess).Return(&service.Claims{RegisteredClaims: subject("ghost")}, nil)
	f.cache.EXPECT().Get(ctx, "ghost").Return(nil, service.ErrCacheMiss)
	f.userRepo.EXPECT().FindByName(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	_, err := srv.Resolve(ctx, "access")

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestSessionService_Resolve_LoadsOncePerCacheLifetime(t *testing.T) {
	f := newSessionServiceFixture(t)
	cfg := newTestConfig()
	store := cache.NewMemoryStore(time.Minute)
	t.Cleanup(func() { _ = store.Close() })
	srv := NewSessionService(SessionServiceParams{
		TxManager:     f.txManager,
		UserRepo:      f.userRepo,
		TokenService:  f.tokens,
		IdentityCache: cache.NewIdentityCache(store),
		Config:        cfg,
		Logger:        newDiscardLogger(),
	})
	ctx := context.Background()
	stored := &entity.User{ID: uuid.New(), Name: "alice", Email: "alice@example.com"}

	f.tokens.EXPECT().Verify("access", service.TokenKindAccess).Return(&service.Claims{RegisteredClaims: subject("alice")}, nil).Times(2)
	f.userRepo.EXPECT().FindByName(ctx, "alice").Return(stored, nil).Once()

	first, err := srv.Resolve(ctx, "access")
	require.NoError(t, err)
	second, err := srv.Resolve(ctx, "access")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "alice@example.com", second.Email)
}

func TestSessionService_RefreshToken_KeepsRefreshToken(t *testing.T) {
	f := newSessionServiceFixture(t)
	srv := f.build(newTestConfig())
	ctx := context.Background()
	f.expectUserTx(t)

	f.tokens.EXPECT().Verify("refresh", service.TokenKindRefresh).Return(&service.Claims{RegisteredClaims: subject("alice")}, nil)
	f.userRepo.EXPECT().FindByName(ctx, "alice").Return(&entity.User{Name: "alice", RefreshToken: "digest"}, nil)
	f.tokens.EXPECT().Digest("refresh").Return("digest")
	f.tokens.EXPECT().IssueAccess("alice").Return("new-access", nil)

	out, err := srv.RefreshToken(ctx, "refresh")

	require.NoError(t, err)
	assert.Equal(t, "new-access", out.AccessToken)
	assert.Equal(t, "refresh", out.RefreshToken)
	assert.Equal(t, "bearer", out.TokenType)
	assert.Equal(t, "alice", out.Subject)
}

func TestSessionService_RefreshToken_Rotates(t *testing.T) {
	f := newSessionServiceFixture(t)
	cfg := newTestConfig()
	cfg.Auth.RotateRefreshTokens = true
	srv := f.build(cfg)
	ctx := context.Background()
	userID := uuid.New()
	f.expectUserTx(t)

	f.tokens.EXPECT().Verify("refresh", service.TokenKindRefresh).Return(&service.Claims{RegisteredClaims: subject("alice")}, nil)
	f.userRepo.EXPECT().FindByName(ctx, "alice").Return(&entity.User{ID: userID, Name: "alice", RefreshToken: "digest"}, nil)
	f.tokens.EXPECT().Digest("refresh").Return("digest")
	f.tokens.EXPECT().IssuePair("alice").Return(&service.TokenPair{AccessToken: "a2", RefreshToken: "r2"}, nil)
	f.tokens.EXPECT().Digest("r2").Return("digest2")
	f.userRepo.EXPECT().SetRefreshToken(ctx, userID, "digest2").Return(nil)
	f.cache.EXPECT().Invalidate(ctx, "alice").Return(nil)

	out, err := srv.RefreshToken(ctx, "refresh")

	require.NoError(t, err)
	assert.Equal(t, "a2", out.AccessToken)
	assert.Equal(t, "r2", out.RefreshToken)
	assert.Equal(t, "alice", out.Subject)
}

func TestSessionService_RefreshToken_Rejections(t *testing.T) {
	t.Run("wrong kind", func(t *testing.T) {
		f := newSessionServiceFixture(t)
		srv := f.build(newTestConfig())
		f.expectUserTx(t)
		f.tokens.EXPECT().Verify("access", service.TokenKindRefresh).Return(nil, service.ErrTokenWrongType)

		_, err := srv.RefreshToken(context.Background(), "access")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidRefreshToken)
	})

	t.Run("superseded token", func(t *testing.T) {
		f := newSessionServiceFixture(t)
		srv := f.build(newTestConfig())
		ctx := context.Background()
		f.expectUserTx(t)
		f.tokens.EXPECT().Verify("old", service.TokenKindRefresh).Return(&service.Claims{RegisteredClaims: subject("alice")}, nil)
		f.userRepo.EXPECT().FindByName(ctx, "alice").Return(&entity.User{Name: "alice", RefreshToken: "current"}, nil)
		f.tokens.EXPECT().Digest("old").Return("stale")

		_, err := srv.RefreshToken(ctx, "old")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidRefreshToken)
	})

	t.Run("logged out", func(t *testing.T) {
		f := newSessionServiceFixture(t)
		srv := f.build(newTestConfig())
		ctx := context.Background()
		f.expectUserTx(t)
		f.tokens.EXPECT().Verify("refresh", service.TokenKindRefresh).Return(&service.Claims{RegisteredClaims: subject("alice")}, nil)
		f.userRepo.EXPECT().FindByName(ctx, "alice").Return(&entity.User{Name: "alice"}, nil)
		f.tokens.EXPECT().Digest("refresh").Return("")

		_, err := srv.RefreshToken(ctx, "refresh")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidRefreshToken)
	})
}

func TestSessionService_Logout(t *testing.T) {
	f := newSessionServiceFixture(t)
	srv := f.build(newTestConfig())
	ctx := context.Background()
	userID := uuid.New()
	f.expectUserTx(t)

	f.tokens.EXPECT().Verify("refresh", service.TokenKindRefresh).Return(&service.Claims{RegisteredClaims: subject("alice")}, nil)
	f.userRepo.EXPECT().FindByName(ctx, "alice").Return(&entity.User{ID: userID, Name: "alice", RefreshToken: "digest"}, nil)
	f.tokens.EXPECT().Digest("refresh").Return("digest")
	f.userRepo.EXPECT().SetRefreshToken(ctx, userID, "").Return(nil)
	f.cache.EXPECT().Invalidate(ctx, "alice").Return(nil)

	require.NoError(t, srv.Logout(ctx, "refresh"))
}
