package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"time"

	"foodies/config"
	deliverycontext "foodies/internal/delivery/context"
	"foodies/internal/domain/entity"
	domainerrors "foodies/internal/domain/errors"
	"foodies/internal/domain/repository"
	"foodies/internal/domain/service"
	"foodies/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager     repository.TransactionManager
	userRepo      repository.UserRepository
	tokenService  service.TokenService
	identityCache service.IdentityCache
	cacheTTL      time.Duration
	rotateRefresh bool
	logger        *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	UserRepo      repository.UserRepository
	TokenService  service.TokenService
	IdentityCache service.IdentityCache
	Config        *config.Config
	Logger        *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	srv := &sessionService{
		txManager:     params.TxManager,
		userRepo:      params.UserRepo,
		tokenService:  params.TokenService,
		identityCache: params.IdentityCache,
		logger:        params.Logger,
	}
	if params.Config != nil {
		if params.Config.Cache != nil {
			srv.cacheTTL = params.Config.Cache.TTL
		}
		if params.Config.Auth != nil {
			srv.rotateRefresh = params.Config.Auth.RotateRefreshTokens
		}
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve verifies an access token and loads its subject, serving repeated lookups from the identity cache.
func (srv *sessionService) Resolve(ctx context.Context, accessToken string) (*entity.User, error) {
	claims, err := srv.tokenService.Verify(accessToken, service.TokenKindAccess)
	if err != nil {
		srv.log(ctx).Debug("Access token rejected", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, err.Error())
	}
	name := claims.Subject

	cached, err := srv.identityCache.Get(ctx, name)
	switch {
	case err == nil:
		return cached, nil
	case !errors.Is(err, service.ErrCacheMiss):
		srv.log(ctx).Warn("Identity cache read failed", slog.String("name", name), slog.Any("error", err))
	}

	user, err := srv.userRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "token subject no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load token subject")
	}

	if err := srv.identityCache.Put(ctx, name, user, srv.cacheTTL); err != nil {
		srv.log(ctx).Warn("Identity cache write failed", slog.String("name", name), slog.Any("error", err))
	}

	return user, nil
}

// RefreshToken issues a new access token for the holder of the stored refresh token
// and reports the subject it was issued for. With rotation enabled the refresh token is replaced as well.
func (srv *sessionService) RefreshToken(ctx context.Context, refreshToken string) (*usecase.TokenOutput, error) {
	output := &usecase.TokenOutput{RefreshToken: refreshToken, TokenType: usecase.TokenTypeBearer}

	var name string
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := srv.authenticateRefreshToken(ctx, userRepo, refreshToken)
		if err != nil {
			return err
		}
		name = user.Name
		output.Subject = user.Name

		if !srv.rotateRefresh {
			access, err := srv.tokenService.IssueAccess(user.Name)
			if err != nil {
				return errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
			}
			output.AccessToken = access

			return nil
		}

		pair, err := srv.tokenService.IssuePair(user.Name)
		if err != nil {
			return errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
		}
		if err := userRepo.SetRefreshToken(ctx, user.ID, srv.tokenService.Digest(pair.RefreshToken)); err != nil {
			return errors.Wrap(err, "failed to rotate refresh token")
		}
		output.AccessToken = pair.AccessToken
		output.RefreshToken = pair.RefreshToken

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Token refresh failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to refresh token")
	}

	if srv.rotateRefresh {
		invalidateIdentities(ctx, srv.log(ctx), srv.identityCache, name)
	}

	return output, nil
}

// Logout clears the stored refresh token. Access tokens already issued stay valid until they expire.
func (srv *sessionService) Logout(ctx context.Context, refreshToken string) error {
	var name string
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := srv.authenticateRefreshToken(ctx, userRepo, refreshToken)
		if err != nil {
			return err
		}
		name = user.Name

		if err := userRepo.SetRefreshToken(ctx, user.ID, ""); err != nil {
			return errors.Wrap(err, "failed to clear refresh token")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Logout failed", slog.Any("error", err))

		return errors.Wrap(err, "failed to logout")
	}

	invalidateIdentities(ctx, srv.log(ctx), srv.identityCache, name)
	srv.log(ctx).Info("User logged out", slog.String("name", name))

	return nil
}

// authenticateRefreshToken returns the user whose stored digest matches the token.
func (srv *sessionService) authenticateRefreshToken(ctx context.Context, userRepo repository.UserRepository, refreshToken string) (*entity.User, error) {
	claims, err := srv.tokenService.Verify(refreshToken, service.TokenKindRefresh)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidRefreshToken, err.Error())
	}

	user, err := userRepo.FindByName(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidRefreshToken, "token subject no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load token subject")
	}

	digest := srv.tokenService.Digest(refreshToken)
	if !user.HasActiveSession() || subtle.ConstantTimeCompare([]byte(user.RefreshToken), []byte(digest)) != 1 {
		return nil, errors.Wrap(domainerrors.ErrInvalidRefreshToken, "refresh token is not the active one")
	}

	return user, nil
}
