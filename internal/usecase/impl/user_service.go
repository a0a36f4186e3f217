package impl

import (
	"context"
	"log/slog"
	"strings"

	"foodies/config"
	deliverycontext "foodies/internal/delivery/context"
	"foodies/internal/domain/entity"
	domainerrors "foodies/internal/domain/errors"
	"foodies/internal/domain/repository"
	"foodies/internal/domain/service"
	"foodies/internal/usecase"
	"foodies/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const avatarKeyPrefix = "avatars/"

// userService implements the UserUsecase interface.
type userService struct {
	txManager     repository.TransactionManager
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	identityCache service.IdentityCache
	uploader      service.ObjectUploader
	maxUploadSize int64
	logger        *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	Hasher        service.PasswordHasher
	TokenService  service.TokenService
	IdentityCache service.IdentityCache
	Uploader      service.ObjectUploader
	Config        *config.Config
	Logger        *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) (usecase.UserUsecase, error) {
	var maxUploadSize int64
	if params.Config != nil && params.Config.Storage != nil {
		size, err := params.Config.Storage.MaxUploadBytes()
		if err != nil {
			return nil, err
		}
		maxUploadSize = size
	}

	return &userService{
		txManager:     params.TxManager,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		identityCache: params.IdentityCache,
		uploader:      params.Uploader,
		maxUploadSize: maxUploadSize,
		logger:        params.Logger,
	}, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser creates an account with a Gravatar avatar. Email and name collisions are reported separately.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	name := strings.TrimSpace(input.Name)
	email := normalizeEmail(input.Email)
	if name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("name: must not be blank"), "register")
	}
	srv.log(ctx).Info("Starting registration", slog.String("name", name))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if errors.Is(err, domainerrors.ErrInvalidOperation) {
		return nil, err
	}
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	newUser := &entity.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		Avatar:       util.GravatarURL(email),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		existing, err := userRepo.FindByNameOrEmail(ctx, name, email)
		if err != nil {
			return errors.Wrap(err, "failed to look up existing users")
		}
		if err := collisionError(existing, name, email); err != nil {
			return err
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return mapUserWriteError(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("name", name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register user")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return newUser, nil
}

// Login verifies the password and stores the digest of a freshly issued refresh token.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error) {
	name := strings.TrimSpace(input.Name)

	var pair *service.TokenPair
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByName(ctx, name)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown user")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if !srv.hasher.Verify(input.Password, user.PasswordHash) {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
		}

		issued, err := srv.tokenService.IssuePair(user.Name)
		if err != nil {
			return errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
		}

		if err := userRepo.SetRefreshToken(ctx, user.ID, srv.tokenService.Digest(issued.RefreshToken)); err != nil {
			return errors.Wrap(err, "failed to store refresh token")
		}
		pair = issued

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("name", name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to login")
	}

	invalidateIdentities(ctx, srv.log(ctx), srv.identityCache, name)
	srv.log(ctx).Info("User logged in", slog.String("name", name))

	return &usecase.TokenOutput{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    usecase.TokenTypeBearer,
		Subject:      name,
	}, nil
}

// GetProfile returns a user with follower, following, recipe and favorite counts.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	srv.log(ctx).Debug("Getting user profile", slog.Any("userID", userID))

	profile := &entity.UserProfile{}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "profile lookup")
			}

			return errors.Wrap(err, "failed to find user")
		}
		profile.User = user

		relRepo := repoFactory.RelationshipRepo()
		if profile.FollowersCount, err = relRepo.CountFollowers(ctx, userID); err != nil {
			return err
		}
		if profile.FollowingCount, err = relRepo.CountFollowing(ctx, userID); err != nil {
			return err
		}
		if profile.FavoritesCount, err = relRepo.CountFavorites(ctx, userID); err != nil {
			return err
		}
		if profile.RecipesCount, err = repoFactory.RecipeRepo().CountByOwner(ctx, userID); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user profile")
	}

	return profile, nil
}

// UpdateProfile applies the non-nil fields. The cache entries for both the old and the new name are dropped.
func (srv *userService) UpdateProfile(ctx context.Context, current *entity.User, input *usecase.UpdateProfileInput) (*entity.User, error) {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("name: must not be blank"), "profile update")
	}
	srv.log(ctx).Info("Updating user profile", slog.Any("userID", current.ID))

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, current.ID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "profile update")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if input.Name != nil {
			user.Name = strings.TrimSpace(*input.Name)
		}
		if input.Email != nil {
			user.Email = normalizeEmail(*input.Email)
		}
		if input.Avatar != nil {
			user.Avatar = strings.TrimSpace(*input.Avatar)
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return mapUserWriteError(err, "failed to update user")
		}
		updated = user

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update user profile")
	}

	invalidateIdentities(ctx, srv.log(ctx), srv.identityCache, current.Name, updated.Name)

	return updated, nil
}

// UpdateAvatar stores the image at avatars/<user id><ext> and points the profile at it.
func (srv *userService) UpdateAvatar(ctx context.Context, current *entity.User, input *usecase.UploadInput) (*entity.User, error) {
	ext, contentType, err := imageExtension(input, srv.maxUploadSize)
	if err != nil {
		return nil, err
	}

	url, err := srv.uploader.Upload(ctx, avatarKeyPrefix+current.ID.String()+ext, contentType, input.Body)
	if err != nil {
		srv.log(ctx).Error("Failed to upload avatar", slog.Any("userID", current.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
	}

	return srv.UpdateProfile(ctx, current, &usecase.UpdateProfileInput{Avatar: &url})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// collisionError reports an email collision before a name collision.
func collisionError(existing []*entity.User, name, email string) error {
	for _, user := range existing {
		if user.Email == email {
			return domainerrors.ErrEmailTaken
		}
	}
	for _, user := range existing {
		if user.Name == name {
			return domainerrors.ErrNameTaken
		}
	}

	return nil
}

func mapUserWriteError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateEmail):
		return errors.Wrap(domainerrors.ErrEmailTaken, message)
	case errors.Is(err, repository.ErrDuplicateName):
		return errors.Wrap(domainerrors.ErrNameTaken, message)
	case errors.Is(err, repository.ErrUserNotFound):
		return errors.Wrap(domainerrors.ErrUserNotFound, message)
	default:
		return errors.Wrap(err, message)
	}
}
