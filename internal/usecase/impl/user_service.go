// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "github.com/ajlevin/csc365-final-project/internal/delivery/context"
	"github.com/ajlevin/csc365-final-project/internal/domain/entity"
	domainerrors "github.com/ajlevin/csc365-final-project/internal/domain/errors"
	"github.com/ajlevin/csc365-final-project/internal/domain/repository"
	"github.com/ajlevin/csc365-final-project/internal/domain/service"
	"github.com/ajlevin/csc365-final-project/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dummyPasswordDigest is a bcrypt digest of a throwaway value. The not-found
// branch of authenticate compares against it and discards the result, so a
// miss pays the same bcrypt cost as a password mismatch.
const dummyPasswordDigest = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser hashes the password and inserts the new user. There is no
// uniqueness pre-check: the database arbitrates concurrent registrations
// with the same email, and the loser gets the already-exists error.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Registering user", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password")
	}

	newUser := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		Age:          input.Age,
		PasswordHash: hashedPassword,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().Create(ctx, newUser)
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to register user", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register user")
	}

	srv.log(ctx).Debug("User registered", slog.Int64("userID", newUser.ID))

	return &usecase.RegisterOutput{UserID: newUser.ID}, nil
}

// AuthenticateUser loads the row matching both the target id and the claimed
// email in one query, then verifies the password against the stored digest.
// Every failure mode collapses to ErrInvalidCredentials so the response
// never reveals whether the identity or the password was wrong.
func (srv *userService) AuthenticateUser(ctx context.Context, userID int64, login *usecase.LoginInput) (*usecase.UserOutput, error) {
	user, err := srv.authenticate(ctx, srv.userRepo, userID, login)
	if err != nil {
		return nil, err
	}

	return usecase.NewUserOutput(user), nil
}

// UpdateUser authenticates against the target user and overwrites the
// mutable profile fields. Authentication and update run in one transaction,
// so a failed credential leaves the row untouched.
func (srv *userService) UpdateUser(ctx context.Context, userID int64, input *usecase.UpdateUserInput) error {
	srv.log(ctx).Info("Updating user", slog.Int64("userID", userID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if _, err := srv.authenticate(ctx, userRepo, userID, &input.Login); err != nil {
			return err
		}

		if err := userRepo.UpdateProfile(ctx, userID, input.Profile.Name, input.Profile.Email, input.Profile.Age); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				// The row authenticated a moment ago; treat a vanished row
				// as a plain update failure.
				return errors.Wrap(domainerrors.ErrUserUpdateFailed, "user row missing during update")
			}

			return errors.Wrap(err, "failed to update user profile")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to update user", slog.Int64("userID", userID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Debug("User updated", slog.Int64("userID", userID))

	return nil
}

// authenticate is the shared credential check. The id+email lookup is a
// single query, so an unknown id and a mismatched email are already
// indistinguishable before the password is even considered.
func (srv *userService) authenticate(ctx context.Context, userRepo repository.UserRepository, userID int64, login *usecase.LoginInput) (*entity.User, error) {
	user, err := userRepo.FindByIDAndEmail(ctx, userID, login.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Burn the same hashing work as the mismatch path so response
			// time does not reveal whether the identity exists.
			srv.hasher.Check(login.Password, dummyPasswordDigest)

			srv.log(ctx).Warn("Authentication failed: no matching user", slog.Int64("userID", userID))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "no user matching id and email")
		}

		return nil, errors.Wrap(err, "failed to look up user for authentication")
	}

	if !srv.hasher.Check(login.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Authentication failed: password mismatch", slog.Int64("userID", userID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	return user, nil
}
