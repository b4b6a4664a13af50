package postgres

import (
	"context"

	"github.com/ajlevin/csc365-final-project/internal/domain/entity"
	domainerrors "github.com/ajlevin/csc365-final-project/internal/domain/errors"
	"github.com/ajlevin/csc365-final-project/internal/domain/repository"
	"github.com/ajlevin/csc365-final-project/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain's UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Create persists a new user. The database arbitrates email uniqueness;
// no pre-check is performed, so concurrent duplicates lose here.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Propagate the generated id and timestamps back onto the entity.
	user.ID = userM.UserID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindByID retrieves a single user by their numeric ID.
func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", id).
		First(&userM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByIDAndEmail retrieves the user matching both id and email with a
// single query. Requiring both predicates in one lookup means an unknown id
// and a mismatched email are indistinguishable to the caller.
func (repo *userRepository) FindByIDAndEmail(ctx context.Context, id int64, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND email = ?", id, email).
		First(&userM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id and email")
	}

	return toUserDomain(&userM), nil
}

// UpdateProfile overwrites name, email and age for an existing user.
// The column list is explicit so the password digest can never be touched
// through this path.
func (repo *userRepository) UpdateProfile(ctx context.Context, id int64, name, email string, age int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("user_id = ?", id).
		Updates(map[string]any{
			"name":  name,
			"email": email,
			"age":   age,
		})

	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserUpdateFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.UserID,
		Name:         data.Name,
		Email:        data.Email,
		Age:          data.Age,
		PasswordHash: data.Password,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		UserID:   data.ID,
		Name:     data.Name,
		Email:    data.Email,
		Age:      data.Age,
		Password: data.PasswordHash,
	}
}
