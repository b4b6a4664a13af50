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

// climbRepository implements the domain's ClimbRepository interface using GORM.
type climbRepository struct {
	db *gorm.DB
}

// NewClimbRepository is the constructor for climbRepository.
func NewClimbRepository(db *gorm.DB) repository.ClimbRepository {
	return &climbRepository{db: db}
}

// Create persists a new climb record. Foreign key violations mean the climb
// referenced a user or route that doesn't exist.
func (repo *climbRepository) Create(ctx context.Context, climb *entity.Climb) error {
	climbM := fromClimbDomain(climb)

	if err := repo.db.WithContext(ctx).Create(climbM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrClimbInvalidReference
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to log climb")
	}

	climb.ID = climbM.ClimbingID
	climb.ClimbedAt = climbM.CreatedAt

	return nil
}

// ListByUser returns all climbs logged by one user, newest first.
func (repo *climbRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.Climb, error) {
	var climbMs []model.ClimbModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("climbed_at DESC").
		Find(&climbMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list climbs by user")
	}

	climbs := make([]*entity.Climb, 0, len(climbMs))
	for i := range climbMs {
		climbs = append(climbs, toClimbDomain(&climbMs[i]))
	}

	return climbs, nil
}

func toClimbDomain(data *model.ClimbModel) *entity.Climb {
	if data == nil {
		return nil
	}

	return &entity.Climb{
		ID:        data.ClimbingID,
		UserID:    data.UserID,
		RouteID:   data.RouteID,
		ClimbedAt: data.CreatedAt,
	}
}

func fromClimbDomain(data *entity.Climb) *model.ClimbModel {
	if data == nil {
		return nil
	}

	return &model.ClimbModel{
		ClimbingID: data.ID,
		UserID:     data.UserID,
		RouteID:    data.RouteID,
	}
}
