package userrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"movebox/internal/core/domain/model/kernel"
	"movebox/internal/core/domain/model/user"
	"movebox/internal/pkg/errs"
)

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB, tracker aggregateTracker) *GormUserRepository {
	return &GormUserRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new user to the database.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing user to the database.
func (r *GormUserRepository) Update(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&UserDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("userID", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a user by ID.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("userID", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// AdjustCredit adds delta to the mover's balance with a single atomic
// increment. Two jobs completing at once both land their increments;
// there is no read-modify-write window to lose one in.
func (r *GormUserRepository) AdjustCredit(
	ctx context.Context,
	moverID kernel.UUID,
	delta kernel.Money,
) error {
	if err := moverID.Validate(); err != nil {
		return err
	}
	if err := delta.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&UserDTO{}).
		Where("id = ?", moverID.Bytes()).
		Update("credit_cents", gorm.Expr("credit_cents + ?", delta.Cents()))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("moverID", moverID.String())
	}

	return nil
}

// GetFcmToken retrieves the user's registered push token.
func (r *GormUserRepository) GetFcmToken(ctx context.Context, userID kernel.UUID) (string, error) {
	if err := userID.Validate(); err != nil {
		return "", err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errs.NewObjectNotFoundError("userID", userID.String())
		}
		return "", err
	}

	if dto.FcmToken == nil || *dto.FcmToken == "" {
		return "", errs.NewObjectNotFoundError("fcmToken", userID.String())
	}

	return *dto.FcmToken, nil
}

// ClearInvalidFcmToken forgets a token the push service rejected as
// unregistered, wherever it is stored.
func (r *GormUserRepository) ClearInvalidFcmToken(ctx context.Context, token string) error {
	if token == "" {
		return errs.NewValueIsRequiredError("token")
	}

	return r.db.WithContext(ctx).
		Model(&UserDTO{}).
		Where("fcm_token = ?", token).
		Update("fcm_token", nil).Error
}
