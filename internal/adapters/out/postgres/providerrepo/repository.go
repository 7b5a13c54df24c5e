package providerrepo

import (
	"context"
	"errors"

	"fixmate/internal/core/domain/model/kernel"
	"fixmate/internal/core/domain/model/provider"
	"fixmate/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProviderRepository implements ProviderRepository using GORM.
type GormProviderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProviderRepository creates a new GORM provider repository.
func NewGormProviderRepository(db *gorm.DB, tracker aggregateTracker) *GormProviderRepository {
	return &GormProviderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new provider to the database.
func (r *GormProviderRepository) Add(ctx context.Context, aggregate *provider.ServiceProvider) error {
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

// Update saves an existing provider to the database.
// Select("*") forces all columns to be written so that flipping IsAvailable
// to false is not skipped as a zero value.
func (r *GormProviderRepository) Update(ctx context.Context, aggregate *provider.ServiceProvider) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ProviderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a provider by ID.
func (r *GormProviderRepository) Get(ctx context.Context, id kernel.UUID) (*provider.ServiceProvider, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProviderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("provider", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllAvailable retrieves all providers currently accepting work.
func (r *GormProviderRepository) GetAllAvailable(ctx context.Context) ([]*provider.ServiceProvider, error) {
	var dtos []ProviderDTO
	if err := r.db.WithContext(ctx).Order("full_name").Find(&dtos, "is_available = ?", true).Error; err != nil {
		return nil, err
	}

	providers := make([]*provider.ServiceProvider, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		providers = append(providers, p)
	}

	return providers, nil
}
