package requestrepo

import (
	"context"
	"errors"

	"fixmate/internal/core/domain/model/kernel"
	"fixmate/internal/core/domain/model/request"
	"fixmate/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRequestRepository implements RequestRepository using GORM.
type GormRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRequestRepository creates a new GORM request repository.
func NewGormRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormRequestRepository {
	return &GormRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new service request to the database.
func (r *GormRequestRepository) Add(ctx context.Context, aggregate *request.ServiceRequest) error {
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

// Update saves an existing service request to the database.
// The write only matches the row at the version the aggregate was read at and
// bumps the version on success. A zero-row result means another writer got
// there first (or the row is gone) and surfaces as a Conflict error.
func (r *GormRequestRepository) Update(ctx context.Context, aggregate *request.ServiceRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RequestDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"provider_id":  dto.ProviderID,
			"service_type": dto.ServiceType,
			"notes":        dto.Notes,
			"status":       dto.Status,
			"completed_at": dto.CompletedAt,
			"version":      dto.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("request was modified concurrently")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a service request by ID.
func (r *GormRequestRepository) Get(ctx context.Context, id kernel.UUID) (*request.ServiceRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("request", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetFirstInPendingStatus retrieves the oldest request with Pending status.
func (r *GormRequestRepository) GetFirstInPendingStatus(ctx context.Context) (*request.ServiceRequest, error) {
	var dto RequestDTO
	err := r.db.WithContext(ctx).
		Where("status = ?", request.Pending).
		Order("requested_at").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("request", "first in pending status")
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByVehicle retrieves all requests referencing the given vehicle.
func (r *GormRequestRepository) GetAllByVehicle(
	ctx context.Context, vehicleID kernel.UUID,
) ([]*request.ServiceRequest, error) {
	if err := vehicleID.Validate(); err != nil {
		return nil, err
	}

	return r.findAll(ctx, "vehicle_id = ?", vehicleID.Bytes())
}

// GetAllByProvider retrieves all requests assigned to the given provider.
func (r *GormRequestRepository) GetAllByProvider(
	ctx context.Context, providerID kernel.UUID,
) ([]*request.ServiceRequest, error) {
	if err := providerID.Validate(); err != nil {
		return nil, err
	}

	return r.findAll(ctx, "provider_id = ?", providerID.Bytes())
}

func (r *GormRequestRepository) findAll(ctx context.Context, query string, args ...any) ([]*request.ServiceRequest, error) {
	var dtos []RequestDTO
	if err := r.db.WithContext(ctx).Where(query, args...).Order("requested_at").Find(&dtos).Error; err != nil {
		return nil, err
	}

	requests := make([]*request.ServiceRequest, 0, len(dtos))
	for _, dto := range dtos {
		req, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, nil
}
