package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dana/castmatch/internal/domain"
)

// ActorRepository handles roster data operations.
type ActorRepository struct {
	db *gorm.DB
}

// NewActorRepository creates a new ActorRepository.
// Parameters:
//   - db: GORM database handle used for queries.
// Returns:
//   - *ActorRepository: repository instance bound to db.
func NewActorRepository(db *gorm.DB) *ActorRepository {
	return &ActorRepository{db: db}
}

// Upsert creates or updates an actor record keyed by name.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - actor: actor record to create or update.
// Returns:
//   - error: non-nil if the upsert fails.
func (r *ActorRepository) Upsert(ctx context.Context, actor *domain.ActorRecord) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		UpdateAll: true,
	}).Create(actor).Error
}

// UpsertBatch creates or updates many actor records in one statement.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - actors: actor records to create or update.
// Returns:
//   - error: non-nil if the upsert fails.
func (r *ActorRepository) UpsertBatch(ctx context.Context, actors []domain.ActorRecord) error {
	if len(actors) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		UpdateAll: true,
	}).CreateInBatches(actors, 100).Error
}

// List retrieves all actor records ordered by name.
// Parameters:
//   - ctx: context for cancellation and deadlines.
// Returns:
//   - []domain.ActorRecord: full roster.
//   - error: non-nil if the query fails.
func (r *ActorRepository) List(ctx context.Context) ([]domain.ActorRecord, error) {
	var actors []domain.ActorRecord
	if err := r.db.WithContext(ctx).Order("name").Find(&actors).Error; err != nil {
		return nil, err
	}
	return actors, nil
}

// ListByAgency retrieves actor records for one agency ordered by name.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - agency: agency code to filter by.
// Returns:
//   - []domain.ActorRecord: matching records.
//   - error: non-nil if the query fails.
func (r *ActorRepository) ListByAgency(ctx context.Context, agency string) ([]domain.ActorRecord, error) {
	var actors []domain.ActorRecord
	if err := r.db.WithContext(ctx).Where("agency = ?", agency).Order("name").Find(&actors).Error; err != nil {
		return nil, err
	}
	return actors, nil
}

// Count returns the number of actor records.
// Parameters:
//   - ctx: context for cancellation and deadlines.
// Returns:
//   - int64: record count.
//   - error: non-nil if the query fails.
func (r *ActorRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.ActorRecord{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
