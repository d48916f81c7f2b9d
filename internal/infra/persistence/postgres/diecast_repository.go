// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"machone/internal/domain/entity"
	domainerrors "machone/internal/domain/errors"
	"machone/internal/domain/repository"
	"machone/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// summaryColumns is the projection shared by every catalog listing query.
const summaryColumns = "id, model_name, image_url, series, color, release_year"

// diecastRepository implements the domain.DiecastRepository interface using GORM.
type diecastRepository struct {
	db *gorm.DB
}

// NewDiecastRepository is the constructor for diecastRepository.
func NewDiecastRepository(db *gorm.DB) repository.DiecastRepository {
	return &diecastRepository{db: db}
}

// FindByID retrieves a single catalog item.
func (repo *diecastRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Diecast, error) {
	var diecastM model.DiecastModel
	if err := repo.db.WithContext(ctx).First(&diecastM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDiecastNotFound
		}

		return nil, errors.Wrap(err, "failed to find diecast by id")
	}

	return toDiecastDomain(&diecastM), nil
}

// Create persists a new catalog item and backfills generated fields.
func (repo *diecastRepository) Create(ctx context.Context, diecast *entity.Diecast) error {
	diecastM := fromDiecastDomain(diecast)

	if err := repo.db.WithContext(ctx).Create(diecastM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required diecast field")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create diecast")
	}

	diecast.ID = diecastM.ID
	diecast.CreatedAt = diecastM.CreatedAt
	diecast.UpdatedAt = diecastM.UpdatedAt

	return nil
}

// SearchBySimilarity ranks catalog items by pg_trgm similarity of the model
// name against the query. Scores must be strictly greater than the threshold
// and results come back best match first. An undefined similarity() function
// means pg_trgm is not installed; that maps to ErrSimilarityUnavailable so the
// caller can fall back to substring matching.
func (repo *diecastRepository) SearchBySimilarity(ctx context.Context, query string, threshold float64, limit, offset int) ([]*entity.DiecastSummary, error) {
	var summaries []*entity.DiecastSummary
	err := repo.db.WithContext(ctx).
		Raw(`SELECT `+summaryColumns+`, similarity(model_name, ?) AS score
			FROM diecasts
			WHERE similarity(model_name, ?) > ?
			ORDER BY score DESC, model_name ASC
			LIMIT ? OFFSET ?`,
			query, query, threshold, limit, offset).
		Scan(&summaries).Error
	if err != nil {
		if isUndefinedFunction(err) {
			return nil, repository.ErrSimilarityUnavailable
		}

		return nil, errors.Wrap(err, "failed to search diecasts by similarity")
	}

	return summaries, nil
}

// CountBySimilarity counts items passing the similarity threshold.
func (repo *diecastRepository) CountBySimilarity(ctx context.Context, query string, threshold float64) (int64, error) {
	var total int64
	err := repo.db.WithContext(ctx).
		Raw(`SELECT count(*) FROM diecasts WHERE similarity(model_name, ?) > ?`, query, threshold).
		Scan(&total).Error
	if err != nil {
		if isUndefinedFunction(err) {
			return 0, repository.ErrSimilarityUnavailable
		}

		return 0, errors.Wrap(err, "failed to count diecasts by similarity")
	}

	return total, nil
}

// SearchBySubstring performs case-insensitive containment matching on the
// model name. Ordering falls back to the model name itself since there is no
// relevance score.
func (repo *diecastRepository) SearchBySubstring(ctx context.Context, query string, limit, offset int) ([]*entity.DiecastSummary, error) {
	var summaries []*entity.DiecastSummary
	err := repo.db.WithContext(ctx).
		Model(&model.DiecastModel{}).
		Select(summaryColumns).
		Where("model_name ILIKE ?", "%"+escapeLike(query)+"%").
		Order("model_name ASC").
		Limit(limit).
		Offset(offset).
		Scan(&summaries).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search diecasts by substring")
	}

	return summaries, nil
}

// CountBySubstring counts items matching the containment predicate.
func (repo *diecastRepository) CountBySubstring(ctx context.Context, query string) (int64, error) {
	var total int64
	err := repo.db.WithContext(ctx).
		Model(&model.DiecastModel{}).
		Where("model_name ILIKE ?", "%"+escapeLike(query)+"%").
		Count(&total).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count diecasts by substring")
	}

	return total, nil
}

// IncrementVisitCount bumps the item popularity counter atomically.
func (repo *diecastRepository) IncrementVisitCount(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Model(&model.DiecastModel{}).
		Where("id = ?", id).
		UpdateColumn("visit_count", gorm.Expr("visit_count + 1"))
	if err := result.Error; err != nil {
		return errors.Wrap(err, "failed to increment diecast visit count")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDiecastNotFound
	}

	return nil
}

// escapeLike neutralizes LIKE metacharacters so user input matches literally.
func escapeLike(s string) string {
	escaped := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '%', '_', '\\':
			escaped = append(escaped, '\\')
		}
		escaped = append(escaped, s[i])
	}

	return string(escaped)
}

// toDiecastDomain maps the persistence model to the pure domain entity.
func toDiecastDomain(diecastM *model.DiecastModel) *entity.Diecast {
	return &entity.Diecast{
		ID:                    diecastM.ID,
		ModelName:             diecastM.ModelName,
		ImageURL:              diecastM.ImageURL,
		CollectorNumber:       diecastM.CollectorNumber,
		SeriesNumber:          diecastM.SeriesNumber,
		ReleaseYear:           diecastM.ReleaseYear,
		Series:                diecastM.Series,
		Color:                 diecastM.Color,
		Tampo:                 diecastM.Tampo,
		WheelType:             diecastM.WheelType,
		BaseType:              diecastM.BaseType,
		BaseColor:             diecastM.BaseColor,
		WindowColor:           diecastM.WindowColor,
		InteriorColor:         diecastM.InteriorColor,
		ToyNumber:             diecastM.ToyNumber,
		AssortmentNumber:      diecastM.AssortmentNumber,
		Scale:                 diecastM.Scale,
		Country:               diecastM.Country,
		BaseCodes:             diecastM.BaseCodes,
		CaseNumber:            diecastM.CaseNumber,
		Notes:                 diecastM.Notes,
		TreasureHuntYear:      diecastM.TreasureHuntYear,
		SuperTreasureHuntYear: diecastM.SuperTreasureHuntYear,
		VisitCount:            diecastM.VisitCount,
		CreatedAt:             diecastM.CreatedAt,
		UpdatedAt:             diecastM.UpdatedAt,
	}
}

// fromDiecastDomain maps the domain entity to its persistence model.
func fromDiecastDomain(diecast *entity.Diecast) *model.DiecastModel {
	return &model.DiecastModel{
		ID:                    diecast.ID,
		ModelName:             diecast.ModelName,
		ImageURL:              diecast.ImageURL,
		CollectorNumber:       diecast.CollectorNumber,
		SeriesNumber:          diecast.SeriesNumber,
		ReleaseYear:           diecast.ReleaseYear,
		Series:                diecast.Series,
		Color:                 diecast.Color,
		Tampo:                 diecast.Tampo,
		WheelType:             diecast.WheelType,
		BaseType:              diecast.BaseType,
		BaseColor:             diecast.BaseColor,
		WindowColor:           diecast.WindowColor,
		InteriorColor:         diecast.InteriorColor,
		ToyNumber:             diecast.ToyNumber,
		AssortmentNumber:      diecast.AssortmentNumber,
		Scale:                 diecast.Scale,
		Country:               diecast.Country,
		BaseCodes:             diecast.BaseCodes,
		CaseNumber:            diecast.CaseNumber,
		Notes:                 diecast.Notes,
		TreasureHuntYear:      diecast.TreasureHuntYear,
		SuperTreasureHuntYear: diecast.SuperTreasureHuntYear,
		VisitCount:            diecast.VisitCount,
	}
}

// toDiecastSummary projects a full model onto its listing shape.
func toDiecastSummary(diecastM *model.DiecastModel) *entity.DiecastSummary {
	return &entity.DiecastSummary{
		ID:          diecastM.ID,
		ModelName:   diecastM.ModelName,
		ImageURL:    diecastM.ImageURL,
		Series:      diecastM.Series,
		Color:       diecastM.Color,
		ReleaseYear: diecastM.ReleaseYear,
	}
}
