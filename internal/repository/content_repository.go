package repository

import (
	"context"
	"errors"
	"time"

	"content-catalog/internal/database"
	"content-catalog/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContentRepository persists content items and their genre tags. NotFound is
// reported as models.ErrContentNotFound and backend failures as
// *models.StorageError.
type ContentRepository interface {
	Create(ctx context.Context, fields models.ContentFields) (*models.Content, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Content, error)
	ListByFilter(ctx context.Context, filter string) ([]models.Content, error)
	// Update overwrites every scalar field. Genres are rebuilt from fields
	// only when replaceGenres is set.
	Update(ctx context.Context, id uuid.UUID, fields models.ContentFields, replaceGenres bool) (*models.Content, error)
	Delete(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	Count(ctx context.Context) (int64, error)
	// GenreCounts returns up to limit tags ordered by usage, most used first.
	GenreCounts(ctx context.Context, limit int) ([]models.GenreCount, error)
}

type contentRepository struct {
	db      *database.Database
	timeout time.Duration
	now     func() time.Time
}

func NewContentRepository(db *database.Database) ContentRepository {
	return &contentRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
		// Postgres keeps microseconds; truncating keeps returned values equal to stored ones.
		now: func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

func (r *contentRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *contentRepository) Create(ctx context.Context, fields models.ContentFields) (*models.Content, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rec, genres := models.ToRecords(uuid.New(), fields, r.now())

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Genres").Create(&rec).Error; err != nil {
			return err
		}
		if len(genres) > 0 {
			return tx.Create(&genres).Error
		}
		return nil
	})
	if err != nil {
		return nil, &models.StorageError{Op: "create content", Err: err}
	}

	return toContent(rec, genres)
}

func (r *contentRepository) Get(ctx context.Context, id uuid.UUID) (*models.Content, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.load(r.db.WithContext(ctx), id)
}

func (r *contentRepository) ListByFilter(ctx context.Context, filter string) ([]models.Content, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	db := r.db.WithContext(ctx)
	query := db.Model(&models.ContentRecord{})
	if filter != "" {
		query = query.Where(
			containsExpr(r.db.Dialect(), "contents.title")+
				" OR EXISTS (SELECT 1 FROM content_genres WHERE content_genres.content_id = contents.id AND "+
				containsExpr(r.db.Dialect(), "content_genres.genre")+")",
			filter, filter,
		)
	}

	var recs []models.ContentRecord
	if err := query.Order("contents.created_at ASC, contents.id ASC").Find(&recs).Error; err != nil {
		return nil, &models.StorageError{Op: "list contents", Err: err}
	}
	if len(recs) == 0 {
		return []models.Content{}, nil
	}

	ids := make([]string, len(recs))
	for i, rec := range recs {
		ids[i] = rec.ID
	}

	var genres []models.ContentGenreRecord
	if err := db.Where("content_id IN ?", ids).Order("content_id, position").Find(&genres).Error; err != nil {
		return nil, &models.StorageError{Op: "list content genres", Err: err}
	}

	byContent := make(map[string][]models.ContentGenreRecord, len(recs))
	for _, g := range genres {
		byContent[g.ContentID] = append(byContent[g.ContentID], g)
	}

	contents := make([]models.Content, 0, len(recs))
	for _, rec := range recs {
		c, err := toContent(rec, byContent[rec.ID])
		if err != nil {
			return nil, err
		}
		// The SQL predicate only narrows the scan; the matcher decides.
		if !models.MatchesFilter(c, filter) {
			continue
		}
		contents = append(contents, *c)
	}

	return contents, nil
}

func (r *contentRepository) Update(ctx context.Context, id uuid.UUID, fields models.ContentFields, replaceGenres bool) (*models.Content, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var updated *models.Content
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := findRecord(tx, id)
		if err != nil {
			return err
		}

		rec, genres := models.ToRecords(id, fields, r.now())
		rec.CreatedAt = existing.CreatedAt

		err = tx.Model(&models.ContentRecord{ID: rec.ID}).
			Select("Title", "Subtitle", "Description", "ImageURL", "Duration", "StartTime", "EndTime", "UpdatedAt").
			Updates(&rec).Error
		if err != nil {
			return err
		}

		if replaceGenres {
			if err := tx.Where("content_id = ?", rec.ID).Delete(&models.ContentGenreRecord{}).Error; err != nil {
				return err
			}
			if len(genres) > 0 {
				if err := tx.Create(&genres).Error; err != nil {
					return err
				}
			}
		}

		updated, err = r.load(tx, id)
		return err
	})
	if err != nil {
		return nil, storageError("update content", err)
	}

	return updated, nil
}

func (r *contentRepository) Delete(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findRecord(tx, id); err != nil {
			return err
		}
		// Explicit so the result does not depend on the backend enforcing the cascade.
		if err := tx.Where("content_id = ?", id.String()).Delete(&models.ContentGenreRecord{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id.String()).Delete(&models.ContentRecord{}).Error
	})
	if err != nil {
		return uuid.Nil, storageError("delete content", err)
	}

	return id, nil
}

func (r *contentRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.ContentRecord{}).Count(&total).Error; err != nil {
		return 0, &models.StorageError{Op: "count contents", Err: err}
	}
	return total, nil
}

func (r *contentRepository) GenreCounts(ctx context.Context, limit int) ([]models.GenreCount, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	results := []models.GenreCount{}
	err := r.db.WithContext(ctx).Model(&models.ContentGenreRecord{}).
		Select("genre, COUNT(*) as count").
		Group("genre").
		Order("count DESC, genre ASC").
		Limit(limit).
		Find(&results).Error
	if err != nil {
		return nil, &models.StorageError{Op: "count genres", Err: err}
	}

	return results, nil
}

func (r *contentRepository) load(db *gorm.DB, id uuid.UUID) (*models.Content, error) {
	rec, err := findRecord(db, id)
	if err != nil {
		return nil, storageError("get content", err)
	}

	var genres []models.ContentGenreRecord
	if err := db.Where("content_id = ?", rec.ID).Order("position").Find(&genres).Error; err != nil {
		return nil, &models.StorageError{Op: "get content genres", Err: err}
	}

	return toContent(*rec, genres)
}

func findRecord(db *gorm.DB, id uuid.UUID) (*models.ContentRecord, error) {
	var rec models.ContentRecord
	err := db.Where("id = ?", id.String()).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrContentNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func toContent(rec models.ContentRecord, genres []models.ContentGenreRecord) (*models.Content, error) {
	c, err := models.FromRecords(rec, genres)
	if err != nil {
		return nil, &models.StorageError{Op: "map content", Err: err}
	}
	return c, nil
}

// storageError passes NotFound and already wrapped errors through unchanged.
func storageError(op string, err error) error {
	if errors.Is(err, models.ErrContentNotFound) || models.IsStorageError(err) {
		return err
	}
	return &models.StorageError{Op: op, Err: err}
}

// containsExpr is an ordinal, case-sensitive substring test. LIKE is avoided
// because sqlite folds ASCII case and both backends treat % and _ as wildcards.
func containsExpr(dialect, column string) string {
	if dialect == "postgres" {
		return "strpos(" + column + ", ?) > 0"
	}
	return "instr(" + column + ", ?) > 0"
}
