package services

import (
	"context"

	"content-catalog/internal/models"
	"content-catalog/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type ContentService interface {
	SearchContents(ctx context.Context, filter string) ([]models.Content, error)
	GetContent(ctx context.Context, id uuid.UUID) (*models.Content, error)
	CreateContent(ctx context.Context, fields models.ContentFields) (*models.Content, error)
	// UpdateContent overwrites all scalar fields and leaves genres untouched.
	UpdateContent(ctx context.Context, id uuid.UUID, fields models.ContentFields) (*models.Content, error)
	AddGenres(ctx context.Context, id uuid.UUID, genres []string) (*models.Content, error)
	RemoveGenres(ctx context.Context, id uuid.UUID, genres []string) (*models.Content, error)
	DeleteContent(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	GenreStats(ctx context.Context, limit int) ([]models.GenreCount, error)
}

const (
	defaultGenreStatsLimit = 10
	maxGenreStatsLimit     = 100
)

// ContentCache is the read cache in front of the repository.
type ContentCache interface {
	GetContent(ctx context.Context, id uuid.UUID) (*models.Content, bool, error)
	SetContent(ctx context.Context, content *models.Content) error
	GetSearch(ctx context.Context, filter string) ([]models.Content, bool, error)
	SetSearch(ctx context.Context, filter string, contents []models.Content) error
	Invalidate(ctx context.Context, id uuid.UUID) error
}

// ImageStore removes content images that were uploaded to our bucket.
type ImageStore interface {
	OwnsURL(imageURL string) bool
	DeleteImage(ctx context.Context, imageURL string) error
}

type contentService struct {
	repo   repository.ContentRepository
	cache  ContentCache
	images ImageStore
	logger *logrus.Logger
}

// NewContentService wires the repository with an optional cache and image
// store; either may be nil.
func NewContentService(repo repository.ContentRepository, cache ContentCache, images ImageStore, logger *logrus.Logger) ContentService {
	return &contentService{
		repo:   repo,
		cache:  cache,
		images: images,
		logger: logger,
	}
}

func (s *contentService) SearchContents(ctx context.Context, filter string) ([]models.Content, error) {
	if s.cache != nil {
		cached, found, err := s.cache.GetSearch(ctx, filter)
		if err != nil {
			s.logger.WithError(err).WithField("filter", filter).Warn("Cache read failed")
		}
		if found {
			return cached, nil
		}
	}

	contents, err := s.repo.ListByFilter(ctx, filter)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetSearch(ctx, filter, contents); err != nil {
			s.logger.WithError(err).WithField("filter", filter).Warn("Cache write failed")
		}
	}

	return contents, nil
}

func (s *contentService) GetContent(ctx context.Context, id uuid.UUID) (*models.Content, error) {
	if s.cache != nil {
		cached, found, err := s.cache.GetContent(ctx, id)
		if err != nil {
			s.logger.WithError(err).WithField("id", id).Warn("Cache read failed")
		}
		if found {
			return cached, nil
		}
	}

	content, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetContent(ctx, content); err != nil {
			s.logger.WithError(err).WithField("id", id).Warn("Cache write failed")
		}
	}

	return content, nil
}

func (s *contentService) CreateContent(ctx context.Context, fields models.ContentFields) (*models.Content, error) {
	content, err := s.repo.Create(ctx, fields)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, content.ID)
	s.logger.WithFields(logrus.Fields{
		"id":     content.ID,
		"title":  content.Title,
		"genres": len(content.Genres),
	}).Info("Content created")

	return content, nil
}

func (s *contentService) UpdateContent(ctx context.Context, id uuid.UUID, fields models.ContentFields) (*models.Content, error) {
	var previousImage *string
	if s.images != nil {
		existing, err := s.repo.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		previousImage = existing.ImageURL
	}

	content, err := s.repo.Update(ctx, id, fields, false)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	if previousImage != nil && (content.ImageURL == nil || *content.ImageURL != *previousImage) {
		s.removeImage(ctx, *previousImage)
	}

	s.logger.WithField("id", id).Info("Content updated")
	return content, nil
}

func (s *contentService) AddGenres(ctx context.Context, id uuid.UUID, genres []string) (*models.Content, error) {
	return s.reconcileGenres(ctx, id, genres, "add", models.GenreSet.Add)
}

func (s *contentService) RemoveGenres(ctx context.Context, id uuid.UUID, genres []string) (*models.Content, error) {
	return s.reconcileGenres(ctx, id, genres, "remove", models.GenreSet.Remove)
}

// reconcileGenres reads the current item, computes the new genre set and
// writes it back in full. No mutation is attempted when the read fails.
func (s *contentService) reconcileGenres(ctx context.Context, id uuid.UUID, genres []string, op string, apply func(models.GenreSet, []string) models.GenreSet) (*models.Content, error) {
	for _, g := range genres {
		if g == "" {
			return nil, &models.ValidationError{Field: "genres", Message: "genre tags must not be empty"}
		}
	}

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := models.FieldsOf(current)
	fields.Genres = apply(current.Genres, genres)

	content, err := s.repo.Update(ctx, id, fields, true)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	s.logger.WithFields(logrus.Fields{
		"id":        id,
		"operation": op,
		"requested": genres,
		"genres":    content.Genres,
	}).Info("Content genres reconciled")

	return content, nil
}

func (s *contentService) DeleteContent(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	var image *string
	if s.images != nil {
		existing, err := s.repo.Get(ctx, id)
		if err != nil {
			return uuid.Nil, err
		}
		image = existing.ImageURL
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return uuid.Nil, err
	}

	s.invalidate(ctx, id)
	if image != nil {
		s.removeImage(ctx, *image)
	}

	s.logger.WithField("id", id).Info("Content deleted")
	return deleted, nil
}

func (s *contentService) GenreStats(ctx context.Context, limit int) ([]models.GenreCount, error) {
	if limit <= 0 {
		limit = defaultGenreStatsLimit
	}
	if limit > maxGenreStatsLimit {
		limit = maxGenreStatsLimit
	}
	return s.repo.GenreCounts(ctx, limit)
}

func (s *contentService) invalidate(ctx context.Context, id uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.WithError(err).WithField("id", id).Warn("Cache invalidation failed")
	}
}

// removeImage runs after the database commit; a failure leaves an orphaned
// object behind but never fails the request.
func (s *contentService) removeImage(ctx context.Context, imageURL string) {
	if s.images == nil || !s.images.OwnsURL(imageURL) {
		return
	}
	if err := s.images.DeleteImage(ctx, imageURL); err != nil {
		s.logger.WithError(err).WithField("image_url", imageURL).Warn("Failed to delete content image")
	}
}
