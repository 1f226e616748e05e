package services

import (
	"context"

	"storefront/models"
	"storefront/repositories"

	"go.uber.org/zap"
)

type TagService struct {
	tags        *repositories.TagRepository
	products    *repositories.ProductRepository
	collections *repositories.CollectionRepository
	logger      *zap.Logger
}

func NewTagService(db repositories.DBTX, logger *zap.Logger) *TagService {
	return &TagService{
		tags:        repositories.NewTagRepository(db),
		products:    repositories.NewProductRepository(db),
		collections: repositories.NewCollectionRepository(db),
		logger:      logger,
	}
}

func (s *TagService) CreateTag(ctx context.Context, req models.TagRequest) (*models.Tag, error) {
	tag := &models.Tag{Label: req.Label}
	if err := s.tags.Create(ctx, tag); err != nil {
		return nil, models.NewInternal("failed to create tag", err)
	}
	return tag, nil
}

func (s *TagService) ListTags(ctx context.Context) ([]models.Tag, error) {
	tags, err := s.tags.List(ctx)
	if err != nil {
		return nil, models.NewInternal("failed to list tags", err)
	}
	return tags, nil
}

func (s *TagService) TagsFor(ctx context.Context, kind models.ObjectKind, objectID int64) ([]models.TaggedItem, error) {
	if err := s.requireObject(ctx, kind, objectID); err != nil {
		return nil, err
	}
	items, err := s.tags.TagsFor(ctx, kind, objectID)
	if err != nil {
		return nil, models.NewInternal("failed to load tags", err)
	}
	return items, nil
}

// Attach links a tag to a product or collection. Attaching twice is a no-op.
func (s *TagService) Attach(ctx context.Context, kind models.ObjectKind, objectID int64, req models.AttachTagRequest) (*models.TaggedItem, error) {
	if err := s.requireObject(ctx, kind, objectID); err != nil {
		return nil, err
	}

	id, err := s.tags.Attach(ctx, req.TagID, kind, objectID)
	if repositories.IsForeignKeyViolation(err) {
		return nil, models.NewValidationError(models.ErrMsgNoTag)
	}
	if err != nil {
		return nil, models.NewInternal("failed to attach tag", err)
	}

	items, err := s.tags.TagsFor(ctx, kind, objectID)
	if err != nil {
		return nil, models.NewInternal("failed to load tags", err)
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return &models.TaggedItem{ID: id, Tag: models.Tag{ID: req.TagID}, Kind: kind, ObjectID: objectID}, nil
}

func (s *TagService) Detach(ctx context.Context, kind models.ObjectKind, objectID, tagID int64) error {
	if !kind.Valid() {
		return models.NewValidationErrorf("invalid object kind %q", kind)
	}
	n, err := s.tags.Detach(ctx, tagID, kind, objectID)
	if err != nil {
		return models.NewInternal("failed to detach tag", err)
	}
	if n == 0 {
		return models.NewNotFound("tag is not attached to this object")
	}
	return nil
}

func (s *TagService) requireObject(ctx context.Context, kind models.ObjectKind, objectID int64) error {
	var (
		exists bool
		err    error
	)
	switch kind {
	case models.KindProduct:
		exists, err = s.products.Exists(ctx, objectID)
	case models.KindCollection:
		exists, err = s.collections.Exists(ctx, objectID)
	default:
		return models.NewValidationErrorf("invalid object kind %q", kind)
	}
	if err != nil {
		return models.NewInternal("failed to check tagged object", err)
	}
	if !exists {
		return models.NewNotFound(string(kind) + " not found")
	}
	return nil
}
