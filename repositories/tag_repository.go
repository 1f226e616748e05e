package repositories

import (
	"context"

	"storefront/models"
)

type TagRepository struct {
	db DBTX
}

func NewTagRepository(db DBTX) *TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) Create(ctx context.Context, tag *models.Tag) error {
	return r.db.QueryRow(ctx, `INSERT INTO tags (label) VALUES ($1) RETURNING id`, tag.Label).Scan(&tag.ID)
}

func (r *TagRepository) List(ctx context.Context) ([]models.Tag, error) {
	rows, err := r.db.Query(ctx, `SELECT id, label FROM tags ORDER BY label, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := []models.Tag{}
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.Label); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

func (r *TagRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM tags WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

// TagsFor returns the tags attached to the object identified by (kind, id),
// joined with their tag rows in one query.
func (r *TagRepository) TagsFor(ctx context.Context, kind models.ObjectKind, objectID int64) ([]models.TaggedItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT ti.id, t.id, t.label, ti.object_kind, ti.object_id
		FROM tagged_items ti
		JOIN tags t ON t.id = ti.tag_id
		WHERE ti.object_kind = $1 AND ti.object_id = $2
		ORDER BY t.label, ti.id`, kind, objectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.TaggedItem{}
	for rows.Next() {
		var ti models.TaggedItem
		if err := rows.Scan(&ti.ID, &ti.Tag.ID, &ti.Tag.Label, &ti.Kind, &ti.ObjectID); err != nil {
			return nil, err
		}
		items = append(items, ti)
	}
	return items, rows.Err()
}

// Attach is idempotent: attaching an existing tag returns the existing row id.
func (r *TagRepository) Attach(ctx context.Context, tagID int64, kind models.ObjectKind, objectID int64) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO tagged_items (tag_id, object_kind, object_id) VALUES ($1, $2, $3)
		ON CONFLICT (tag_id, object_kind, object_id) DO UPDATE SET tag_id = EXCLUDED.tag_id
		RETURNING id`, tagID, kind, objectID,
	).Scan(&id)
	return id, err
}

func (r *TagRepository) Detach(ctx context.Context, tagID int64, kind models.ObjectKind, objectID int64) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM tagged_items WHERE tag_id = $1 AND object_kind = $2 AND object_id = $3`,
		tagID, kind, objectID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
