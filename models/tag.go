package models

import "time"

// ObjectKind names the entity a tag is attached to.
type ObjectKind string

const (
	KindProduct    ObjectKind = "product"
	KindCollection ObjectKind = "collection"
)

func (k ObjectKind) Valid() bool {
	return k == KindProduct || k == KindCollection
}

type Tag struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}

type TaggedItem struct {
	ID       int64      `json:"id"`
	Tag      Tag        `json:"tag"`
	Kind     ObjectKind `json:"kind"`
	ObjectID int64      `json:"object_id"`
}

type Review struct {
	ID          int64     `json:"id"`
	ProductID   int64     `json:"product_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}
