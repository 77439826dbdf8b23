package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Post struct {
	ID        bson.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title     string        `json:"title" bson:"title"`
	Content   string        `json:"content" bson:"content"`
	ImageURL  string        `json:"imageUrl" bson:"image_url"`
	Creator   bson.ObjectID `json:"creator" bson:"creator"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updated_at"`
}

// StoredFile is an upload already placed on disk by the request boundary.
type StoredFile struct {
	Path         string
	OriginalName string
	MimeType     string
	Size         int64
}
