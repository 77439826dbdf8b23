package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type User struct {
	ID           bson.ObjectID   `bson:"_id,omitempty" json:"_id,omitempty"`
	Name         string          `bson:"name" json:"name"`
	Email        string          `bson:"email" json:"email"`
	PasswordHash string          `bson:"password_hash,omitempty" json:"-"`
	Status       string          `bson:"status,omitempty" json:"status,omitempty"`
	Posts        []bson.ObjectID `bson:"posts" json:"posts"`
	CreatedAt    time.Time       `bson:"created_at,omitempty" json:"createdAt,omitempty"`
	UpdatedAt    time.Time       `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}

// AddPost records ownership of postID. Adding an id twice is a no-op.
func (u *User) AddPost(postID bson.ObjectID) {
	if u.HasPost(postID) {
		return
	}
	u.Posts = append(u.Posts, postID)
}

// RemovePost drops every occurrence of postID.
func (u *User) RemovePost(postID bson.ObjectID) {
	kept := u.Posts[:0]
	for _, id := range u.Posts {
		if id != postID {
			kept = append(kept, id)
		}
	}
	u.Posts = kept
}

func (u *User) HasPost(postID bson.ObjectID) bool {
	for _, id := range u.Posts {
		if id == postID {
			return true
		}
	}
	return false
}
