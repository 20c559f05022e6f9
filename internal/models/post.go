package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is a board post as stored in MongoDB. Storage stays normalized:
// author and likers are kept as user IDs only and resolved to display
// form by the service layer before a post leaves the API.
type Post struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	AuthorID  uint               `json:"author_id" bson:"author_id"`
	Content   string             `json:"content" bson:"content"`
	LikedBy   []uint             `json:"liked_by" bson:"liked_by"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

// LikedBySet returns liked_by as a set keyed by user ID.
func (p *Post) LikedBySet() map[uint]struct{} {
	set := make(map[uint]struct{}, len(p.LikedBy))
	for _, id := range p.LikedBy {
		set[id] = struct{}{}
	}
	return set
}

// HasLiked reports whether the given user is a member of liked_by.
func (p *Post) HasLiked(userID uint) bool {
	_, ok := p.LikedBySet()[userID]
	return ok
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Content string `json:"content" validate:"required,min=1,max=280"`
}

// UpdatePostRequest defines the request body for updating an existing post
type UpdatePostRequest struct {
	Content string `json:"content" validate:"required,min=1,max=280"`
}

// UserRef is a user resolved to display form for post responses.
type UserRef struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// PostView is the wire representation of a post: author and likers
// resolved to display form. Every list and every mutation response
// returns this shape, never the raw Post.
type PostView struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Author    UserRef   `json:"author"`
	LikedBy   []UserRef `json:"likedBy"`
	CreatedAt time.Time `json:"createdAt"`
}
