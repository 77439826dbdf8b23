package dto

import "feed-api/internal/models"

// CreatePostDTO is the text part of a multipart create request.
type CreatePostDTO struct {
	Title   string `json:"title" form:"title"`
	Content string `json:"content" form:"content"`
}

// UpdatePostDTO carries the current image path in Image when no new file is uploaded.
type UpdatePostDTO struct {
	Title   string `json:"title" form:"title"`
	Content string `json:"content" form:"content"`
	Image   string `json:"image" form:"image"`
}

type CreatorSummary struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type CreatePostResponse struct {
	Message string         `json:"message"`
	Post    models.Post    `json:"post"`
	Creator CreatorSummary `json:"creator"`
}

type PostResponse struct {
	Message string      `json:"message"`
	Post    models.Post `json:"post"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
