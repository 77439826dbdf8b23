package dto

import "feed-api/internal/models"

type PostsPageResponse struct {
	Message    string        `json:"message"`
	Posts      []models.Post `json:"posts"`
	TotalItems int64         `json:"totalItems"`
}
