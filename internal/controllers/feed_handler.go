package controllers

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"feed-api/dto"
	mid "feed-api/internal/middleware"
	"feed-api/internal/models"
	"feed-api/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const requestTimeout = 10 * time.Second

// FeedService is the part of services.FeedService the handlers call.
type FeedService interface {
	ListPosts(ctx context.Context, page int64) (services.PostsPage, error)
	CreatePost(ctx context.Context, in services.CreatePostInput) (*services.CreatedPost, error)
	GetPost(ctx context.Context, id bson.ObjectID) (*models.Post, error)
	UpdatePost(ctx context.Context, in services.UpdatePostInput) (*models.Post, error)
	DeletePost(ctx context.Context, id, requesterID bson.ObjectID) error
}

// GET /feed/posts

// GetPostsHandler godoc
// @Summary      List posts
// @Description  One page of posts plus the total number of posts
// @Tags         feed
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int  false  "Page number (default 1)"
// @Success      200   {object}  dto.PostsPageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /feed/posts [get]
func GetPostsHandler(svc FeedService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := c.QueryInt("page", 1)

		ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
		defer cancel()

		out, err := svc.ListPosts(ctx, int64(page))
		if err != nil {
			return writeError(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(dto.PostsPageResponse{
			Message:    "Posts fetched",
			Posts:      out.Items,
			TotalItems: out.TotalItems,
		})
	}
}

// POST /feed/post

// CreatePostHandler godoc
// @Summary      Create a post
// @Description  Create a post with its image; the image is required
// @Tags         feed
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title    formData  string  true  "Title (min 5 chars)"
// @Param        content  formData  string  true  "Content (min 5 chars)"
// @Param        image    formData  file    true  "png/jpg/jpeg image"
// @Success      201      {object}  dto.CreatePostResponse
// @Failure      422      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /feed/post [post]
func CreatePostHandler(svc FeedService, up *Uploader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, ok := mid.CallerID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		var body dto.CreatePostDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
		}

		file, err := up.Save(c, "image")
		if err != nil {
			slog.Error("failed to store upload", "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to save file"})
		}

		ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
		defer cancel()

		out, err := svc.CreatePost(ctx, services.CreatePostInput{
			CreatorID:   uid,
			Title:       strings.TrimSpace(body.Title),
			Content:     strings.TrimSpace(body.Content),
			File:        file,
			FieldErrors: validatePostFields(body.Title, body.Content),
		})
		if err != nil {
			// after a dependency failure the saved post already points at the file
			if !errors.Is(err, services.ErrDependencyWriteFailed) {
				up.Discard(file)
			}
			return writeError(c, err)
		}

		return c.Status(fiber.StatusCreated).JSON(dto.CreatePostResponse{
			Message: "Post created successfully",
			Post:    *out.Post,
			Creator: out.Creator,
		})
	}
}

// GET /feed/post/:postId

// GetPostHandler godoc
// @Summary      Get a post
// @Tags         feed
// @Produce      json
// @Security     BearerAuth
// @Param        postId  path      string  true  "Post ID (hex)"
// @Success      200     {object}  dto.PostResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /feed/post/{postId} [get]
func GetPostHandler(svc FeedService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		postID, ok := postIDParam(c)
		if !ok {
			return writeError(c, services.ErrNotFound)
		}

		ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
		defer cancel()

		post, err := svc.GetPost(ctx, postID)
		if err != nil {
			return writeError(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(dto.PostResponse{Message: "Post found", Post: *post})
	}
}

// PUT /feed/post/:postId

// UpdatePostHandler godoc
// @Summary      Update a post
// @Description  Owner only. A new image upload replaces the current one; otherwise send the current path in "image".
// @Tags         feed
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        postId   path      string  true   "Post ID (hex)"
// @Param        title    formData  string  true   "Title (min 5 chars)"
// @Param        content  formData  string  true   "Content (min 5 chars)"
// @Param        image    formData  file    false  "New png/jpg/jpeg image, or the current path as text"
// @Success      200      {object}  dto.PostResponse
// @Failure      403      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      422      {object}  dto.ErrorResponse
// @Router       /feed/post/{postId} [put]
func UpdatePostHandler(svc FeedService, up *Uploader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, ok := mid.CallerID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		var body dto.UpdatePostDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
		}

		file, err := up.Save(c, "image")
		if err != nil {
			slog.Error("failed to store upload", "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to save file"})
		}

		postID, ok := postIDParam(c)
		if !ok {
			up.Discard(file)
			return writeError(c, services.ErrNotFound)
		}

		ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
		defer cancel()

		image := strings.TrimSpace(body.Image)
		fieldErrs := validatePostFields(body.Title, body.Content)
		if file == nil && image != "" && !up.Holds(image) {
			fieldErrs = append(fieldErrs, dto.FieldError{
				Location: "body",
				Param:    "image",
				Msg:      "Invalid value",
				Value:    body.Image,
			})
		}

		post, err := svc.UpdatePost(ctx, services.UpdatePostInput{
			PostID:      postID,
			RequesterID: uid,
			Title:       strings.TrimSpace(body.Title),
			Content:     strings.TrimSpace(body.Content),
			Image:       image,
			File:        file,
			FieldErrors: fieldErrs,
		})
		if err != nil {
			up.Discard(file)
			return writeError(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(dto.PostResponse{Message: "Post updated", Post: *post})
	}
}

// DELETE /feed/post/:postId

// DeletePostHandler godoc
// @Summary      Delete a post
// @Description  Owner only. Removes the post, its image and the owner's reference to it.
// @Tags         feed
// @Produce      json
// @Security     BearerAuth
// @Param        postId  path      string  true  "Post ID (hex)"
// @Success      200     {object}  dto.MessageResponse
// @Failure      403     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /feed/post/{postId} [delete]
func DeletePostHandler(svc FeedService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, ok := mid.CallerID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		postID, ok := postIDParam(c)
		if !ok {
			return writeError(c, services.ErrNotFound)
		}

		ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
		defer cancel()

		if err := svc.DeletePost(ctx, postID, uid); err != nil {
			return writeError(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(dto.MessageResponse{Message: "Post deleted"})
	}
}

// postIDParam parses :postId. A malformed id cannot name a stored post.
func postIDParam(c *fiber.Ctx) (bson.ObjectID, bool) {
	id, err := bson.ObjectIDFromHex(c.Params("postId"))
	return id, err == nil
}

func writeError(c *fiber.Ctx, err error) error {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusUnprocessableEntity).
			JSON(dto.ErrorResponse{Error: "Validation failed", Data: verr.Fields})
	case errors.Is(err, services.ErrMissingAttachment):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Error: "No image attached"})
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "No post found"})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "Not authorized"})
	default:
		slog.Error("feed request failed", "method", c.Method(), "path", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Internal server error"})
	}
}
