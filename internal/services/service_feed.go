package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"feed-api/config"
	"feed-api/dto"
	"feed-api/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("feed-api/internal/services")

// FeedService owns the post lifecycle: ownership checks, pagination and the
// image file attached to each post. Post and user writes are independent
// commits; a failure between them is reported, never rolled back. The
// owner's posts set is only changed through single-id atomic updates, so
// concurrent operations on one user never overwrite each other.
type FeedService struct {
	posts    PostStore
	users    UserStore
	files    FileDiscarder
	events   EventPublisher
	pageSize int64
	now      func() time.Time
}

func NewFeedService(posts PostStore, users UserStore, files FileDiscarder, events EventPublisher, pageSize int64) *FeedService {
	if pageSize <= 0 {
		pageSize = config.DefaultPageSize
	}
	if events == nil {
		events = noopPublisher{}
	}
	return &FeedService{
		posts:    posts,
		users:    users,
		files:    files,
		events:   events,
		pageSize: pageSize,
		now:      time.Now,
	}
}

type PostsPage struct {
	Items      []models.Post
	TotalItems int64
}

type CreatePostInput struct {
	CreatorID   bson.ObjectID
	Title       string
	Content     string
	File        *models.StoredFile // nil when nothing was uploaded
	FieldErrors []dto.FieldError
}

type CreatedPost struct {
	Post    *models.Post
	Creator dto.CreatorSummary
}

type UpdatePostInput struct {
	PostID      bson.ObjectID
	RequesterID bson.ObjectID
	Title       string
	Content     string
	Image       string             // path the client already holds
	File        *models.StoredFile // a fresh upload wins over Image
	FieldErrors []dto.FieldError
}

func (s *FeedService) PageSize() int64 { return s.pageSize }

// ListPosts counts the whole collection and then reads one page of it.
// Pages below 1 are read as the first page.
func (s *FeedService) ListPosts(ctx context.Context, page int64) (PostsPage, error) {
	ctx, span := tracer.Start(ctx, "FeedService.ListPosts")
	defer span.End()

	if page < 1 {
		page = 1
	}
	span.SetAttributes(attribute.Int64("feed.page", page), attribute.Int64("feed.page_size", s.pageSize))

	total, err := s.posts.Count(ctx)
	if err != nil {
		return PostsPage{}, fail(span, lookupFault("count posts", err))
	}

	// a skip past MaxInt64 cannot name any stored post
	if page-1 > math.MaxInt64/s.pageSize {
		return PostsPage{Items: []models.Post{}, TotalItems: total}, nil
	}
	items, err := s.posts.FindPage(ctx, (page-1)*s.pageSize, s.pageSize)
	if err != nil {
		return PostsPage{}, fail(span, lookupFault("list posts", err))
	}
	if items == nil {
		items = []models.Post{}
	}
	return PostsPage{Items: items, TotalItems: total}, nil
}

func (s *FeedService) CreatePost(ctx context.Context, in CreatePostInput) (*CreatedPost, error) {
	ctx, span := tracer.Start(ctx, "FeedService.CreatePost")
	defer span.End()
	span.SetAttributes(attribute.String("feed.creator_id", in.CreatorID.Hex()))

	if len(in.FieldErrors) > 0 {
		return nil, fail(span, &ValidationError{Fields: in.FieldErrors})
	}
	if in.File == nil || in.File.Path == "" {
		return nil, fail(span, ErrMissingAttachment)
	}

	now := s.now().UTC()
	post := &models.Post{
		Title:     in.Title,
		Content:   in.Content,
		ImageURL:  in.File.Path,
		Creator:   in.CreatorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fail(span, storageFault("create post", err))
	}
	span.SetAttributes(attribute.String("feed.post_id", post.ID.Hex()))

	// The post is durable from here on; user-side failures leave it in place.
	user, err := s.users.FindByID(ctx, in.CreatorID)
	if err != nil {
		slog.Error("post saved but creator could not be loaded",
			"post_id", post.ID.Hex(), "creator_id", in.CreatorID.Hex(), "error", err)
		return nil, fail(span, dependencyFault("load creator", err))
	}
	if err := s.users.AddPost(ctx, in.CreatorID, post.ID); err != nil {
		slog.Error("post saved but creator posts set was not updated",
			"post_id", post.ID.Hex(), "creator_id", in.CreatorID.Hex(), "error", err)
		return nil, fail(span, dependencyFault("add post to creator", err))
	}

	s.publish(ctx, "created", post.ID, func() error { return s.events.PublishPostCreated(ctx, post) })

	return &CreatedPost{
		Post:    post,
		Creator: dto.CreatorSummary{ID: user.ID.Hex(), Name: user.Name},
	}, nil
}

func (s *FeedService) GetPost(ctx context.Context, id bson.ObjectID) (*models.Post, error) {
	ctx, span := tracer.Start(ctx, "FeedService.GetPost")
	defer span.End()
	span.SetAttributes(attribute.String("feed.post_id", id.Hex()))

	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, fail(span, lookupFault("find post", err))
	}
	return post, nil
}

// UpdatePost replaces the editable fields of a post owned by the requester.
// When the image changes, the old file is discarded only after the new
// record has been saved.
func (s *FeedService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	ctx, span := tracer.Start(ctx, "FeedService.UpdatePost")
	defer span.End()
	span.SetAttributes(
		attribute.String("feed.post_id", in.PostID.Hex()),
		attribute.String("feed.requester_id", in.RequesterID.Hex()),
	)

	if len(in.FieldErrors) > 0 {
		return nil, fail(span, &ValidationError{Fields: in.FieldErrors})
	}

	imageURL := in.Image
	if in.File != nil && in.File.Path != "" {
		imageURL = in.File.Path
	}
	if strings.TrimSpace(imageURL) == "" {
		return nil, fail(span, ErrMissingAttachment)
	}

	post, err := s.posts.FindByID(ctx, in.PostID)
	if err != nil {
		return nil, fail(span, lookupFault("find post", err))
	}
	if post.Creator != in.RequesterID {
		return nil, fail(span, ErrForbidden)
	}

	oldImage := post.ImageURL
	post.Title = in.Title
	post.Content = in.Content
	post.ImageURL = imageURL
	post.UpdatedAt = s.now().UTC()

	if err := s.posts.Save(ctx, post); err != nil {
		return nil, fail(span, lookupFault("save post", err))
	}

	if oldImage != imageURL {
		s.discard(oldImage)
	}

	s.publish(ctx, "updated", post.ID, func() error { return s.events.PublishPostUpdated(ctx, post) })
	return post, nil
}

// DeletePost discards the image, removes the record and then drops the id
// from the owner's posts set. A crash after the discard leaves a record
// pointing at a missing file.
func (s *FeedService) DeletePost(ctx context.Context, id, requesterID bson.ObjectID) error {
	ctx, span := tracer.Start(ctx, "FeedService.DeletePost")
	defer span.End()
	span.SetAttributes(
		attribute.String("feed.post_id", id.Hex()),
		attribute.String("feed.requester_id", requesterID.Hex()),
	)

	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return fail(span, lookupFault("find post", err))
	}
	if post.Creator != requesterID {
		return fail(span, ErrForbidden)
	}

	s.discard(post.ImageURL)

	if err := s.posts.DeleteByID(ctx, id); err != nil {
		return fail(span, lookupFault("delete post", err))
	}

	if err := s.users.RemovePost(ctx, post.Creator, id); err != nil {
		slog.Error("post deleted but owner posts set was not updated",
			"post_id", id.Hex(), "creator_id", post.Creator.Hex(), "error", err)
		return fail(span, dependencyFault("remove post from owner", err))
	}

	s.publish(ctx, "deleted", id, func() error { return s.events.PublishPostDeleted(ctx, id) })
	return nil
}

// discard never fails the caller: the record mutation it follows already succeeded.
func (s *FeedService) discard(path string) {
	if path == "" {
		return
	}
	if err := s.files.Discard(path); err != nil {
		slog.Warn("failed to discard image, file left behind", "path", path, "error", err)
	}
}

func (s *FeedService) publish(ctx context.Context, action string, postID bson.ObjectID, send func() error) {
	if err := send(); err != nil {
		slog.WarnContext(ctx, "failed to publish post event", "action", action, "post_id", postID.Hex(), "error", err)
	}
}

func lookupFault(op string, err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return storageFault(op, err)
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

type noopPublisher struct{}

func (noopPublisher) PublishPostCreated(context.Context, *models.Post) error  { return nil }
func (noopPublisher) PublishPostUpdated(context.Context, *models.Post) error  { return nil }
func (noopPublisher) PublishPostDeleted(context.Context, bson.ObjectID) error { return nil }
