package services

import (
	"context"
	"errors"
	"sync"

	"feed-api/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// memPostStore keeps posts in insertion order, like the default Mongo scan.
type memPostStore struct {
	mu    sync.Mutex
	posts []models.Post

	createErr error
	saveErr   error
	deleteErr error
	countErr  error
	findErr   error
}

func (s *memPostStore) Create(ctx context.Context, p *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return s.createErr
	}
	p.ID = bson.NewObjectID()
	s.posts = append(s.posts, *p)
	return nil
}

func (s *memPostStore) FindByID(ctx context.Context, id bson.ObjectID) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findErr != nil {
		return nil, s.findErr
	}
	for _, p := range s.posts {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (s *memPostStore) FindPage(ctx context.Context, offset, limit int64) ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findErr != nil {
		return nil, s.findErr
	}
	n := int64(len(s.posts))
	if offset >= n {
		return []models.Post{}, nil
	}
	end := offset + limit
	if end > n {
		end = n
	}
	out := make([]models.Post, end-offset)
	copy(out, s.posts[offset:end])
	return out, nil
}

func (s *memPostStore) Count(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.countErr != nil {
		return 0, s.countErr
	}
	return int64(len(s.posts)), nil
}

func (s *memPostStore) Save(ctx context.Context, p *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	for i := range s.posts {
		if s.posts[i].ID == p.ID {
			s.posts[i] = *p
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (s *memPostStore) DeleteByID(ctx context.Context, id bson.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.deleteErr != nil {
		return s.deleteErr
	}
	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (s *memPostStore) get(id bson.ObjectID) (models.Post, bool) {
	p, err := s.FindByID(context.Background(), id)
	if err != nil {
		return models.Post{}, false
	}
	return *p, true
}

type memUserStore struct {
	mu    sync.Mutex
	users map[bson.ObjectID]models.User

	findErr  error
	writeErr error
	// beforeFind runs outside the lock on every FindByID, so tests can hold
	// concurrent callers at the same point.
	beforeFind func()
}

func newMemUserStore(users ...models.User) *memUserStore {
	s := &memUserStore{users: map[bson.ObjectID]models.User{}}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func (s *memUserStore) FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error) {
	if s.beforeFind != nil {
		s.beforeFind()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findErr != nil {
		return nil, s.findErr
	}
	u, ok := s.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	u.Posts = append([]bson.ObjectID(nil), u.Posts...)
	return &u, nil
}

func (s *memUserStore) AddPost(ctx context.Context, userID, postID bson.ObjectID) error {
	return s.update(userID, func(u *models.User) { u.AddPost(postID) })
}

func (s *memUserStore) RemovePost(ctx context.Context, userID, postID bson.ObjectID) error {
	return s.update(userID, func(u *models.User) { u.RemovePost(postID) })
}

func (s *memUserStore) update(id bson.ObjectID, fn func(*models.User)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writeErr != nil {
		return s.writeErr
	}
	u, ok := s.users[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	u.Posts = append([]bson.ObjectID(nil), u.Posts...)
	fn(&u)
	s.users[id] = u
	return nil
}

func (s *memUserStore) get(id bson.ObjectID) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users[id]
}

// recordingDiscarder records every path it is asked to discard.
type recordingDiscarder struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (d *recordingDiscarder) Discard(path string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, path)
	return d.err
}

func (d *recordingDiscarder) count(path string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := 0
	for _, c := range d.calls {
		if c == path {
			n++
		}
	}
	return n
}

type recordingPublisher struct {
	created, updated, deleted int
	err                       error
}

func (p *recordingPublisher) PublishPostCreated(context.Context, *models.Post) error {
	p.created++
	return p.err
}

func (p *recordingPublisher) PublishPostUpdated(context.Context, *models.Post) error {
	p.updated++
	return p.err
}

func (p *recordingPublisher) PublishPostDeleted(context.Context, bson.ObjectID) error {
	p.deleted++
	return p.err
}

var errDBDown = errors.New("db down")
