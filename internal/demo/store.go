package demo

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vango-dev/ssr/pkg/server"
)

// ErrPostNotFound is returned for an unknown slug. It matches
// server.ErrNotFound, so a missing post answers 404.
var ErrPostNotFound = fmt.Errorf("demo: post not found: %w", server.ErrNotFound)

// Post is a blog entry.
type Post struct {
	Slug      string
	Title     string
	Author    string
	Body      string
	Tags      []string
	Published time.Time
}

// Store loads blog data. Implementations must be safe for concurrent use.
type Store interface {
	Posts(ctx context.Context) ([]Post, error)
	Post(ctx context.Context, slug string) (Post, error)
}

// MemoryStore is an in-memory Store.
type MemoryStore struct {
	// Latency delays every call, honoring the context.
	Latency time.Duration

	mu    sync.RWMutex
	posts map[string]Post
}

// NewMemoryStore returns a store holding posts.
func NewMemoryStore(posts ...Post) *MemoryStore {
	s := &MemoryStore{posts: make(map[string]Post, len(posts))}
	for _, p := range posts {
		s.posts[p.Slug] = p
	}
	return s
}

// Add stores p, replacing any post with the same slug.
func (s *MemoryStore) Add(p Post) {
	s.mu.Lock()
	s.posts[p.Slug] = p
	s.mu.Unlock()
}

// Posts returns every post, newest first.
func (s *MemoryStore) Posts(ctx context.Context) ([]Post, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	out := make([]Post, 0, len(s.posts))
	for _, p := range s.posts {
		out = append(out, p)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Published.Equal(out[j].Published) {
			return out[i].Published.After(out[j].Published)
		}
		return out[i].Slug < out[j].Slug
	})
	return out, nil
}

// Post returns the post with slug.
func (s *MemoryStore) Post(ctx context.Context, slug string) (Post, error) {
	if err := s.wait(ctx); err != nil {
		return Post{}, err
	}
	s.mu.RLock()
	p, ok := s.posts[slug]
	s.mu.RUnlock()
	if !ok {
		return Post{}, ErrPostNotFound
	}
	return p, nil
}

func (s *MemoryStore) wait(ctx context.Context) error {
	if s.Latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.Latency)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SamplePosts returns the posts the CLI serves by default.
func SamplePosts() []Post {
	day := func(d int) time.Time { return time.Date(2024, time.March, d, 9, 0, 0, 0, time.UTC) }
	return []Post{
		{
			Slug:      "hello-world",
			Title:     "Hello, World",
			Author:    "Ada",
			Body:      "The first post rendered on the server.",
			Tags:      []string{"intro"},
			Published: day(1),
		},
		{
			Slug:      "async-components",
			Title:     "Async components",
			Author:    "Grace",
			Body:      "Components can load data before they render. Siblings load in parallel.",
			Tags:      []string{"render", "async"},
			Published: day(8),
		},
		{
			Slug:      "escaping",
			Title:     "Escaping <html> & friends",
			Author:    "Ada",
			Body:      `Text is escaped: <script>alert("x")</script>`,
			Tags:      []string{"render", "security"},
			Published: day(15),
		},
	}
}
