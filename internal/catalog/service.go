package catalog

// Typed operations over the book and genre resources, with a read cache kept
// coherent by scope invalidation on every successful mutation.

import (
	"context"
	"time"

	"go.uber.org/zap"

	"bookshelf/internal/api"
	"bookshelf/internal/listing"
)

const (
	// Books change through this client, so their entries are short-lived.
	bookTTL = 30 * time.Second
	// The genre taxonomy changes rarely, so its list stays fresh for an hour
	// and is never refetched early.
	genreTTL = time.Hour
)

type Service struct {
	client *api.Client
	cache  *cache
	logger *zap.Logger
}

func NewService(client *api.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client: client,
		cache:  newCache(),
		logger: logger,
	}
}

// ListBooks fetches one page of books matching the params. Fields at their
// defaults are omitted from the outgoing query string, and two params
// encoding identically share a cache entry.
func (s *Service) ListBooks(ctx context.Context, params listing.Params) (*Page[Book], error) {
	key := cacheKey{kind: kindBookList, query: params.QueryString()}
	if cached, ok := s.cache.get(key); ok {
		s.logger.Debug("book list served from cache", zap.String("query", key.query))
		return cached.(*Page[Book]), nil
	}

	path := "/books"
	if qs := params.QueryString(); qs != "" {
		path += "?" + qs
	}
	resp, err := api.Get[Page[Book]](ctx, s.client, path)
	if err != nil {
		return nil, err
	}

	page := &resp.Data
	s.cache.put(key, page, bookTTL)
	return page, nil
}

// GetBook fetches one book by id. A missing id surfaces as the client's
// NotFound error.
func (s *Service) GetBook(ctx context.Context, id string) (*Book, error) {
	key := cacheKey{kind: kindBookDetail, id: id}
	if cached, ok := s.cache.get(key); ok {
		return cached.(*Book), nil
	}

	resp, err := api.Get[Book](ctx, s.client, "/books/"+id)
	if err != nil {
		return nil, err
	}

	book := &resp.Data
	s.cache.put(key, book, bookTTL)
	return book, nil
}

// CreateBook validates the input, creates the record, and drops every cached
// book entry so subsequent reads reflect the new record.
func (s *Service) CreateBook(ctx context.Context, input BookInput) (*Book, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	resp, err := api.Post[Book](ctx, s.client, "/books", input)
	if err != nil {
		return nil, err
	}

	s.cache.invalidate(ScopeAllBooks())
	s.logger.Debug("book created", zap.String("id", resp.Data.ID))
	return &resp.Data, nil
}

// EditBook applies a partial update; only supplied fields are sent.
func (s *Service) EditBook(ctx context.Context, id string, patch BookPatch) (*Book, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	resp, err := api.Patch[Book](ctx, s.client, "/books/"+id, patch)
	if err != nil {
		return nil, err
	}

	s.cache.invalidate(ScopeAllBooks())
	s.logger.Debug("book edited", zap.String("id", id))
	return &resp.Data, nil
}

// DeleteBook removes the record and invalidates the same scope as create.
func (s *Service) DeleteBook(ctx context.Context, id string) error {
	if _, err := api.Delete[Book](ctx, s.client, "/books/"+id); err != nil {
		return err
	}

	s.cache.invalidate(ScopeAllBooks())
	s.logger.Debug("book deleted", zap.String("id", id))
	return nil
}

// ListGenres fetches the genre taxonomy, cached for an hour.
func (s *Service) ListGenres(ctx context.Context) ([]Genre, error) {
	key := cacheKey{kind: kindGenreList}
	if cached, ok := s.cache.get(key); ok {
		return cached.([]Genre), nil
	}

	resp, err := api.Get[[]Genre](ctx, s.client, "/genres")
	if err != nil {
		return nil, err
	}

	s.cache.put(key, resp.Data, genreTTL)
	return resp.Data, nil
}
