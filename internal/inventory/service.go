package inventory

import (
	"context"
)

// Service provides inventory business logic.
type Service struct {
	repo Repository
}

// NewService creates a new inventory service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the books matching the title/author in p, oldest first.
func (s *Service) List(ctx context.Context, p Payload) ([]Payload, error) {
	books, err := s.repo.Find(ctx, FromPayload(p))
	if err != nil {
		return nil, err
	}
	return ToPayloads(books), nil
}

// Add stores a new book.
func (s *Service) Add(ctx context.Context, p Payload) error {
	book := FromPayload(p)
	return s.repo.Insert(ctx, &book)
}

// Restock adds p.Quantity copies (which may be negative) to the matching book.
func (s *Service) Restock(ctx context.Context, p Payload) error {
	return s.repo.Update(ctx, FromPayload(p))
}

// Remove deletes the book keyed by p's title and author.
func (s *Service) Remove(ctx context.Context, p Payload) error {
	return s.repo.Delete(ctx, FromPayload(p))
}
