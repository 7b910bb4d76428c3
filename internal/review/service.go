package review

import (
	"context"
)

// Service provides review business logic.
type Service struct {
	repo Repository
}

// NewService creates a new review service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Summary returns the book keyed by p's title and author with its average
// score. No match yields an all-absent payload.
func (s *Service) Summary(ctx context.Context, p Payload) (Payload, error) {
	book, err := s.repo.Find(ctx, FromPayload(p))
	if err != nil {
		return Payload{}, err
	}
	return ToPayload(book), nil
}

// AddScore appends p's reviewer score to the book.
func (s *Service) AddScore(ctx context.Context, p Payload) error {
	return s.repo.Insert(ctx, FromPayload(p))
}

// ReplaceScore swaps the reviewer's existing score for p's.
func (s *Service) ReplaceScore(ctx context.Context, p Payload) error {
	return s.repo.Update(ctx, FromPayload(p))
}

// RemoveScore drops the reviewer's score from the book.
func (s *Service) RemoveScore(ctx context.Context, p Payload) error {
	return s.repo.Delete(ctx, FromPayload(p))
}
