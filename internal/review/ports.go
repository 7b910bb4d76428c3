package review

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=review

// Repository defines the contract for review score storage.
type Repository interface {
	// Find returns nil, nil when no record matches.
	Find(ctx context.Context, search Book) (*Book, error)
	Insert(ctx context.Context, book Book) error
	Update(ctx context.Context, book Book) error
	Delete(ctx context.Context, book Book) error
}
