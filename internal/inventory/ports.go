package inventory

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=inventory

// Repository defines the contract for inventory storage.
type Repository interface {
	Find(ctx context.Context, search Book) ([]Book, error)
	Insert(ctx context.Context, book *Book) error
	Update(ctx context.Context, book Book) error
	Delete(ctx context.Context, book Book) error
}
