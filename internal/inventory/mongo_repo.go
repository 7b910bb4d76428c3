package inventory

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bookshelf/internal/apperr"
	"bookshelf/internal/docstore"
	"bookshelf/internal/query"
	"bookshelf/internal/validation"
)

var projection = query.Projection(
	fieldTitle, fieldAuthor, fieldYear, fieldQuantity, fieldExplicit,
	fieldFirstCreated, fieldLastModified,
)

type MongoRepo struct {
	coll docstore.Collection
	now  func() time.Time
}

func NewMongoRepo(coll docstore.Collection) *MongoRepo {
	return &MongoRepo{coll: coll, now: now}
}

// BSON dates hold milliseconds; truncating keeps a written timestamp equal
// to the one read back.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

type insertFields struct {
	Title    *string `json:"title" validate:"required"`
	Author   *string `json:"author" validate:"required"`
	Year     *int    `json:"year" validate:"required"`
	Quantity *int    `json:"quantity" validate:"required"`
}

type updateFields struct {
	Title    *string `json:"title" validate:"required"`
	Author   *string `json:"author" validate:"required"`
	Quantity *int    `json:"quantity" validate:"required"`
}

type identityFields struct {
	Title  *string `json:"title" validate:"required"`
	Author *string `json:"author" validate:"required"`
}

// Find filters on title and/or author only and sorts by year ascending.
func (repo *MongoRepo) Find(ctx context.Context, search Book) ([]Book, error) {
	filter := query.Build(query.Search{Title: search.Title, Author: search.Author})
	opts := options.Find().
		SetProjection(projection).
		SetSort(bson.D{{Key: fieldYear, Value: 1}})

	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperr.Store("find", err)
	}

	books := []Book{}
	if err := cursor.All(ctx, &books); err != nil {
		return nil, apperr.Store("decode", err)
	}
	return books, nil
}

// Insert stamps both timestamps with the same instant and stores book.
func (repo *MongoRepo) Insert(ctx context.Context, book *Book) error {
	if err := validation.Require(insertFields{
		Title:    book.Title,
		Author:   book.Author,
		Year:     book.Year,
		Quantity: book.Quantity,
	}); err != nil {
		return err
	}

	stamp := repo.now()
	book.FirstCreated = &stamp
	book.LastModified = &stamp

	_, err := repo.coll.InsertOne(ctx, book)
	return apperr.Store("insert", err)
}

// Update increments the stored quantity by book.Quantity. Repeating the
// same call keeps adding.
func (repo *MongoRepo) Update(ctx context.Context, book Book) error {
	if err := validation.Require(updateFields{
		Title:    book.Title,
		Author:   book.Author,
		Quantity: book.Quantity,
	}); err != nil {
		return err
	}

	filter := query.Identity(*book.Title, *book.Author)
	_, err := repo.coll.UpdateOne(ctx, filter, incrementQuantity(*book.Quantity, repo.now()))
	return apperr.Store("update", err)
}

// Delete removes the one record keyed by title and author.
func (repo *MongoRepo) Delete(ctx context.Context, book Book) error {
	if err := validation.Require(identityFields{Title: book.Title, Author: book.Author}); err != nil {
		return err
	}

	_, err := repo.coll.DeleteOne(ctx, query.Identity(*book.Title, *book.Author))
	return apperr.Store("delete", err)
}

func incrementQuantity(delta int, at time.Time) bson.D {
	return bson.D{
		{Key: "$inc", Value: bson.D{{Key: fieldQuantity, Value: delta}}},
		{Key: "$set", Value: bson.D{{Key: fieldLastModified, Value: at}}},
	}
}
