package review

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bookshelf/internal/apperr"
	"bookshelf/internal/docstore"
	"bookshelf/internal/query"
	"bookshelf/internal/validation"
)

var projection = query.Projection(fieldTitle, fieldAuthor, fieldYear, fieldScores, fieldLastModified)

type MongoRepo struct {
	coll docstore.Collection
	now  func() time.Time
}

func NewMongoRepo(coll docstore.Collection) *MongoRepo {
	return &MongoRepo{coll: coll, now: now}
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

type identityFields struct {
	Title  *string `json:"title" validate:"required"`
	Author *string `json:"author" validate:"required"`
}

type scoreFields struct {
	Title     *string `json:"title" validate:"required"`
	Author    *string `json:"author" validate:"required"`
	Reference *string `json:"reference" validate:"required"`
	Rating    *int    `json:"rating" validate:"required"`
}

// firstScore is the single score a request carries.
func firstScore(book Book) Score {
	if len(book.Scores) == 0 {
		return Score{}
	}
	return book.Scores[0]
}

func requireScore(book Book) error {
	score := firstScore(book)
	return validation.Require(scoreFields{
		Title:     book.Title,
		Author:    book.Author,
		Reference: score.Reference,
		Rating:    score.Rating,
	})
}

// Find looks up one book by title and author. Without both there is
// nothing to look up and the result is nil.
func (repo *MongoRepo) Find(ctx context.Context, search Book) (*Book, error) {
	if search.Title == nil || search.Author == nil {
		return nil, nil
	}

	opts := options.FindOne().SetProjection(projection)
	var book Book
	err := repo.coll.FindOne(ctx, query.Identity(*search.Title, *search.Author), opts).Decode(&book)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Store("find", err)
	}
	return &book, nil
}

// Insert pushes the request's score onto the book's score list. The book
// itself must already exist; a push against no match changes nothing.
func (repo *MongoRepo) Insert(ctx context.Context, book Book) error {
	if err := requireScore(book); err != nil {
		return err
	}

	score := firstScore(book)
	filter := query.Identity(*book.Title, *book.Author)
	_, err := repo.coll.UpdateOne(ctx, filter, pushScore(*score.Reference, *score.Rating, repo.now()))
	return apperr.Store("push score", err)
}

// Update removes any score with the request's reference, then pushes the
// new one. All fields are checked before the first write. The two writes
// are separate: concurrent updates for the same reference can interleave.
func (repo *MongoRepo) Update(ctx context.Context, book Book) error {
	if err := requireScore(book); err != nil {
		return err
	}
	if err := repo.Delete(ctx, book); err != nil {
		return err
	}
	return repo.Insert(ctx, book)
}

// Delete pulls the score with the request's reference. A request without a
// reference is a no-op.
func (repo *MongoRepo) Delete(ctx context.Context, book Book) error {
	if err := validation.Require(identityFields{Title: book.Title, Author: book.Author}); err != nil {
		return err
	}

	score := firstScore(book)
	if score.Reference == nil {
		return nil
	}

	filter := query.Identity(*book.Title, *book.Author)
	_, err := repo.coll.UpdateOne(ctx, filter, pullScore(*score.Reference, repo.now()))
	return apperr.Store("pull score", err)
}

func pushScore(reference string, rating int, at time.Time) bson.D {
	return bson.D{
		{Key: "$push", Value: bson.D{{Key: fieldScores, Value: bson.D{
			{Key: fieldReference, Value: reference},
			{Key: fieldRating, Value: rating},
		}}}},
		{Key: "$set", Value: bson.D{{Key: fieldLastModified, Value: at}}},
	}
}

func pullScore(reference string, at time.Time) bson.D {
	return bson.D{
		{Key: "$pull", Value: bson.D{{Key: fieldScores, Value: bson.D{
			{Key: fieldReference, Value: reference},
		}}}},
		{Key: "$set", Value: bson.D{{Key: fieldLastModified, Value: at}}},
	}
}
