package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"bookshelf/internal/config"
	"bookshelf/internal/docstore"
	"bookshelf/internal/inventory"
	"bookshelf/internal/logger"
	"bookshelf/internal/query"
	"bookshelf/internal/review"
)

type sampleBook struct {
	title, author string
	year, qty     int
}

type sampleScore struct {
	title, author, reference string
	rating                   float64
}

var books = []sampleBook{
	{"The Last Man", "Mary Shelley", 1826, 2},
	{"When Worlds Collide", "Philip Wylie & Edwin Balmer", 1933, 1},
	{"Earth Abides", "George R. Stewart", 1949, 3},
	{"The Day of the Triffids", "John Wyndham", 1951, 4},
}

var scores = []sampleScore{
	{"The Last Man", "Mary Shelley", "The Book Club", 7},
	{"The Last Man", "Mary Shelley", "The Good Read", 6},
	{"Earth Abides", "George R. Stewart", "The Good Read", 6},
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: seed <mongodb-url>")
		os.Exit(1)
	}
	if err := config.CheckURL(os.Args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{})
	if err := seed(context.Background(), os.Args[1], log); err != nil {
		log.Error("seed failed", "error", err)
		os.Exit(1)
	}
	log.Info("seed complete")
}

func seed(ctx context.Context, url string, log *logger.Logger) error {
	db, err := docstore.Connect(ctx, url, config.DatabaseName)
	if err != nil {
		return err
	}
	defer db.Close(ctx)

	coll := db.Collection(config.CollectionName)
	stock := inventory.NewService(inventory.NewMongoRepo(coll))
	reviews := review.NewService(review.NewMongoRepo(coll))

	for _, b := range books {
		key := inventory.Payload{Title: &b.title, Author: &b.author}
		existing, err := stock.List(ctx, key)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			log.Info("book already present", "title", b.title)
			continue
		}

		p := key
		p.Year, p.Quantity = &b.year, &b.qty
		if err := stock.Add(ctx, p); err != nil {
			return fmt.Errorf("add %q: %w", b.title, err)
		}
		log.Info("added book", "title", b.title)
	}

	// A book with an explicitly empty score list reports "No scores recorded".
	if err := clearScores(ctx, coll, "When Worlds Collide", "Philip Wylie & Edwin Balmer", time.Now().UTC().Truncate(time.Millisecond)); err != nil {
		return err
	}

	for _, s := range scores {
		p := review.Payload{Title: &s.title, Author: &s.author, Reference: &s.reference, Score: &s.rating}
		if err := reviews.ReplaceScore(ctx, p); err != nil {
			return fmt.Errorf("score %q by %q: %w", s.title, s.reference, err)
		}
		log.Info("recorded score", "title", s.title, "reference", s.reference)
	}
	return nil
}

func clearScores(ctx context.Context, coll docstore.Collection, title, author string, at time.Time) error {
	_, err := coll.UpdateOne(ctx,
		query.Identity(title, author),
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "scores", Value: bson.A{}},
			{Key: "last_modified", Value: at},
		}}},
	)
	if err != nil {
		return fmt.Errorf("reset scores: %w", err)
	}
	return nil
}
