// Package docstoretest provides an in-memory stand-in for docstore.Collection
// that records every call so tests can assert on the filter and update
// documents a repository builds.
package docstoretest

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Call is one recorded collection operation.
type Call struct {
	Op         string
	Filter     interface{}
	Update     interface{}
	Document   interface{}
	Projection interface{}
	Sort       interface{}
}

// Collection records calls and answers reads from canned documents.
type Collection struct {
	mu sync.Mutex

	// FindDocs is returned by Find.
	FindDocs []interface{}
	// FindOneDoc is returned by FindOne; nil means no document matched.
	FindOneDoc interface{}
	// Err, when set, fails every operation.
	Err error

	calls []Call
}

func (c *Collection) record(call Call) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, call)
}

// Calls returns a copy of the recorded calls in order.
func (c *Collection) Calls() []Call {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Call(nil), c.calls...)
}

// Mutations returns only insert, update and delete calls.
func (c *Collection) Mutations() []Call {
	var out []Call
	for _, call := range c.Calls() {
		if call.Op != "find" && call.Op != "findOne" {
			out = append(out, call)
		}
	}
	return out
}

func (c *Collection) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error) {
	call := Call{Op: "find", Filter: filter}
	for _, o := range opts {
		call.Projection = o.Projection
		call.Sort = o.Sort
	}
	c.record(call)
	if c.Err != nil {
		return nil, c.Err
	}
	docs := c.FindDocs
	if docs == nil {
		docs = []interface{}{}
	}
	return mongo.NewCursorFromDocuments(docs, nil, nil)
}

func (c *Collection) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult {
	call := Call{Op: "findOne", Filter: filter}
	for _, o := range opts {
		call.Projection = o.Projection
	}
	c.record(call)
	if c.Err != nil {
		return mongo.NewSingleResultFromDocument(bson.D{}, c.Err, nil)
	}
	if c.FindOneDoc == nil {
		return mongo.NewSingleResultFromDocument(bson.D{}, mongo.ErrNoDocuments, nil)
	}
	return mongo.NewSingleResultFromDocument(c.FindOneDoc, nil, nil)
}

func (c *Collection) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	c.record(Call{Op: "insertOne", Document: document})
	if c.Err != nil {
		return nil, c.Err
	}
	return &mongo.InsertOneResult{}, nil
}

func (c *Collection) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	c.record(Call{Op: "updateOne", Filter: filter, Update: update})
	if c.Err != nil {
		return nil, c.Err
	}
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (c *Collection) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error) {
	c.record(Call{Op: "deleteOne", Filter: filter})
	if c.Err != nil {
		return nil, c.Err
	}
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}
