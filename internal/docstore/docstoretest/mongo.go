package docstoretest

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"bookshelf/internal/docstore"
)

// Connect opens a client against MONGODB_URL and returns a collection name
// unique to the test. Tests skip when MongoDB is not configured or not
// reachable.
func Connect(t *testing.T) (*docstore.Client, string) {
	t.Helper()

	url := os.Getenv("MONGODB_URL")
	if url == "" {
		t.Skip("MONGODB_URL not set")
	}

	client, err := docstore.Connect(context.Background(), url, "library_test")
	if err != nil {
		t.Skipf("MongoDB not available: %v", err)
	}

	name := fmt.Sprintf("books_%d", time.Now().UnixNano())
	t.Cleanup(func() {
		ctx := context.Background()
		_ = client.Collection(name).Drop(ctx)
		_ = client.Close(ctx)
	})
	return client, name
}
