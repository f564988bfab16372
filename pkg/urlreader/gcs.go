package urlreader

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
)

const gcsURLPrefix = "gs://"

// GCS reads from Google Cloud Storage. The underlying *storage.Client is
// shared and safe for concurrent use; each Read derives its own
// request-scoped object handle rather than mutating shared state.
type GCS struct {
	client *storage.Client
}

// NewGCS builds a GCS reader around a shared client. Callers are
// responsible for calling Close when the reader is no longer needed.
func NewGCS(ctx context.Context) (*GCS, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating GCS client: %w", err)
	}
	return &GCS{client: client}, nil
}

// Close releases the underlying client's connection pool.
func (g *GCS) Close() error {
	return g.client.Close()
}

// Read implements Reader.
func (g *GCS) Read(ctx context.Context, url string) ([]byte, error) {
	rest, ok := strings.CutPrefix(url, gcsURLPrefix)
	if !ok {
		return nil, fmt.Errorf("unsupported URL: %s", url)
	}

	bucket, object, ok := strings.Cut(rest, "/")
	if !ok || object == "" {
		return nil, fmt.Errorf("incomplete blob URL: %s", url)
	}

	// A per-call object handle is cheap and carries no mutable state, which
	// is what lets the shared *storage.Client be used concurrently without
	// cloning it the way a non-thread-safe client would require.
	r, err := g.client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", url, err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url, err)
	}
	return data, nil
}
