package urlreader

import (
	"context"
	"fmt"
	"os"
	"strings"
)

const localURLPrefix = "file://"

// Local reads from the local filesystem. It is stateless and safe for
// concurrent use.
type Local struct{}

// NewLocal returns a Reader for "file://" URLs.
func NewLocal() *Local {
	return &Local{}
}

// Read implements Reader.
func (l *Local) Read(_ context.Context, url string) ([]byte, error) {
	path, ok := strings.CutPrefix(url, localURLPrefix)
	if !ok {
		return nil, fmt.Errorf("unsupported URL: %s", url)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url, err)
	}
	return data, nil
}
