package tmpstore

import (
	"context"
	"encoding/hex"
	"errors"
	"time"

	"github.com/Drolfothesgnir/castparse/entity"
	"github.com/minio/sha256-simd"
)

// Different key prefixes for different use cases
const (
	NodesPrefix = "nodes:"
)

// ErrCacheMiss is returned when the key is not found or expired.
var ErrCacheMiss = errors.New("tmpstore: cache miss")

// Store keeps the parse results between requests.
//
//go:generate mockgen -package mockstore -destination mock/store.go github.com/Drolfothesgnir/castparse/tmpstore Store
type Store interface {
	// GetNodes returns the cached Nodes or ErrCacheMiss.
	GetNodes(ctx context.Context, key string) ([]entity.Node, error)

	// SaveNodes caches the Nodes for the ttl. Zero ttl means no expiration.
	SaveNodes(ctx context.Context, key string, nodes []entity.Node, ttl time.Duration) error

	// Close releases the resources held by the Store.
	Close() error
}

// Key returns the cache key of the text parsed by the parser with the given fingerprint.
func Key(fingerprint, text string) string {
	h := sha256.New()
	h.Write([]byte(fingerprint))
	h.Write([]byte{0})
	h.Write([]byte(text))

	return NodesPrefix + hex.EncodeToString(h.Sum(nil))
}
