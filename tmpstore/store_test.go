package tmpstore

import (
	"context"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Drolfothesgnir/castparse/entity"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	fp := entity.Default().Fingerprint()

	key := Key(fp, "@test")
	require.True(t, strings.HasPrefix(key, NodesPrefix))
	require.Len(t, key, len(NodesPrefix)+64)

	require.Equal(t, key, Key(fp, "@test"))
	require.NotEqual(t, key, Key(fp, "@test2"))
	require.NotEqual(t, key, Key("dot=true;suffixes=", "@test"))

	// the separator keeps the fingerprint and the text apart
	require.NotEqual(t, Key("ab", "c"), Key("a", "bc"))
}

// testStores returns the Stores to run the shared tests against.
// The Redis one is used only when TEST_REDIS_ADDRESS is set.
func testStores(t *testing.T) map[string]Store {
	t.Helper()

	stores := map[string]Store{"memory": NewMemoryStore()}

	if addr := os.Getenv("TEST_REDIS_ADDRESS"); addr != "" {
		rs := NewRedisStore(addr)
		require.NoError(t, rs.Ping(context.Background()))
		stores["redis"] = rs
	}

	t.Cleanup(func() {
		for _, s := range stores {
			s.Close()
		}
	})

	return stores
}

func TestStoreSaveGet(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			text := "gm @dwr $DEGEN"
			key := Key(entity.Default().Fingerprint(), text+name+time.Now().String())

			_, err := store.GetNodes(ctx, key)
			require.ErrorIs(t, err, ErrCacheMiss)

			nodes := entity.Parse(text)
			require.NoError(t, store.SaveNodes(ctx, key, nodes, time.Minute))

			got, err := store.GetNodes(ctx, key)
			require.NoError(t, err)
			require.Equal(t, nodes, got)
		})
	}
}

func TestMemoryStoreExpiration(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	store := NewMemoryStore()
	store.now = func() time.Time { return now }

	nodes := entity.Parse("#tag")
	require.NoError(t, store.SaveNodes(ctx, "short", nodes, time.Second))
	require.NoError(t, store.SaveNodes(ctx, "long", nodes, time.Hour))
	require.NoError(t, store.SaveNodes(ctx, "forever", nodes, 0))
	require.Equal(t, 3, store.Len())

	now = now.Add(time.Second)

	_, err := store.GetNodes(ctx, "short")
	require.ErrorIs(t, err, ErrCacheMiss)
	require.Equal(t, 2, store.Len(), "expired entry is dropped on read")

	now = now.Add(2 * time.Hour)
	require.Equal(t, 1, store.Purge())
	require.Equal(t, 1, store.Len())

	got, err := store.GetNodes(ctx, "forever")
	require.NoError(t, err)
	require.Equal(t, nodes, got)
}

func TestMemoryStoreCopiesNodes(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	nodes := entity.Parse("@a")
	require.NoError(t, store.SaveNodes(ctx, "k", nodes, 0))
	nodes[0].Value = "changed"

	got, err := store.GetNodes(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "@a", got[0].Value)
}

func TestMemoryStoreConcurrent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	nodes := entity.Parse("$ETH")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			key := Key("", strings.Repeat("x", i))
			for j := 0; j < 100; j++ {
				store.SaveNodes(ctx, key, nodes, time.Minute)
				store.GetNodes(ctx, key)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 8, store.Len())
}

func TestMemoryStoreJanitor(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.SaveNodes(context.Background(), "k", nil, time.Nanosecond))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		store.RunJanitor(ctx, time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool { return store.Len() == 0 }, time.Second, time.Millisecond)

	cancel()
	<-done
}
