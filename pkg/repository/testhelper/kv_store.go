package testhelper

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/javagrunt/javagrunt/pkg/domain/interfaces"
	"github.com/m-mizutani/gt"
)

// TestAll runs all test cases for KVStore
// This is the main entry point for testing any KVStore implementation
func TestAll(t *testing.T, store interfaces.KVStore) {
	t.Run("Hash", func(t *testing.T) {
		TestHash(t, store)
	})
	t.Run("Set", func(t *testing.T) {
		TestSet(t, store)
	})
	t.Run("List", func(t *testing.T) {
		TestList(t, store)
	})
	t.Run("ConcurrentWrites", func(t *testing.T) {
		TestConcurrentWrites(t, store)
	})
}

func uniqueKey(kind string) string {
	return fmt.Sprintf("javagrunt-test:%s:%s", kind, uuid.NewString()[:8])
}

// TestHash checks single-field upsert, lookup and full reads
func TestHash(t *testing.T, store interfaces.KVStore) {
	ctx := context.Background()
	key := uniqueKey("hash")

	_, found, err := store.HGet(ctx, key, "acme")
	gt.NoError(t, err)
	gt.False(t, found)

	all, err := store.HGetAll(ctx, key)
	gt.NoError(t, err)
	gt.V(t, len(all)).Equal(0)

	gt.NoError(t, store.HSet(ctx, key, "acme", "active"))
	gt.NoError(t, store.HSet(ctx, key, "Beta-Org", "active"))
	gt.NoError(t, store.HSet(ctx, key, "acme", "deleted"))

	v, found, err := store.HGet(ctx, key, "acme")
	gt.NoError(t, err)
	gt.True(t, found)
	gt.V(t, v).Equal("deleted")

	all, err = store.HGetAll(ctx, key)
	gt.NoError(t, err)
	gt.V(t, all).Equal(map[string]string{"acme": "deleted", "Beta-Org": "active"})

	// Other keys are isolated
	_, found, err = store.HGet(ctx, uniqueKey("hash"), "acme")
	gt.NoError(t, err)
	gt.False(t, found)
}

// TestSet checks membership is unique and idempotent
func TestSet(t *testing.T, store interfaces.KVStore) {
	ctx := context.Background()
	key := uniqueKey("set")

	members, err := store.SMembers(ctx, key)
	gt.NoError(t, err)
	gt.V(t, len(members)).Equal(0)

	gt.NoError(t, store.SAdd(ctx, key, "web"))
	gt.NoError(t, store.SAdd(ctx, key, "api", "web"))
	gt.NoError(t, store.SAdd(ctx, key, "web"))

	members, err = store.SMembers(ctx, key)
	gt.NoError(t, err)
	sort.Strings(members)
	gt.V(t, members).Equal([]string{"api", "web"})
}

// TestList checks prepend order and range semantics
func TestList(t *testing.T, store interfaces.KVStore) {
	ctx := context.Background()
	key := uniqueKey("list")

	values, err := store.LRange(ctx, key, 0, -1)
	gt.NoError(t, err)
	gt.V(t, len(values)).Equal(0)

	gt.NoError(t, store.LPush(ctx, key, "first"))
	gt.NoError(t, store.LPush(ctx, key, "second"))
	gt.NoError(t, store.LPush(ctx, key, "third", "fourth"))

	values, err = store.LRange(ctx, key, 0, -1)
	gt.NoError(t, err)
	gt.V(t, values).Equal([]string{"fourth", "third", "second", "first"})

	values, err = store.LRange(ctx, key, 0, 1)
	gt.NoError(t, err)
	gt.V(t, values).Equal([]string{"fourth", "third"})

	values, err = store.LRange(ctx, key, -2, -1)
	gt.NoError(t, err)
	gt.V(t, values).Equal([]string{"second", "first"})

	values, err = store.LRange(ctx, key, 10, 20)
	gt.NoError(t, err)
	gt.V(t, len(values)).Equal(0)
}

// TestConcurrentWrites checks that parallel writers do not lose updates
func TestConcurrentWrites(t *testing.T, store interfaces.KVStore) {
	ctx := context.Background()
	hashKey := uniqueKey("hash")
	setKey := uniqueKey("set")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			gt.NoError(t, store.HSet(ctx, hashKey, fmt.Sprintf("org-%02d", i), "active"))
			gt.NoError(t, store.SAdd(ctx, setKey, fmt.Sprintf("repo-%02d", i%4)))
		}(i)
	}
	wg.Wait()

	all, err := store.HGetAll(ctx, hashKey)
	gt.NoError(t, err)
	gt.V(t, len(all)).Equal(16)

	members, err := store.SMembers(ctx, setKey)
	gt.NoError(t, err)
	gt.V(t, len(members)).Equal(4)
}
