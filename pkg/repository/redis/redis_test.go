package redis_test

import (
	"context"
	"os"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/javagrunt/javagrunt/pkg/repository/redis"
	"github.com/javagrunt/javagrunt/pkg/repository/testhelper"
	"github.com/m-mizutani/gt"
)

func TestRedisStore(t *testing.T) {
	srv := miniredis.RunT(t)

	store, err := redis.New(context.Background(), "redis://"+srv.Addr())
	gt.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	testhelper.TestAll(t, store)
}

func TestRedisStoreKeyLayout(t *testing.T) {
	srv := miniredis.RunT(t)
	ctx := context.Background()

	store, err := redis.New(ctx, "redis://"+srv.Addr())
	gt.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	gt.NoError(t, store.HSet(ctx, "javagrunt:orgs", "acme", "active"))
	gt.NoError(t, store.SAdd(ctx, "javagrunt:org:acme:repos", "web"))
	gt.NoError(t, store.LPush(ctx, "javagrunt:webhooks", `{"event":"ping"}`))

	gt.V(t, srv.HGet("javagrunt:orgs", "acme")).Equal("active")

	members, err := srv.Members("javagrunt:org:acme:repos")
	gt.NoError(t, err)
	gt.V(t, members).Equal([]string{"web"})

	list, err := srv.List("javagrunt:webhooks")
	gt.NoError(t, err)
	gt.V(t, list).Equal([]string{`{"event":"ping"}`})
}

func TestRedisStoreUnreachable(t *testing.T) {
	_, err := redis.New(context.Background(), "redis://127.0.0.1:1")
	gt.Error(t, err)
}

func TestRedisStoreInvalidURL(t *testing.T) {
	_, err := redis.New(context.Background(), "not-a-url://")
	gt.Error(t, err)
}

func TestRedisStoreExternal(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL is not set")
	}

	store, err := redis.New(context.Background(), url)
	gt.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	testhelper.TestAll(t, store)
}
