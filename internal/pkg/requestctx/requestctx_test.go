package requestctx

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrom(t *testing.T) {
	t.Run("returns bound context", func(t *testing.T) {
		rc := New("req-1", "GET", "/people")
		ctx := With(context.Background(), rc)

		got, ok := From(ctx)
		require.True(t, ok)
		assert.Equal(t, "req-1", got.RequestID)
		assert.Equal(t, "GET", got.Method)
		assert.Equal(t, "/people", got.Path)
		assert.WithinDuration(t, time.Now(), got.StartTime, time.Second)
	})

	t.Run("returns false outside request scope", func(t *testing.T) {
		_, ok := From(context.Background())
		assert.False(t, ok)
	})
}

func TestRequestID(t *testing.T) {
	t.Run("returns sentinel without context", func(t *testing.T) {
		assert.Equal(t, NoRequestID, RequestID(context.Background()))
	})

	t.Run("returns bound id", func(t *testing.T) {
		ctx := With(context.Background(), New("req-42", "POST", "/person"))
		assert.Equal(t, "req-42", RequestID(ctx))
	})
}

func TestFields(t *testing.T) {
	rc := New("req-1", "GET", "/people")

	_, ok := rc.Get("missing")
	assert.False(t, ok)

	rc.Set("personId", "abc")
	v, ok := rc.Get("personId")
	require.True(t, ok)
	assert.Equal(t, "abc", v)
}

func TestConcurrentIsolation(t *testing.T) {
	// Concurrent requests must each observe their own request context,
	// including across suspension points within a request.
	const n = 50

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			id := fmt.Sprintf("req-%d", i)
			ctx := With(context.Background(), New(id, "GET", "/people"))

			for j := 0; j < 100; j++ {
				got, ok := From(ctx)
				if !assert.True(t, ok) {
					return
				}
				assert.Equal(t, id, got.RequestID)
			}
		}(i)
	}
	wg.Wait()
}

func TestNestedContextsDoNotLeak(t *testing.T) {
	outer := With(context.Background(), New("outer", "GET", "/people"))
	inner := With(outer, New("inner", "POST", "/person"))

	assert.Equal(t, "inner", RequestID(inner))
	assert.Equal(t, "outer", RequestID(outer))
}
