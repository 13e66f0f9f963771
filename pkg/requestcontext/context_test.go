package requestcontext

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, RequestID(ctx))
	assert.Equal(t, "abc", RequestID(WithRequestID(ctx, "abc")))
}

func TestNow(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	fixed := time.Date(2025, 7, 1, 12, 0, 0, 0, loc)

	got := Now(WithTime(context.Background(), fixed))
	assert.True(t, got.Equal(fixed))
	assert.Equal(t, time.UTC, got.Location())

	assert.WithinDuration(t, time.Now(), Now(context.Background()), time.Second)
}
