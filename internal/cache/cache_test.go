package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNilClient_FailsSafe(t *testing.T) {
	var c *Client
	ctx := context.Background()

	data, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, data)
	assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	assert.NoError(t, c.Delete(ctx, "k"))
	assert.NoError(t, c.Ping(ctx))

	var out map[string]string
	assert.False(t, c.GetJSON(ctx, "k", &out))
}

func TestUnreachableRedis_BehavesLikeMiss(t *testing.T) {
	c := New("127.0.0.1:1", "", 0)
	defer c.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	assert.NoError(t, c.SetJSON(ctx, "geo:1", map[string]float64{"lat": 1}, time.Minute))
	var out map[string]float64
	assert.False(t, c.GetJSON(ctx, "geo:1", &out))
	assert.Error(t, c.Ping(ctx))
}
