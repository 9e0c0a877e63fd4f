package redisclient

import (
	"context"
	"testing"
	"time"

	"github.com/muhammadheryan/marketplace/cmd/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNilConfig(t *testing.T) {
	c, err := New(context.Background(), nil)
	assert.Nil(t, c)
	assert.EqualError(t, err, "nil config provided")
}

func TestNewUnreachable(t *testing.T) {
	cfg := &config.Config{Redis: config.RedisConfig{Host: "127.0.0.1", Port: 1}}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	c, err := New(ctx, cfg)
	require.Error(t, err)
	assert.Nil(t, c)
	assert.Contains(t, err.Error(), "unable to ping redis at 127.0.0.1:1")
}
