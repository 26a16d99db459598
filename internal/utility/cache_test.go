// Package utility - Test cache TTL trong bộ nhớ.
package utility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache_SetGet(t *testing.T) {
	c := NewCache(1*time.Minute, 1*time.Minute)
	defer c.Stop()

	c.Set("key", "value")

	got, ok := c.Get("key")
	assert.True(t, ok)
	assert.Equal(t, "value", got)

	_, ok = c.Get("khong-ton-tai")
	assert.False(t, ok)
}

func TestCache_ExpiredEntryIsMiss(t *testing.T) {
	c := NewCache(20*time.Millisecond, 1*time.Minute)
	defer c.Stop()

	c.Set("key", "value")
	time.Sleep(50 * time.Millisecond)

	// Entry hết hạn phải được coi là miss kể cả khi cleanup chưa chạy
	_, ok := c.Get("key")
	assert.False(t, ok)
}

func TestCache_OverwriteRefreshesValue(t *testing.T) {
	c := NewCache(1*time.Minute, 1*time.Minute)
	defer c.Stop()

	c.Set("key", "cu")
	c.Set("key", "moi")

	got, _ := c.Get("key")
	assert.Equal(t, "moi", got)
	assert.Equal(t, 1, c.Len())
}
