// Package registry - Test registry generic thread-safe.
package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry[string]()

	isNew, err := r.Register("videos", "collection-videos")
	assert.NoError(t, err)
	assert.True(t, isNew)

	// Đăng ký trùng tên ghi đè item cũ, isNew = false
	isNew, err = r.Register("videos", "collection-videos-moi")
	assert.NoError(t, err)
	assert.False(t, isNew)

	got, exists := r.Get("videos")
	assert.True(t, exists)
	assert.Equal(t, "collection-videos-moi", got)

	_, exists = r.Get("khong-ton-tai")
	assert.False(t, exists)
}

func TestRegistry_RegisterEmptyName(t *testing.T) {
	r := NewRegistry[int]()

	_, err := r.Register("", 1)
	assert.Error(t, err)
}

func TestRegistry_GetOrCreate(t *testing.T) {
	r := NewRegistry[int]()
	calls := 0

	creator := func() (int, error) {
		calls++
		return 42, nil
	}

	got, err := r.GetOrCreate("answer", creator)
	assert.NoError(t, err)
	assert.Equal(t, 42, got)

	// Lần thứ hai lấy từ registry, không gọi lại creator
	got, err = r.GetOrCreate("answer", creator)
	assert.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, 1, calls)
}
