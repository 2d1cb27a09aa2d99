package util

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetKeys(t *testing.T) {
	m := map[uint8]bool{3: true, 1: true, 2: true}
	keys := GetKeys(m)
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	assert := assert.New(t)
	assert.Equal([]uint8{1, 2, 3}, keys)
}

func TestClamp(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(10, Clamp(5, 10, 100))
	assert.Equal(100, Clamp(500, 10, 100))
	assert.Equal(42, Clamp(42, 10, 100))
}
