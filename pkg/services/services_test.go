package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reset() {
	lock.Lock()
	defer lock.Unlock()
	defaultServices = nil
}

func TestDefault_BeforeInitialize(t *testing.T) {
	reset()

	assert.False(t, IsReady())
	_, err := Default()
	require.Error(t, err)
	assert.True(t, IsNotInitialized(err))
}

func TestInitialize(t *testing.T) {
	reset()

	first := &Services{}
	Initialize(first)

	assert.True(t, IsReady())
	got, err := Default()
	require.NoError(t, err)
	assert.Same(t, first, got)

	// a second call warns but overwrites
	second := &Services{}
	Initialize(second)
	got, err = Default()
	require.NoError(t, err)
	assert.Same(t, second, got)
}
