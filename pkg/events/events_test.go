package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChannel_EmitOrder(t *testing.T) {
	ch := NewChannel[int]()

	var got []string
	ch.On(func(v int) {
		got = append(got, "first")
	})
	ch.On(func(v int) {
		got = append(got, "second")
	})
	ch.On(func(v int) {
		got = append(got, "third")
	})

	ch.Emit(1)

	assert.Equal(t, []string{"first", "second", "third"}, got)
}

func TestChannel_Off(t *testing.T) {
	ch := NewChannel[string]()

	var first, second int
	firstID := ch.On(func(v string) {
		first++
	})
	ch.On(func(v string) {
		second++
	})

	ch.Emit("a")
	ch.Off(firstID)
	ch.Emit("b")
	// removing twice is a no-op
	ch.Off(firstID)
	ch.Emit("c")

	assert.Equal(t, 1, first)
	assert.Equal(t, 3, second)
}

func TestChannel_PanickingHandlerDoesNotAbortDelivery(t *testing.T) {
	ch := NewChannel[int]()

	var delivered []int
	ch.On(func(v int) {
		panic("boom")
	})
	ch.On(func(v int) {
		delivered = append(delivered, v)
	})

	assert.NotPanics(t, func() {
		ch.Emit(42)
	})
	assert.Equal(t, []int{42}, delivered)
}

func TestChannel_EmitWithNoHandlers(t *testing.T) {
	ch := NewChannel[int]()
	assert.NotPanics(t, func() {
		ch.Emit(1)
	})
}
