package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransitionTable(t *testing.T) {
	tests := []struct {
		from, to Status
		actor    Actor
		allowed  bool
	}{
		{StatusPending, StatusProcessing, ActorAdmin, true},
		{StatusPending, StatusProcessing, ActorCustomer, false},
		{StatusPending, StatusCancelled, ActorCustomer, true},
		{StatusPending, StatusCancelled, ActorAdmin, true},
		{StatusProcessing, StatusCompleted, ActorCustomer, true},
		{StatusProcessing, StatusCompleted, ActorAdmin, true},
		{StatusProcessing, StatusCancelled, ActorAdmin, true},
		{StatusProcessing, StatusCancelled, ActorCustomer, false},

		// No transition leads out of a terminal state.
		{StatusCompleted, StatusProcessing, ActorAdmin, false},
		{StatusCompleted, StatusCancelled, ActorAdmin, false},
		{StatusCancelled, StatusPending, ActorAdmin, false},
		{StatusCancelled, StatusCompleted, ActorCustomer, false},

		// Skipping straight to completed is not defined.
		{StatusPending, StatusCompleted, ActorAdmin, false},
	}
	for _, tt := range tests {
		got := CanTransition(tt.from, tt.to, tt.actor)
		assert.Equal(t, tt.allowed, got, "%s → %s by %s", tt.from, tt.to, tt.actor)
	}
}

func TestTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusProcessing.Terminal())
}
