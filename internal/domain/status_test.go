package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransitionExhaustive(t *testing.T) {
	allowed := map[OrderStatus]map[OrderStatus]bool{
		StatusPending:   {StatusConfirmed: true, StatusCancelled: true},
		StatusConfirmed: {StatusPreparing: true, StatusCancelled: true},
		StatusPreparing: {StatusReady: true, StatusCancelled: true},
		StatusReady:     {StatusCompleted: true, StatusCancelled: true},
		StatusCompleted: {},
		StatusCancelled: {},
	}

	for _, from := range Statuses() {
		for _, to := range Statuses() {
			got := from.CanTransition(to)
			want := allowed[from][to]
			assert.Equalf(t, want, got, "%s -> %s", from, to)
		}
	}
}

func TestSameStatusIsNotAnEdge(t *testing.T) {
	for _, s := range Statuses() {
		assert.Falsef(t, s.CanTransition(s), "%s -> %s must be rejected", s, s)
	}
}

func TestTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	for _, s := range []OrderStatus{StatusPending, StatusConfirmed, StatusPreparing, StatusReady} {
		assert.Falsef(t, s.Terminal(), "%s", s)
	}
}

func TestNextFollowsForwardChain(t *testing.T) {
	chain := []OrderStatus{StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusCompleted}
	for i := 0; i < len(chain)-1; i++ {
		next, ok := chain[i].Next()
		require.True(t, ok)
		assert.Equal(t, chain[i+1], next)
	}
	_, ok := StatusCompleted.Next()
	assert.False(t, ok)
	_, ok = StatusCancelled.Next()
	assert.False(t, ok)
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("preparing")
	require.NoError(t, err)
	assert.Equal(t, StatusPreparing, s)

	_, err = ParseStatus("shipped")
	assert.True(t, errors.Is(err, ErrInvalidStatus))
	_, err = ParseStatus("")
	assert.True(t, errors.Is(err, ErrInvalidStatus))
	_, err = ParseStatus("Pending")
	assert.True(t, errors.Is(err, ErrInvalidStatus), "statuses are case sensitive")
}

func TestStatusLabels(t *testing.T) {
	assert.Equal(t, "Ready for Pickup", StatusReady.Label())
	for _, s := range Statuses() {
		assert.NotEmptyf(t, s.Label(), "%s", s)
	}
}

func TestInvalidTransitionNamesBothStatuses(t *testing.T) {
	err := InvalidTransition(StatusCompleted, StatusPreparing)
	assert.True(t, errors.Is(err, ErrInvalidTransition))
	assert.Contains(t, err.Error(), "completed")
	assert.Contains(t, err.Error(), "preparing")
}
