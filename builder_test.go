package fsm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderGeneratedNames(t *testing.T) {
	b := NewBuilder()

	s1 := b.AddState()
	s2 := b.AddState()
	assert.True(t, strings.HasPrefix(s1.Name(), "state_"))
	assert.True(t, strings.HasPrefix(s2.Name(), "state_"))
	assert.NotEqual(t, s1.Name(), s2.Name())

	tr := b.AddTransition(s1.Name(), s2.Name())
	assert.True(t, strings.HasPrefix(tr.Name(), "transition_"))
	assert.Equal(t, s1.Name(), tr.Source())
	assert.Equal(t, s2.Name(), tr.Destination())
}

func TestBuilderBuild(t *testing.T) {
	var calls []string

	b := NewBuilder()
	s1 := b.AddState(
		WithOnExit(record(&calls, "exit-1")),
		WithOnEntry(record(&calls, "enter-1")))
	s2 := b.AddState(WithOnEntry(record(&calls, "enter-2")))
	b.AddTransition(s1.Name(), s1.Name(), WithOnTransition(record(&calls, "loop")))
	forward := b.AddTransition(s1.Name(), s2.Name(), WithOnTransition(record(&calls, "forward")))
	b.SetInitialState(s1.Name())

	m, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, s1.Name(), m.CurrentState())

	// Construction alone fires no callbacks.
	assert.Empty(t, calls)

	require.NoError(t, m.ExecuteTransitionTo(s1.Name(), Payload{"n": 1}))
	assert.Equal(t, s1.Name(), m.CurrentState())
	assert.Equal(t, []string{"exit-1", "loop", "enter-1"}, calls)

	calls = calls[:0]
	require.NoError(t, m.ExecuteTransition(forward.Name(), nil))
	assert.Equal(t, s2.Name(), m.CurrentState())
	assert.Equal(t, []string{"exit-1", "forward", "enter-2"}, calls)
}

func TestBuilderNamedStaging(t *testing.T) {
	b := NewBuilder()
	b.AddNamedState("open")
	b.AddNamedState("closed")
	b.AddNamedTransition("close", "open", "closed")
	b.AddNamedTransition("open", "closed", "open")
	b.SetInitialState("open")

	m, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "open", m.CurrentState())

	require.NoError(t, m.ExecuteTransition("close", nil))
	assert.Equal(t, "closed", m.CurrentState())
}

func TestBuilderMissingInitialState(t *testing.T) {
	b := NewBuilder()
	b.AddNamedState("only")

	m, err := b.Build()
	require.ErrorIs(t, err, ErrInvalidInitialState)
	assert.Nil(t, m)
}

func TestBuilderPropagatesConstructionErrors(t *testing.T) {
	t.Run("duplicate staged state", func(t *testing.T) {
		b := NewBuilder()
		b.AddNamedState("dup")
		b.AddNamedState("dup")
		b.SetInitialState("dup")

		m, err := b.Build()
		require.ErrorIs(t, err, ErrDuplicateState)
		assert.Nil(t, m)
	})

	t.Run("duplicate staged edge", func(t *testing.T) {
		b := NewBuilder()
		b.AddNamedState("x")
		b.AddNamedState("y")
		b.AddTransition("x", "y")
		b.AddTransition("x", "y")
		b.SetInitialState("x")

		m, err := b.Build()
		require.ErrorIs(t, err, ErrDuplicateEdge)
		assert.Nil(t, m)
	})

	t.Run("transition to unstaged state", func(t *testing.T) {
		b := NewBuilder()
		b.AddNamedState("x")
		b.AddTransition("x", "ghost")
		b.SetInitialState("x")

		m, err := b.Build()
		require.ErrorIs(t, err, ErrUnknownState)
		assert.Nil(t, m)
	})
}
