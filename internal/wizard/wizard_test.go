package wizard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeView records the state a renderer would show.
type fakeView struct {
	active    map[int]bool
	completed []bool
	calls     int
	fail      error
}

func newFakeView(steps int) *fakeView {
	return &fakeView{active: make(map[int]bool), completed: make([]bool, steps)}
}

func (v *fakeView) ShowStep(step int, completed []bool) error {
	v.calls++
	if v.fail != nil {
		return v.fail
	}
	clear(v.active)
	v.active[step] = true
	copy(v.completed, completed)
	return nil
}

func TestNew_RequiresSteps(t *testing.T) {
	_, err := New(newFakeView(0), 0)
	require.Error(t, err)
}

func TestGoTo_ExactlyOneActive(t *testing.T) {
	const steps = 5
	v := newFakeView(steps)
	c, err := New(v, steps)
	require.NoError(t, err)

	for _, step := range []int{3, 1, 5, 2, 4, 4} {
		require.NoError(t, c.GoTo(step))
		assert.Equal(t, step, c.Active())
		assert.Len(t, v.active, 1)
		assert.True(t, v.active[step])
		for i, done := range v.completed {
			assert.Equal(t, i < step, done, "progress item %d at step %d", i, step)
		}
		assert.Equal(t, v.completed, c.Progress())
	}
}

func TestGoTo_OutOfRange(t *testing.T) {
	v := newFakeView(3)
	c, err := New(v, 3)
	require.NoError(t, err)
	require.NoError(t, c.GoTo(2))

	for _, step := range []int{0, -1, 4} {
		err := c.GoTo(step)
		assert.ErrorIs(t, err, ErrStepNotFound)
		assert.Equal(t, 2, c.Active())
	}
	assert.Equal(t, 1, v.calls)
}

func TestGoTo_ViewFailureKeepsActive(t *testing.T) {
	v := newFakeView(3)
	c, err := New(v, 3)
	require.NoError(t, err)
	require.NoError(t, c.GoTo(1))

	boom := errors.New("container missing")
	v.fail = boom
	err = c.GoTo(2)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, c.Active())
}

func TestNextPrev(t *testing.T) {
	c, err := New(newFakeView(3), 3)
	require.NoError(t, err)
	require.NoError(t, c.GoTo(1))

	assert.True(t, c.IsFirst())
	assert.ErrorIs(t, c.Prev(), ErrStepNotFound)

	require.NoError(t, c.Next())
	require.NoError(t, c.Next())
	assert.True(t, c.IsLast())
	assert.ErrorIs(t, c.Next(), ErrStepNotFound)
	assert.Equal(t, 3, c.Active())

	require.NoError(t, c.Prev())
	assert.Equal(t, 2, c.Active())
}
