package kbdctl

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/mattn/go-pointer"
	"github.com/stretchr/testify/assert"
)

type fakeStepper struct {
	index    int
	cycled   []int
	shutdown bool
}

func (f *fakeStepper) SetStepIndex(i int) error {
	if i >= 5 {
		return fmt.Errorf("step %d out of range", i+1)
	}
	f.index = i
	return nil
}

func (f *fakeStepper) Cycle(delta int) { f.cycled = append(f.cycled, delta) }
func (f *fakeStepper) RequestShutdown() { f.shutdown = true }

func keys(s Stepper) func(glfw.Key, glfw.Action, glfw.ModifierKey) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return func(key glfw.Key, action glfw.Action, mods glfw.ModifierKey) {
		handleKey(logger, s, key, action, mods)
	}
}

func TestUserPointerRoundTrip(t *testing.T) {
	s := &fakeStepper{}
	ref := pointer.Save(Stepper(s))
	defer pointer.Unref(ref)

	restored, ok := pointer.Restore(ref).(Stepper)
	assert.True(t, ok)
	assert.Same(t, s, restored)

	_, ok = pointer.Restore(nil).(Stepper)
	assert.False(t, ok)
}

func TestNumberKeysSelectStep(t *testing.T) {
	s := &fakeStepper{}
	handle := keys(s)

	handle(glfw.Key3, glfw.Press, 0)
	assert.Equal(t, 2, s.index)

	handle(glfw.Key9, glfw.Press, 0)
	assert.Equal(t, 2, s.index, "out of range keeps the current step")

	handle(glfw.Key1, glfw.Release, 0)
	assert.Equal(t, 2, s.index, "only presses select")
}

func TestArrowKeysCycle(t *testing.T) {
	s := &fakeStepper{}
	handle := keys(s)

	handle(glfw.KeyRight, glfw.Press, 0)
	handle(glfw.KeyRight, glfw.Repeat, 0)
	handle(glfw.KeyLeft, glfw.Press, 0)
	handle(glfw.KeyLeft, glfw.Release, 0)
	assert.Equal(t, []int{1, 1, -1}, s.cycled)
}

func TestQuitKeys(t *testing.T) {
	s := &fakeStepper{}
	handle := keys(s)

	handle(glfw.KeyQ, glfw.Release, glfw.ModControl)
	assert.False(t, s.shutdown)

	handle(glfw.KeyQ, glfw.Release, glfw.ModControl|glfw.ModShift)
	assert.True(t, s.shutdown)

	s = &fakeStepper{}
	handle = keys(s)
	handle(glfw.KeyEscape, glfw.Press, 0)
	assert.False(t, s.shutdown)
	handle(glfw.KeyEscape, glfw.Release, 0)
	assert.True(t, s.shutdown)
}
