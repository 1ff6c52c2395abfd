package kbdctl

import (
	"fmt"
	"log/slog"

	"github.com/fosdem/glsteps/lib/log"
	"github.com/fosdem/glsteps/lib/tutorial"
	"github.com/fosdem/glsteps/lib/window"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/mattn/go-pointer"
)

// Stepper is the part of the tutorial the keyboard drives.
type Stepper interface {
	SetStepIndex(i int) error
	Cycle(delta int)
	RequestShutdown()
}

var _ Stepper = (*tutorial.Tutorial)(nil)

// SetupShortcutKeys stores s as the window's user pointer and installs the
// key callback. The returned func releases the user pointer.
func SetupShortcutKeys(s Stepper, w *window.Window) func() {
	logger := log.Module("kbdctl")
	ref := pointer.Save(s)
	w.SetUserPointer(ref)

	w.SetKeyCallback(func(gw *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		s, ok := pointer.Restore(gw.GetUserPointer()).(Stepper)
		if !ok {
			return
		}
		handleKey(logger, s, key, action, mods)
	})

	return func() {
		w.SetUserPointer(nil)
		pointer.Unref(ref)
	}
}

func Poll() {
	glfw.PollEvents()
}

func handleKey(logger *slog.Logger, s Stepper, key glfw.Key, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Release {
		if key == glfw.KeyEscape ||
			(key == glfw.KeyQ &&
				mods&glfw.ModControl != 0 &&
				mods&glfw.ModShift != 0) {
			logger.Info("told to quit, exiting")
			s.RequestShutdown()
		}
	}
	if action == glfw.Press || action == glfw.Repeat {
		switch {
		case key >= glfw.Key1 && key <= glfw.Key9 && action == glfw.Press:
			selected := int(key - glfw.Key1)
			err := s.SetStepIndex(selected)
			if err != nil {
				logger.Warn(fmt.Sprintf("Step %d out of range", selected+1))
			}
		case key == glfw.KeyRight:
			s.Cycle(1)
		case key == glfw.KeyLeft:
			s.Cycle(-1)
		}
	}
}
