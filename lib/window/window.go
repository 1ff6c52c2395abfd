// Package window opens the GLFW window that owns the GL context.
package window

import (
	"fmt"
	"log/slog"

	"github.com/fosdem/glsteps/lib/config"
	"github.com/fosdem/glsteps/lib/log"
	"github.com/go-gl/glfw/v3.3/glfw"
)

type Window struct {
	*glfw.Window

	logger *slog.Logger
}

// New initialises GLFW and creates a window with a current OpenGL 4.1 core
// context. It must be called from the main thread.
func New(cfg *config.WindowCfg) (*Window, error) {
	w := &Window{
		logger: log.Module("window"),
	}
	w.logger.Info("Initializing window")
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfwBool(cfg.Resizable))
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	var err error
	w.Window, err = glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	w.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	return w, nil
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

// OnResize calls f with the new framebuffer size whenever it changes.
func (w *Window) OnResize(f func(width, height int)) {
	w.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.logger.Debug(fmt.Sprintf("framebuffer resized to %dx%d", width, height))
		f(width, height)
	})
}

// Destroy closes the window and shuts GLFW down.
func (w *Window) Destroy() {
	w.Window.Destroy()
	glfw.Terminate()
}
