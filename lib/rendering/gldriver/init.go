// Package gldriver implements rendering.Driver on top of OpenGL 4.1 core.
package gldriver

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"
)

var (
	initOnce sync.Once
	initErr  error
)

// Init loads the GL function pointers for the current context. It must be
// called once a context is current and before any resource is created;
// later calls return the result of the first one.
func Init() error {
	initOnce.Do(func() {
		err := gl.Init()
		if err != nil {
			initErr = fmt.Errorf("could not initialise OpenGL context: %w", err)
			return
		}

		version := gl.GoStr(gl.GetString(gl.VERSION))
		slog.Info(fmt.Sprintf("OpenGL version '%s'", version), slog.String("module", "gl"))
	})
	return initErr
}
