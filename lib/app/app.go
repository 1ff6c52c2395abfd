// Package app wires the window, the tutorial and the api together and runs
// the render loop.
package app

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fosdem/glsteps/lib/api"
	"github.com/fosdem/glsteps/lib/config"
	"github.com/fosdem/glsteps/lib/imgload"
	"github.com/fosdem/glsteps/lib/kbdctl"
	"github.com/fosdem/glsteps/lib/log"
	"github.com/fosdem/glsteps/lib/rendering"
	"github.com/fosdem/glsteps/lib/rendering/gldriver"
	"github.com/fosdem/glsteps/lib/rendering/shaders"
	"github.com/fosdem/glsteps/lib/stats"
	"github.com/fosdem/glsteps/lib/tutorial"
	"github.com/fosdem/glsteps/lib/utils"
	"github.com/fosdem/glsteps/lib/window"
)

var checkerboardColours = [2]color.NRGBA{
	{R: 0xee, G: 0xee, B: 0xee, A: 0xff},
	{R: 0x33, G: 0x66, B: 0x99, A: 0xff},
}

// LoadTexture returns the configured image, or a checkerboard when there
// is none.
func LoadTexture(cfg *config.TextureCfg) (*image.NRGBA, error) {
	if cfg.Path == "" {
		return imgload.Checkerboard(256, 8, checkerboardColours[0], checkerboardColours[1]), nil
	}
	return imgload.Load(string(cfg.Path), cfg.Flip)
}

// Run opens the window and draws until the window is closed or shutdown is
// requested. It must be called on the main thread.
func Run(cfg *config.Config) error {
	logger := log.Module("app")

	img, err := LoadTexture(&cfg.Texture)
	if err != nil {
		return fmt.Errorf("could not load texture: %w", err)
	}

	shaderer, err := shaders.NewShaderer(string(cfg.ShadersDir))
	if err != nil {
		return err
	}

	win, err := window.New(&cfg.Window)
	if err != nil {
		return err
	}
	defer win.Destroy()

	driver, err := gldriver.New()
	if err != nil {
		return err
	}

	theTutorial, err := tutorial.New(tutorial.Assets{
		Driver:    driver,
		Shaderer:  shaderer,
		Image:     img,
		FlatColor: utils.ColourVec4(cfg.FlatColour),
	})
	if err != nil {
		return fmt.Errorf("could not build tutorial: %w", err)
	}
	defer theTutorial.Delete()

	err = theTutorial.SetStep(cfg.StartStep)
	if err != nil {
		return err
	}

	renderer := rendering.NewRenderer(driver, utils.ColourVec4(cfg.ClearColour))
	renderer.Resize(win.GetFramebufferSize())
	win.OnResize(renderer.Resize)

	releaseKeys := kbdctl.SetupShortcutKeys(theTutorial, win)
	defer releaseKeys()

	theStats := stats.New()
	theApi := api.ServeInBackground(cfg.Api, theTutorial, theStats, cfg.Texture.Flip)
	if theApi != nil {
		defer theApi.Close()
	}

	if cfg.Texture.Watch && cfg.Texture.Path != "" {
		watcher, err := imgload.Watch(string(cfg.Texture.Path), cfg.Texture.Flip, theTutorial.SetImage)
		if err != nil {
			logger.Error(fmt.Sprintf("could not watch texture: %s", err))
		} else {
			defer watcher.Close()
		}
	}

	var deltaTimer utils.DeltaTimer
	for !theTutorial.ShutdownRequested() {
		renderer.StartFrame()
		dt := deltaTimer.Next()

		err := theTutorial.Draw(renderer, utils.Seconds(dt))
		if err != nil {
			return fmt.Errorf("could not draw step %s: %w", theTutorial.CurrentName(), err)
		}

		win.SwapBuffers()
		if win.ShouldClose() {
			theTutorial.RequestShutdown()
		}

		// Maintenance
		theStats.Update(renderer, theTutorial.CurrentName())
		kbdctl.Poll()
	}

	logger.Info(fmt.Sprintf("drew %d frames", renderer.Frames))
	return nil
}
