// Package tutorial holds the incremental drawing steps and tracks which one
// is on screen.
package tutorial

import (
	"fmt"
	"image"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/fosdem/glsteps/lib/log"
	"github.com/fosdem/glsteps/lib/rendering"
	"github.com/fosdem/glsteps/lib/rendering/shaders"
	"github.com/go-gl/mathgl/mgl32"
)

// StepNames lists the steps in the order they are presented.
var StepNames = []string{
	"triangle",
	"quad",
	"textured-quad",
	"split-streams",
	"dynamic",
}

// Assets is what the steps are built from.
type Assets struct {
	Driver    rendering.Driver
	Shaderer  *shaders.Shaderer
	Image     *image.NRGBA
	FlatColor mgl32.Vec4
}

type Step interface {
	Name() string
	// Draw issues the draw calls of the step. dt is the time since the
	// previous frame in seconds.
	Draw(r *rendering.Renderer, dt float32) error
	Delete()
}

type Tutorial struct {
	Steps []Step

	texture *rendering.Texture
	logger  *slog.Logger

	mu           sync.Mutex
	current      int
	image        *image.NRGBA
	pendingImage *image.NRGBA

	shutdownRequested atomic.Bool

	listenerMu sync.Mutex
	listener   map[string][]EventListener
}

// New builds every step. All GPU objects are released again if one of the
// steps fails to build.
func New(a Assets) (*Tutorial, error) {
	t := &Tutorial{
		image:    a.Image,
		logger:   log.Module("tutorial"),
		listener: make(map[string][]EventListener),
	}

	var err error
	t.texture, err = rendering.NewTexture(a.Driver, a.Image.Pix, a.Image.Rect.Dx(), a.Image.Rect.Dy())
	if err != nil {
		return nil, fmt.Errorf("could not create texture: %w", err)
	}

	builders := map[string]func(Assets, *rendering.Texture) (Step, error){
		"triangle":      newTriangle,
		"quad":          newQuad,
		"textured-quad": newTexturedQuad,
		"split-streams": newSplitStreams,
		"dynamic":       newDynamic,
	}
	for _, name := range StepNames {
		step, err := builders[name](a, t.texture)
		if err != nil {
			t.Delete()
			return nil, fmt.Errorf("could not build step %s: %w", name, err)
		}
		t.logger.Debug(fmt.Sprintf("Built step %s", name))
		t.Steps = append(t.Steps, step)
	}

	return t, nil
}

func (t *Tutorial) Current() Step {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.Steps[t.current]
}

func (t *Tutorial) CurrentName() string {
	return t.Current().Name()
}

func (t *Tutorial) SetStep(name string) error {
	i := slices.Index(StepNames, name)
	if i < 0 {
		return fmt.Errorf("step %s does not exist", name)
	}
	return t.SetStepIndex(i)
}

func (t *Tutorial) SetStepIndex(i int) error {
	if i < 0 || i >= len(t.Steps) {
		return fmt.Errorf("step %d out of range", i+1)
	}

	t.mu.Lock()
	t.current = i
	t.mu.Unlock()

	name := t.Steps[i].Name()
	t.logger.Info(fmt.Sprintf("set step %s", name))
	t.invoke("set-step", EventDataSetStep{
		Event: "set-step",
		Step:  name,
		Index: i,
	})
	return nil
}

// Cycle moves delta steps forward, wrapping around at either end.
func (t *Tutorial) Cycle(delta int) {
	t.mu.Lock()
	n := len(t.Steps)
	next := ((t.current+delta)%n + n) % n
	t.mu.Unlock()

	_ = t.SetStepIndex(next)
}

// SetImage replaces the texture image. It may be called from any goroutine;
// the upload happens in the next Draw.
func (t *Tutorial) SetImage(img *image.NRGBA) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pendingImage = img
}

// Image returns the most recently set texture image.
func (t *Tutorial) Image() *image.NRGBA {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.pendingImage != nil {
		return t.pendingImage
	}
	return t.image
}

func (t *Tutorial) Texture() *rendering.Texture {
	return t.texture
}

// Draw uploads a pending texture image and draws the current step. It must
// run on the thread owning the GL context.
func (t *Tutorial) Draw(r *rendering.Renderer, dt float32) error {
	t.mu.Lock()
	img := t.pendingImage
	t.pendingImage = nil
	if img != nil {
		t.image = img
	}
	step := t.Steps[t.current]
	t.mu.Unlock()

	if img != nil {
		rgba := rendering.ToNRGBA(img)
		err := t.texture.Update(rgba.Pix, rgba.Rect.Dx(), rgba.Rect.Dy())
		if err != nil {
			t.logger.Error(fmt.Sprintf("could not update texture: %s", err))
		} else {
			t.logger.Info(fmt.Sprintf("texture updated (%dx%d)", rgba.Rect.Dx(), rgba.Rect.Dy()))
		}
	}

	return step.Draw(r, dt)
}

func (t *Tutorial) RequestShutdown() {
	t.shutdownRequested.Store(true)
}

func (t *Tutorial) ShutdownRequested() bool {
	return t.shutdownRequested.Load()
}

// Delete releases every step and the shared texture.
func (t *Tutorial) Delete() {
	for _, step := range t.Steps {
		step.Delete()
	}
	t.Steps = nil
	if t.texture != nil {
		t.texture.Delete()
	}
}
