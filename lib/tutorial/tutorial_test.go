package tutorial_test

import (
	"encoding/binary"
	"image"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/fosdem/glsteps/lib/rendering"
	"github.com/fosdem/glsteps/lib/rendering/renderingtest"
	"github.com/fosdem/glsteps/lib/rendering/shaders"
	"github.com/fosdem/glsteps/lib/tutorial"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assets(t *testing.T, d *renderingtest.Driver) tutorial.Assets {
	s, err := shaders.NewShaderer("")
	require.NoError(t, err)
	return tutorial.Assets{
		Driver:    d,
		Shaderer:  s,
		Image:     image.NewNRGBA(image.Rect(0, 0, 4, 4)),
		FlatColor: mgl32.Vec4{1, 0, 0, 1},
	}
}

func newTutorial(t *testing.T) (*tutorial.Tutorial, *renderingtest.Driver) {
	d := renderingtest.New()
	tut, err := tutorial.New(assets(t, d))
	require.NoError(t, err)
	return tut, d
}

func TestBuildsAllSteps(t *testing.T) {
	tut, d := newTutorial(t)
	defer tut.Delete()

	var names []string
	for _, s := range tut.Steps {
		names = append(names, s.Name())
	}
	assert.Equal(t, tutorial.StepNames, names)
	assert.Equal(t, "triangle", tut.CurrentName())
	assert.Equal(t, mgl32.Vec4{1, 0, 0, 1}, d.UniformVec4s["u_Color"])
	assert.Equal(t, int32(0), d.UniformInts["u_Texture"])
	assert.Empty(t, d.Errors)
}

func TestDrawEveryStep(t *testing.T) {
	tut, d := newTutorial(t)
	defer tut.Delete()
	r := rendering.NewRenderer(d, mgl32.Vec4{})

	counts := map[string]int32{
		"triangle":      3,
		"quad":          6,
		"textured-quad": 6,
		"split-streams": 6,
		"dynamic":       6,
	}
	for i, name := range tutorial.StepNames {
		require.NoError(t, tut.SetStepIndex(i))
		require.NoError(t, tut.Draw(r, 1.0/60))

		require.Len(t, d.Draws, i+1)
		draw := d.Draws[i]
		assert.Equal(t, counts[name], draw.Count, name)
		assert.NotZero(t, draw.Indices, name)
		if name == "triangle" || name == "quad" {
			assert.Empty(t, draw.Textures, name)
		} else {
			assert.Equal(t, tut.Texture().ID(), draw.Textures[0], name)
		}
	}
	assert.Equal(t, uint64(len(tutorial.StepNames)), r.DrawCalls)
	assert.Empty(t, d.Errors)
}

func TestSplitStreamsUsesTwoBuffers(t *testing.T) {
	d := renderingtest.New()
	tut, err := tutorial.New(assets(t, d))
	require.NoError(t, err)
	defer tut.Delete()

	// only split-streams has a buffer of bare texture coordinates
	var uvs []renderingtest.AttribPointer
	for _, p := range d.AttribPointers {
		if p.Size == 2 && p.Stride == 8 {
			uvs = append(uvs, p)
		}
	}
	require.Len(t, uvs, 1)
	assert.Equal(t, uint32(1), uvs[0].Index)
	assert.Equal(t, uintptr(0), uvs[0].Offset)

	var positions []renderingtest.AttribPointer
	for _, p := range d.AttribPointers {
		if p.Index == 0 && p.Stride == 12 && p.Buffer != uvs[0].Buffer {
			positions = append(positions, p)
		}
	}
	assert.NotEmpty(t, positions)
}

func TestDynamicStepRewritesVertices(t *testing.T) {
	tut, d := newTutorial(t)
	defer tut.Delete()
	r := rendering.NewRenderer(d, mgl32.Vec4{})

	require.NoError(t, tut.SetStep("dynamic"))
	uploads := len(d.Uploads)
	require.NoError(t, tut.Draw(r, 0.1))
	require.Len(t, d.Uploads, uploads+1)
	first := d.Uploads[uploads]
	assert.Equal(t, rendering.ArrayBuffer, first.Target)
	assert.Equal(t, rendering.DynamicDraw, first.Usage)

	require.NoError(t, tut.Draw(r, 0.1))
	second := d.Uploads[uploads+1]
	assert.Equal(t, first.Buffer, second.Buffer)
	assert.NotEqual(t, first.Data, second.Data)
	assert.Empty(t, d.Errors)
}

func TestDynamicStepStaysOnScreen(t *testing.T) {
	tut, d := newTutorial(t)
	defer tut.Delete()
	r := rendering.NewRenderer(d, mgl32.Vec4{})

	require.NoError(t, tut.SetStep("dynamic"))
	for range 500 {
		require.NoError(t, tut.Draw(r, 0.05))
	}
	last := d.Uploads[len(d.Uploads)-1]
	// positions and texture coordinates both stay within [-1, 1]
	for i := 0; i+4 <= len(last.Data); i += 4 {
		v := math.Float32frombits(binary.NativeEndian.Uint32(last.Data[i:]))
		assert.LessOrEqual(t, v, float32(1))
		assert.GreaterOrEqual(t, v, float32(-1))
	}
}

func TestSetStepEvent(t *testing.T) {
	tut, _ := newTutorial(t)
	defer tut.Delete()

	events := make(chan tutorial.EventDataSetStep, 1)
	tut.AddEventListener("set-step", func(_ *tutorial.Tutorial, data interface{}) {
		events <- data.(tutorial.EventDataSetStep)
	})

	require.NoError(t, tut.SetStep("textured-quad"))
	select {
	case ev := <-events:
		assert.Equal(t, "set-step", ev.Event)
		assert.Equal(t, "textured-quad", ev.Step)
		assert.Equal(t, 2, ev.Index)
	case <-time.After(time.Second):
		t.Fatal("no set-step event")
	}
}

func TestSetStepErrors(t *testing.T) {
	tut, _ := newTutorial(t)
	defer tut.Delete()

	assert.Error(t, tut.SetStep("teapot"))
	assert.Error(t, tut.SetStepIndex(-1))
	assert.Error(t, tut.SetStepIndex(len(tutorial.StepNames)))
	assert.Equal(t, "triangle", tut.CurrentName())
}

func TestCycleWraps(t *testing.T) {
	tut, _ := newTutorial(t)
	defer tut.Delete()

	tut.Cycle(-1)
	assert.Equal(t, "dynamic", tut.CurrentName())
	tut.Cycle(1)
	assert.Equal(t, "triangle", tut.CurrentName())
	tut.Cycle(2)
	assert.Equal(t, "textured-quad", tut.CurrentName())
}

func TestSetImageUploadsOnDraw(t *testing.T) {
	tut, d := newTutorial(t)
	defer tut.Delete()
	r := rendering.NewRenderer(d, mgl32.Vec4{})

	uploads := len(d.TexUploads)
	img := image.NewNRGBA(image.Rect(0, 0, 8, 2))
	tut.SetImage(img)
	assert.Same(t, img, tut.Image())
	assert.Len(t, d.TexUploads, uploads)

	require.NoError(t, tut.Draw(r, 0))
	require.Len(t, d.TexUploads, uploads+1)
	up := d.TexUploads[uploads]
	assert.Equal(t, tut.Texture().ID(), up.Texture)
	assert.Equal(t, int32(8), up.Width)
	assert.Equal(t, int32(2), up.Height)

	w, h := tut.Texture().Size()
	assert.Equal(t, 8, w)
	assert.Equal(t, 2, h)
	assert.Same(t, img, tut.Image())
}

func TestDeleteReleasesEverything(t *testing.T) {
	tut, d := newTutorial(t)
	r := rendering.NewRenderer(d, mgl32.Vec4{})
	for i := range tutorial.StepNames {
		require.NoError(t, tut.SetStepIndex(i))
		require.NoError(t, tut.Draw(r, 0.016))
	}

	tut.Delete()
	tut.Delete()
	for _, kind := range []renderingtest.Kind{
		renderingtest.Buffer,
		renderingtest.VertexArray,
		renderingtest.Shader,
		renderingtest.Program,
		renderingtest.Texture,
	} {
		assert.Zero(t, d.Live(kind), kind)
	}
	assert.Empty(t, d.Errors)
}

func TestBuildFailureCleansUp(t *testing.T) {
	d := renderingtest.New()
	d.Compile = func(stage rendering.ShaderStage, source string) (bool, string) {
		if strings.Contains(source, "u_Texture") {
			return false, "0:1(1): error: no samplers today"
		}
		return renderingtest.CheckSource(source)
	}

	_, err := tutorial.New(assets(t, d))
	var compileErr *shaders.CompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Equal(t, rendering.FragmentStage, compileErr.Stage)

	assert.NotZero(t, d.Created[renderingtest.Program])
	for _, kind := range []renderingtest.Kind{
		renderingtest.Buffer,
		renderingtest.VertexArray,
		renderingtest.Shader,
		renderingtest.Program,
		renderingtest.Texture,
	} {
		assert.Zero(t, d.Live(kind), kind)
	}
	assert.Empty(t, d.Errors)
}
