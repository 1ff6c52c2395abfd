package shaders

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/fosdem/glsteps/lib/metrics"
	"github.com/fosdem/glsteps/lib/rendering"
	"github.com/go-gl/mathgl/mgl32"
)

var ErrUnknownUniform = errors.New("unknown uniform")

var programMetrics = metrics.NewObjectMetrics("program")

// CompileError is returned when one shader stage does not compile.
type CompileError struct {
	Stage rendering.ShaderStage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader compilation failed: %s", e.Stage, e.Log)
}

type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("shader linking failed: %s", e.Log)
}

// Program owns a linked vertex + fragment shader program.
type Program struct {
	d         rendering.Driver
	id        uint32
	locations map[string]int32
}

// NewProgram compiles both stages and links them. On failure every
// intermediate object is released and no program is returned.
func NewProgram(d rendering.Driver, vertexSource, fragmentSource string) (*Program, error) {
	vertexShader, err := compileShader(d, vertexSource, rendering.VertexStage)
	if err != nil {
		return nil, err
	}

	fragmentShader, err := compileShader(d, fragmentSource, rendering.FragmentStage)
	if err != nil {
		d.DeleteShader(vertexShader)
		return nil, err
	}

	program := d.CreateProgram()
	d.AttachShader(program, vertexShader)
	d.AttachShader(program, fragmentShader)
	ok, infoLog := d.LinkProgram(program)

	d.DetachShader(program, vertexShader)
	d.DeleteShader(vertexShader)
	d.DetachShader(program, fragmentShader)
	d.DeleteShader(fragmentShader)

	if !ok {
		d.DeleteProgram(program)
		return nil, &LinkError{Log: infoLog}
	}

	programMetrics.ObjectCreated()
	return &Program{
		d:         d,
		id:        program,
		locations: make(map[string]int32),
	}, nil
}

func compileShader(d rendering.Driver, source string, stage rendering.ShaderStage) (uint32, error) {
	shader := d.CreateShader(stage)
	ok, infoLog := d.CompileShader(shader, source)
	if !ok {
		d.DeleteShader(shader)
		return 0, &CompileError{Stage: stage, Log: infoLog}
	}
	return shader, nil
}

func (p *Program) Bind() {
	p.d.UseProgram(p.id)
}

func (p *Program) Unbind() {
	p.d.UseProgram(0)
}

func (p *Program) ID() uint32 {
	return p.id
}

func (p *Program) location(name string) (int32, error) {
	loc, ok := p.locations[name]
	if !ok {
		loc = p.d.UniformLocation(p.id, name)
		p.locations[name] = loc
		if loc < 0 {
			slog.Warn(fmt.Sprintf("program %d has no uniform %q", p.id, name), slog.String("module", "shaders"))
		}
	}
	if loc < 0 {
		return 0, fmt.Errorf("%w %q", ErrUnknownUniform, name)
	}
	return loc, nil
}

// SetUniformInt sets an integer uniform, such as the texture unit a sampler
// reads from. It binds the program and leaves it bound, replacing whatever
// program was active. Unknown names change nothing, including the binding.
func (p *Program) SetUniformInt(name string, value int32) error {
	loc, err := p.location(name)
	if err != nil {
		return err
	}
	p.Bind()
	p.d.Uniform1i(loc, value)
	return nil
}

// SetUniformVec4 sets a vec4 uniform. Like SetUniformInt it leaves the
// program bound.
func (p *Program) SetUniformVec4(name string, value mgl32.Vec4) error {
	loc, err := p.location(name)
	if err != nil {
		return err
	}
	p.Bind()
	p.d.Uniform4f(loc, value)
	return nil
}

func (p *Program) Delete() {
	if p.id == 0 {
		return
	}
	p.d.DeleteProgram(p.id)
	programMetrics.ObjectDeleted()
	p.id = 0
}

// BuildProgram renders <name>.vert and <name>.frag and links them.
func BuildProgram(d rendering.Driver, s *Shaderer, name string) (*Program, error) {
	vertexShader, err := s.GetShaderSource(name+".vert", s.Data)
	if err != nil {
		return nil, fmt.Errorf("could not get vertex shader: %w", err)
	}

	fragmentShader, err := s.GetShaderSource(name+".frag", s.Data)
	if err != nil {
		return nil, fmt.Errorf("could not get fragment shader: %w", err)
	}

	program, err := NewProgram(d, vertexShader, fragmentShader)
	if err != nil {
		return nil, fmt.Errorf("could not build %s program: %w", name, err)
	}
	return program, nil
}
