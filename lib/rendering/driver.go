package rendering

import "github.com/go-gl/mathgl/mgl32"

type BufferTarget int

const (
	ArrayBuffer BufferTarget = iota
	ElementArrayBuffer
)

func (t BufferTarget) String() string {
	switch t {
	case ArrayBuffer:
		return "array"
	case ElementArrayBuffer:
		return "element array"
	}
	return "unknown"
}

type Usage int

const (
	StaticDraw Usage = iota
	DynamicDraw
)

type ComponentType int

const (
	Float ComponentType = iota
)

type ShaderStage int

const (
	VertexStage ShaderStage = iota
	FragmentStage
)

func (s ShaderStage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return "unknown"
}

// Driver is the set of graphics API calls the resource wrappers are built
// on. The GL implementation lives in gldriver; every method must be called
// from the thread that owns the context.
type Driver interface {
	GenBuffer() uint32
	DeleteBuffer(id uint32)
	BindBuffer(target BufferTarget, id uint32)
	BufferData(target BufferTarget, data []byte, usage Usage)

	GenVertexArray() uint32
	DeleteVertexArray(id uint32)
	BindVertexArray(id uint32)
	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, xtype ComponentType, normalized bool, stride int32, offset uintptr)

	CreateShader(stage ShaderStage) uint32
	// CompileShader uploads the source and compiles it, returning the info
	// log when compilation fails.
	CompileShader(id uint32, source string) (ok bool, infoLog string)
	DeleteShader(id uint32)
	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32) (ok bool, infoLog string)
	DeleteProgram(id uint32)
	UseProgram(id uint32)
	// UniformLocation returns -1 for names the program does not use.
	UniformLocation(program uint32, name string) int32
	Uniform1i(location int32, v int32)
	Uniform4f(location int32, v mgl32.Vec4)

	GenTexture() uint32
	DeleteTexture(id uint32)
	ActiveTexture(unit uint32)
	BindTexture(id uint32)
	// TexImage2D uploads tightly packed 8-bit RGBA pixels to the bound
	// texture, clamped to the edge and sampled with nearest filtering.
	TexImage2D(width, height int32, pixels []byte)

	ClearColor(c mgl32.Vec4)
	Clear()
	Viewport(x, y, width, height int32)
	DrawElements(count int32)
}
