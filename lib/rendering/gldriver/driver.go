package gldriver

import (
	"strings"

	"github.com/fosdem/glsteps/lib/rendering"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Driver forwards every call to the GL context current on this thread.
type Driver struct{}

var _ rendering.Driver = Driver{}

func New() (Driver, error) {
	return Driver{}, Init()
}

func target(t rendering.BufferTarget) uint32 {
	switch t {
	case rendering.ArrayBuffer:
		return gl.ARRAY_BUFFER
	case rendering.ElementArrayBuffer:
		return gl.ELEMENT_ARRAY_BUFFER
	}
	panic("unknown buffer target")
}

func usage(u rendering.Usage) uint32 {
	switch u {
	case rendering.StaticDraw:
		return gl.STATIC_DRAW
	case rendering.DynamicDraw:
		return gl.DYNAMIC_DRAW
	}
	panic("unknown buffer usage")
}

func componentType(c rendering.ComponentType) uint32 {
	switch c {
	case rendering.Float:
		return gl.FLOAT
	}
	panic("unknown component type")
}

func (Driver) GenBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (Driver) DeleteBuffer(id uint32) {
	gl.DeleteBuffers(1, &id)
}

func (Driver) BindBuffer(t rendering.BufferTarget, id uint32) {
	gl.BindBuffer(target(t), id)
}

func (Driver) BufferData(t rendering.BufferTarget, data []byte, u rendering.Usage) {
	gl.BufferData(target(t), len(data), gl.Ptr(data), usage(u))
}

func (Driver) GenVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

func (Driver) DeleteVertexArray(id uint32) {
	gl.DeleteVertexArrays(1, &id)
}

func (Driver) BindVertexArray(id uint32) {
	gl.BindVertexArray(id)
}

func (Driver) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (Driver) VertexAttribPointer(index uint32, size int32, xtype rendering.ComponentType, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, componentType(xtype), normalized, stride, offset)
}

func (Driver) CreateShader(stage rendering.ShaderStage) uint32 {
	switch stage {
	case rendering.VertexStage:
		return gl.CreateShader(gl.VERTEX_SHADER)
	case rendering.FragmentStage:
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	}
	panic("unknown shader stage")
}

func (Driver) CompileShader(shader uint32, source string) (bool, string) {
	csources, free := gl.Strs(source)
	size := int32(len(source))
	gl.ShaderSource(shader, 1, csources, &size)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		clog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(clog))

		return false, strings.TrimRight(clog, "\x00")
	}
	return true, ""
}

func (Driver) DeleteShader(id uint32) {
	gl.DeleteShader(id)
}

func (Driver) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (Driver) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (Driver) DetachShader(program, shader uint32) {
	gl.DetachShader(program, shader)
}

func (Driver) LinkProgram(program uint32) (bool, string) {
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		logmsg := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logmsg))

		return false, strings.TrimRight(logmsg, "\x00")
	}
	return true, ""
}

func (Driver) DeleteProgram(id uint32) {
	gl.DeleteProgram(id)
}

func (Driver) UseProgram(id uint32) {
	gl.UseProgram(id)
}

func (Driver) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (Driver) Uniform1i(location int32, v int32) {
	gl.Uniform1i(location, v)
}

func (Driver) Uniform4f(location int32, v mgl32.Vec4) {
	gl.Uniform4fv(location, 1, &v[0])
}

func (Driver) GenTexture() uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	return id
}

func (Driver) DeleteTexture(id uint32) {
	gl.DeleteTextures(1, &id)
}

func (Driver) ActiveTexture(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
}

func (Driver) BindTexture(id uint32) {
	gl.BindTexture(gl.TEXTURE_2D, id)
}

func (Driver) TexImage2D(width, height int32, pixels []byte) {
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA8,
		width,
		height,
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(pixels),
	)
}

func (Driver) ClearColor(c mgl32.Vec4) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
}

func (Driver) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT)
}

func (Driver) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (Driver) DrawElements(count int32) {
	gl.DrawElements(gl.TRIANGLES, count, gl.UNSIGNED_INT, gl.PtrOffset(0))
}
