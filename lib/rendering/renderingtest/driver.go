// Package renderingtest provides an in-memory rendering.Driver that records
// what the resource wrappers ask of it.
package renderingtest

import (
	"fmt"
	"strings"

	"github.com/fosdem/glsteps/lib/rendering"
	"github.com/go-gl/mathgl/mgl32"
)

type Kind string

const (
	Buffer      Kind = "buffer"
	VertexArray Kind = "vertex array"
	Shader      Kind = "shader"
	Program     Kind = "program"
	Texture     Kind = "texture"
)

type AttribPointer struct {
	Index      uint32
	Buffer     uint32
	Size       int32
	Type       rendering.ComponentType
	Normalized bool
	Stride     int32
	Offset     uintptr
}

type Upload struct {
	Target rendering.BufferTarget
	Buffer uint32
	Data   []byte
	Usage  rendering.Usage
}

type TexUpload struct {
	Texture uint32
	Width   int32
	Height  int32
	Pixels  []byte
}

type Draw struct {
	Program     uint32
	VertexArray uint32
	Indices     uint32
	Count       int32
	Textures    map[uint32]uint32
}

// Driver is a fake rendering.Driver. Handles are allocated from a single
// counter so they are unique across kinds.
type Driver struct {
	// Compile decides whether a shader source compiles; nil uses
	// CheckSource.
	Compile func(stage rendering.ShaderStage, source string) (bool, string)
	// Link decides whether a program links; nil always succeeds.
	Link func(program uint32) (bool, string)
	// Uniforms lists the uniform names programs expose; nil exposes any
	// name.
	Uniforms []string

	next uint32

	Created map[Kind]int
	Deleted map[Kind]int
	live    map[uint32]Kind
	// Errors collects misuse like double frees and unknown handles.
	Errors []string

	Bound         map[rendering.BufferTarget]uint32
	BoundVAO      uint32
	ActiveProgram uint32
	ActiveUnit    uint32
	BoundTextures map[uint32]uint32

	shaderStages map[uint32]rendering.ShaderStage
	attached     map[uint32][]uint32
	vaoElements  map[uint32]uint32

	Enabled        []uint32
	AttribPointers []AttribPointer
	Uploads        []Upload
	TexUploads     []TexUpload
	UniformInts    map[string]int32
	UniformVec4s   map[string]mgl32.Vec4
	locations      []string

	ViewportRect [4]int32
	ClearedTo    mgl32.Vec4
	Clears       int
	Draws        []Draw
}

var _ rendering.Driver = (*Driver)(nil)

func New() *Driver {
	return &Driver{
		Created:       map[Kind]int{},
		Deleted:       map[Kind]int{},
		live:          map[uint32]Kind{},
		Bound:         map[rendering.BufferTarget]uint32{},
		BoundTextures: map[uint32]uint32{},
		shaderStages:  map[uint32]rendering.ShaderStage{},
		attached:      map[uint32][]uint32{},
		vaoElements:   map[uint32]uint32{},
		UniformInts:   map[string]int32{},
		UniformVec4s:  map[string]mgl32.Vec4{},
	}
}

// Live returns the number of handles of the given kind not yet deleted.
func (d *Driver) Live(kind Kind) int {
	return d.Created[kind] - d.Deleted[kind]
}

func (d *Driver) IsLive(id uint32) bool {
	_, ok := d.live[id]
	return ok
}

func (d *Driver) alloc(kind Kind) uint32 {
	d.next++
	d.live[d.next] = kind
	d.Created[kind]++
	return d.next
}

func (d *Driver) release(kind Kind, id uint32) {
	if id == 0 {
		return
	}
	k, ok := d.live[id]
	if !ok {
		d.Errors = append(d.Errors, fmt.Sprintf("delete of dead %s %d", kind, id))
		return
	}
	if k != kind {
		d.Errors = append(d.Errors, fmt.Sprintf("delete of %s %d as %s", k, id, kind))
		return
	}
	delete(d.live, id)
	d.Deleted[kind]++
}

func (d *Driver) use(kind Kind, id uint32) {
	if id == 0 {
		return
	}
	if k, ok := d.live[id]; !ok || k != kind {
		d.Errors = append(d.Errors, fmt.Sprintf("use of invalid %s %d", kind, id))
	}
}

func (d *Driver) GenBuffer() uint32 { return d.alloc(Buffer) }
func (d *Driver) DeleteBuffer(id uint32) { d.release(Buffer, id) }
func (d *Driver) GenVertexArray() uint32 { return d.alloc(VertexArray) }
func (d *Driver) GenTexture() uint32 { return d.alloc(Texture) }
func (d *Driver) DeleteTexture(id uint32) { d.release(Texture, id) }
func (d *Driver) CreateProgram() uint32 { return d.alloc(Program) }
func (d *Driver) DeleteProgram(id uint32) { d.release(Program, id) }
func (d *Driver) DeleteShader(id uint32) { d.release(Shader, id) }

func (d *Driver) DeleteVertexArray(id uint32) {
	d.release(VertexArray, id)
	delete(d.vaoElements, id)
}

func (d *Driver) BindBuffer(target rendering.BufferTarget, id uint32) {
	d.use(Buffer, id)
	d.Bound[target] = id
	// the element binding is part of the vertex array state, like in GL
	if target == rendering.ElementArrayBuffer && d.BoundVAO != 0 {
		d.vaoElements[d.BoundVAO] = id
	}
}

func (d *Driver) BufferData(target rendering.BufferTarget, data []byte, usage rendering.Usage) {
	id := d.Bound[target]
	if id == 0 {
		d.Errors = append(d.Errors, fmt.Sprintf("buffer data with no %s buffer bound", target))
	}
	d.Uploads = append(d.Uploads, Upload{
		Target: target,
		Buffer: id,
		Data:   append([]byte(nil), data...),
		Usage:  usage,
	})
}

func (d *Driver) BindVertexArray(id uint32) {
	d.use(VertexArray, id)
	d.BoundVAO = id
}

func (d *Driver) EnableVertexAttribArray(index uint32) {
	if d.BoundVAO == 0 {
		d.Errors = append(d.Errors, "enable attribute with no vertex array bound")
	}
	d.Enabled = append(d.Enabled, index)
}

func (d *Driver) VertexAttribPointer(index uint32, size int32, xtype rendering.ComponentType, normalized bool, stride int32, offset uintptr) {
	if d.BoundVAO == 0 {
		d.Errors = append(d.Errors, "attribute pointer with no vertex array bound")
	}
	d.AttribPointers = append(d.AttribPointers, AttribPointer{
		Index:      index,
		Buffer:     d.Bound[rendering.ArrayBuffer],
		Size:       size,
		Type:       xtype,
		Normalized: normalized,
		Stride:     stride,
		Offset:     offset,
	})
}

func (d *Driver) CreateShader(stage rendering.ShaderStage) uint32 {
	id := d.alloc(Shader)
	d.shaderStages[id] = stage
	return id
}

func (d *Driver) CompileShader(id uint32, source string) (bool, string) {
	d.use(Shader, id)
	if d.Compile != nil {
		return d.Compile(d.shaderStages[id], source)
	}
	return CheckSource(source)
}

func (d *Driver) AttachShader(program, shader uint32) {
	d.use(Program, program)
	d.use(Shader, shader)
	d.attached[program] = append(d.attached[program], shader)
}

func (d *Driver) DetachShader(program, shader uint32) {
	list := d.attached[program]
	for i, s := range list {
		if s == shader {
			d.attached[program] = append(list[:i], list[i+1:]...)
			return
		}
	}
	d.Errors = append(d.Errors, fmt.Sprintf("detach of shader %d not attached to program %d", shader, program))
}

// Attached returns the shaders currently attached to a program.
func (d *Driver) Attached(program uint32) []uint32 {
	return d.attached[program]
}

func (d *Driver) LinkProgram(program uint32) (bool, string) {
	d.use(Program, program)
	if d.Link != nil {
		return d.Link(program)
	}
	return true, ""
}

func (d *Driver) UseProgram(id uint32) {
	d.use(Program, id)
	d.ActiveProgram = id
}

func (d *Driver) UniformLocation(program uint32, name string) int32 {
	d.use(Program, program)
	if d.Uniforms != nil {
		found := false
		for _, u := range d.Uniforms {
			found = found || u == name
		}
		if !found {
			return -1
		}
	}
	for i, n := range d.locations {
		if n == name {
			return int32(i)
		}
	}
	d.locations = append(d.locations, name)
	return int32(len(d.locations) - 1)
}

func (d *Driver) uniformName(location int32) string {
	if location < 0 || int(location) >= len(d.locations) {
		d.Errors = append(d.Errors, fmt.Sprintf("uniform at bad location %d", location))
		return ""
	}
	if d.ActiveProgram == 0 {
		d.Errors = append(d.Errors, "uniform set with no program in use")
	}
	return d.locations[location]
}

func (d *Driver) Uniform1i(location int32, v int32) {
	d.UniformInts[d.uniformName(location)] = v
}

func (d *Driver) Uniform4f(location int32, v mgl32.Vec4) {
	d.UniformVec4s[d.uniformName(location)] = v
}

func (d *Driver) ActiveTexture(unit uint32) {
	d.ActiveUnit = unit
}

func (d *Driver) BindTexture(id uint32) {
	d.use(Texture, id)
	d.BoundTextures[d.ActiveUnit] = id
}

func (d *Driver) TexImage2D(width, height int32, pixels []byte) {
	id := d.BoundTextures[d.ActiveUnit]
	if id == 0 {
		d.Errors = append(d.Errors, "texture upload with no texture bound")
	}
	if want := int64(width) * int64(height) * 4; want != int64(len(pixels)) {
		d.Errors = append(d.Errors, fmt.Sprintf("texture upload reads %d bytes from a %d byte buffer", want, len(pixels)))
	}
	d.TexUploads = append(d.TexUploads, TexUpload{
		Texture: id,
		Width:   width,
		Height:  height,
		Pixels:  append([]byte(nil), pixels...),
	})
}

func (d *Driver) ClearColor(c mgl32.Vec4) { d.ClearedTo = c }
func (d *Driver) Clear() { d.Clears++ }

func (d *Driver) Viewport(x, y, width, height int32) {
	d.ViewportRect = [4]int32{x, y, width, height}
}

func (d *Driver) DrawElements(count int32) {
	if d.ActiveProgram == 0 || d.BoundVAO == 0 {
		d.Errors = append(d.Errors, "draw without program or vertex array")
	}
	textures := map[uint32]uint32{}
	for unit, id := range d.BoundTextures {
		if id != 0 {
			textures[unit] = id
		}
	}
	d.Draws = append(d.Draws, Draw{
		Program:     d.ActiveProgram,
		VertexArray: d.BoundVAO,
		Indices:     d.vaoElements[d.BoundVAO],
		Count:       count,
		Textures:    textures,
	})
}

// CheckSource is a stand-in for a GLSL compiler: a source must declare a
// version, define main and balance its braces and parentheses.
func CheckSource(source string) (bool, string) {
	if !strings.HasPrefix(strings.TrimSpace(source), "#version") {
		return false, "0:1(1): error: missing #version directive"
	}
	if !strings.Contains(source, "void main()") {
		return false, "0:0(0): error: no definition of main"
	}
	depth := map[rune]int{}
	pairs := map[rune]rune{'}': '{', ')': '('}
	for line, text := range strings.Split(source, "\n") {
		for _, r := range text {
			switch r {
			case '{', '(':
				depth[r]++
			case '}', ')':
				depth[pairs[r]]--
				if depth[pairs[r]] < 0 {
					return false, fmt.Sprintf("0:%d(1): error: syntax error, unexpected '%c'", line+1, r)
				}
			}
		}
	}
	if depth['{'] != 0 || depth['('] != 0 {
		return false, "0:0(0): error: syntax error, unexpected end of file"
	}
	return true, ""
}
