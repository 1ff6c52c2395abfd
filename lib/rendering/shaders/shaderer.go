package shaders

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"text/template"
)

//go:embed *.frag *.vert
var templateDir embed.FS

type Shaderer struct {
	templates *template.Template

	Data *ShaderData
}

// ShaderData contains stuff that gets passed to the shader templates
type ShaderData struct {
	GLSLVersion string
}

var DefaultShaderData = ShaderData{
	GLSLVersion: "410 core",
}

// NewShaderer loads the shader templates from dir, or the built-in ones
// when dir is empty.
func NewShaderer(dir string) (*Shaderer, error) {
	var fsys fs.FS = templateDir
	if dir != "" {
		fsys = os.DirFS(dir)
	}
	return NewShadererFS(fsys)
}

func NewShadererFS(fsys fs.FS) (*Shaderer, error) {
	data := DefaultShaderData
	s := &Shaderer{Data: &data}

	var err error
	s.templates, err = template.ParseFS(fsys, "*.frag", "*.vert")
	if err != nil {
		return nil, fmt.Errorf("could not parse shader templates: %w", err)
	}

	return s, nil
}

func (s *Shaderer) GetShaderSource(name string, data *ShaderData) (string, error) {
	var b bytes.Buffer
	err := s.templates.ExecuteTemplate(&b, name, data)
	if err != nil {
		return "", fmt.Errorf("error while rendering template: %w", err)
	}

	return b.String(), nil
}

func (s *Shaderer) TemplateNames() []string {
	var names []string
	for _, t := range s.templates.Templates() {
		names = append(names, t.Name())
	}
	return names
}
