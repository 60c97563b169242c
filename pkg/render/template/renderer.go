package template

import (
	"io"
)

// TemplateRenderer is the contract renderers depend on. Implementations write
// the rendered output to every supplied writer and also return it.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
