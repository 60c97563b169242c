package vanilla

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplateName is the entry template rendered for every snapshot.
const TemplateName = "templates/modal.tmpl"

// TemplatesFS exposes the embedded template bundle so callers can copy and
// override it.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
