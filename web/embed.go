package web

import (
	"embed"
	"html/template"
	"io/fs"
	"log"
)

//go:embed static templates
var content embed.FS

// StaticFS returns the static file system.
func StaticFS() fs.FS {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		log.Fatalf("failed to create static sub-filesystem: %v", err)
	}
	return sub
}

// LoadTemplates parses all page templates.
func LoadTemplates() (*template.Template, error) {
	return template.ParseFS(content, "templates/*.html")
}
