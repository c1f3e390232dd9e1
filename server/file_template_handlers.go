package server

import (
	"embed"
	"html/template"
	"io/fs"
	"strings"
	"time"
)

//go:embed templates/*
var templateFiles embed.FS

const layoutTemplate = "layout.html"

func TemplateFilesFS() fs.FS {
	subFS, err := fs.Sub(templateFiles, "templates")
	if err != nil {
		panic("Failed to create templates sub filesystem: " + err.Error())
	}
	return subFS
}

var templateFuncs = template.FuncMap{
	"upper": strings.ToUpper,
	"formatTime": func(t time.Time) string {
		return t.Local().Format("02 Jan 2006 15:04")
	},
	"methodClass": func(method string) string {
		return "method-" + strings.ToLower(method)
	},
}

// ParseTemplate parses a standalone page from the embedded filesystem
func ParseTemplate(name string) (*template.Template, error) {
	return template.New(name).Funcs(templateFuncs).ParseFS(TemplateFilesFS(), name)
}

// ParsePage parses a dashboard page together with the shared layout.
// The page defines a "content" block the layout renders.
func ParsePage(name string) (*template.Template, error) {
	return template.New(layoutTemplate).Funcs(templateFuncs).ParseFS(TemplateFilesFS(), layoutTemplate, name)
}

func mustParse(tmpl *template.Template, err error) *template.Template {
	if err != nil {
		panic("Failed to parse template: " + err.Error())
	}
	return tmpl
}
