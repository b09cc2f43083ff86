package main

import (
	"embed"
	"html/template"
	"io/fs"
	"strings"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static
var staticRoot embed.FS

var (
	pageTemplates = template.Must(template.New("").Funcs(templateFuncs).ParseFS(templateFiles, "templates/*.html"))
	staticFiles   = mustSub(staticRoot, "static")
)

var templateFuncs = template.FuncMap{
	"lower": strings.ToLower,
	"list":  func(items ...string) []string { return items },
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
