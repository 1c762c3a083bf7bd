package server

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/flosch/pongo2/v6"
)

// shellEngine renders the embedded editor and print pages. Templates are
// parsed once and cached; page data is small and autoescaped by default.
type shellEngine struct {
	mu        sync.RWMutex
	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
}

func newShellEngine(files fs.FS) (*shellEngine, error) {
	if files == nil {
		return nil, errors.New("server: shell engine needs a template fs")
	}
	return &shellEngine{
		set:       pongo2.NewSet("ticketd", pongo2.NewFSLoader(files)),
		templates: make(map[string]*pongo2.Template),
	}, nil
}

func (e *shellEngine) render(name string, data map[string]any) (string, error) {
	tmpl, err := e.template(name)
	if err != nil {
		return "", err
	}
	out, err := tmpl.Execute(pongo2.Context(data))
	if err != nil {
		return "", fmt.Errorf("server: execute template %q: %w", name, err)
	}
	return out, nil
}

func (e *shellEngine) template(name string) (*pongo2.Template, error) {
	e.mu.RLock()
	tmpl, ok := e.templates[name]
	e.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if tmpl, ok := e.templates[name]; ok {
		return tmpl, nil
	}
	tmpl, err := e.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("server: load template %q: %w", name, err)
	}
	e.templates[name] = tmpl
	return tmpl, nil
}
