package pongo

import (
	"fmt"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/flosch/pongo2/v6"
)

func newEngine(t *testing.T, options ...Option) *Engine {
	t.Helper()
	files := fstest.MapFS{
		"hello.tpl":      {Data: []byte("Hello {{ name }}")},
		"use-global.tpl": {Data: []byte("env={{ settings.env }}")},
		"use-filter.tpl": {Data: []byte("{{ name|exclaim }}")},
		"trimmed.tpl":    {Data: []byte("[{{ name|trim }}]")},
	}
	engine, err := New(append([]Option{WithFS(files)}, options...)...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	var buf strings.Builder
	got, err := engine.RenderTemplate("hello", map[string]any{"name": "<Ada>"}, &buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "Hello &lt;Ada&gt;"
	if got != want {
		t.Fatalf("result = %q, want %q", got, want)
	}
	if buf.String() != want {
		t.Fatalf("writer = %q, want %q", buf.String(), want)
	}
}

func TestEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t, WithGlobalData(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}))

	got, err := engine.RenderTemplate("use-global.tpl", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "env=staging" {
		t.Fatalf("result = %q", got)
	}
}

func TestEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	if !pongo2.FilterExists("exclaim") {
		err := engine.RegisterFilter("exclaim", func(input any, _ any) (any, error) {
			return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
		})
		if err != nil {
			t.Fatalf("register filter: %v", err)
		}
	}
	if err := engine.RegisterFilter("exclaim", func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected duplicate filter error")
	}

	got, err := engine.RenderTemplate("use-filter", map[string]any{"name": "ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "ADA!" {
		t.Fatalf("result = %q", got)
	}
}

func TestEngine_DefaultTrimFilter(t *testing.T) {
	engine := newEngine(t)
	got, err := engine.RenderTemplate("trimmed", map[string]any{"name": "  ada  "})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "[ada]" {
		t.Fatalf("result = %q", got)
	}
}

func TestEngine_RenderStringStruct(t *testing.T) {
	engine := newEngine(t)
	data := struct {
		Name string `json:"name"`
	}{Name: "Ada"}

	got, err := engine.RenderString("{% if name %}hi {{ name }}{% endif %}", data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "hi Ada" {
		t.Fatalf("result = %q", got)
	}
}

func TestNew_RequiresSource(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatalf("expected error without templates")
	}
}
