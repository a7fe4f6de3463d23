package templated

import (
	"fmt"
	"io"
	"io/fs"
	"sync"

	gotemplate "github.com/goliatone/go-template"
)

// Engine renders definition templates. *gotemplate.Engine satisfies it.
type Engine interface {
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
}

var _ Engine = (*gotemplate.Engine)(nil)

// go-template registers its default filters in pongo2's global filter map the
// first time an engine loads. Later engines only read that map, so the first
// load is serialised here.
var defaultFiltersOnce sync.Once

// newEngine builds a go-template engine whose {% include %} paths resolve
// against partials. A nil partials FS yields an engine without includes.
func newEngine(partials fs.FS) (*gotemplate.Engine, error) {
	defaultFiltersOnce.Do(func() {
		_, _ = gotemplate.NewRenderer(gotemplate.WithFS(noPartials{}))
	})

	if partials == nil {
		partials = noPartials{}
	}
	engine, err := gotemplate.NewRenderer(gotemplate.WithFS(partials))
	if err != nil {
		return nil, fmt.Errorf("templated: create engine: %w", err)
	}
	return engine, nil
}

// noPartials is an empty filesystem for engines built outside LoadFS.
type noPartials struct{}

func (noPartials) Open(name string) (fs.File, error) {
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}
