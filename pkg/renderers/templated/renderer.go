package templated

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-blockrender/pkg/render"
)

var (
	// ErrNameRequired is returned when a definition has no name.
	ErrNameRequired = errors.New("templated: variant name is required")
	// ErrRunCommandRequired is returned when a definition has no run_command template.
	ErrRunCommandRequired = errors.New("templated: run_command template is required")
)

// Option customises Compile and LoadFS.
type Option func(*config)

type config struct {
	engine Engine
}

// WithEngine supplies the template engine. Defaults to a go-template engine;
// LoadFS points its loader at the walked filesystem.
func WithEngine(engine Engine) Option {
	return func(cfg *config) {
		if engine != nil {
			cfg.engine = engine
		}
	}
}

// Renderer is a render.Renderer backed by definition templates.
type Renderer struct {
	def    Definition
	engine Engine
}

var _ render.Renderer = (*Renderer)(nil)

// Compile validates def and checks that its templates parse and execute
// against empty input.
func Compile(def Definition, options ...Option) (*Renderer, error) {
	cfg, err := newConfig(options, nil)
	if err != nil {
		return nil, err
	}
	return compile(def, cfg.engine)
}

// newConfig applies options. Without WithEngine, a go-template engine is
// created that resolves {% include %} paths against templates.
func newConfig(options []Option, templates fs.FS) (*config, error) {
	cfg := &config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	if cfg.engine == nil {
		engine, err := newEngine(templates)
		if err != nil {
			return nil, err
		}
		cfg.engine = engine
	}
	return cfg, nil
}

func compile(def Definition, engine Engine) (*Renderer, error) {
	def.Name = strings.TrimSpace(def.Name)
	if def.Name == "" {
		if def.Source != "" {
			return nil, fmt.Errorf("%w (file %s)", ErrNameRequired, def.Source)
		}
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(def.RunCommand) == "" {
		return nil, fmt.Errorf("%w: variant %q", ErrRunCommandRequired, def.Name)
	}

	r := &Renderer{def: def, engine: engine}
	if _, err := r.RunCommand("", ""); err != nil {
		return nil, err
	}
	if r.SupportsDependencies() {
		if _, err := r.Dependencies(nil); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Name implements render.Renderer.
func (r *Renderer) Name() string {
	return r.def.Name
}

// Description returns the human readable summary from the definition.
func (r *Renderer) Description() string {
	return r.def.Description
}

// Definition returns a copy of the definition the renderer was compiled from.
func (r *Renderer) Definition() Definition {
	return r.def
}

// SupportsDependencies reports whether the definition declares a
// dependencies template.
func (r *Renderer) SupportsDependencies() bool {
	return strings.TrimSpace(r.def.Dependencies) != ""
}

// Dependencies implements render.Renderer.
func (r *Renderer) Dependencies(deps render.Dependencies) (string, error) {
	if !r.SupportsDependencies() {
		return "", render.Unsupported(r.def.Name, "dependencies", render.NoDependencySupportMessage)
	}

	list := make([]render.Dependency, 0, len(deps))
	list = append(list, deps...)
	names := deps.Names()
	if names == nil {
		names = []string{}
	}

	out, err := r.engine.RenderString(r.def.Dependencies, map[string]any{
		"dependencies": list,
		"names":        names,
	})
	if err != nil {
		return "", fmt.Errorf("templated: variant %q: render dependencies: %w", r.def.Name, err)
	}
	return out, nil
}

// RunCommand implements render.Renderer.
func (r *Renderer) RunCommand(command, filename string) (string, error) {
	out, err := r.engine.RenderString(r.def.RunCommand, map[string]any{
		"command":  command,
		"filename": filename,
	})
	if err != nil {
		return "", fmt.Errorf("templated: variant %q: render run_command: %w", r.def.Name, err)
	}
	return out, nil
}
