package orchestrator

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-blockrender/pkg/render"
	"github.com/goliatone/go-blockrender/pkg/renderers/curl"
	"github.com/goliatone/go-blockrender/pkg/renderers/templated"
)

const defaultMethodName = curl.Name

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry. Renderers added through other
// options are registered into it.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultMethod overrides the method used when a request omits one.
func WithDefaultMethod(name string) Option {
	return func(o *Orchestrator) {
		o.defaultMethod = strings.TrimSpace(name)
	}
}

// WithRenderers registers additional renderer variants.
func WithRenderers(renderers ...render.Renderer) Option {
	return func(o *Orchestrator) {
		o.extra = append(o.extra, renderers...)
	}
}

// WithVariantsFS loads templated variant definitions from fsys.
func WithVariantsFS(fsys fs.FS, options ...templated.Option) Option {
	return func(o *Orchestrator) {
		o.variantsFS = fsys
		o.variantOptions = append(o.variantOptions, options...)
	}
}

// Request describes one building block to render.
type Request struct {
	// Method selects the renderer variant. Empty selects the default method.
	Method   string
	Command  string
	Filename string
	// Dependencies, when non-empty, are rendered ahead of the run block.
	Dependencies render.Dependencies
}

// Orchestrator dispatches render calls to the variant registered for an
// execution method. It always carries the curl variant and is read-only after
// New, so it is safe for concurrent use.
type Orchestrator struct {
	registry       *render.Registry
	defaultMethod  string
	extra          []render.Renderer
	variantsFS     fs.FS
	variantOptions []templated.Option
	initialiseErr  error
}

// New constructs an Orchestrator applying any provided options. Wiring
// failures are reported by the first call that needs a renderer.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultMethod: defaultMethodName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

func (o *Orchestrator) applyDefaults() {
	if o.registry == nil {
		o.registry = render.NewRegistry()
	}
	if o.defaultMethod == "" {
		o.defaultMethod = defaultMethodName
	}

	var errs []error
	if !o.registry.Has(curl.Name) {
		if err := o.registry.Register(curl.New()); err != nil {
			errs = append(errs, fmt.Errorf("orchestrator: default renderer: %w", err))
		}
	}
	for _, r := range o.extra {
		if err := o.registry.Register(r); err != nil {
			errs = append(errs, fmt.Errorf("orchestrator: register renderer: %w", err))
		}
	}
	if o.variantsFS != nil {
		variants, err := templated.LoadFS(o.variantsFS, o.variantOptions...)
		if err != nil {
			errs = append(errs, fmt.Errorf("orchestrator: load variants: %w", err))
		}
		for _, v := range variants {
			if err := o.registry.Register(v); err != nil {
				errs = append(errs, fmt.Errorf("orchestrator: register variant: %w", err))
			}
		}
	}
	o.initialiseErr = errors.Join(errs...)
}

// Err reports wiring failures collected by New.
func (o *Orchestrator) Err() error {
	return o.initialiseErr
}

// Renderer resolves the variant for method. Empty method selects the default.
func (o *Orchestrator) Renderer(method string) (render.Renderer, error) {
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	name := strings.TrimSpace(method)
	if name == "" {
		name = o.defaultMethod
	}
	renderer, err := o.registry.Get(name)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	return renderer, nil
}

// RunCommand renders the run block for method.
func (o *Orchestrator) RunCommand(method, command, filename string) (string, error) {
	renderer, err := o.Renderer(method)
	if err != nil {
		return "", err
	}
	return renderer.RunCommand(command, filename)
}

// Dependencies renders the dependency block for method. Unsupported variants
// return their render.UnsupportedOperationError unchanged.
func (o *Orchestrator) Dependencies(method string, deps render.Dependencies) (string, error) {
	renderer, err := o.Renderer(method)
	if err != nil {
		return "", err
	}
	return renderer.Dependencies(deps)
}

// Build renders the dependency block (when req.Dependencies is non-empty)
// followed by the run block. Any failure aborts the build.
func (o *Orchestrator) Build(req Request) (string, error) {
	renderer, err := o.Renderer(req.Method)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if len(req.Dependencies) > 0 {
		deps, err := renderer.Dependencies(req.Dependencies)
		if err != nil {
			return "", err
		}
		b.WriteString(deps)
	}

	run, err := renderer.RunCommand(req.Command, req.Filename)
	if err != nil {
		return "", err
	}
	b.WriteString(run)
	return b.String(), nil
}

// Methods lists the registered execution methods in sorted order.
func (o *Orchestrator) Methods() []string {
	return o.registry.List()
}

// DefaultMethod returns the method used when a request omits one.
func (o *Orchestrator) DefaultMethod() string {
	return o.defaultMethod
}
