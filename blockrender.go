// Package blockrender renders the instructional building blocks shown next to
// downloadable code: how to install its dependencies and how to run it, for
// each supported execution method.
package blockrender

import (
	"github.com/goliatone/go-blockrender/pkg/orchestrator"
	"github.com/goliatone/go-blockrender/pkg/render"
	"github.com/goliatone/go-blockrender/pkg/renderers/curl"
)

// Renderer aliases render.Renderer, the contract every variant implements.
type Renderer = render.Renderer

// Dependency aliases render.Dependency.
type Dependency = render.Dependency

// Dependencies aliases render.Dependencies.
type Dependencies = render.Dependencies

// Request aliases orchestrator.Request.
type Request = orchestrator.Request

// ErrUnsupportedOperation is matched by errors from variants that lack a
// capability, such as curl's Dependencies.
var ErrUnsupportedOperation = render.ErrUnsupportedOperation

// New exposes the orchestrator constructor from the top-level module.
func New(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// RunCommand renders the command-line "Run your code" block. filename is
// accepted for parity with other variants and does not affect the output.
func RunCommand(command, filename string) string {
	out, _ := curl.New().RunCommand(command, filename)
	return out
}

// Build renders req using the default orchestrator.
func Build(req Request, options ...orchestrator.Option) (string, error) {
	return orchestrator.New(options...).Build(req)
}
