// Package curl renders building blocks for the plain command-line execution
// method: the user saves the file and runs a command in a terminal. The
// command is inserted verbatim; nothing is escaped.
package curl

import (
	"github.com/goliatone/go-blockrender/pkg/render"
)

// Name is the execution method handled by this renderer.
const Name = "curl"

const (
	runCommandPrefix = "## Run your code\n\n" +
		"Save this file to your machine and run it:\n\n" +
		`<pre class="highlight bash"><code>$ `
	runCommandSuffix = "</code></pre>\n\n"
)

// Renderer implements render.Renderer. The zero value is ready to use.
type Renderer struct{}

var _ render.Renderer = Renderer{}

// New returns the curl renderer.
func New() Renderer {
	return Renderer{}
}

// Name implements render.Renderer.
func (Renderer) Name() string {
	return Name
}

// Dependencies always fails: a manual terminal run has nothing to install.
func (Renderer) Dependencies(render.Dependencies) (string, error) {
	return "", render.Unsupported(Name, "dependencies", render.NoDependencySupportMessage)
}

// RunCommand implements render.Renderer. filename is not part of the output
// and the returned error is always nil.
func (Renderer) RunCommand(command, _ string) (string, error) {
	return Render(command), nil
}

// Render returns the "Run your code" block for command.
func Render(command string) string {
	return runCommandPrefix + command + runCommandSuffix
}
