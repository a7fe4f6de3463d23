package render

// Renderer produces the instructional building blocks shown next to a
// downloadable file. Each execution method (plain curl download, package
// manager, ...) is backed by one Renderer variant selected by Name().
type Renderer interface {
	Name() string
	// Dependencies renders a block that installs the given prerequisites.
	// Variants without dependency support return an *UnsupportedOperationError.
	Dependencies(deps Dependencies) (string, error)
	// RunCommand renders the block that tells the user how to run filename
	// with command. The command is inserted verbatim.
	RunCommand(command, filename string) (string, error)
}

// Dependency names a prerequisite and an optional version constraint.
type Dependency struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
}

// Dependencies is the dependency specification handed to Renderer.Dependencies.
type Dependencies []Dependency

// Names returns the dependency names in declaration order.
func (d Dependencies) Names() []string {
	if len(d) == 0 {
		return nil
	}
	out := make([]string, 0, len(d))
	for _, dep := range d {
		out = append(out, dep.Name)
	}
	return out
}
