// Package templated builds renderer variants from pongo2 templates declared in
// YAML or JSON definition files, so sibling execution methods can be added
// without Go code.
//
// A definition file looks like:
//
//	variants:
//	  - name: pip
//	    description: Install with pip and run with python
//	    dependencies: |
//	      pip install {{ names|join:" "|safe }}
//	    run_command: |
//	      python {{ filename|safe }}
//
// The run_command template receives command and filename. The dependencies
// template receives dependencies (a list of {name, version}) and names. pongo2
// autoescapes values, so templates mark interpolated input with |safe to keep
// it verbatim. A variant without a dependencies template reports
// render.ErrUnsupportedOperation from Dependencies.
package templated
