package templated

import (
	"fmt"
	"io/fs"
)

// LoadFS walks fsys, parses every JSON/YAML definition file and compiles each
// variant. Variants share one engine, which can include partials from fsys.
// Names must be unique across files.
func LoadFS(fsys fs.FS, options ...Option) ([]*Renderer, error) {
	if fsys == nil {
		return nil, nil
	}

	cfg, err := newConfig(options, fsys)
	if err != nil {
		return nil, err
	}

	var renderers []*Renderer
	seen := make(map[string]string)

	err = fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("templated: read %s: %w", path, err)
		}

		doc, err := Parse(data, path)
		if err != nil {
			return err
		}

		for _, def := range doc.Variants {
			r, err := compile(def, cfg.engine)
			if err != nil {
				return err
			}
			if previous, exists := seen[r.Name()]; exists {
				return fmt.Errorf("templated: duplicate variant %q (files %s and %s)", r.Name(), previous, path)
			}
			seen[r.Name()] = path
			renderers = append(renderers, r)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return renderers, nil
}
