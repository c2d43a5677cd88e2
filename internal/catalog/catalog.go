// Package catalog resolves the category table driving a collection run: each
// category's ordered keyword variants and optional target entities.
package catalog

import (
	_ "embed"
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/profile-scout/internal/model"
)

//go:embed categories.yaml
var defaultCatalog []byte

type file struct {
	Categories []model.Category `yaml:"categories"`
}

// Default returns the built-in category table.
func Default() ([]model.Category, error) {
	return parse(defaultCatalog)
}

// Load reads a category table from a YAML file.
func Load(path string) ([]model.Category, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "catalog: read %s", path)
	}
	cats, err := parse(data)
	if err != nil {
		return nil, eris.Wrapf(err, "catalog: parse %s", path)
	}
	return cats, nil
}

// Resolve returns the catalog from path, or the built-in table when path is
// empty.
func Resolve(path string) ([]model.Category, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}

func parse(data []byte) ([]model.Category, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, eris.Wrap(err, "catalog: unmarshal")
	}
	if err := validate(f.Categories); err != nil {
		return nil, err
	}
	return f.Categories, nil
}

func validate(cats []model.Category) error {
	if len(cats) == 0 {
		return eris.New("catalog: no categories defined")
	}
	seen := make(map[string]struct{}, len(cats))
	for _, c := range cats {
		if c.Name == "" {
			return eris.New("catalog: category with empty name")
		}
		if _, dup := seen[c.Name]; dup {
			return eris.Errorf("catalog: duplicate category %q", c.Name)
		}
		seen[c.Name] = struct{}{}
		if len(c.Keywords) == 0 {
			return eris.Errorf("catalog: category %q has no keywords", c.Name)
		}
		for _, k := range c.Keywords {
			if k == "" {
				return eris.Errorf("catalog: category %q has an empty keyword", c.Name)
			}
		}
		for _, tgt := range c.Targets {
			if tgt == "" {
				return eris.Errorf("catalog: category %q has an empty target", c.Name)
			}
		}
	}
	return nil
}
