package model

// Category is one classification bucket in the catalog. Keywords are swept in
// order during the broad phase; Targets (if any) narrow queries during the
// targeted phase. The catalog is resolved once at startup and never mutated.
type Category struct {
	Name     string   `json:"name" yaml:"name"`
	Keywords []string `json:"keywords" yaml:"keywords"`
	Targets  []string `json:"targets,omitempty" yaml:"targets,omitempty"`
}
