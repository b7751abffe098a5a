package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/lvmaze/maze"
)

// Entry is one named maze definition.
type Entry struct {
	Name       string
	Definition maze.Definition
	Seed       int64
}

// Build generates the maze. The entry's seed, when non-zero, is applied
// before opts, so an explicit maze.WithSeed or maze.WithRand still wins.
func (e Entry) Build(opts ...maze.Option) (*maze.Maze, error) {
	if e.Seed != 0 {
		opts = append([]maze.Option{maze.WithSeed(e.Seed)}, opts...)
	}
	m, err := maze.New(e.Definition, opts...)
	if err != nil {
		return nil, fmt.Errorf("Build %q: %w", e.Name, err)
	}

	return m, nil
}

// Parse decodes the maze blocks in src. filename is used in diagnostics.
// Entries are returned in file order.
func Parse(src []byte, filename string, vars map[string]cty.Value) ([]Entry, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("Parse %s: %w: %w", filename, ErrDecode, diags)
	}

	return decode(file, filename, vars)
}

// Load reads and decodes the HCL file at path.
func Load(path string, vars map[string]cty.Value) ([]Entry, error) {
	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("Load %s: %w: %w", path, ErrDecode, diags)
	}

	return decode(file, path, vars)
}

func decode(file *hcl.File, filename string, vars map[string]cty.Value) ([]Entry, error) {
	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, evalContext(vars), &root); diags.HasErrors() {
		return nil, fmt.Errorf("decode %s: %w: %w", filename, ErrDecode, diags)
	}

	entries := make([]Entry, 0, len(root.Mazes))
	seen := make(map[string]struct{}, len(root.Mazes))
	for _, b := range root.Mazes {
		if _, dup := seen[b.Name]; dup {
			return nil, fmt.Errorf("decode %s: maze %q: %w", filename, b.Name, ErrDuplicateName)
		}
		seen[b.Name] = struct{}{}

		e, err := b.entry()
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", filename, err)
		}
		entries = append(entries, e)
	}

	return entries, nil
}

// evalContext exposes vars as var.<name>.
func evalContext(vars map[string]cty.Value) *hcl.EvalContext {
	object := cty.EmptyObjectVal
	if len(vars) > 0 {
		object = cty.ObjectVal(vars)
	}

	return &hcl.EvalContext{Variables: map[string]cty.Value{"var": object}}
}
