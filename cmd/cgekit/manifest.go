// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/openresil/cgekit/equation"
	"github.com/openresil/cgekit/labels"
	"github.com/openresil/cgekit/table"
)

// Manifest is the YAML description of a model's variable layout:
// named label sets, variable shapes referencing them, and an optional
// scalar objective.
type Manifest struct {
	Labels    map[string][]string `yaml:"labels"`
	Variables []VariableSpec      `yaml:"variables"`
	Objective string              `yaml:"objective"`
}

// VariableSpec declares one variable. Rows/Cols name entries of the
// manifest's label sets; both empty means scalar, rows-only a vector.
type VariableSpec struct {
	Name    string     `yaml:"name"`
	Rows    string     `yaml:"rows"`
	Cols    string     `yaml:"cols"`
	Initial *ValueSpec `yaml:"initial"`
	Lower   *ValueSpec `yaml:"lower"`
	Upper   *ValueSpec `yaml:"upper"`
}

// ValueSpec accepts the three value shapes a manifest may carry: a bare
// number (broadcast to every cell), a label→number map for vectors, or
// a nested row→col→number map for matrices.
type ValueSpec struct {
	scalar *float64
	vector map[string]float64
	grid   map[string]map[string]float64
}

// UnmarshalYAML tries the three accepted shapes in order.
func (v *ValueSpec) UnmarshalYAML(node *yaml.Node) error {
	var f float64
	if err := node.Decode(&f); err == nil {
		v.scalar = &f
		return nil
	}
	var m map[string]float64
	if err := node.Decode(&m); err == nil {
		v.vector = m
		return nil
	}
	var g map[string]map[string]float64
	if err := node.Decode(&g); err == nil {
		v.grid = g
		return nil
	}
	return fmt.Errorf("line %d: value must be a number, a label map, or a nested label map", node.Line)
}

// toValue converts the parsed shape into a labeled table value.
func (v *ValueSpec) toValue() (table.Value, error) {
	switch {
	case v.scalar != nil:
		return table.Scalar(*v.scalar), nil

	case v.vector != nil:
		keys := sortedKeys(v.vector)
		data := make([]float64, len(keys))
		for i, k := range keys {
			data[i] = v.vector[k]
		}
		rows, err := labels.New(keys...)
		if err != nil {
			return nil, err
		}
		return table.NewSeries(rows, data)

	default:
		rowKeys := sortedKeys(v.grid)
		colSeen := map[string]struct{}{}
		for _, row := range v.grid {
			for c := range row {
				colSeen[c] = struct{}{}
			}
		}
		colKeys := make([]string, 0, len(colSeen))
		for c := range colSeen {
			colKeys = append(colKeys, c)
		}
		sort.Strings(colKeys)

		rows, err := labels.New(rowKeys...)
		if err != nil {
			return nil, err
		}
		cols, err := labels.New(colKeys...)
		if err != nil {
			return nil, err
		}
		data := make([]float64, len(rowKeys)*len(colKeys))
		for i, r := range rowKeys {
			for j, c := range colKeys {
				data[i*len(colKeys)+j] = v.grid[r][c]
			}
		}
		f, err := table.NewFrame(rows, cols, data)
		if err != nil {
			return nil, err
		}
		return f, nil
	}
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// LoadManifest reads and parses a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if len(m.Variables) == 0 {
		return nil, fmt.Errorf("manifest %s declares no variables", path)
	}
	return &m, nil
}

// Build materializes the manifest into a populated registry.
func (m *Manifest) Build() (*equation.Registry, error) {
	reg := equation.NewRegistry()

	for _, vs := range m.Variables {
		if vs.Name == "" {
			return nil, fmt.Errorf("variable without a name")
		}
		rows, err := m.labelSet(vs.Rows)
		if err != nil {
			return nil, fmt.Errorf("variable %q: %w", vs.Name, err)
		}
		cols, err := m.labelSet(vs.Cols)
		if err != nil {
			return nil, fmt.Errorf("variable %q: %w", vs.Name, err)
		}

		switch {
		case !cols.IsEmpty():
			_, err = reg.AddMatrix(vs.Name, rows, cols)
		case !rows.IsEmpty():
			_, err = reg.AddVector(vs.Name, rows)
		default:
			_, err = reg.AddScalar(vs.Name)
		}
		if err != nil {
			return nil, err
		}

		for _, val := range []struct {
			field string
			spec  *ValueSpec
			set   func(string, table.Value) (int, error)
		}{
			{"initial", vs.Initial, reg.SetInitial},
			{"lower", vs.Lower, reg.SetLower},
			{"upper", vs.Upper, reg.SetUpper},
		} {
			if val.spec == nil {
				continue
			}
			tv, err := val.spec.toValue()
			if err != nil {
				return nil, fmt.Errorf("%s of %q: %w", val.field, vs.Name, err)
			}
			skipped, err := val.set(vs.Name, tv)
			if err != nil {
				return nil, fmt.Errorf("%s of %q: %w", val.field, vs.Name, err)
			}
			if skipped > 0 {
				return nil, fmt.Errorf("%s of %q names %d labels outside its shape",
					val.field, vs.Name, skipped)
			}
		}
	}

	if m.Objective != "" && !reg.Has(m.Objective) {
		return nil, fmt.Errorf("objective %q is not a declared variable", m.Objective)
	}
	return reg, nil
}

// labelSet resolves a label-set reference; "" means the axis is absent.
func (m *Manifest) labelSet(ref string) (labels.Set, error) {
	if ref == "" {
		return labels.Set{}, nil
	}
	names, ok := m.Labels[ref]
	if !ok {
		return labels.Set{}, fmt.Errorf("unknown label set %q", ref)
	}
	return labels.New(names...)
}
