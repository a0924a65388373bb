// SPDX-License-Identifier: MIT

package equation

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/openresil/cgekit/labels"
	"github.com/openresil/cgekit/pyomo"
	"github.com/openresil/cgekit/table"
)

// descriptor is one registered variable's layout: its label shape and
// its slice [start, start+size) of the flat solver array.
type descriptor struct {
	name  string
	rows  labels.Set // empty for scalars
	cols  labels.Set // empty for scalars and vectors
	start int
	size  int
}

// Registry owns the canonical flat layout and value state for every
// variable one model instance registers: three parallel arrays of
// initial values, lower bounds and upper bounds, plus the name→layout
// and index→label mappings.
//
// Unset slots hold NaN. For bounds, NaN means "unbounded" and is mapped
// to ±1e20 at serialization; for initial values it is mapped to 0 at
// serialization only, so upstream bugs producing NaN stay visible in Get.
//
// A Registry is not safe for concurrent use; each model owns exactly one.
type Registry struct {
	byName map[string]*descriptor
	order  []*descriptor // registration order; starts strictly ascending

	initial []float64
	lower   []float64
	upper   []float64
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*descriptor)}
}

// AddScalar registers a scalar variable (one flat slot) and returns its
// 1×1 symbolic handle. Returns ErrDuplicateVariable when name is taken.
func (r *Registry) AddScalar(name string) (*MatrixExpr, error) {
	return r.add(name, labels.Set{}, labels.Set{})
}

// AddVector registers a vector variable over rows (one slot per label)
// and returns its height×1 symbolic handle.
func (r *Registry) AddVector(name string, rows labels.Set) (*MatrixExpr, error) {
	if rows.IsEmpty() {
		return nil, fmt.Errorf("vector %q needs row labels: %w", name, ErrShapeMismatch)
	}
	return r.add(name, rows, labels.Set{})
}

// AddMatrix registers a matrix variable over rows×cols (row-major
// flattening) and returns its symbolic handle.
func (r *Registry) AddMatrix(name string, rows, cols labels.Set) (*MatrixExpr, error) {
	if rows.IsEmpty() || cols.IsEmpty() {
		return nil, fmt.Errorf("matrix %q needs row and column labels: %w", name, ErrShapeMismatch)
	}
	return r.add(name, rows, cols)
}

func (r *Registry) add(name string, rows, cols labels.Set) (*MatrixExpr, error) {
	if name == "" {
		return nil, fmt.Errorf("empty name: %w", ErrUnknownVariable)
	}
	if _, dup := r.byName[name]; dup {
		return nil, fmt.Errorf("%q: %w", name, ErrDuplicateVariable)
	}

	size := 1
	if rows.Len() > 0 {
		size = rows.Len()
	}
	if cols.Len() > 0 {
		size *= cols.Len()
	}

	d := &descriptor{name: name, rows: rows, cols: cols, start: len(r.initial), size: size}
	r.byName[name] = d
	r.order = append(r.order, d)

	unset := make([]float64, size)
	for i := range unset {
		unset[i] = math.NaN()
	}
	r.initial = append(r.initial, unset...)
	r.lower = append(r.lower, unset...)
	r.upper = append(r.upper, unset...)

	return newVarExpr(r, d), nil
}

// NVars returns the total flat size of all registered variables.
func (r *Registry) NVars() int { return len(r.initial) }

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// Names returns all variable names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	for i, d := range r.order {
		out[i] = d.name
	}
	return out
}

// SetInitial fills the initial-value slots for name from v. A Scalar
// broadcasts to every cell; a Series/Frame assigns by label, and value
// labels absent from the registered shape are skipped. The skipped count
// is returned so callers that expect an exact match can assert zero.
func (r *Registry) SetInitial(name string, v table.Value) (skipped int, err error) {
	return r.setValue(name, v, r.initial)
}

// SetLower is SetInitial for the lower-bound array.
func (r *Registry) SetLower(name string, v table.Value) (skipped int, err error) {
	return r.setValue(name, v, r.lower)
}

// SetUpper is SetInitial for the upper-bound array.
func (r *Registry) SetUpper(name string, v table.Value) (skipped int, err error) {
	return r.setValue(name, v, r.upper)
}

func (r *Registry) setValue(name string, v table.Value, target []float64) (int, error) {
	d, ok := r.byName[name]
	if !ok {
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownVariable)
	}

	switch val := v.(type) {
	case table.Scalar:
		for k := d.start; k < d.start+d.size; k++ {
			target[k] = float64(val)
		}
		return 0, nil

	case *table.Series:
		if d.rows.IsEmpty() || !d.cols.IsEmpty() {
			return 0, fmt.Errorf("series value for %q (%s): %w", name, d.kind(), ErrShapeMismatch)
		}
		skipped := 0
		for i := 0; i < val.Rows().Len(); i++ {
			pos, ok := d.rows.Index(val.Rows().At(i))
			if !ok {
				skipped++
				continue
			}
			target[d.start+pos] = val.Cell(i)
		}
		return skipped, nil

	case *table.Frame:
		if d.cols.IsEmpty() {
			return 0, fmt.Errorf("frame value for %q (%s): %w", name, d.kind(), ErrShapeMismatch)
		}
		skipped := 0
		for i := 0; i < val.Rows().Len(); i++ {
			ri, rok := d.rows.Index(val.Rows().At(i))
			for j := 0; j < val.Cols().Len(); j++ {
				cj, cok := d.cols.Index(val.Cols().At(j))
				if !rok || !cok {
					skipped++
					continue
				}
				target[d.start+ri*d.cols.Len()+cj] = val.Cell(i, j)
			}
		}
		return skipped, nil

	default:
		return 0, fmt.Errorf("value for %q: %w", name, ErrShapeMismatch)
	}
}

// kind names the descriptor's shape class for diagnostics.
func (d *descriptor) kind() string {
	switch {
	case !d.cols.IsEmpty():
		return "matrix"
	case !d.rows.IsEmpty():
		return "vector"
	default:
		return "scalar"
	}
}

// Index resolves (name, row, col) to its flat offset. Pass "" for absent
// dimensions: Index("SPI", "", "") for a scalar, Index("Y", "L1", "")
// for a vector cell.
func (r *Registry) Index(name, row, col string) (int, error) {
	d, ok := r.byName[name]
	if !ok {
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownVariable)
	}

	switch {
	case !d.cols.IsEmpty():
		if row == "" || col == "" {
			return 0, fmt.Errorf("%q is a matrix, need row and col: %w", name, ErrShapeMismatch)
		}
		i, ok := d.rows.Index(row)
		if !ok {
			return 0, fmt.Errorf("%q row %q: %w", name, row, ErrUnknownLabel)
		}
		j, ok := d.cols.Index(col)
		if !ok {
			return 0, fmt.Errorf("%q col %q: %w", name, col, ErrUnknownLabel)
		}
		return d.start + i*d.cols.Len() + j, nil

	case !d.rows.IsEmpty():
		if row == "" || col != "" {
			return 0, fmt.Errorf("%q is a vector, need row only: %w", name, ErrShapeMismatch)
		}
		i, ok := d.rows.Index(row)
		if !ok {
			return 0, fmt.Errorf("%q row %q: %w", name, row, ErrUnknownLabel)
		}
		return d.start + i, nil

	default:
		if row != "" || col != "" {
			return 0, fmt.Errorf("%q is scalar, no labels apply: %w", name, ErrShapeMismatch)
		}
		return d.start, nil
	}
}

// LabelAt is the inverse of Index: it maps a flat offset back to
// (name, row, col), with "" for absent dimensions. Used for diagnostics
// and solution decoding. Complexity: O(log nvariables).
func (r *Registry) LabelAt(index int) (name, row, col string, err error) {
	if index < 0 || index >= len(r.initial) {
		return "", "", "", fmt.Errorf("index %d of %d: %w", index, len(r.initial), ErrIndexRange)
	}
	// order is ascending by start; find the descriptor covering index.
	k := sort.Search(len(r.order), func(k int) bool {
		return r.order[k].start+r.order[k].size > index
	})
	d := r.order[k]
	diff := index - d.start
	switch {
	case !d.cols.IsEmpty():
		return d.name, d.rows.At(diff / d.cols.Len()), d.cols.At(diff % d.cols.Len()), nil
	case !d.rows.IsEmpty():
		return d.name, d.rows.At(diff), "", nil
	default:
		return d.name, "", "", nil
	}
}

// Get reconstructs a labeled value for name from solution, or from the
// registry's own initial values when solution is nil. The solution array
// must have the registry's exact total length: its index→cell mapping is
// the registry's own layout, which is how solver output is decoded.
func (r *Registry) Get(name string, solution []float64) (table.Value, error) {
	d, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownVariable)
	}
	x := solution
	if x == nil {
		x = r.initial
	}
	if len(x) != len(r.initial) {
		return nil, fmt.Errorf("got %d, registry has %d: %w", len(x), len(r.initial), ErrSolutionLength)
	}

	switch {
	case !d.cols.IsEmpty():
		return table.NewFrame(d.rows, d.cols, x[d.start:d.start+d.size])
	case !d.rows.IsEmpty():
		return table.NewSeries(d.rows, x[d.start:d.start+d.size])
	default:
		return table.Scalar(x[d.start]), nil
	}
}

// GetScalar is Get for a scalar variable.
func (r *Registry) GetScalar(name string, solution []float64) (float64, error) {
	v, err := r.Get(name, solution)
	if err != nil {
		return 0, err
	}
	s, ok := v.(table.Scalar)
	if !ok {
		return 0, fmt.Errorf("%q: %w", name, ErrNotScalar)
	}
	return float64(s), nil
}

// GetSeries is Get for a vector variable.
func (r *Registry) GetSeries(name string, solution []float64) (*table.Series, error) {
	v, err := r.Get(name, solution)
	if err != nil {
		return nil, err
	}
	s, ok := v.(*table.Series)
	if !ok {
		return nil, fmt.Errorf("%q is not a vector: %w", name, ErrShapeMismatch)
	}
	return s, nil
}

// GetFrame is Get for a matrix variable.
func (r *Registry) GetFrame(name string, solution []float64) (*table.Frame, error) {
	v, err := r.Get(name, solution)
	if err != nil {
		return nil, err
	}
	f, ok := v.(*table.Frame)
	if !ok {
		return nil, fmt.Errorf("%q is not a matrix: %w", name, ErrShapeMismatch)
	}
	return f, nil
}

// WriteBounds emits one solver variable declaration per flat index, in
// ascending index order. Unset bounds become ±1e20; NaN initial values
// are coerced to 0 here and only here.
func (r *Registry) WriteBounds(w io.Writer) error {
	for i := range r.initial {
		lo := r.lower[i]
		if math.IsNaN(lo) {
			lo = pyomo.DefaultLower
		}
		up := r.upper[i]
		if math.IsNaN(up) {
			up = pyomo.DefaultUpper
		}
		v := r.initial[i]
		if math.IsNaN(v) {
			v = 0
		}
		if _, err := fmt.Fprintln(w, pyomo.VarDecl(i, lo, up, v)); err != nil {
			return err
		}
	}
	return nil
}

// WriteObjective emits the single objective declaration maximizing the
// scalar variable name. Returns ErrNotScalar for vector/matrix names.
func (r *Registry) WriteObjective(w io.Writer, name string) error {
	d, ok := r.byName[name]
	if !ok {
		return fmt.Errorf("%q: %w", name, ErrUnknownVariable)
	}
	if d.size != 1 {
		return fmt.Errorf("objective %q (%s): %w", name, d.kind(), ErrNotScalar)
	}
	_, err := fmt.Fprintln(w, pyomo.ObjectiveDecl(d.start))
	return err
}
