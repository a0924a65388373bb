// SPDX-License-Identifier: MIT

package equation

import (
	"fmt"
	"io"

	"github.com/openresil/cgekit/pyomo"
)

// Counter is the constraint-id allocator for one model-building
// session. Constraint names must never collide across the hundreds of
// equations a model serializes, so exactly one Counter is threaded
// through every Write call of that model.
type Counter struct {
	next int
}

// NewCounter returns a counter starting at 0.
func NewCounter() *Counter { return &Counter{} }

// Next returns the current id and advances.
func (c *Counter) Next() int {
	k := c.next
	c.next++
	return k
}

// Issued returns how many ids have been handed out.
func (c *Counter) Issued() int { return c.next }

// Write emits one solver equality constraint per included cell —
// "model.equality<k> = Constraint(expr=<cell> == 0)" — drawing k from
// the shared counter. Masked-out cells are skipped entirely: no line is
// written and no id is consumed.
func (m *MatrixExpr) Write(c *Counter, w io.Writer) error {
	for i := 0; i < m.height; i++ {
		for j := 0; j < m.width; j++ {
			if !m.included(i, j) {
				continue
			}
			if _, err := fmt.Fprintln(w, pyomo.ConstraintDecl(c.Next(), m.cells[i][j].String())); err != nil {
				return err
			}
		}
	}
	return nil
}
