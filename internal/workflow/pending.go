package workflow

import (
	"fmt"

	"waiter/internal/models"
)

// Table and tab numbers come from small fixed ranges picked on the order
// creation screen.
const (
	MaxTable = 10
	MaxTab   = 50
)

// PendingLine is one product added to an order under composition, with the
// waiter's free-text note.
type PendingLine struct {
	Product models.Product
	Note    string
}

// PendingOrder accumulates products for a new order before submission. It
// lives only in memory on the creation screen; navigating away discards it.
type PendingOrder struct {
	Table int
	Tab   int
	Lines []PendingLine
}

// NewPendingOrder starts an empty order for the given table and tab. Out of
// range selections are clamped into the valid ranges.
func NewPendingOrder(table, tab int) *PendingOrder {
	return &PendingOrder{Table: clamp(table, 1, MaxTable), Tab: clamp(tab, 1, MaxTab)}
}

// Add appends a product with its note to the pending list.
func (p *PendingOrder) Add(product models.Product, note string) {
	p.Lines = append(p.Lines, PendingLine{Product: product, Note: note})
}

// RemoveAt deletes the line at the given position. Positions outside the
// list are ignored.
func (p *PendingOrder) RemoveAt(index int) {
	if index < 0 || index >= len(p.Lines) {
		return
	}
	p.Lines = append(p.Lines[:index], p.Lines[index+1:]...)
}

// Clear discards every accumulated line.
func (p *PendingOrder) Clear() {
	p.Lines = nil
}

// Empty reports whether nothing has been added yet.
func (p *PendingOrder) Empty() bool {
	return len(p.Lines) == 0
}

// Summary renders one numbered line per pending product for display.
func (p *PendingOrder) Summary() []string {
	lines := make([]string, len(p.Lines))
	for i, line := range p.Lines {
		note := line.Note
		if note == "" {
			note = "-"
		}
		lines[i] = fmt.Sprintf("%d. %s - note: %s", i+1, line.Product.Name, note)
	}
	return lines
}

// Submit is a placeholder: the backend has no order-submission protocol
// yet, so the screen only acknowledges the composed order.
// TODO: wire to the real endpoint once the backend defines one.
func (p *PendingOrder) Submit() string {
	return fmt.Sprintf("order for table %d, tab %d with %d item(s) noted; submission not available yet", p.Table, p.Tab, len(p.Lines))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
