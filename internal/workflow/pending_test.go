package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"waiter/internal/models"
)

func product(name string) models.Product {
	return models.Product{Name: name}
}

func TestNewPendingOrderClampsRanges(t *testing.T) {
	p := NewPendingOrder(0, 99)
	assert.Equal(t, 1, p.Table)
	assert.Equal(t, MaxTab, p.Tab)

	p = NewPendingOrder(4, 12)
	assert.Equal(t, 4, p.Table)
	assert.Equal(t, 12, p.Tab)
}

func TestPendingOrderAddAndRemoveByPosition(t *testing.T) {
	p := NewPendingOrder(1, 1)
	p.Add(product("Feijoada"), "no sausage")
	p.Add(product("Guarana"), "")
	p.Add(product("Pudim"), "two spoons")

	p.RemoveAt(1)

	assert.Len(t, p.Lines, 2)
	assert.Equal(t, "Feijoada", p.Lines[0].Product.Name)
	assert.Equal(t, "Pudim", p.Lines[1].Product.Name)
}

func TestPendingOrderRemoveAtIgnoresOutOfRange(t *testing.T) {
	p := NewPendingOrder(1, 1)
	p.Add(product("Feijoada"), "")

	p.RemoveAt(-1)
	p.RemoveAt(5)

	assert.Len(t, p.Lines, 1)
}

func TestPendingOrderSummary(t *testing.T) {
	p := NewPendingOrder(1, 1)
	p.Add(product("Feijoada"), "no sausage")
	p.Add(product("Guarana"), "")

	lines := p.Summary()

	assert.Equal(t, []string{
		"1. Feijoada - note: no sausage",
		"2. Guarana - note: -",
	}, lines)
}

func TestPendingOrderClear(t *testing.T) {
	p := NewPendingOrder(2, 3)
	p.Add(product("Feijoada"), "")
	assert.False(t, p.Empty())

	p.Clear()
	assert.True(t, p.Empty())
}
