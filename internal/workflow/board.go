// Package workflow holds the kitchen pipeline logic the screens share:
// flattening fetched orders into item lists, filtering by workflow status,
// joining parent-order fields onto items for the delivery view, and the
// status transition table.
package workflow

import "waiter/internal/models"

// FilterItems flattens every order's item lines and keeps those whose
// normalized status equals the filter. The kitchen board drives this with
// the operator's A_FAZER/FAZENDO toggle.
func FilterItems(orders []models.Order, status models.Status) []models.OrderItem {
	var items []models.OrderItem
	for _, order := range orders {
		for _, item := range order.Items {
			if item.CurrentStatus() == status {
				items = append(items, item)
			}
		}
	}
	return items
}

// DeliveryItem is an order item annotated with its parent order's table
// number, which the item itself does not carry.
type DeliveryItem struct {
	models.OrderItem
	Table int
}

// DeliveryItems flattens the fetched orders into the waiter's delivery
// list: only items that are ready, each joined in memory with the table it
// belongs to.
func DeliveryItems(orders []models.Order) []DeliveryItem {
	var items []DeliveryItem
	for _, order := range orders {
		for _, item := range order.Items {
			if item.CurrentStatus() == models.StatusReady {
				items = append(items, DeliveryItem{OrderItem: item, Table: order.Table})
			}
		}
	}
	return items
}
