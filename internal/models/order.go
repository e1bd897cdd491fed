package models

// StatusRecord describes the workflow stage attached to an order item as the
// backend reports it: a code plus a human-readable label.
type StatusRecord struct {
	ID          int    `json:"id"`
	Status      string `json:"status"`
	Description string `json:"descricao"`
}

// StatusControl is the record the backend transitions when an item advances
// through the kitchen pipeline. Its ID, not the item's, addresses
// PUT /controle-status-item-pedido/{id}.
type StatusControl struct {
	ID     int          `json:"id"`
	Status StatusRecord `json:"status"`
}

// OrderItem represents a single product line within an order.
type OrderItem struct {
	ID            int           `json:"id"`
	Note          string        `json:"observacao"`
	Product       Product       `json:"produto"`
	StatusControl StatusControl `json:"controleStatusItemPedidoDtoDetalhar"`
}

// CurrentStatus returns the item's normalized workflow status.
func (i OrderItem) CurrentStatus() Status {
	return Normalize(i.StatusControl.Status.Description)
}

// Order represents a customer order with its nested item lines.
type Order struct {
	ID    int         `json:"id"`
	Table int         `json:"mesa"`
	Tab   int         `json:"comanda"`
	Items []OrderItem `json:"itensPedido"`
}

// StatusUpdate is the body of a status-transition request.
type StatusUpdate struct {
	Description string `json:"descricao"`
	Status      Status `json:"status"`
}
