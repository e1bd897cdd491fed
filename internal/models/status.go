package models

import "strings"

// Status represents a kitchen-workflow stage of an order item. The backend
// carries statuses as free-form display labels, so codes are always compared
// through Normalize.
type Status string

const (
	StatusToDo      Status = "A_FAZER"
	StatusDoing     Status = "FAZENDO"
	StatusReady     Status = "PRONTO"
	StatusDelivered Status = "ENTREGUE"
)

// Normalize converts a status label into its canonical code form: trimmed,
// uppercased, with every whitespace run collapsed to a single underscore.
// "A Fazer" and "A_FAZER" normalize to the same code.
func Normalize(label string) Status {
	return Status(strings.ToUpper(strings.Join(strings.Fields(label), "_")))
}

// Matches reports whether a raw status label denotes this status.
func (s Status) Matches(label string) bool {
	return Normalize(label) == s
}
