package workflow

import (
	"fmt"

	"waiter/internal/models"
)

// kitchenTransitions maps an item's current status code to the status the
// kitchen board advances it to. Keyed by code, never by display label, so a
// relabelled status on the backend cannot reroute an item.
var kitchenTransitions = map[models.Status]models.Status{
	models.StatusToDo:  models.StatusDoing,
	models.StatusDoing: models.StatusReady,
}

// DeliveryTarget is the status the waiter's advance action always requests,
// regardless of the item's prior status.
const DeliveryTarget = models.StatusDelivered

// NextKitchenStatus returns the status a kitchen-board advance should
// request for an item currently in the given status. Statuses outside the
// kitchen's two-step pipeline are an error rather than a silent jump to
// ready.
func NextKitchenStatus(current models.Status) (models.Status, error) {
	next, ok := kitchenTransitions[current]
	if !ok {
		return "", fmt.Errorf("no kitchen transition from status %q", current)
	}
	return next, nil
}
