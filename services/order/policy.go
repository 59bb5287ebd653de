package order

import "campora/models"

// CanMutateItem reports whether the actor may change the status of the
// given line item. Admins touch everything; providers only their own
// items. A provider hitting a foreign item is not an error, the item is
// simply left alone by the mutation.
func CanMutateItem(actor models.Actor, item models.LineItem) bool {
	switch actor.Role {
	case models.RoleAdmin:
		return true
	case models.RoleProvider:
		return item.ProviderID == actor.ID
	default:
		return false
	}
}

// CanChangeStatus reports whether the actor's role may issue status
// mutations at all. Customers create orders and rate them; they never
// touch item statuses.
func CanChangeStatus(actor models.Actor) bool {
	return actor.Role == models.RoleAdmin || actor.Role == models.RoleProvider
}
