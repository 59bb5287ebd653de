package order

import "campora/models"

// DeriveOrderStatus computes the customer-facing order status from the
// current line item statuses. lastWritten is the status value applied by
// the mutation that triggered recomputation; it is only consulted when
// the items are in a mixed state that meets none of the thresholds.
//
// The fallback to lastWritten is deliberate: when one item is pending
// and another confirmed there is no meaningful aggregate, and the order
// reflects the action just taken rather than a "lowest common" value.
// Product has flagged this for review but the behaviour is contractual.
func DeriveOrderStatus(items []models.LineItem, lastWritten models.LineItemStatus) models.LineItemStatus {
	if len(items) == 0 {
		return lastWritten
	}

	allCancelled := true
	allCompleted := true
	allAtLeastReady := true
	allAtLeastConfirmed := true

	for _, item := range items {
		if item.Status != models.ItemCancelled {
			allCancelled = false
		}
		if item.Status != models.ItemCompleted {
			allCompleted = false
		}
		if item.Status != models.ItemReady && item.Status != models.ItemCompleted {
			allAtLeastReady = false
		}
		if item.Status != models.ItemConfirmed && item.Status != models.ItemReady && item.Status != models.ItemCompleted {
			allAtLeastConfirmed = false
		}
	}

	switch {
	case allCancelled:
		return models.ItemCancelled
	case allCompleted:
		return models.ItemCompleted
	case allAtLeastReady:
		return models.ItemReady
	case allAtLeastConfirmed:
		return models.ItemConfirmed
	default:
		return lastWritten
	}
}
