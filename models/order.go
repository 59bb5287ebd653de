package models

import "time"

// LineItemStatus tracks how far a single line item has progressed.
type LineItemStatus string

const (
	ItemPending   LineItemStatus = "pending"
	ItemConfirmed LineItemStatus = "confirmed"
	ItemReady     LineItemStatus = "ready"
	ItemCompleted LineItemStatus = "completed"
	ItemCancelled LineItemStatus = "cancelled"
)

// Valid reports whether s is one of the known line item statuses.
func (s LineItemStatus) Valid() bool {
	switch s {
	case ItemPending, ItemConfirmed, ItemReady, ItemCompleted, ItemCancelled:
		return true
	}
	return false
}

// LineItem is one service quantity within an order, fulfilled by exactly
// one provider. Everything except Status is a snapshot taken at checkout
// and never mutated afterwards.
type LineItem struct {
	ServiceID    string         `bson:"service_id" json:"serviceId"`       // Service or package being booked
	ServiceName  string         `bson:"service_name" json:"serviceName"`   // Display name captured at checkout
	ImageURL     string         `bson:"image_url" json:"imageUrl"`         // Display image captured at checkout
	ServicePrice float64        `bson:"service_price" json:"servicePrice"` // Unit price snapshot
	Quantity     int            `bson:"quantity" json:"quantity"`
	ProviderID   string         `bson:"provider_id" json:"providerId"` // Provider who fulfils this item
	Status       LineItemStatus `bson:"status" json:"status"`          // Only field that mutates post-checkout
}

// GeoPoint is a plain lat/lng pair for the fulfillment location.
type GeoPoint struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// Order is a single customer checkout, possibly spanning several
// independent providers. Status is always derived from the item
// statuses; it is never set independently except for the admin
// cancellation override.
type Order struct {
	ID                 string         `bson:"id" json:"id"`                              // Store-generated identifier
	OrderGroupID       int            `bson:"order_group_id" json:"orderGroupId"`        // 8-digit human-facing lookup id
	CustomerID         string         `bson:"customer_id" json:"customerId"`             // Owner, set once at creation
	CustomerName       string         `bson:"customer_name" json:"customerName"`         // Display copy at order time
	Items              []LineItem     `bson:"items" json:"items"`                        // Cart order preserved; count fixed after checkout
	BookingDate        time.Time      `bson:"booking_date" json:"bookingDate"`           // Requested fulfillment time
	Location           GeoPoint       `bson:"location" json:"location"`
	Status             LineItemStatus `bson:"status" json:"status"`                      // Derived order-level status
	TotalPrice         float64        `bson:"total_price" json:"totalPrice"`             // Checkout snapshot, never recomputed
	TotalItems         int            `bson:"total_items" json:"totalItems"`             // Checkout snapshot
	Rated              bool           `bson:"rated" json:"rated"`                        // One rating per order
	CancellationReason string         `bson:"cancellation_reason,omitempty" json:"cancellationReason,omitempty"`
	CreatedAt          time.Time      `bson:"created_at" json:"createdAt"`
}
