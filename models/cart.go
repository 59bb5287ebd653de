package models

import "time"

// CartEntry is one service selection in a customer's cart. It carries
// the denormalized display data that the checkout snapshots into a
// LineItem.
type CartEntry struct {
	ServiceID    string  `json:"serviceId"`
	ServiceName  string  `json:"serviceName"`
	ServicePrice float64 `json:"servicePrice"`
	Quantity     int     `json:"quantity"`
	ImageURL     string  `json:"imageUrl"`
	ProviderID   string  `json:"providerId"`
}

// Cart is the redis-cached working cart for one customer.
type Cart struct {
	CustomerID string      `json:"customerId"`
	Entries    []CartEntry `json:"entries"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

// CheckoutRequest carries the customer's selections for turning a cart
// into an order. BookingDate and Location are both required.
type CheckoutRequest struct {
	BookingDate  *time.Time `json:"bookingDate"`
	Location     *GeoPoint  `json:"location"`
	CustomerName string     `json:"customerName"`
}
