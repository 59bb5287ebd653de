package models

import "time"

// Rating is a post-completion review of a whole order. One rating per
// order, independent of how many providers contributed to it.
type Rating struct {
	ID         string    `bson:"id" json:"id"`
	BookingID  string    `bson:"booking_id" json:"bookingId"` // Order being rated
	CustomerID string    `bson:"customer_id" json:"customerId"`
	Stars      int       `bson:"stars" json:"stars"` // 1..5
	Comment    string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
}
