package domain

import "time"

// ActivityType classifies entries of the activity feed.
type ActivityType string

const (
	ActivitySuccess ActivityType = "success"
	ActivityWarning ActivityType = "warning"
	ActivityError   ActivityType = "error"
	ActivityInfo    ActivityType = "info"
)

// Activity is a single line of the activity feed.
type Activity struct {
	ID          string       `json:"id" bson:"_id"`
	Type        ActivityType `json:"type" bson:"type"`
	Message     string       `json:"message" bson:"message"`
	Timestamp   time.Time    `json:"timestamp" bson:"timestamp"`
	Device      string       `json:"device,omitempty" bson:"device,omitempty"`
	ApartmentID string       `json:"apartment_id,omitempty" bson:"apartment_id,omitempty"`
}

// Notification is a message addressed to a single user.
type Notification struct {
	ID        string    `json:"id" bson:"_id"`
	UserID    string    `json:"user_id" bson:"user_id"`
	Type      string    `json:"type" bson:"type"`
	Title     string    `json:"title" bson:"title"`
	Message   string    `json:"message" bson:"message"`
	Read      bool      `json:"read" bson:"read"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
