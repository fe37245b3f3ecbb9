package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	SeverityLow    = "Low"
	SeverityMedium = "Medium"
	SeverityHigh   = "High"
)

// DefaultAlertRadiusKm is the advisory notification range applied when the
// author does not pick one.
const DefaultAlertRadiusKm = 5

// Alert defines a persisted neighborhood alert. Alerts are immutable once
// posted; the only lifecycle operation besides creation is deletion by the
// owner. UserName and UserContact are frozen copies of the author's profile
// taken at creation time.
type Alert struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Severity    string             `bson:"severity" json:"severity"`
	Location    string             `bson:"location" json:"location"`
	Coordinates *Coordinates       `bson:"coordinates" json:"coordinates"`
	Radius      float64            `bson:"radius" json:"radius"`
	UserID      primitive.ObjectID `bson:"user" json:"user"`
	UserName    string             `bson:"userName" json:"userName"`
	UserContact string             `bson:"userContact,omitempty" json:"userContact,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
