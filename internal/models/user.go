package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Coordinates is a plain lat/lng pair. Alerts and user default
// locations share it; a nil pointer means "no known location".
type Coordinates struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// User represents the application user account.
type User struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name               string             `bson:"name" json:"name"`
	Email              string             `bson:"email" json:"email"`
	PasswordHash       string             `bson:"passwordHash" json:"-"`
	Avatar             string             `bson:"avatar,omitempty" json:"avatar"`
	Bio                string             `bson:"bio,omitempty" json:"bio"`
	Address            string             `bson:"address,omitempty" json:"address"`
	PhoneNumber        string             `bson:"phoneNumber,omitempty" json:"phoneNumber"`
	DefaultLocation    *Coordinates       `bson:"defaultLocation,omitempty" json:"defaultLocation"`
	NotificationRadius float64            `bson:"notificationRadius" json:"notificationRadius"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}
