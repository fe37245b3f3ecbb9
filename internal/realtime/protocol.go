package realtime

import (
	"encoding/json"

	"github.com/ashmitmorwal3/neighbourtalk/internal/models"
)

// Event is the JSON envelope used in both directions on the socket.
type Event struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

const (
	// client -> server
	EventUserJoin       = "user_join"
	EventUpdateLocation = "update_location"

	// server -> client
	EventLocationUpdated = "location_updated"

	// both directions: emitted by the posting client, relayed by the hub
	// to every other connected client
	EventAlertNotification = "alert_notification"
)

type UserJoinPayload struct {
	UserID   string              `json:"userId"`
	UserName string              `json:"userName"`
	Location *models.Coordinates `json:"location"`
}

type UpdateLocationPayload struct {
	UserID   string              `json:"userId"`
	Location *models.Coordinates `json:"location"`
}
