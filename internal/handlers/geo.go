package handlers

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/ashmitmorwal3/neighbourtalk/internal/models"
)

var (
	errMissingCoordinates = errors.New("Location coordinates required")
	errInvalidCoordinates = errors.New("Invalid coordinates or radius")
)

// minDistanceKm floors the computed distance so clients never render
// "0.0 km away" for an alert on top of the user.
const minDistanceKm = 0.1

const earthRadiusKm = 6371

// distanceKm is the Haversine great-circle distance between two points,
// floored at minDistanceKm.
func distanceKm(a, b models.Coordinates) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Lat*math.Pi/180)*math.Cos(b.Lat*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	distance := earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return math.Max(distance, minDistanceKm)
}

// withinRadius reports whether coords falls inside the circle around
// center. Alerts without coordinates are infinitely far away.
func withinRadius(center models.Coordinates, coords *models.Coordinates, radiusKm float64) bool {
	if coords == nil {
		return false
	}
	return distanceKm(center, *coords) <= radiusKm
}

// filterNearby keeps the alerts within radiusKm of center. The input's
// recency ordering is preserved; no re-sort by distance happens here.
func filterNearby(alerts []models.Alert, center models.Coordinates, radiusKm float64) []models.Alert {
	nearby := make([]models.Alert, 0)
	for _, alert := range alerts {
		if withinRadius(center, alert.Coordinates, radiusKm) {
			nearby = append(nearby, alert)
		}
	}
	return nearby
}

// parseNearbyQuery validates the lat/lng/radius query parameters. Both
// coordinates are required; radius falls back to the default advisory
// range when omitted.
func parseNearbyQuery(lat, lng, radius string) (models.Coordinates, float64, error) {
	lat = strings.TrimSpace(lat)
	lng = strings.TrimSpace(lng)
	if lat == "" || lng == "" {
		return models.Coordinates{}, 0, errMissingCoordinates
	}

	latitude, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return models.Coordinates{}, 0, errInvalidCoordinates
	}
	longitude, err := strconv.ParseFloat(lng, 64)
	if err != nil {
		return models.Coordinates{}, 0, errInvalidCoordinates
	}

	radiusKm := float64(models.DefaultAlertRadiusKm)
	if trimmed := strings.TrimSpace(radius); trimmed != "" {
		radiusKm, err = strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return models.Coordinates{}, 0, errInvalidCoordinates
		}
	}

	return models.Coordinates{Lat: latitude, Lng: longitude}, radiusKm, nil
}
