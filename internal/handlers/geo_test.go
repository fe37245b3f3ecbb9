package handlers

import (
	"testing"

	"github.com/ashmitmorwal3/neighbourtalk/internal/models"
)

func TestDistanceKmIsSymmetric(t *testing.T) {
	a := models.Coordinates{Lat: 40.0, Lng: -74.0}
	b := models.Coordinates{Lat: 41.0, Lng: -75.0}

	if distanceKm(a, b) != distanceKm(b, a) {
		t.Fatalf("expected symmetric distance, got %v and %v", distanceKm(a, b), distanceKm(b, a))
	}
}

func TestDistanceKmFloorsAtMinimum(t *testing.T) {
	a := models.Coordinates{Lat: 40.0, Lng: -74.0}

	if got := distanceKm(a, a); got != minDistanceKm {
		t.Fatalf("expected identical points to report %v km, got %v", minDistanceKm, got)
	}
}

func TestDistanceKmNearbyAndFarPoints(t *testing.T) {
	alert := models.Coordinates{Lat: 40.0, Lng: -74.0}

	near := distanceKm(models.Coordinates{Lat: 40.001, Lng: -74.001}, alert)
	if near < 0.1 || near > 0.2 {
		t.Fatalf("expected ~0.14 km for nearby point, got %v", near)
	}

	far := distanceKm(models.Coordinates{Lat: 41.0, Lng: -75.0}, alert)
	if far < 100 || far > 200 {
		t.Fatalf("expected ~140 km for far point, got %v", far)
	}
}

func TestWithinRadiusExcludesMissingCoordinates(t *testing.T) {
	center := models.Coordinates{Lat: 40.0, Lng: -74.0}

	if withinRadius(center, nil, 1000000) {
		t.Fatal("expected alert without coordinates to be excluded at any radius")
	}
}

func TestFilterNearbyKeepsOrderAndRadius(t *testing.T) {
	center := models.Coordinates{Lat: 40.0, Lng: -74.0}
	alerts := []models.Alert{
		{Title: "Flood", Coordinates: &models.Coordinates{Lat: 40.001, Lng: -74.001}},
		{Title: "No coords", Coordinates: nil},
		{Title: "Far away", Coordinates: &models.Coordinates{Lat: 41.0, Lng: -75.0}},
		{Title: "On the spot", Coordinates: &models.Coordinates{Lat: 40.0, Lng: -74.0}},
	}

	nearby := filterNearby(alerts, center, 5)

	if len(nearby) != 2 {
		t.Fatalf("expected 2 nearby alerts, got %d", len(nearby))
	}
	if nearby[0].Title != "Flood" || nearby[1].Title != "On the spot" {
		t.Fatalf("expected input order to be preserved, got %q then %q", nearby[0].Title, nearby[1].Title)
	}
}

func TestParseNearbyQueryMissingCoordinates(t *testing.T) {
	tests := []struct {
		lat string
		lng string
	}{
		{"", ""},
		{"40.0", ""},
		{"", "-74.0"},
	}
	for _, tc := range tests {
		if _, _, err := parseNearbyQuery(tc.lat, tc.lng, ""); err != errMissingCoordinates {
			t.Fatalf("expected missing-coordinates error for lat=%q lng=%q, got %v", tc.lat, tc.lng, err)
		}
	}
}

func TestParseNearbyQueryRejectsNonNumericInput(t *testing.T) {
	tests := []struct {
		lat    string
		lng    string
		radius string
	}{
		{"north", "-74.0", ""},
		{"40.0", "west", ""},
		{"40.0", "-74.0", "wide"},
	}
	for _, tc := range tests {
		if _, _, err := parseNearbyQuery(tc.lat, tc.lng, tc.radius); err != errInvalidCoordinates {
			t.Fatalf("expected invalid-coordinates error for %+v, got %v", tc, err)
		}
	}
}

func TestParseNearbyQueryDefaultsRadius(t *testing.T) {
	center, radiusKm, err := parseNearbyQuery("40.0", "-74.0", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if center.Lat != 40.0 || center.Lng != -74.0 {
		t.Fatalf("unexpected center: %+v", center)
	}
	if radiusKm != models.DefaultAlertRadiusKm {
		t.Fatalf("expected default radius %v, got %v", float64(models.DefaultAlertRadiusKm), radiusKm)
	}
}
