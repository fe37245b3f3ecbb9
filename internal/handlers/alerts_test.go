package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ashmitmorwal3/neighbourtalk/internal/models"
)

func TestBuildAlertTakesOwnerFromProfile(t *testing.T) {
	owner := models.User{
		ID:          primitive.NewObjectID(),
		Name:        "Ada",
		PhoneNumber: "555-0100",
	}
	req := CreateAlertRequest{
		Title:       "Flood",
		Description: "Water rising near the bridge",
		Location:    "Main St bridge",
		Coordinates: &models.Coordinates{Lat: 40.0, Lng: -74.0},
	}

	alert := buildAlert(req, owner)

	if alert.UserID != owner.ID {
		t.Fatalf("expected owner id %s, got %s", owner.ID.Hex(), alert.UserID.Hex())
	}
	if alert.UserName != "Ada" || alert.UserContact != "555-0100" {
		t.Fatalf("expected frozen owner fields, got name=%q contact=%q", alert.UserName, alert.UserContact)
	}
}

func TestBuildAlertAppliesDefaults(t *testing.T) {
	alert := buildAlert(CreateAlertRequest{
		Title:       "  Flood  ",
		Description: "desc",
		Location:    "somewhere",
		Coordinates: &models.Coordinates{Lat: 1, Lng: 2},
	}, models.User{ID: primitive.NewObjectID(), Name: "Ada"})

	if alert.Severity != models.SeverityMedium {
		t.Fatalf("expected default severity Medium, got %q", alert.Severity)
	}
	if alert.Radius != models.DefaultAlertRadiusKm {
		t.Fatalf("expected default radius %v, got %v", float64(models.DefaultAlertRadiusKm), alert.Radius)
	}
	if alert.Title != "Flood" {
		t.Fatalf("expected trimmed title, got %q", alert.Title)
	}
}

func TestBuildAlertKeepsExplicitSeverityAndRadius(t *testing.T) {
	alert := buildAlert(CreateAlertRequest{
		Title:       "Fire",
		Description: "desc",
		Severity:    models.SeverityHigh,
		Location:    "somewhere",
		Coordinates: &models.Coordinates{Lat: 1, Lng: 2},
		Radius:      12,
	}, models.User{ID: primitive.NewObjectID(), Name: "Ada"})

	if alert.Severity != models.SeverityHigh || alert.Radius != 12 {
		t.Fatalf("expected severity High radius 12, got %q %v", alert.Severity, alert.Radius)
	}
}

// The validation path runs before the store is touched, so a nil store is
// enough to exercise the 400 responses.
func nearbyTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/alerts/nearby", GetNearbyAlerts(nil))
	return r
}

func TestGetNearbyAlertsRequiresCoordinates(t *testing.T) {
	r := nearbyTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/alerts/nearby", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing coordinates, got %d", w.Code)
	}
}

func TestGetNearbyAlertsRejectsNonNumericParams(t *testing.T) {
	r := nearbyTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/alerts/nearby?lat=abc&lng=-74.0", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric lat, got %d", w.Code)
	}
}
