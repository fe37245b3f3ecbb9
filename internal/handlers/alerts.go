package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ashmitmorwal3/neighbourtalk/internal/models"
	"github.com/ashmitmorwal3/neighbourtalk/internal/store"
)

type CreateAlertRequest struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description" binding:"required"`
	Severity    string              `json:"severity" binding:"omitempty,oneof=Low Medium High"`
	Location    string              `json:"location" binding:"required"`
	Coordinates *models.Coordinates `json:"coordinates" binding:"required"`
	Radius      float64             `json:"radius" binding:"omitempty,gt=0"`
}

// GET /api/alerts
func GetAlerts(alerts *store.AlertStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/alerts"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		list, err := alerts.ListAll(ctx)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Server error")
			return
		}

		log.Printf("[%s] returning %d alerts", route, len(list))
		c.JSON(http.StatusOK, list)
	}
}

// GET /api/alerts/nearby?lat=&lng=&radius=
func GetNearbyAlerts(alerts *store.AlertStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/alerts/nearby"
		defer handlePanic(c, route)

		center, radiusKm, err := parseNearbyQuery(c.Query("lat"), c.Query("lng"), c.Query("radius"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		list, err := alerts.ListAll(ctx)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Server error")
			return
		}

		nearby := filterNearby(list, center, radiusKm)
		log.Printf("[%s] %d of %d alerts within %.1f km", route, len(nearby), len(list), radiusKm)
		c.JSON(http.StatusOK, nearby)
	}
}

// POST /api/alerts
func CreateAlert(db *mongo.Database, alerts *store.AlertStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/alerts"
		defer handlePanic(c, route)

		userIDValue, ok := c.Get("userId")
		if !ok {
			respondWithError(c, http.StatusUnauthorized, route, "User not authenticated")
			return
		}
		userID := userIDValue.(primitive.ObjectID)

		var req CreateAlertRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Printf("[%s] invalid payload: %v", route, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var user models.User
		if err := db.Collection("users").FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
			respondWithError(c, http.StatusNotFound, route, "User not found")
			return
		}

		alert := buildAlert(req, user)
		if err := alerts.Insert(ctx, &alert); err != nil {
			log.Printf("[%s] insert failed: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "Server error")
			return
		}

		log.Printf("[%s] alert created: %s by %s", route, alert.ID.Hex(), alert.UserName)
		c.JSON(http.StatusCreated, alert)
	}
}

// GET /api/alerts/my-alerts
func GetMyAlerts(alerts *store.AlertStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/alerts/my-alerts"
		defer handlePanic(c, route)

		userIDValue, ok := c.Get("userId")
		if !ok {
			respondWithError(c, http.StatusUnauthorized, route, "User not authenticated")
			return
		}
		userID := userIDValue.(primitive.ObjectID)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		list, err := alerts.ListByOwner(ctx, userID)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Server error")
			return
		}

		c.JSON(http.StatusOK, list)
	}
}

// DELETE /api/alerts/:id
func DeleteAlert(alerts *store.AlertStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /api/alerts/:id"
		defer handlePanic(c, route)

		userIDValue, ok := c.Get("userId")
		if !ok {
			respondWithError(c, http.StatusUnauthorized, route, "User not authenticated")
			return
		}
		userID := userIDValue.(primitive.ObjectID)

		alertID, err := primitive.ObjectIDFromHex(strings.TrimSpace(c.Param("id")))
		if err != nil {
			respondWithError(c, http.StatusNotFound, route, "Alert not found")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		alert, err := alerts.FindByID(ctx, alertID)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				respondWithError(c, http.StatusNotFound, route, "Alert not found")
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, "Server error")
			return
		}

		if alert.UserID != userID {
			respondWithError(c, http.StatusForbidden, route, "Not authorized to delete this alert")
			return
		}

		deleted, err := alerts.DeleteByID(ctx, alertID)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Server error")
			return
		}
		if !deleted {
			respondWithError(c, http.StatusNotFound, route, "Alert not found")
			return
		}

		log.Printf("[%s] alert deleted: %s", route, alertID.Hex())
		c.JSON(http.StatusOK, gin.H{"message": "Alert deleted"})
	}
}

// buildAlert constructs the alert persisted for an authenticated author.
// Owner identity always comes from the stored profile; anything the client
// put in owner-shaped fields is ignored.
func buildAlert(req CreateAlertRequest, user models.User) models.Alert {
	severity := strings.TrimSpace(req.Severity)
	if severity == "" {
		severity = models.SeverityMedium
	}

	radius := req.Radius
	if radius <= 0 {
		radius = models.DefaultAlertRadiusKm
	}

	return models.Alert{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Severity:    severity,
		Location:    strings.TrimSpace(req.Location),
		Coordinates: req.Coordinates,
		Radius:      radius,
		UserID:      user.ID,
		UserName:    user.Name,
		UserContact: user.PhoneNumber,
	}
}
