package handlers

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ashmitmorwal3/neighbourtalk/internal/models"
)

func TestIssueUserTokenCarriesUserID(t *testing.T) {
	userID := primitive.NewObjectID()

	signed, err := issueUserToken(userID, "ada@example.com", "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("issueUserToken returned error: %v", err)
	}

	token, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("expected valid token, got err=%v", err)
	}

	claims := token.Claims.(jwt.MapClaims)
	if claims["userId"] != userID.Hex() {
		t.Fatalf("expected userId claim %s, got %v", userID.Hex(), claims["userId"])
	}
}

func TestUserResponseOmitsPassword(t *testing.T) {
	user := models.User{
		ID:           primitive.NewObjectID(),
		Name:         "Ada",
		Email:        "ada@example.com",
		PasswordHash: "$2a$10$secret",
	}

	body, err := json.Marshal(userResponse(user))
	if err != nil {
		t.Fatalf("json marshal failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("json unmarshal failed: %v", err)
	}
	for _, key := range []string{"password", "passwordHash"} {
		if _, ok := decoded[key]; ok {
			t.Fatalf("expected %s to be absent from user response", key)
		}
	}
	if decoded["email"] != "ada@example.com" {
		t.Fatalf("expected email in response, got %v", decoded["email"])
	}
}

func TestProfileUpdateDocumentOnlySetsProvidedFields(t *testing.T) {
	name := "Grace"
	radius := 10.0

	update := profileUpdateDocument(UpdateProfileRequest{
		Name:               &name,
		NotificationRadius: &radius,
	})

	if update["name"] != "Grace" {
		t.Fatalf("expected name to be set, got %v", update["name"])
	}
	if update["notificationRadius"] != 10.0 {
		t.Fatalf("expected notificationRadius to be set, got %v", update["notificationRadius"])
	}
	if _, ok := update["bio"]; ok {
		t.Fatal("expected omitted fields to stay out of the update document")
	}
	if _, ok := update["updatedAt"]; !ok {
		t.Fatal("expected updatedAt to always be stamped")
	}
}

func TestProfileUpdateDocumentIgnoresNonPositiveRadius(t *testing.T) {
	radius := -1.0

	update := profileUpdateDocument(UpdateProfileRequest{NotificationRadius: &radius})

	if _, ok := update["notificationRadius"]; ok {
		t.Fatal("expected non-positive radius to be ignored")
	}
}

func TestLowerCamel(t *testing.T) {
	if got := lowerCamel("CurrentPassword"); got != "currentPassword" {
		t.Fatalf("expected currentPassword, got %q", got)
	}
	if got := lowerCamel(""); got != "" {
		t.Fatalf("expected empty string to pass through, got %q", got)
	}
}
