package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/ashmitmorwal3/neighbourtalk/internal/models"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

type UpdateProfileRequest struct {
	Name               *string             `json:"name"`
	Bio                *string             `json:"bio"`
	Address            *string             `json:"address"`
	PhoneNumber        *string             `json:"phoneNumber"`
	Avatar             *string             `json:"avatar"`
	DefaultLocation    *models.Coordinates `json:"defaultLocation"`
	NotificationRadius *float64            `json:"notificationRadius"`
}

// POST /api/auth/register
func Register(db *mongo.Database, jwtSecret string, tokenTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))
		name := strings.TrimSpace(req.Name)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		count, err := db.Collection("users").CountDocuments(ctx, bson.M{"email": email})
		if err != nil {
			log.Println("[AUTH] [ERROR] register db error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		if count > 0 {
			log.Println("[AUTH] [ERROR] register email exists:", email)
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Println("[AUTH] [ERROR] register password hash failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "password hash failed"})
			return
		}

		now := time.Now()
		user := models.User{
			Name:               name,
			Email:              email,
			PasswordHash:       string(hash),
			NotificationRadius: models.DefaultAlertRadiusKm,
			CreatedAt:          now,
			UpdatedAt:          now,
		}

		res, err := db.Collection("users").InsertOne(ctx, user)
		if err != nil {
			log.Println("[AUTH] [ERROR] register insert failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		id, _ := res.InsertedID.(primitive.ObjectID)
		token, err := issueUserToken(id, email, jwtSecret, tokenTTL)
		if err != nil {
			log.Println("[AUTH] [ERROR] register token generation failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
			return
		}
		setAuthCookie(c, token, tokenTTL)

		log.Println("[AUTH] [INFO] user registered:", email)
		c.JSON(http.StatusCreated, gin.H{
			"token": token,
			"user": gin.H{
				"id":    id.Hex(),
				"name":  name,
				"email": email,
			},
		})
	}
}

// POST /api/auth/login
func Login(db *mongo.Database, jwtSecret string, tokenTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))
		if email == "" || strings.TrimSpace(req.Password) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var user models.User
		if err := db.Collection("users").FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
			if err != mongo.ErrNoDocuments {
				log.Println("[AUTH] [ERROR] login user lookup failed:", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
				return
			}
			log.Println("[AUTH] [ERROR] login unknown email")
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			log.Println("[AUTH] [ERROR] login invalid credentials for:", email)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
			return
		}

		token, err := issueUserToken(user.ID, user.Email, jwtSecret, tokenTTL)
		if err != nil {
			log.Println("[AUTH] [ERROR] login token generation failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
			return
		}
		setAuthCookie(c, token, tokenTTL)

		log.Println("[AUTH] [INFO] user login succeeded:", user.Email)
		c.JSON(http.StatusOK, gin.H{
			"token": token,
			"user":  userResponse(user),
		})
	}
}

// GET /api/auth/profile
func GetProfile(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := c.Get("userId")
		if !ok {
			log.Println("[AUTH] [ERROR] userId missing in context")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var user models.User
		if err := db.Collection("users").FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
			log.Println("[AUTH] [ERROR] get profile failed:", err)
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}

		c.JSON(http.StatusOK, userResponse(user))
	}
}

// PUT /api/auth/profile
func UpdateProfile(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDValue, ok := c.Get("userId")
		if !ok {
			log.Println("[AUTH] [ERROR] userId missing in context")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		userID := userIDValue.(primitive.ObjectID)

		var req UpdateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Println("[AUTH] [ERROR] invalid profile body:", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		update := profileUpdateDocument(req)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var updated models.User
		err := db.Collection("users").FindOneAndUpdate(
			ctx,
			bson.M{"_id": userID},
			bson.M{"$set": update},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&updated)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
				return
			}
			log.Println("[AUTH] [ERROR] update profile failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		log.Println("[AUTH] [INFO] profile updated:", updated.Email)
		c.JSON(http.StatusOK, userResponse(updated))
	}
}

// PUT /api/auth/change-password
func ChangePassword(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDValue, ok := c.Get("userId")
		if !ok {
			log.Println("[AUTH] [ERROR] userId missing in context")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		userID := userIDValue.(primitive.ObjectID)

		var req ChangePasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var user models.User
		if err := db.Collection("users").FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
			log.Println("[AUTH] [ERROR] change password user lookup failed:", err)
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
			log.Println("[AUTH] [ERROR] change password current mismatch for:", user.Email)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Current password is incorrect"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Println("[AUTH] [ERROR] change password hash failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "password hash failed"})
			return
		}

		_, err = db.Collection("users").UpdateByID(ctx, userID, bson.M{
			"$set": bson.M{
				"passwordHash": string(hash),
				"updatedAt":    time.Now(),
			},
		})
		if err != nil {
			log.Println("[AUTH] [ERROR] change password update failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		log.Println("[AUTH] [INFO] password changed:", user.Email)
		c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
	}
}

// profileUpdateDocument builds the $set document from the fields actually
// present in the request. updatedAt is always stamped.
func profileUpdateDocument(req UpdateProfileRequest) bson.M {
	update := bson.M{"updatedAt": time.Now()}
	if req.Name != nil {
		update["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Bio != nil {
		update["bio"] = strings.TrimSpace(*req.Bio)
	}
	if req.Address != nil {
		update["address"] = strings.TrimSpace(*req.Address)
	}
	if req.PhoneNumber != nil {
		update["phoneNumber"] = strings.TrimSpace(*req.PhoneNumber)
	}
	if req.Avatar != nil {
		update["avatar"] = strings.TrimSpace(*req.Avatar)
	}
	if req.DefaultLocation != nil {
		update["defaultLocation"] = req.DefaultLocation
	}
	if req.NotificationRadius != nil && *req.NotificationRadius > 0 {
		update["notificationRadius"] = *req.NotificationRadius
	}
	return update
}

func userResponse(user models.User) gin.H {
	return gin.H{
		"id":                 user.ID.Hex(),
		"name":               user.Name,
		"email":              user.Email,
		"avatar":             user.Avatar,
		"bio":                user.Bio,
		"address":            user.Address,
		"phoneNumber":        user.PhoneNumber,
		"defaultLocation":    user.DefaultLocation,
		"notificationRadius": user.NotificationRadius,
		"createdAt":          user.CreatedAt,
	}
}

func issueUserToken(userID primitive.ObjectID, email, secret string, tokenTTL time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID.Hex(),
		"email":  email,
		"exp":    time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func setAuthCookie(c *gin.Context, token string, tokenTTL time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("token", token, int(tokenTTL.Seconds()), "/", "", false, true)
}
