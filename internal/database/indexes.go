package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureUserIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("users").Indexes()

	emailIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetName("email_unique").
			SetUnique(true),
	}

	log.Println("EnsureUserIndexes: creating email_unique index")
	_, err := indexes.CreateOne(ctx, emailIndex)
	if err != nil {
		log.Println("EnsureUserIndexes: email index error:", err)
		return err
	}
	log.Println("EnsureUserIndexes: email_unique index created")
	return nil
}

func EnsureAlertIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("alerts").Indexes()

	// Owner listing and the recency sort both go through this one.
	ownerIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "user", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("user_createdAt_index"),
	}

	log.Println("EnsureAlertIndexes: creating user_createdAt_index index")
	_, err := indexes.CreateOne(ctx, ownerIndex)
	if err != nil {
		log.Println("EnsureAlertIndexes: user index error:", err)
		return err
	}
	log.Println("EnsureAlertIndexes: user_createdAt_index index created")
	return nil
}
