package store

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ashmitmorwal3/neighbourtalk/internal/models"
)

// AlertCache is the optional read-through cache in front of ListAll.
// A miss is (nil, nil); errors are treated the same as misses.
type AlertCache interface {
	GetAlerts(ctx context.Context) ([]models.Alert, error)
	SetAlerts(ctx context.Context, alerts []models.Alert) error
	Invalidate(ctx context.Context) error
}

// AlertStore persists alerts in the "alerts" collection. Alerts have no
// update operation: insert, delete and the two listings are the whole
// surface.
type AlertStore struct {
	db    *mongo.Database
	cache AlertCache
}

func NewAlertStore(db *mongo.Database, cache AlertCache) *AlertStore {
	return &AlertStore{db: db, cache: cache}
}

func (s *AlertStore) collection() *mongo.Collection {
	return s.db.Collection("alerts")
}

// Insert assigns the id and createdAt timestamp and persists the alert.
func (s *AlertStore) Insert(ctx context.Context, alert *models.Alert) error {
	alert.CreatedAt = time.Now()

	res, err := s.collection().InsertOne(ctx, alert)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		alert.ID = id
	}

	s.invalidate(ctx)
	return nil
}

// DeleteByID removes one alert. It reports false when no document matched.
func (s *AlertStore) DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := s.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	if res.DeletedCount == 0 {
		return false, nil
	}

	s.invalidate(ctx)
	return true, nil
}

// FindByID loads a single alert, mongo.ErrNoDocuments when absent.
func (s *AlertStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Alert, error) {
	var alert models.Alert
	if err := s.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&alert); err != nil {
		return nil, err
	}
	return &alert, nil
}

// ListAll returns every alert, most recent first. When a cache is
// configured the cached listing is served and refreshed on miss.
func (s *AlertStore) ListAll(ctx context.Context) ([]models.Alert, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetAlerts(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	alerts, err := s.find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetAlerts(ctx, alerts); err != nil {
			log.Println("[STORE] [ERROR] alert cache set failed:", err)
		}
	}
	return alerts, nil
}

// ListByOwner returns the owner's alerts, most recent first.
func (s *AlertStore) ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.Alert, error) {
	return s.find(ctx, bson.M{"user": owner})
}

func (s *AlertStore) find(ctx context.Context, filter bson.M) ([]models.Alert, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := s.collection().Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	alerts := make([]models.Alert, 0)
	if err := cursor.All(ctx, &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

func (s *AlertStore) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Println("[STORE] [ERROR] alert cache invalidate failed:", err)
	}
}
