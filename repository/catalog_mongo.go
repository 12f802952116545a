package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"quickbite/entity"
)

const (
	menuItemsCollection = "menu_items"
	reviewsCollection   = "reviews"
)

// MongoCatalog backs the catalog gateway with MongoDB collections.
type MongoCatalog struct {
	db *mongo.Database
}

func NewMongoCatalog(db *mongo.Database) *MongoCatalog {
	return &MongoCatalog{db: db}
}

func (m *MongoCatalog) MenuItems(ctx context.Context, restaurantKey string) ([]entity.MenuItem, error) {
	cur, err := m.db.Collection(menuItemsCollection).Find(ctx,
		bson.M{"restaurant_id": restaurantKey},
		options.Find().SetSort(bson.D{{Key: "category", Value: 1}, {Key: "name", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []entity.MenuItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (m *MongoCatalog) Reviews(ctx context.Context, restaurantKey string) ([]entity.Review, error) {
	cur, err := m.db.Collection(reviewsCollection).Find(ctx,
		bson.M{"restaurant_id": restaurantKey},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var reviews []entity.Review
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (m *MongoCatalog) AddReview(ctx context.Context, review entity.Review) error {
	_, err := m.db.Collection(reviewsCollection).InsertOne(ctx, review)
	return err
}
