package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Documents in the external catalog store. RestaurantKey is the derived
// catalog key (see services.DeriveCatalogKey), not the relational row id.

type MenuItem struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RestaurantKey string             `bson:"restaurant_id" json:"restaurant_id"`
	Name          string             `bson:"name" json:"name"`
	Description   string             `bson:"description" json:"description"`
	Price         float64            `bson:"price" json:"price"`
	Category      string             `bson:"category" json:"category"`
}

type Review struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RestaurantKey string             `bson:"restaurant_id" json:"restaurant_id"`
	UserID        uint               `bson:"user_id" json:"user_id"`
	Username      string             `bson:"username" json:"username"`
	Rating        int                `bson:"rating" json:"rating"`
	Text          string             `bson:"text" json:"text"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}
