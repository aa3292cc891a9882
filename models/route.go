package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Route is a route record used to populate filter dropdowns and resolve
// route identity. No aggregation logic depends on it.
type Route struct {
	ID         primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	RouteNo    string             `json:"routeNo" bson:"routeNo"`
	Name       string             `json:"name" bson:"name"`
	Capacity   int                `json:"capacity" bson:"capacity"`
	SchoolName string             `json:"schoolName,omitempty" bson:"schoolName,omitempty"`
	Active     bool               `json:"active" bson:"active"`
	CreatedAt  time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt  time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
