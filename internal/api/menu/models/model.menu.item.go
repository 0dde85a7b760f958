// Package models - model món ăn (MenuItem) thuộc domain menu.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuItem định nghĩa món ăn trong menu.
// Price là giá hiện tại, được snapshot vào đơn hàng tại thời điểm tạo đơn —
// đổi giá sau đó không ảnh hưởng đến các đơn đã tạo.
type MenuItem struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	RestaurantID primitive.ObjectID `json:"restaurantId" bson:"restaurantId" index:"single"`
	CategoryID   primitive.ObjectID `json:"categoryId" bson:"categoryId" index:"single"`
	Name         string             `json:"name" bson:"name"`
	Description  string             `json:"description,omitempty" bson:"description,omitempty"`
	Price        float64            `json:"price" bson:"price"`
	Image        string             `json:"image,omitempty" bson:"image,omitempty"`
	IsAvailable  bool               `json:"isAvailable" bson:"isAvailable"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}
