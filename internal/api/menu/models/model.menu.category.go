// Package models - model danh mục món (MenuCategory) thuộc domain menu.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuCategory định nghĩa danh mục món ăn của một nhà hàng.
// Thứ tự hiển thị do danh sách categories trên Restaurant quyết định.
type MenuCategory struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	RestaurantID primitive.ObjectID `json:"restaurantId" bson:"restaurantId" index:"single"`
	Name         string             `json:"name" bson:"name"`
	Description  string             `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}
