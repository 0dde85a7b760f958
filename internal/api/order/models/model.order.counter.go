// Package models - bộ đếm số thứ tự đơn (OrderCounter).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderCounter là bộ đếm atomic cấp số thứ tự theo nhà hàng và ngày.
// Key có dạng "order_queue:{restaurantId}:{YYYYMMDD}".
type OrderCounter struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Key       string             `json:"key" bson:"key" index:"unique"`
	Seq       int64              `json:"seq" bson:"seq"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
