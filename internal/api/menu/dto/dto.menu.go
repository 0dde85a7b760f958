// Package menudto - cấu trúc đầu vào của domain menu.
package menudto

// CategoryCreateInput đầu vào tạo danh mục món.
type CategoryCreateInput struct {
	RestaurantID string `json:"restaurantId" bson:"restaurantId" validate:"required"`
	Name         string `json:"name" bson:"name" validate:"required,no_xss"`
	Description  string `json:"description" bson:"description"`
}

// CategoryUpdateInput đầu vào cập nhật danh mục món.
type CategoryUpdateInput struct {
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
}

// MenuItemCreateInput đầu vào tạo món ăn.
type MenuItemCreateInput struct {
	RestaurantID string  `json:"restaurantId" bson:"restaurantId" validate:"required"`
	CategoryID   string  `json:"categoryId" bson:"categoryId" validate:"required"`
	Name         string  `json:"name" bson:"name" validate:"required,no_xss"`
	Description  string  `json:"description" bson:"description"`
	Price        float64 `json:"price" bson:"price" validate:"required,gt=0"`
	Image        string  `json:"image" bson:"image"`
	IsAvailable  *bool   `json:"isAvailable" bson:"isAvailable"`
}

// MenuItemUpdateInput đầu vào cập nhật món ăn.
type MenuItemUpdateInput struct {
	CategoryID  string   `json:"categoryId" bson:"categoryId"`
	Name        string   `json:"name" bson:"name"`
	Description string   `json:"description" bson:"description"`
	Price       *float64 `json:"price" bson:"price" validate:"omitempty,gt=0"`
	Image       string   `json:"image" bson:"image"`
	IsAvailable *bool    `json:"isAvailable" bson:"isAvailable"`
}
