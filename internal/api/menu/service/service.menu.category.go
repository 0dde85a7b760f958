// Package menusvc - service danh mục món và món ăn.
package menusvc

import (
	"context"
	"fmt"

	basesvc "qr_dine/internal/api/base/service"
	menudto "qr_dine/internal/api/menu/dto"
	models "qr_dine/internal/api/menu/models"
	restaurantsvc "qr_dine/internal/api/restaurant/service"
	"qr_dine/internal/common"
	"qr_dine/internal/global"
	"qr_dine/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CategoryService là cấu trúc chứa các phương thức liên quan đến danh mục món
type CategoryService struct {
	*basesvc.BaseServiceMongoImpl[models.MenuCategory]
	restaurantService *restaurantsvc.RestaurantService
	itemService       *basesvc.BaseServiceMongoImpl[models.MenuItem]
}

// NewCategoryService tạo mới CategoryService
func NewCategoryService() (*CategoryService, error) {
	categoryCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.MenuCategories)
	if !exist {
		return nil, fmt.Errorf("failed to get menu_categories collection: %v", common.ErrNotFound)
	}
	itemCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.MenuItems)
	if !exist {
		return nil, fmt.Errorf("failed to get menu_items collection: %v", common.ErrNotFound)
	}
	restaurantService, err := restaurantsvc.NewRestaurantService()
	if err != nil {
		return nil, fmt.Errorf("failed to create restaurant service: %v", err)
	}
	return &CategoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.MenuCategory](categoryCollection),
		restaurantService:    restaurantService,
		itemService:          basesvc.NewBaseServiceMongo[models.MenuItem](itemCollection),
	}, nil
}

// Create tạo danh mục mới và thêm vào danh sách categories (có thứ tự) của nhà hàng.
// Chỉ chủ nhà hàng mới được thao tác.
func (s *CategoryService) Create(ctx context.Context, userID primitive.ObjectID, input *menudto.CategoryCreateInput) (*models.MenuCategory, error) {
	restaurantID := utility.String2ObjectID(input.RestaurantID)
	if restaurantID.IsZero() {
		return nil, common.NewError(common.ErrCodeValidationFormat, "restaurantId không hợp lệ", common.StatusBadRequest, nil)
	}
	restaurant, err := s.restaurantService.CheckOwnership(ctx, restaurantID, userID)
	if err != nil {
		return nil, err
	}

	category := models.MenuCategory{
		RestaurantID: restaurant.ID,
		Name:         input.Name,
		Description:  input.Description,
	}
	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, category)
	if err != nil {
		return nil, err
	}

	// Thêm category vào cuối danh sách hiển thị của nhà hàng
	pushData := &basesvc.UpdateData{
		Push: map[string]interface{}{
			"categories": created.ID,
		},
	}
	if _, err := s.restaurantService.UpdateById(ctx, restaurant.ID, pushData); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update cập nhật danh mục (chỉ chủ nhà hàng).
func (s *CategoryService) Update(ctx context.Context, userID primitive.ObjectID, categoryID primitive.ObjectID, input *menudto.CategoryUpdateInput) (*models.MenuCategory, error) {
	category, err := s.BaseServiceMongoImpl.FindOneById(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if _, err := s.restaurantService.CheckOwnership(ctx, category.RestaurantID, userID); err != nil {
		return nil, err
	}
	set := map[string]interface{}{}
	if input.Name != "" {
		set["name"] = input.Name
	}
	if input.Description != "" {
		set["description"] = input.Description
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, categoryID, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete xóa danh mục cùng các món thuộc danh mục, và gỡ khỏi danh sách
// hiển thị của nhà hàng (chỉ chủ nhà hàng).
func (s *CategoryService) Delete(ctx context.Context, userID primitive.ObjectID, categoryID primitive.ObjectID) error {
	category, err := s.BaseServiceMongoImpl.FindOneById(ctx, categoryID)
	if err != nil {
		return err
	}
	restaurant, err := s.restaurantService.CheckOwnership(ctx, category.RestaurantID, userID)
	if err != nil {
		return err
	}

	if err := s.BaseServiceMongoImpl.DeleteById(ctx, categoryID); err != nil {
		return err
	}

	// Xóa các món thuộc danh mục
	items, err := s.itemService.Find(ctx, bson.M{"categoryId": categoryID}, nil)
	if err == nil {
		for _, item := range items {
			_ = s.itemService.DeleteById(ctx, item.ID)
		}
	}

	// Gỡ category khỏi danh sách hiển thị, giữ nguyên thứ tự các category còn lại
	newCategories := make([]primitive.ObjectID, 0, len(restaurant.Categories))
	for _, id := range restaurant.Categories {
		if id != categoryID {
			newCategories = append(newCategories, id)
		}
	}
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"categories": newCategories,
		},
	}
	_, err = s.restaurantService.UpdateById(ctx, restaurant.ID, updateData)
	return err
}
