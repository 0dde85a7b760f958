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

// MenuItemService là cấu trúc chứa các phương thức liên quan đến món ăn
type MenuItemService struct {
	*basesvc.BaseServiceMongoImpl[models.MenuItem]
	restaurantService *restaurantsvc.RestaurantService
	categoryService   *basesvc.BaseServiceMongoImpl[models.MenuCategory]
}

// NewMenuItemService tạo mới MenuItemService
func NewMenuItemService() (*MenuItemService, error) {
	itemCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.MenuItems)
	if !exist {
		return nil, fmt.Errorf("failed to get menu_items collection: %v", common.ErrNotFound)
	}
	categoryCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.MenuCategories)
	if !exist {
		return nil, fmt.Errorf("failed to get menu_categories collection: %v", common.ErrNotFound)
	}
	restaurantService, err := restaurantsvc.NewRestaurantService()
	if err != nil {
		return nil, fmt.Errorf("failed to create restaurant service: %v", err)
	}
	return &MenuItemService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.MenuItem](itemCollection),
		restaurantService:    restaurantService,
		categoryService:      basesvc.NewBaseServiceMongo[models.MenuCategory](categoryCollection),
	}, nil
}

// Create tạo món ăn mới trong một danh mục (chỉ chủ nhà hàng).
// Danh mục phải tồn tại và thuộc đúng nhà hàng.
func (s *MenuItemService) Create(ctx context.Context, userID primitive.ObjectID, input *menudto.MenuItemCreateInput) (*models.MenuItem, error) {
	restaurantID := utility.String2ObjectID(input.RestaurantID)
	categoryID := utility.String2ObjectID(input.CategoryID)
	if restaurantID.IsZero() || categoryID.IsZero() {
		return nil, common.NewError(common.ErrCodeValidationFormat, "restaurantId hoặc categoryId không hợp lệ", common.StatusBadRequest, nil)
	}
	if _, err := s.restaurantService.CheckOwnership(ctx, restaurantID, userID); err != nil {
		return nil, err
	}
	category, err := s.categoryService.FindOneById(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category.RestaurantID != restaurantID {
		return nil, common.NewError(common.ErrCodeValidationInput, "Danh mục không thuộc nhà hàng này", common.StatusBadRequest, nil)
	}

	isAvailable := true
	if input.IsAvailable != nil {
		isAvailable = *input.IsAvailable
	}
	item := models.MenuItem{
		RestaurantID: restaurantID,
		CategoryID:   categoryID,
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
		Image:        input.Image,
		IsAvailable:  isAvailable,
	}
	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, item)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update cập nhật món ăn (chỉ chủ nhà hàng).
func (s *MenuItemService) Update(ctx context.Context, userID primitive.ObjectID, itemID primitive.ObjectID, input *menudto.MenuItemUpdateInput) (*models.MenuItem, error) {
	item, err := s.BaseServiceMongoImpl.FindOneById(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if _, err := s.restaurantService.CheckOwnership(ctx, item.RestaurantID, userID); err != nil {
		return nil, err
	}

	set := map[string]interface{}{}
	if input.Name != "" {
		set["name"] = input.Name
	}
	if input.Description != "" {
		set["description"] = input.Description
	}
	if input.Price != nil {
		set["price"] = *input.Price
	}
	if input.Image != "" {
		set["image"] = input.Image
	}
	if input.IsAvailable != nil {
		set["isAvailable"] = *input.IsAvailable
	}
	if input.CategoryID != "" {
		categoryID := utility.String2ObjectID(input.CategoryID)
		if categoryID.IsZero() {
			return nil, common.NewError(common.ErrCodeValidationFormat, "categoryId không hợp lệ", common.StatusBadRequest, nil)
		}
		category, err := s.categoryService.FindOneById(ctx, categoryID)
		if err != nil {
			return nil, err
		}
		if category.RestaurantID != item.RestaurantID {
			return nil, common.NewError(common.ErrCodeValidationInput, "Danh mục không thuộc nhà hàng này", common.StatusBadRequest, nil)
		}
		set["categoryId"] = categoryID
	}

	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, itemID, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete xóa món ăn (chỉ chủ nhà hàng).
func (s *MenuItemService) Delete(ctx context.Context, userID primitive.ObjectID, itemID primitive.ObjectID) error {
	item, err := s.BaseServiceMongoImpl.FindOneById(ctx, itemID)
	if err != nil {
		return err
	}
	if _, err := s.restaurantService.CheckOwnership(ctx, item.RestaurantID, userID); err != nil {
		return err
	}
	return s.BaseServiceMongoImpl.DeleteById(ctx, itemID)
}

// FindByRestaurant trả về toàn bộ món của một nhà hàng.
func (s *MenuItemService) FindByRestaurant(ctx context.Context, restaurantID primitive.ObjectID) ([]models.MenuItem, error) {
	return s.BaseServiceMongoImpl.Find(ctx, bson.M{"restaurantId": restaurantID}, nil)
}
