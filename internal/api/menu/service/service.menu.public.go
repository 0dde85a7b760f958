package menusvc

import (
	"context"
	"fmt"

	basesvc "qr_dine/internal/api/base/service"
	models "qr_dine/internal/api/menu/models"
	restaurantmodels "qr_dine/internal/api/restaurant/models"
	restaurantsvc "qr_dine/internal/api/restaurant/service"
	"qr_dine/internal/common"
	"qr_dine/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PublicMenuCategory là một danh mục kèm các món đang bán, phục vụ trang menu của khách.
type PublicMenuCategory struct {
	Category models.MenuCategory `json:"category"`
	Items    []models.MenuItem   `json:"items"`
}

// PublicMenu là toàn bộ dữ liệu trang menu công khai của một nhà hàng.
// KeySecret của nhà hàng không bao giờ xuất hiện ở đây (json:"-" trên model).
type PublicMenu struct {
	Restaurant restaurantmodels.Restaurant `json:"restaurant"`
	Categories []PublicMenuCategory        `json:"categories"`
}

// PublicMenuService lắp ráp dữ liệu menu công khai từ nhà hàng, danh mục và món.
type PublicMenuService struct {
	restaurantService *restaurantsvc.RestaurantService
	categoryService   *basesvc.BaseServiceMongoImpl[models.MenuCategory]
	itemService       *basesvc.BaseServiceMongoImpl[models.MenuItem]
}

// NewPublicMenuService tạo mới PublicMenuService
func NewPublicMenuService() (*PublicMenuService, error) {
	restaurantService, err := restaurantsvc.NewRestaurantService()
	if err != nil {
		return nil, fmt.Errorf("failed to create restaurant service: %v", err)
	}
	categoryCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.MenuCategories)
	if !exist {
		return nil, fmt.Errorf("failed to get menu_categories collection: %v", common.ErrNotFound)
	}
	itemCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.MenuItems)
	if !exist {
		return nil, fmt.Errorf("failed to get menu_items collection: %v", common.ErrNotFound)
	}
	return &PublicMenuService{
		restaurantService: restaurantService,
		categoryService:   basesvc.NewBaseServiceMongo[models.MenuCategory](categoryCollection),
		itemService:       basesvc.NewBaseServiceMongo[models.MenuItem](itemCollection),
	}, nil
}

// GetPublicMenu trả về menu công khai của nhà hàng: các danh mục theo đúng
// thứ tự trên Restaurant.Categories, mỗi danh mục kèm các món đang bán.
func (s *PublicMenuService) GetPublicMenu(ctx context.Context, restaurantID primitive.ObjectID) (*PublicMenu, error) {
	restaurant, err := s.restaurantService.FindOneById(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryService.Find(ctx, bson.M{"restaurantId": restaurantID}, nil)
	if err != nil {
		return nil, err
	}
	categoryByID := make(map[primitive.ObjectID]models.MenuCategory, len(categories))
	for _, cat := range categories {
		categoryByID[cat.ID] = cat
	}

	items, err := s.itemService.Find(ctx, bson.M{"restaurantId": restaurantID, "isAvailable": true}, nil)
	if err != nil {
		return nil, err
	}
	itemsByCategory := make(map[primitive.ObjectID][]models.MenuItem)
	for _, item := range items {
		itemsByCategory[item.CategoryID] = append(itemsByCategory[item.CategoryID], item)
	}

	menu := &PublicMenu{
		Restaurant: restaurant,
		Categories: make([]PublicMenuCategory, 0, len(categories)),
	}

	// Duyệt theo thứ tự hiển thị trên Restaurant.Categories
	seen := map[primitive.ObjectID]bool{}
	for _, catID := range restaurant.Categories {
		cat, ok := categoryByID[catID]
		if !ok {
			continue
		}
		seen[catID] = true
		menu.Categories = append(menu.Categories, PublicMenuCategory{
			Category: cat,
			Items:    itemsByCategoryOrEmpty(itemsByCategory, catID),
		})
	}
	// Các category chưa có trong danh sách thứ tự (dữ liệu cũ) xếp cuối
	for _, cat := range categories {
		if !seen[cat.ID] {
			menu.Categories = append(menu.Categories, PublicMenuCategory{
				Category: cat,
				Items:    itemsByCategoryOrEmpty(itemsByCategory, cat.ID),
			})
		}
	}

	return menu, nil
}

func itemsByCategoryOrEmpty(itemsByCategory map[primitive.ObjectID][]models.MenuItem, categoryID primitive.ObjectID) []models.MenuItem {
	if items, ok := itemsByCategory[categoryID]; ok {
		return items
	}
	return []models.MenuItem{}
}
