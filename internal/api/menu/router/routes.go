// Package router đăng ký các route thuộc domain menu.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	menuhdl "qr_dine/internal/api/menu/handler"
	"qr_dine/internal/api/middleware"
	apirouter "qr_dine/internal/api/router"
)

// Register đăng ký tất cả route menu lên v1.
// Trang menu công khai của khách không cần đăng nhập; các thao tác
// quản lý danh mục/món yêu cầu chủ nhà hàng đã đăng nhập.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	publicMenuHandler, err := menuhdl.NewPublicMenuHandler()
	if err != nil {
		return fmt.Errorf("failed to create public menu handler: %w", err)
	}
	v1.Get("/restaurants/:id/menu", publicMenuHandler.HandleGetMenu)

	categoryHandler, err := menuhdl.NewCategoryHandler()
	if err != nil {
		return fmt.Errorf("failed to create category handler: %w", err)
	}
	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/menu-categories", "POST", "/", []fiber.Handler{authMiddleware}, categoryHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(v1, "/menu-categories", "PUT", "/:id", []fiber.Handler{authMiddleware}, categoryHandler.HandleUpdate)
	apirouter.RegisterRouteWithMiddleware(v1, "/menu-categories", "DELETE", "/:id", []fiber.Handler{authMiddleware}, categoryHandler.HandleDelete)
	r.RegisterCRUDRoutes(v1, "/menu-categories", categoryHandler, apirouter.ReadOnlyConfig)

	itemHandler, err := menuhdl.NewMenuItemHandler()
	if err != nil {
		return fmt.Errorf("failed to create menu item handler: %w", err)
	}
	apirouter.RegisterRouteWithMiddleware(v1, "/menu-items", "POST", "/", []fiber.Handler{authMiddleware}, itemHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(v1, "/menu-items", "PUT", "/:id", []fiber.Handler{authMiddleware}, itemHandler.HandleUpdate)
	apirouter.RegisterRouteWithMiddleware(v1, "/menu-items", "DELETE", "/:id", []fiber.Handler{authMiddleware}, itemHandler.HandleDelete)
	r.RegisterCRUDRoutes(v1, "/menu-items", itemHandler, apirouter.ReadOnlyConfig)

	return nil
}
