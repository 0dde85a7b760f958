// Package router đăng ký các route thuộc domain restaurant.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"qr_dine/internal/api/middleware"
	restauranthdl "qr_dine/internal/api/restaurant/handler"
	apirouter "qr_dine/internal/api/router"
)

// Register đăng ký tất cả route restaurant lên v1.
// Route get-by-id là public để trang menu của khách đọc được thông tin nhà hàng.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	restaurantHandler, err := restauranthdl.NewRestaurantHandler()
	if err != nil {
		return fmt.Errorf("failed to create restaurant handler: %w", err)
	}

	authMiddleware := middleware.AuthMiddleware()

	// /restaurants/my phải đăng ký trước /restaurants/:id để không bị
	// route :id nuốt mất (Fiber match theo thứ tự đăng ký).
	apirouter.RegisterRouteWithMiddleware(v1, "/restaurants/my", "GET", "/", []fiber.Handler{authMiddleware}, restaurantHandler.HandleGetMy)

	v1.Get("/restaurants/:id", restaurantHandler.HandleGetById)

	apirouter.RegisterRouteWithMiddleware(v1, "/restaurants", "POST", "/", []fiber.Handler{authMiddleware}, restaurantHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(v1, "/restaurants", "PUT", "/:id", []fiber.Handler{authMiddleware}, restaurantHandler.HandleUpdate)
	apirouter.RegisterRouteWithMiddleware(v1, "/restaurants", "POST", "/:id/razorpay", []fiber.Handler{authMiddleware}, restaurantHandler.HandleConnectRazorpay)
	apirouter.RegisterRouteWithMiddleware(v1, "/restaurants", "DELETE", "/:id/razorpay", []fiber.Handler{authMiddleware}, restaurantHandler.HandleDisconnectRazorpay)
	apirouter.RegisterRouteWithMiddleware(v1, "/restaurants", "POST", "/:id/regenerate-qr", []fiber.Handler{authMiddleware}, restaurantHandler.HandleRegenerateQR)
	return nil
}
