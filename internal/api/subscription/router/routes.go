// Package router đăng ký các route thuộc domain subscription.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"qr_dine/internal/api/middleware"
	apirouter "qr_dine/internal/api/router"
	subscriptionhdl "qr_dine/internal/api/subscription/handler"
	"qr_dine/internal/payment"
)

// Register trả về hàm đăng ký route subscription với gateway được inject.
// GET /subscriptions/plans là public nên phải đăng ký trước các group có auth.
func Register(gateway payment.Gateway) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		subscriptionHandler, err := subscriptionhdl.NewSubscriptionHandler(gateway)
		if err != nil {
			return fmt.Errorf("failed to create subscription handler: %w", err)
		}

		// Catalog gói là public
		v1.Get("/subscriptions/plans", subscriptionHandler.HandleGetPlans)

		authMiddleware := middleware.AuthMiddleware()
		apirouter.RegisterRouteWithMiddleware(v1, "/subscriptions", "POST", "/create-order", []fiber.Handler{authMiddleware}, subscriptionHandler.HandleCreateOrder)
		apirouter.RegisterRouteWithMiddleware(v1, "/subscriptions", "POST", "/verify-payment", []fiber.Handler{authMiddleware}, subscriptionHandler.HandleVerifyPayment)
		apirouter.RegisterRouteWithMiddleware(v1, "/subscriptions", "POST", "/link-restaurant", []fiber.Handler{authMiddleware}, subscriptionHandler.HandleLinkRestaurant)
		apirouter.RegisterRouteWithMiddleware(v1, "/subscriptions", "GET", "/restaurant/:restaurantId", []fiber.Handler{authMiddleware}, subscriptionHandler.HandleGetByRestaurant)
		apirouter.RegisterRouteWithMiddleware(v1, "/subscriptions", "PATCH", "/:id/cancel", []fiber.Handler{authMiddleware}, subscriptionHandler.HandleCancel)
		apirouter.RegisterRouteWithMiddleware(v1, "/subscriptions", "GET", "/:id", []fiber.Handler{authMiddleware}, subscriptionHandler.HandleGetById)
		return nil
	}
}
