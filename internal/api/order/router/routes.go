// Package router đăng ký các route thuộc domain order.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"qr_dine/internal/api/middleware"
	orderhdl "qr_dine/internal/api/order/handler"
	apirouter "qr_dine/internal/api/router"
	"qr_dine/internal/mailer"
	"qr_dine/internal/payment"
	"qr_dine/internal/realtime"
)

// Register trả về hàm đăng ký route order với các dependency được inject.
// Route public (tạo đơn, xác minh thanh toán, theo dõi đơn) phải đăng ký
// trước các group có middleware để không bị auth chặn nhầm.
func Register(gateway payment.Gateway, broadcaster realtime.Broadcaster, m *mailer.Mailer) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		orderHandler, err := orderhdl.NewOrderHandler(gateway, broadcaster, m)
		if err != nil {
			return fmt.Errorf("failed to create order handler: %w", err)
		}

		// Route public cho khách
		v1.Post("/orders", orderHandler.HandleCreate)
		v1.Post("/orders/verify-payment", orderHandler.HandleVerifyPayment)
		v1.Get("/orders/number/:orderNumber", orderHandler.HandleGetByOrderNumber)
		v1.Get("/orders/:id", orderHandler.HandleGetById)

		// Route quản lý của chủ nhà hàng
		authMiddleware := middleware.AuthMiddleware()
		apirouter.RegisterRouteWithMiddleware(v1, "/orders", "GET", "/restaurant/:restaurantId", []fiber.Handler{authMiddleware}, orderHandler.HandleListByRestaurant)
		apirouter.RegisterRouteWithMiddleware(v1, "/orders", "PATCH", "/:id/status", []fiber.Handler{authMiddleware}, orderHandler.HandleUpdateStatus)
		apirouter.RegisterRouteWithMiddleware(v1, "/orders", "GET", "/stats/:restaurantId", []fiber.Handler{authMiddleware}, orderHandler.HandleStats)
		return nil
	}
}
