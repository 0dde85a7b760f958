// Package router đăng ký các route hệ thống (health check).
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "qr_dine/internal/api/base/handler"
	apirouter "qr_dine/internal/api/router"
)

// Register đăng ký route system. Health check là public để load balancer
// và monitoring gọi được mà không cần token.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	systemHandler, err := basehdl.NewSystemHandler()
	if err != nil {
		return fmt.Errorf("failed to create system handler: %w", err)
	}
	v1.Get("/system/health", systemHandler.HandleHealth)
	return nil
}
