// Package router đăng ký các route thuộc domain auth.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "qr_dine/internal/api/auth/handler"
	apirouter "qr_dine/internal/api/router"
	"qr_dine/internal/api/middleware"
)

// Register đăng ký tất cả route auth lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}

	// Route public: đăng ký, đăng nhập
	v1.Post("/auth/register", userHandler.HandleRegister)
	v1.Post("/auth/login", userHandler.HandleLogin)

	authOnlyMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/logout", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleLogout)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "GET", "/profile", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleGetProfile)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "PUT", "/profile", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleUpdateProfile)
	return nil
}
