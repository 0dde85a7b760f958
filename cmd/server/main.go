package main

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"qr_dine/internal/global"
	"qr_dine/internal/logger"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Logger tự đọc environment variables để cấu hình
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// main_thread khởi tạo và chạy Fiber server
func main_thread() {
	// Khởi tạo app với cấu hình
	app := InitFiberApp()

	cfg := global.MongoDB_ServerConfig
	address := cfg.Address

	log := logger.GetAppLogger()
	log.WithFields(map[string]interface{}{
		"address":  address,
		"protocol": "HTTP",
	}).Info("Starting Fiber server...")

	listenConfig := fiber.ListenConfig{}
	if err := app.Listen(address, listenConfig); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
	}
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo các biến toàn cục
	InitGlobal()

	// Khởi tạo registry
	InitRegistry()

	// Chạy Fiber server trên main thread
	main_thread()
}
