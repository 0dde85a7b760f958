package middleware

import (
	"context"
	"fmt"
	"strings"
	"sync"

	authsvc "qr_dine/internal/api/auth/service"
	models "qr_dine/internal/api/auth/models"
	"qr_dine/internal/common"
	"qr_dine/internal/global"
	"qr_dine/internal/logger"
	"qr_dine/internal/utility"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
)

// AuthManager quản lý xác thực người dùng
type AuthManager struct {
	UserCRUD *authsvc.UserService
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		userService, err := authsvc.NewUserService()
		if err != nil {
			panic(fmt.Errorf("failed to create user service: %w", err))
		}
		authManagerInstance = &AuthManager{UserCRUD: userService}
	})
	return authManagerInstance
}

// AuthMiddleware middleware xác thực cho Fiber.
// Kiểm tra JWT token trong header Authorization, token phải còn hạn
// và còn tồn tại trong danh sách token của user (logout sẽ vô hiệu token).
func AuthMiddleware() fiber.Handler {
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		// Lấy token từ header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("Auth: Thiếu Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		// Kiểm tra định dạng token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		token := parts[1]

		// Kiểm tra chữ ký và hạn của JWT trước khi query database
		if _, err := utility.ParseToken(global.MongoDB_ServerConfig.JwtSecret, token); err != nil {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Tìm user có token.
		// Ưu tiên query field "token" (token mới nhất, cập nhật mỗi lần login),
		// nếu không thấy thì query trong array "tokens" (token theo thiết bị).
		var user models.User
		var err error

		user, err = authManager.UserCRUD.FindOne(context.Background(), bson.M{"token": token}, nil)
		if err != nil {
			user, err = authManager.UserCRUD.FindOne(context.Background(), bson.M{"tokens.jwtToken": token}, nil)
		}

		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("Auth: Token không tồn tại trong database")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Kiểm tra user có bị khóa không
		if user.IsBlock {
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthCredentials,
				"Tài khoản đã bị khóa: "+user.BlockNote,
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		// Lưu thông tin user vào context
		c.Locals("user_id", user.ID.Hex())
		c.Locals("user", user)

		return c.Next()
	}
}
