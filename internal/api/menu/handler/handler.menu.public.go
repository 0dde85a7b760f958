package menuhdl

import (
	"fmt"

	basehdl "qr_dine/internal/api/base/handler"
	menusvc "qr_dine/internal/api/menu/service"
	"qr_dine/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PublicMenuHandler phục vụ trang menu công khai của khách (không cần đăng nhập)
type PublicMenuHandler struct {
	publicMenuService *menusvc.PublicMenuService
}

// NewPublicMenuHandler tạo instance mới của PublicMenuHandler
func NewPublicMenuHandler() (*PublicMenuHandler, error) {
	publicMenuService, err := menusvc.NewPublicMenuService()
	if err != nil {
		return nil, fmt.Errorf("failed to create public menu service: %v", err)
	}
	return &PublicMenuHandler{
		publicMenuService: publicMenuService,
	}, nil
}

// HandleGetMenu trả về menu công khai của nhà hàng theo id
func (h *PublicMenuHandler) HandleGetMenu(c fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		basehdl.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, err))
		return nil
	}
	menu, err := h.publicMenuService.GetPublicMenu(c.Context(), objID)
	basehdl.HandleResponse(c, menu, err)
	return nil
}
