package menuhdl

import (
	"fmt"

	basehdl "qr_dine/internal/api/base/handler"
	menudto "qr_dine/internal/api/menu/dto"
	models "qr_dine/internal/api/menu/models"
	menusvc "qr_dine/internal/api/menu/service"
	"qr_dine/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuItemHandler xử lý các request quản lý món ăn
type MenuItemHandler struct {
	*basehdl.BaseHandler[models.MenuItem, menudto.MenuItemCreateInput, menudto.MenuItemUpdateInput]
	itemService *menusvc.MenuItemService
}

// NewMenuItemHandler tạo instance mới của MenuItemHandler
func NewMenuItemHandler() (*MenuItemHandler, error) {
	itemService, err := menusvc.NewMenuItemService()
	if err != nil {
		return nil, fmt.Errorf("failed to create menu item service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.MenuItem, menudto.MenuItemCreateInput, menudto.MenuItemUpdateInput](itemService)
	return &MenuItemHandler{
		BaseHandler: baseHandler,
		itemService: itemService,
	}, nil
}

// HandleCreate tạo món ăn mới (chỉ chủ nhà hàng)
func (h *MenuItemHandler) HandleCreate(c fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input menudto.MenuItemCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	item, err := h.itemService.Create(c.Context(), userID, &input)
	h.HandleResponse(c, item, err)
	return nil
}

// HandleUpdate cập nhật món ăn (chỉ chủ nhà hàng)
func (h *MenuItemHandler) HandleUpdate(c fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	objID, err := primitive.ObjectIDFromHex(h.GetIDFromContext(c))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, err))
		return nil
	}
	var input menudto.MenuItemUpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	item, err := h.itemService.Update(c.Context(), userID, objID, &input)
	h.HandleResponse(c, item, err)
	return nil
}

// HandleDelete xóa món ăn (chỉ chủ nhà hàng)
func (h *MenuItemHandler) HandleDelete(c fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	objID, err := primitive.ObjectIDFromHex(h.GetIDFromContext(c))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, err))
		return nil
	}
	err = h.itemService.Delete(c.Context(), userID, objID)
	h.HandleResponse(c, nil, err)
	return nil
}
