// Package menuhdl - handler domain menu.
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

// CategoryHandler xử lý các request quản lý danh mục món
type CategoryHandler struct {
	*basehdl.BaseHandler[models.MenuCategory, menudto.CategoryCreateInput, menudto.CategoryUpdateInput]
	categoryService *menusvc.CategoryService
}

// NewCategoryHandler tạo instance mới của CategoryHandler
func NewCategoryHandler() (*CategoryHandler, error) {
	categoryService, err := menusvc.NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.MenuCategory, menudto.CategoryCreateInput, menudto.CategoryUpdateInput](categoryService)
	return &CategoryHandler{
		BaseHandler:     baseHandler,
		categoryService: categoryService,
	}, nil
}

// userIDFromContext lấy ObjectID của người dùng đã xác thực từ context.
func userIDFromContext(c fiber.Ctx) (primitive.ObjectID, error) {
	userID := c.Locals("user_id")
	if userID == nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeAuthToken, common.MsgUnauthorized, common.StatusUnauthorized, nil)
	}
	objID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, "Invalid user ID", common.StatusBadRequest, err)
	}
	return objID, nil
}

// HandleCreate tạo danh mục món mới (chỉ chủ nhà hàng)
func (h *CategoryHandler) HandleCreate(c fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input menudto.CategoryCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	category, err := h.categoryService.Create(c.Context(), userID, &input)
	h.HandleResponse(c, category, err)
	return nil
}

// HandleUpdate cập nhật danh mục món (chỉ chủ nhà hàng)
func (h *CategoryHandler) HandleUpdate(c fiber.Ctx) error {
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
	var input menudto.CategoryUpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	category, err := h.categoryService.Update(c.Context(), userID, objID, &input)
	h.HandleResponse(c, category, err)
	return nil
}

// HandleDelete xóa danh mục món (chỉ chủ nhà hàng)
func (h *CategoryHandler) HandleDelete(c fiber.Ctx) error {
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
	err = h.categoryService.Delete(c.Context(), userID, objID)
	h.HandleResponse(c, nil, err)
	return nil
}
