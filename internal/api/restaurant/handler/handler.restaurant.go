package restauranthdl

import (
	"fmt"

	basehdl "qr_dine/internal/api/base/handler"
	basesvc "qr_dine/internal/api/base/service"
	restaurantdto "qr_dine/internal/api/restaurant/dto"
	models "qr_dine/internal/api/restaurant/models"
	restaurantsvc "qr_dine/internal/api/restaurant/service"
	"qr_dine/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RestaurantHandler xử lý các request quản lý nhà hàng
type RestaurantHandler struct {
	*basehdl.BaseHandler[models.Restaurant, restaurantdto.RestaurantCreateInput, restaurantdto.RestaurantUpdateInput]
	restaurantService *restaurantsvc.RestaurantService
}

// NewRestaurantHandler tạo instance mới của RestaurantHandler
func NewRestaurantHandler() (*RestaurantHandler, error) {
	restaurantService, err := restaurantsvc.NewRestaurantService()
	if err != nil {
		return nil, fmt.Errorf("failed to create restaurant service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Restaurant, restaurantdto.RestaurantCreateInput, restaurantdto.RestaurantUpdateInput](restaurantService)
	return &RestaurantHandler{
		BaseHandler:       baseHandler,
		restaurantService: restaurantService,
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

// HandleCreate tạo nhà hàng mới cho người dùng đang đăng nhập
func (h *RestaurantHandler) HandleCreate(c fiber.Ctx) error {
	ownerID, err := userIDFromContext(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input restaurantdto.RestaurantCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	restaurant, err := h.restaurantService.Create(c.Context(), ownerID, &input)
	h.HandleResponse(c, restaurant, err)
	return nil
}

// HandleGetMy lấy nhà hàng của người dùng đang đăng nhập
func (h *RestaurantHandler) HandleGetMy(c fiber.Ctx) error {
	ownerID, err := userIDFromContext(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	restaurant, err := h.restaurantService.FindByOwner(c.Context(), ownerID)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, restaurant, nil)
	return nil
}

// HandleGetById lấy thông tin nhà hàng theo id (public, phục vụ trang menu của khách)
func (h *RestaurantHandler) HandleGetById(c fiber.Ctx) error {
	id := h.GetIDFromContext(c)
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, err))
		return nil
	}
	restaurant, err := h.restaurantService.FindOneById(c.Context(), objID)
	h.HandleResponse(c, restaurant, err)
	return nil
}

// HandleUpdate cập nhật thông tin nhà hàng (chỉ chủ nhà hàng)
func (h *RestaurantHandler) HandleUpdate(c fiber.Ctx) error {
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
	var input restaurantdto.RestaurantUpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if _, err := h.restaurantService.CheckOwnership(c.Context(), objID, userID); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	set := map[string]interface{}{}
	if input.Name != "" {
		set["name"] = input.Name
	}
	if input.Address != "" {
		set["address"] = input.Address
	}
	if input.Phone != "" {
		set["phone"] = input.Phone
	}
	updated, err := h.restaurantService.UpdateById(c.Context(), objID, &basesvc.UpdateData{Set: set})
	h.HandleResponse(c, updated, err)
	return nil
}

// HandleConnectRazorpay kết nối tài khoản Razorpay riêng của nhà hàng
func (h *RestaurantHandler) HandleConnectRazorpay(c fiber.Ctx) error {
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
	var input restaurantdto.RazorpayConnectInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	restaurant, err := h.restaurantService.ConnectRazorpay(c.Context(), objID, userID, &input)
	h.HandleResponse(c, restaurant, err)
	return nil
}

// HandleDisconnectRazorpay ngắt kết nối cổng thanh toán của nhà hàng
func (h *RestaurantHandler) HandleDisconnectRazorpay(c fiber.Ctx) error {
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
	restaurant, err := h.restaurantService.DisconnectRazorpay(c.Context(), objID, userID)
	h.HandleResponse(c, restaurant, err)
	return nil
}

// HandleRegenerateQR sinh lại QR code menu của nhà hàng
func (h *RestaurantHandler) HandleRegenerateQR(c fiber.Ctx) error {
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
	restaurant, err := h.restaurantService.RegenerateQR(c.Context(), objID, userID)
	h.HandleResponse(c, restaurant, err)
	return nil
}
