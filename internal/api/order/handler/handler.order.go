// Package orderhdl - handler domain order.
package orderhdl

import (
	"fmt"

	basehdl "qr_dine/internal/api/base/handler"
	orderdto "qr_dine/internal/api/order/dto"
	models "qr_dine/internal/api/order/models"
	ordersvc "qr_dine/internal/api/order/service"
	"qr_dine/internal/common"
	"qr_dine/internal/mailer"
	"qr_dine/internal/payment"
	"qr_dine/internal/realtime"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderHandler xử lý các request đơn hàng: tạo đơn và theo dõi đơn của khách
// (public), quản lý và thống kê của chủ nhà hàng (yêu cầu đăng nhập).
type OrderHandler struct {
	*basehdl.BaseHandler[models.Order, orderdto.OrderCreateInput, orderdto.OrderStatusUpdateInput]
	orderService *ordersvc.OrderService
}

// NewOrderHandler tạo instance mới của OrderHandler
func NewOrderHandler(gateway payment.Gateway, broadcaster realtime.Broadcaster, m *mailer.Mailer) (*OrderHandler, error) {
	orderService, err := ordersvc.NewOrderService(gateway, broadcaster, m)
	if err != nil {
		return nil, fmt.Errorf("failed to create order service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Order, orderdto.OrderCreateInput, orderdto.OrderStatusUpdateInput](orderService)
	return &OrderHandler{
		BaseHandler:  baseHandler,
		orderService: orderService,
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

// HandleCreate tạo đơn hàng mới (public, khách quét QR đặt món)
func (h *OrderHandler) HandleCreate(c fiber.Ctx) error {
	var input orderdto.OrderCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	result, err := h.orderService.Create(c.Context(), &input)
	h.HandleCreatedResponse(c, result, err)
	return nil
}

// HandleVerifyPayment xác minh thanh toán của đơn hàng (public)
func (h *OrderHandler) HandleVerifyPayment(c fiber.Ctx) error {
	var input orderdto.OrderVerifyPaymentInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	order, err := h.orderService.VerifyPayment(c.Context(), &input)
	h.HandleResponse(c, order, err)
	return nil
}

// HandleGetById lấy đơn hàng theo id (public, trang theo dõi đơn của khách)
func (h *OrderHandler) HandleGetById(c fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, err))
		return nil
	}
	order, err := h.orderService.FindOneById(c.Context(), objID)
	h.HandleResponse(c, order, err)
	return nil
}

// HandleGetByOrderNumber lấy đơn hàng theo mã đơn (public)
func (h *OrderHandler) HandleGetByOrderNumber(c fiber.Ctx) error {
	orderNumber := c.Params("orderNumber")
	if orderNumber == "" {
		h.HandleResponse(c, nil, common.ErrRequiredField)
		return nil
	}
	order, err := h.orderService.FindByOrderNumber(c.Context(), orderNumber)
	h.HandleResponse(c, order, err)
	return nil
}

// HandleUpdateStatus chuyển trạng thái đơn theo whitelist (chỉ chủ nhà hàng)
func (h *OrderHandler) HandleUpdateStatus(c fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, err))
		return nil
	}
	var input orderdto.OrderStatusUpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	order, err := h.orderService.UpdateStatus(c.Context(), userID, objID, &input)
	h.HandleResponse(c, order, err)
	return nil
}

// HandleListByRestaurant liệt kê đơn của nhà hàng có phân trang (chỉ chủ nhà hàng)
func (h *OrderHandler) HandleListByRestaurant(c fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	restaurantID, err := primitive.ObjectIDFromHex(c.Params("restaurantId"))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "restaurantId không hợp lệ", common.StatusBadRequest, err))
		return nil
	}
	page, limit := h.ParsePagination(c)
	status := c.Query("status")
	result, err := h.orderService.ListByRestaurant(c.Context(), userID, restaurantID, status, page, limit)
	h.HandleResponse(c, result, err)
	return nil
}

// HandleStats thống kê đơn của nhà hàng theo kỳ (chỉ chủ nhà hàng)
func (h *OrderHandler) HandleStats(c fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	restaurantID, err := primitive.ObjectIDFromHex(c.Params("restaurantId"))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "restaurantId không hợp lệ", common.StatusBadRequest, err))
		return nil
	}
	period := c.Query("period", "today")
	result, err := h.orderService.Stats(c.Context(), userID, restaurantID, period)
	h.HandleResponse(c, result, err)
	return nil
}
