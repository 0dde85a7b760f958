// Package subscriptionhdl - handler domain subscription.
package subscriptionhdl

import (
	"fmt"

	basehdl "qr_dine/internal/api/base/handler"
	subscriptiondto "qr_dine/internal/api/subscription/dto"
	models "qr_dine/internal/api/subscription/models"
	subscriptionsvc "qr_dine/internal/api/subscription/service"
	"qr_dine/internal/common"
	"qr_dine/internal/payment"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubscriptionHandler xử lý các request thuê bao dashboard của chủ nhà hàng.
type SubscriptionHandler struct {
	*basehdl.BaseHandler[models.Subscription, subscriptiondto.SubscriptionCreateInput, subscriptiondto.SubscriptionCreateInput]
	subscriptionService *subscriptionsvc.SubscriptionService
}

// NewSubscriptionHandler tạo instance mới của SubscriptionHandler
func NewSubscriptionHandler(gateway payment.Gateway) (*SubscriptionHandler, error) {
	subscriptionService, err := subscriptionsvc.NewSubscriptionService(gateway)
	if err != nil {
		return nil, fmt.Errorf("failed to create subscription service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Subscription, subscriptiondto.SubscriptionCreateInput, subscriptiondto.SubscriptionCreateInput](subscriptionService)
	return &SubscriptionHandler{
		BaseHandler:         baseHandler,
		subscriptionService: subscriptionService,
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

// HandleGetPlans trả về catalog các gói thuê bao (public)
func (h *SubscriptionHandler) HandleGetPlans(c fiber.Ctx) error {
	h.HandleResponse(c, models.Plans(), nil)
	return nil
}

// HandleCreateOrder tạo thuê bao pending và đơn thanh toán trên cổng nền tảng
func (h *SubscriptionHandler) HandleCreateOrder(c fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input subscriptiondto.SubscriptionCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	result, err := h.subscriptionService.CreateOrder(c.Context(), userID, &input)
	h.HandleResponse(c, result, err)
	return nil
}

// HandleVerifyPayment xác minh thanh toán thuê bao
func (h *SubscriptionHandler) HandleVerifyPayment(c fiber.Ctx) error {
	var input subscriptiondto.SubscriptionVerifyPaymentInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	subscription, err := h.subscriptionService.VerifyPayment(c.Context(), &input)
	h.HandleResponse(c, subscription, err)
	return nil
}

// HandleGetById lấy thuê bao theo id (chỉ chủ thuê bao)
func (h *SubscriptionHandler) HandleGetById(c fiber.Ctx) error {
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
	subscription, err := h.subscriptionService.FindOneById(c.Context(), objID)
	if err == nil && subscription.UserID != userID {
		h.HandleResponse(c, nil, common.ErrNotOwner)
		return nil
	}
	h.HandleResponse(c, subscription, err)
	return nil
}

// HandleGetByRestaurant lấy các thuê bao của một nhà hàng (chỉ chủ nhà hàng)
func (h *SubscriptionHandler) HandleGetByRestaurant(c fiber.Ctx) error {
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
	if _, err := h.subscriptionService.CheckRestaurantOwnership(c.Context(), restaurantID, userID); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	subscriptions, err := h.subscriptionService.FindByRestaurant(c.Context(), restaurantID)
	h.HandleResponse(c, subscriptions, err)
	return nil
}

// HandleCancel hủy thuê bao (chỉ chủ thuê bao)
func (h *SubscriptionHandler) HandleCancel(c fiber.Ctx) error {
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
	subscription, err := h.subscriptionService.Cancel(c.Context(), userID, objID)
	h.HandleResponse(c, subscription, err)
	return nil
}

// HandleLinkRestaurant liên kết thuê bao với nhà hàng (chỉ chủ thuê bao)
func (h *SubscriptionHandler) HandleLinkRestaurant(c fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input subscriptiondto.SubscriptionLinkRestaurantInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	subscription, err := h.subscriptionService.LinkRestaurant(c.Context(), userID, &input)
	h.HandleResponse(c, subscription, err)
	return nil
}
