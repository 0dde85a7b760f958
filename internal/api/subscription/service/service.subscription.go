// Package subscriptionsvc - service thuê bao dashboard.
package subscriptionsvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	authsvc "qr_dine/internal/api/auth/service"
	basesvc "qr_dine/internal/api/base/service"
	restaurantmodels "qr_dine/internal/api/restaurant/models"
	restaurantsvc "qr_dine/internal/api/restaurant/service"
	subscriptiondto "qr_dine/internal/api/subscription/dto"
	models "qr_dine/internal/api/subscription/models"
	"qr_dine/internal/common"
	"qr_dine/internal/global"
	"qr_dine/internal/payment"
	"qr_dine/internal/utility"

	"github.com/sirupsen/logrus"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// gatewayTimeout giới hạn thời gian chờ cổng thanh toán cho một request.
const gatewayTimeout = 10 * time.Second

// restaurantStore là phần của RestaurantService mà domain subscription cần,
// tách interface để test thay bằng fake.
type restaurantStore interface {
	FindOneById(ctx context.Context, id primitive.ObjectID) (restaurantmodels.Restaurant, error)
	CheckOwnership(ctx context.Context, restaurantID primitive.ObjectID, userID primitive.ObjectID) (restaurantmodels.Restaurant, error)
}

// subscriptionSetter gắn thuê bao đã mua vào bản ghi người dùng.
type subscriptionSetter interface {
	SetSubscription(ctx context.Context, userID primitive.ObjectID, subscriptionID primitive.ObjectID) error
}

// SubscriptionService là cấu trúc chứa các phương thức liên quan đến thuê bao.
// Thanh toán thuê bao đi qua tài khoản Razorpay của nền tảng, khác với
// đơn hàng dùng tài khoản riêng của từng nhà hàng.
type SubscriptionService struct {
	basesvc.BaseServiceMongo[models.Subscription]
	restaurantService restaurantStore
	userService       subscriptionSetter
	gateway           payment.Gateway
}

// NewSubscriptionService tạo mới SubscriptionService
func NewSubscriptionService(gateway payment.Gateway) (*SubscriptionService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Subscriptions)
	if !exist {
		return nil, fmt.Errorf("failed to get subscriptions collection: %v", common.ErrNotFound)
	}
	restaurantService, err := restaurantsvc.NewRestaurantService()
	if err != nil {
		return nil, fmt.Errorf("failed to create restaurant service: %v", err)
	}
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	return &SubscriptionService{
		BaseServiceMongo:  basesvc.NewBaseServiceMongo[models.Subscription](collection),
		restaurantService: restaurantService,
		userService:       userService,
		gateway:           gateway,
	}, nil
}

// platformCredentials trả về credentials Razorpay của nền tảng từ config.
func platformCredentials() payment.Credentials {
	return payment.Credentials{
		KeyID:     global.MongoDB_ServerConfig.RazorpayKeyID,
		KeySecret: global.MongoDB_ServerConfig.RazorpayKeySecret,
	}
}

// hasActiveSubscription kiểm tra nhà hàng đã có thuê bao active chưa.
func (s *SubscriptionService) hasActiveSubscription(ctx context.Context, restaurantID primitive.ObjectID) (bool, error) {
	return s.BaseServiceMongo.DocumentExists(ctx, bson.M{
		"restaurantId": restaurantID,
		"status":       models.SubscriptionStatusActive,
	})
}

// CreateOrder tạo thuê bao pending và intent thanh toán trên cổng của nền tảng.
//
// Gói tra theo key trong catalog cố định; key lạ trả InvalidInput.
// Nếu có restaurantId: nhà hàng phải tồn tại và chưa có thuê bao active (Conflict).
// Nếu cổng thanh toán lỗi, thuê bao pending vừa tạo được xóa đi để không
// tồn đọng bản ghi mồ côi.
func (s *SubscriptionService) CreateOrder(ctx context.Context, userID primitive.ObjectID, input *subscriptiondto.SubscriptionCreateInput) (*subscriptiondto.SubscriptionCreateResult, error) {
	plan, ok := models.GetPlan(input.PlanKey)
	if !ok {
		return nil, common.NewError(common.ErrCodeValidationInput, fmt.Sprintf("Gói không tồn tại: %s", input.PlanKey), common.StatusBadRequest, nil)
	}

	var restaurantID primitive.ObjectID
	if input.RestaurantID != "" {
		restaurantID = utility.String2ObjectID(input.RestaurantID)
		if restaurantID.IsZero() {
			return nil, common.NewError(common.ErrCodeValidationFormat, "restaurantId không hợp lệ", common.StatusBadRequest, nil)
		}
		if _, err := s.restaurantService.FindOneById(ctx, restaurantID); err != nil {
			return nil, err
		}
		exists, err := s.hasActiveSubscription(ctx, restaurantID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, common.NewError(common.ErrCodeBusinessState, "Nhà hàng đã có thuê bao đang hiệu lực", common.StatusConflict, nil)
		}
	}

	now := time.Now()
	subscription := models.Subscription{
		UserID:          userID,
		RestaurantID:    restaurantID,
		PlanKey:         plan.Key,
		PlanName:        plan.Name,
		Price:           plan.Price,
		DurationDays:    plan.DurationDays,
		Features:        plan.Features,
		MaxMenuItems:    plan.MaxMenuItems,
		MaxOrdersPerDay: plan.MaxOrdersPerDay,
		Status:          models.SubscriptionStatusPending,
		PaymentStatus:   models.SubscriptionPaymentPending,
		StartDate:       now.UnixMilli(),
		EndDate:         now.AddDate(0, 0, plan.DurationDays).UnixMilli(),
		Payment: models.SubscriptionPayment{
			Amount:   plan.Price,
			Currency: "INR",
		},
	}

	created, err := s.BaseServiceMongo.InsertOne(ctx, subscription)
	if err != nil {
		return nil, err
	}

	gatewayCtx, cancel := context.WithTimeout(ctx, gatewayTimeout)
	defer cancel()
	creds := platformCredentials()
	intent, err := s.gateway.CreateIntent(gatewayCtx, creds, plan.Price, "INR", created.ID.Hex(), map[string]interface{}{
		"subscriptionId": created.ID.Hex(),
		"userId":         userID.Hex(),
		"planKey":        plan.Key,
	})
	if err != nil {
		if delErr := s.BaseServiceMongo.DeleteById(ctx, created.ID); delErr != nil {
			logrus.WithFields(logrus.Fields{
				"subscription_id": created.ID.Hex(),
				"error":           delErr.Error(),
			}).Error("CreateOrder: Không thể xóa thuê bao sau khi cổng thanh toán lỗi")
		}
		return nil, common.NewError(common.ErrCodePaymentGateway, "Không thể tạo đơn thanh toán trên cổng thanh toán", common.StatusBadGateway, err)
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"payment.gatewayOrderId": intent.GatewayOrderID,
		},
	}
	updated, err := s.BaseServiceMongo.UpdateById(ctx, created.ID, updateData)
	if err != nil {
		return nil, err
	}

	return &subscriptiondto.SubscriptionCreateResult{
		Subscription: updated,
		PaymentOrder: intent,
		PaymentKey:   creds.KeyID,
	}, nil
}

// VerifyPayment xác minh chữ ký thanh toán thuê bao bằng secret của nền tảng.
// Sai chữ ký LUÔN bị từ chối, không thay đổi gì. Thành công: thuê bao chuyển
// active, paymentStatus completed và được gắn vào bản ghi người dùng.
func (s *SubscriptionService) VerifyPayment(ctx context.Context, input *subscriptiondto.SubscriptionVerifyPaymentInput) (*models.Subscription, error) {
	subscriptionID := utility.String2ObjectID(input.SubscriptionID)
	if subscriptionID.IsZero() {
		return nil, common.NewError(common.ErrCodeValidationFormat, "subscriptionId không hợp lệ", common.StatusBadRequest, nil)
	}
	subscription, err := s.BaseServiceMongo.FindOneById(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}

	if !s.gateway.VerifySignature(platformCredentials().KeySecret, input.RazorpayOrderID, input.RazorpayPaymentID, input.RazorpaySignature) {
		return nil, common.ErrInvalidSignature
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status":                   models.SubscriptionStatusActive,
			"paymentStatus":            models.SubscriptionPaymentCompleted,
			"payment.gatewayOrderId":   input.RazorpayOrderID,
			"payment.gatewayPaymentId": input.RazorpayPaymentID,
			"payment.gatewaySignature": input.RazorpaySignature,
		},
	}
	updated, err := s.BaseServiceMongo.UpdateById(ctx, subscriptionID, updateData)
	if err != nil {
		return nil, err
	}

	// Gắn thuê bao vào user; lỗi chỉ log, không fail xác minh đã thành công
	if err := s.userService.SetSubscription(ctx, subscription.UserID, subscriptionID); err != nil {
		logrus.WithFields(logrus.Fields{
			"subscription_id": subscriptionID.Hex(),
			"user_id":         subscription.UserID.Hex(),
			"error":           err.Error(),
		}).Error("VerifyPayment: Không thể gắn thuê bao vào user")
	}

	return &updated, nil
}

// Cancel hủy thuê bao (chỉ chủ thuê bao).
func (s *SubscriptionService) Cancel(ctx context.Context, userID primitive.ObjectID, subscriptionID primitive.ObjectID) (*models.Subscription, error) {
	subscription, err := s.BaseServiceMongo.FindOneById(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}
	if subscription.UserID != userID {
		return nil, common.ErrNotOwner
	}
	if subscription.Status == models.SubscriptionStatusCancelled {
		return nil, common.NewError(common.ErrCodeBusinessState, "Thuê bao đã bị hủy trước đó", common.StatusBadRequest, nil)
	}
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status": models.SubscriptionStatusCancelled,
		},
	}
	updated, err := s.BaseServiceMongo.UpdateById(ctx, subscriptionID, updateData)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// LinkRestaurant liên kết thuê bao đã mua với một nhà hàng của cùng người dùng.
// Nhà hàng đích không được có thuê bao active khác.
func (s *SubscriptionService) LinkRestaurant(ctx context.Context, userID primitive.ObjectID, input *subscriptiondto.SubscriptionLinkRestaurantInput) (*models.Subscription, error) {
	subscriptionID := utility.String2ObjectID(input.SubscriptionID)
	restaurantID := utility.String2ObjectID(input.RestaurantID)
	if subscriptionID.IsZero() || restaurantID.IsZero() {
		return nil, common.NewError(common.ErrCodeValidationFormat, "subscriptionId hoặc restaurantId không hợp lệ", common.StatusBadRequest, nil)
	}

	subscription, err := s.BaseServiceMongo.FindOneById(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}
	if subscription.UserID != userID {
		return nil, common.ErrNotOwner
	}
	if _, err := s.restaurantService.CheckOwnership(ctx, restaurantID, userID); err != nil {
		return nil, err
	}

	if subscription.Status == models.SubscriptionStatusActive {
		exists, err := s.hasActiveSubscription(ctx, restaurantID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, common.NewError(common.ErrCodeBusinessState, "Nhà hàng đã có thuê bao đang hiệu lực", common.StatusConflict, nil)
		}
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"restaurantId": restaurantID,
		},
	}
	updated, err := s.BaseServiceMongo.UpdateById(ctx, subscriptionID, updateData)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// CheckRestaurantOwnership kiểm tra nhà hàng có thuộc về người dùng không.
func (s *SubscriptionService) CheckRestaurantOwnership(ctx context.Context, restaurantID primitive.ObjectID, userID primitive.ObjectID) (restaurantmodels.Restaurant, error) {
	return s.restaurantService.CheckOwnership(ctx, restaurantID, userID)
}

// FindByRestaurant trả về các thuê bao của một nhà hàng, mới nhất trước.
func (s *SubscriptionService) FindByRestaurant(ctx context.Context, restaurantID primitive.ObjectID) ([]models.Subscription, error) {
	subscriptions, err := s.BaseServiceMongo.Find(ctx, bson.M{"restaurantId": restaurantID}, nil)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}
	return subscriptions, nil
}
