// Package restaurantsvc - service nhà hàng (Restaurant).
package restaurantsvc

import (
	"context"
	"errors"
	"fmt"

	basesvc "qr_dine/internal/api/base/service"
	restaurantdto "qr_dine/internal/api/restaurant/dto"
	models "qr_dine/internal/api/restaurant/models"
	"qr_dine/internal/common"
	"qr_dine/internal/global"
	"qr_dine/internal/utility"

	"github.com/sirupsen/logrus"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RestaurantService là cấu trúc chứa các phương thức liên quan đến nhà hàng
type RestaurantService struct {
	*basesvc.BaseServiceMongoImpl[models.Restaurant]
}

// NewRestaurantService tạo mới RestaurantService
func NewRestaurantService() (*RestaurantService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Restaurants)
	if !exist {
		return nil, fmt.Errorf("failed to get restaurants collection: %v", common.ErrNotFound)
	}
	return &RestaurantService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Restaurant](collection),
	}, nil
}

// menuLink trả về link menu công khai được mã hóa trong QR code.
func menuLink(restaurantID primitive.ObjectID) string {
	return fmt.Sprintf("%s/menu/%s", global.MongoDB_ServerConfig.FrontendURL, restaurantID.Hex())
}

// Create tạo nhà hàng mới cho chủ sở hữu.
// Mỗi chủ chỉ được có một nhà hàng: kiểm tra trước khi tạo, trả Conflict nếu đã có.
// ID được sinh trước để QR code mã hóa được link menu ngay khi insert.
func (s *RestaurantService) Create(ctx context.Context, ownerID primitive.ObjectID, input *restaurantdto.RestaurantCreateInput) (*models.Restaurant, error) {
	_, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"ownerId": ownerID}, nil)
	if err == nil {
		return nil, common.NewError(common.ErrCodeBusinessState, "Mỗi tài khoản chỉ được tạo một nhà hàng", common.StatusConflict, nil)
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	restaurant := models.Restaurant{
		ID:         primitive.NewObjectID(),
		OwnerID:    ownerID,
		Name:       input.Name,
		Address:    input.Address,
		Phone:      input.Phone,
		Categories: []primitive.ObjectID{},
	}

	qrDataURL, err := utility.GenerateQRDataURL(menuLink(restaurant.ID), 256)
	if err != nil {
		logrus.WithError(err).Error("Create: Lỗi sinh QR code cho nhà hàng")
		return nil, err
	}
	restaurant.QRCode = qrDataURL

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, restaurant)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// FindByOwner tìm nhà hàng theo chủ sở hữu.
func (s *RestaurantService) FindByOwner(ctx context.Context, ownerID primitive.ObjectID) (models.Restaurant, error) {
	return s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"ownerId": ownerID}, nil)
}

// CheckOwnership xác nhận nhà hàng thuộc về người dùng, trả về nhà hàng nếu đúng.
func (s *RestaurantService) CheckOwnership(ctx context.Context, restaurantID primitive.ObjectID, userID primitive.ObjectID) (models.Restaurant, error) {
	restaurant, err := s.BaseServiceMongoImpl.FindOneById(ctx, restaurantID)
	if err != nil {
		return restaurant, err
	}
	if restaurant.OwnerID != userID {
		return restaurant, common.ErrNotOwner
	}
	return restaurant, nil
}

// ConnectRazorpay lưu thông tin gateway riêng của nhà hàng và bật cổng thanh toán.
// Chỉ chủ nhà hàng mới được thao tác.
func (s *RestaurantService) ConnectRazorpay(ctx context.Context, restaurantID primitive.ObjectID, userID primitive.ObjectID, input *restaurantdto.RazorpayConnectInput) (*models.Restaurant, error) {
	if _, err := s.CheckOwnership(ctx, restaurantID, userID); err != nil {
		return nil, err
	}
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"razorpay.keyId":       input.KeyID,
			"razorpay.keySecret":   input.KeySecret,
			"razorpay.isConnected": true,
		},
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, restaurantID, updateData)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DisconnectRazorpay tắt cổng thanh toán và xóa credentials đã lưu.
func (s *RestaurantService) DisconnectRazorpay(ctx context.Context, restaurantID primitive.ObjectID, userID primitive.ObjectID) (*models.Restaurant, error) {
	if _, err := s.CheckOwnership(ctx, restaurantID, userID); err != nil {
		return nil, err
	}
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"razorpay.isConnected": false,
		},
		Unset: map[string]interface{}{
			"razorpay.keyId":     "",
			"razorpay.keySecret": "",
		},
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, restaurantID, updateData)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// RegenerateQR sinh lại QR code menu (dùng khi đổi FrontendURL).
func (s *RestaurantService) RegenerateQR(ctx context.Context, restaurantID primitive.ObjectID, userID primitive.ObjectID) (*models.Restaurant, error) {
	if _, err := s.CheckOwnership(ctx, restaurantID, userID); err != nil {
		return nil, err
	}
	qrDataURL, err := utility.GenerateQRDataURL(menuLink(restaurantID), 256)
	if err != nil {
		return nil, err
	}
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"qrCode": qrDataURL,
		},
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, restaurantID, updateData)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
