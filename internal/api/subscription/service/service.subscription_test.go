// Package subscriptionsvc - Test luồng mua thuê bao với store và gateway fake.
package subscriptionsvc

import (
	"context"
	"errors"
	"testing"

	basemodels "qr_dine/internal/api/base/models"
	restaurantmodels "qr_dine/internal/api/restaurant/models"
	subscriptiondto "qr_dine/internal/api/subscription/dto"
	models "qr_dine/internal/api/subscription/models"
	"qr_dine/config"
	"qr_dine/internal/common"
	"qr_dine/internal/global"
	"qr_dine/internal/payment"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// fakeSubscriptionStore triển khai BaseServiceMongo[models.Subscription]
// trong bộ nhớ, ghi lại insert/delete và giả lập thuê bao active tồn tại.
type fakeSubscriptionStore struct {
	activeExists bool
	inserted     []models.Subscription
	deletedIDs   []primitive.ObjectID
}

func (f *fakeSubscriptionStore) InsertOne(ctx context.Context, data models.Subscription) (models.Subscription, error) {
	if data.ID.IsZero() {
		data.ID = primitive.NewObjectID()
	}
	f.inserted = append(f.inserted, data)
	return data, nil
}

func (f *fakeSubscriptionStore) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (models.Subscription, error) {
	return models.Subscription{}, common.ErrNotFound
}

func (f *fakeSubscriptionStore) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]models.Subscription, error) {
	return nil, common.ErrNotFound
}

func (f *fakeSubscriptionStore) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (models.Subscription, error) {
	return models.Subscription{}, common.ErrNotFound
}

func (f *fakeSubscriptionStore) DeleteOne(ctx context.Context, filter interface{}) error {
	return nil
}

func (f *fakeSubscriptionStore) FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts *options.FindOneAndUpdateOptions) (models.Subscription, error) {
	return models.Subscription{}, common.ErrNotFound
}

func (f *fakeSubscriptionStore) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	return int64(len(f.inserted)), nil
}

func (f *fakeSubscriptionStore) Aggregate(ctx context.Context, pipeline interface{}) ([]bson.M, error) {
	return nil, nil
}

func (f *fakeSubscriptionStore) FindOneById(ctx context.Context, id primitive.ObjectID) (models.Subscription, error) {
	for _, s := range f.inserted {
		if s.ID == id {
			return s, nil
		}
	}
	return models.Subscription{}, common.ErrNotFound
}

func (f *fakeSubscriptionStore) FindManyByIds(ctx context.Context, ids []primitive.ObjectID) ([]models.Subscription, error) {
	return nil, common.ErrNotFound
}

func (f *fakeSubscriptionStore) FindWithPagination(ctx context.Context, filter interface{}, page, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[models.Subscription], error) {
	return nil, common.ErrNotFound
}

func (f *fakeSubscriptionStore) UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (models.Subscription, error) {
	return f.FindOneById(ctx, id)
}

func (f *fakeSubscriptionStore) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

func (f *fakeSubscriptionStore) Upsert(ctx context.Context, filter interface{}, data interface{}) (models.Subscription, error) {
	return models.Subscription{}, common.ErrNotFound
}

func (f *fakeSubscriptionStore) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	return f.activeExists, nil
}

// fakeRestaurantStore trả về một nhà hàng cố định thuộc về mọi người dùng.
type fakeRestaurantStore struct {
	restaurant restaurantmodels.Restaurant
}

func (f *fakeRestaurantStore) FindOneById(ctx context.Context, id primitive.ObjectID) (restaurantmodels.Restaurant, error) {
	return f.restaurant, nil
}

func (f *fakeRestaurantStore) CheckOwnership(ctx context.Context, restaurantID primitive.ObjectID, userID primitive.ObjectID) (restaurantmodels.Restaurant, error) {
	return f.restaurant, nil
}

// fakeUserStore ghi lại lần gắn thuê bao vào user.
type fakeUserStore struct {
	linkedSubscriptions []primitive.ObjectID
}

func (f *fakeUserStore) SetSubscription(ctx context.Context, userID primitive.ObjectID, subscriptionID primitive.ObjectID) error {
	f.linkedSubscriptions = append(f.linkedSubscriptions, subscriptionID)
	return nil
}

// fakeGateway ghi lại các lần gọi, có thể cấu hình trả lỗi.
type fakeGateway struct {
	createCalls int
	failCreate  bool
}

func (f *fakeGateway) CreateIntent(ctx context.Context, creds payment.Credentials, amount float64, currency string, receipt string, notes map[string]interface{}) (*payment.Intent, error) {
	f.createCalls++
	if f.failCreate {
		return nil, errors.New("gateway down")
	}
	return &payment.Intent{
		GatewayOrderID: "order_fake",
		Amount:         payment.MinorUnits(amount),
		Currency:       currency,
		KeyID:          creds.KeyID,
	}, nil
}

func (f *fakeGateway) VerifySignature(keySecret string, gatewayOrderID string, gatewayPaymentID string, signature string) bool {
	return false
}

func setupPlatformConfig(t *testing.T) {
	t.Helper()
	old := global.MongoDB_ServerConfig
	global.MongoDB_ServerConfig = &config.Configuration{
		RazorpayKeyID:     "rzp_platform_key",
		RazorpayKeySecret: "rzp_platform_secret",
	}
	t.Cleanup(func() { global.MongoDB_ServerConfig = old })
}

func newTestSubscriptionService(store *fakeSubscriptionStore, gateway *fakeGateway) *SubscriptionService {
	return &SubscriptionService{
		BaseServiceMongo: store,
		restaurantService: &fakeRestaurantStore{restaurant: restaurantmodels.Restaurant{
			ID:   primitive.NewObjectID(),
			Name: "Quán Phở Test",
		}},
		userService: &fakeUserStore{},
		gateway:     gateway,
	}
}

func TestCreateOrder_TuChoiKhiNhaHangDaCoThueBaoActive(t *testing.T) {
	setupPlatformConfig(t)
	store := &fakeSubscriptionStore{activeExists: true}
	gateway := &fakeGateway{}
	svc := newTestSubscriptionService(store, gateway)

	_, err := svc.CreateOrder(context.Background(), primitive.NewObjectID(), &subscriptiondto.SubscriptionCreateInput{
		PlanKey:      "basic",
		RestaurantID: primitive.NewObjectID().Hex(),
	})
	if err == nil {
		t.Fatal("Nhà hàng đã có thuê bao active mà CreateOrder vẫn thành công")
	}
	var appErr *common.Error
	if !errors.As(err, &appErr) || appErr.StatusCode != common.StatusConflict {
		t.Errorf("Lỗi trả về phải là Conflict, được %v", err)
	}
	if len(store.inserted) != 0 {
		t.Errorf("Không được lưu thuê bao khi xung đột, có %d bản ghi", len(store.inserted))
	}
	if gateway.createCalls != 0 {
		t.Errorf("Không được gọi cổng thanh toán khi xung đột, được gọi %d lần", gateway.createCalls)
	}
}

func TestCreateOrder_XoaThueBaoKhiCongThanhToanLoi(t *testing.T) {
	setupPlatformConfig(t)
	store := &fakeSubscriptionStore{}
	gateway := &fakeGateway{failCreate: true}
	svc := newTestSubscriptionService(store, gateway)

	_, err := svc.CreateOrder(context.Background(), primitive.NewObjectID(), &subscriptiondto.SubscriptionCreateInput{
		PlanKey: "premium",
	})
	if err == nil {
		t.Fatal("Cổng thanh toán lỗi mà CreateOrder vẫn thành công")
	}
	var appErr *common.Error
	if !errors.As(err, &appErr) || appErr.StatusCode != common.StatusBadGateway {
		t.Errorf("Lỗi trả về phải là BadGateway, được %v", err)
	}
	if len(store.inserted) != 1 {
		t.Fatalf("Thuê bao pending phải được lưu trước khi gọi cổng, có %d bản ghi", len(store.inserted))
	}
	if len(store.deletedIDs) != 1 || store.deletedIDs[0] != store.inserted[0].ID {
		t.Errorf("Thuê bao vừa tạo phải bị xóa khi cổng thanh toán lỗi, deletedIDs = %v", store.deletedIDs)
	}
}

func TestCreateOrder_ThanhCongTraVeIntentVaKeyNenTang(t *testing.T) {
	setupPlatformConfig(t)
	store := &fakeSubscriptionStore{}
	gateway := &fakeGateway{}
	svc := newTestSubscriptionService(store, gateway)

	result, err := svc.CreateOrder(context.Background(), primitive.NewObjectID(), &subscriptiondto.SubscriptionCreateInput{
		PlanKey: "basic",
	})
	if err != nil {
		t.Fatalf("CreateOrder lỗi: %v", err)
	}
	if result.PaymentOrder == nil || result.PaymentOrder.GatewayOrderID != "order_fake" {
		t.Errorf("Thiếu intent thanh toán trong kết quả: %+v", result.PaymentOrder)
	}
	if result.PaymentKey != "rzp_platform_key" {
		t.Errorf("PaymentKey phải là key của nền tảng, được %q", result.PaymentKey)
	}
	if len(store.deletedIDs) != 0 {
		t.Errorf("Không được xóa thuê bao khi tạo intent thành công, deletedIDs = %v", store.deletedIDs)
	}
}
