// Package ordersvc - Test luồng tạo đơn với store và gateway fake.
package ordersvc

import (
	"context"
	"errors"
	"testing"
	"time"

	basemodels "qr_dine/internal/api/base/models"
	menumodels "qr_dine/internal/api/menu/models"
	orderdto "qr_dine/internal/api/order/dto"
	models "qr_dine/internal/api/order/models"
	restaurantmodels "qr_dine/internal/api/restaurant/models"
	"qr_dine/internal/common"
	"qr_dine/internal/payment"
	"qr_dine/internal/realtime"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// fakeOrderStore triển khai BaseServiceMongo[models.Order] trong bộ nhớ,
// ghi lại các lần xóa để kiểm tra compensating delete.
type fakeOrderStore struct {
	inserted   []models.Order
	deletedIDs []primitive.ObjectID
}

func (f *fakeOrderStore) InsertOne(ctx context.Context, data models.Order) (models.Order, error) {
	if data.ID.IsZero() {
		data.ID = primitive.NewObjectID()
	}
	f.inserted = append(f.inserted, data)
	return data, nil
}

func (f *fakeOrderStore) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (models.Order, error) {
	return models.Order{}, common.ErrNotFound
}

func (f *fakeOrderStore) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]models.Order, error) {
	return nil, common.ErrNotFound
}

func (f *fakeOrderStore) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (models.Order, error) {
	return models.Order{}, common.ErrNotFound
}

func (f *fakeOrderStore) DeleteOne(ctx context.Context, filter interface{}) error {
	return nil
}

func (f *fakeOrderStore) FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts *options.FindOneAndUpdateOptions) (models.Order, error) {
	return models.Order{}, common.ErrNotFound
}

func (f *fakeOrderStore) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	return int64(len(f.inserted)), nil
}

func (f *fakeOrderStore) Aggregate(ctx context.Context, pipeline interface{}) ([]bson.M, error) {
	return nil, nil
}

func (f *fakeOrderStore) FindOneById(ctx context.Context, id primitive.ObjectID) (models.Order, error) {
	for _, o := range f.inserted {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, common.ErrNotFound
}

func (f *fakeOrderStore) FindManyByIds(ctx context.Context, ids []primitive.ObjectID) ([]models.Order, error) {
	return nil, common.ErrNotFound
}

func (f *fakeOrderStore) FindWithPagination(ctx context.Context, filter interface{}, page, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[models.Order], error) {
	return nil, common.ErrNotFound
}

func (f *fakeOrderStore) UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (models.Order, error) {
	return f.FindOneById(ctx, id)
}

func (f *fakeOrderStore) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

func (f *fakeOrderStore) Upsert(ctx context.Context, filter interface{}, data interface{}) (models.Order, error) {
	return models.Order{}, common.ErrNotFound
}

func (f *fakeOrderStore) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	return false, nil
}

// fakeMenuItemStore chỉ phục vụ FindOneById, giá có thể đổi giữa chừng
// để kiểm tra snapshot.
type fakeMenuItemStore struct {
	fakeStoreStub[menumodels.MenuItem]
	items map[primitive.ObjectID]*menumodels.MenuItem
}

func (f *fakeMenuItemStore) FindOneById(ctx context.Context, id primitive.ObjectID) (menumodels.MenuItem, error) {
	if item, ok := f.items[id]; ok {
		return *item, nil
	}
	return menumodels.MenuItem{}, common.ErrNotFound
}

// fakeStoreStub cung cấp toàn bộ method của BaseServiceMongo trả ErrNotFound,
// fake cụ thể override những method nó cần.
type fakeStoreStub[T any] struct{}

func (fakeStoreStub[T]) InsertOne(ctx context.Context, data T) (T, error) {
	var zero T
	return zero, common.ErrNotFound
}
func (fakeStoreStub[T]) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (T, error) {
	var zero T
	return zero, common.ErrNotFound
}
func (fakeStoreStub[T]) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error) {
	return nil, common.ErrNotFound
}
func (fakeStoreStub[T]) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (T, error) {
	var zero T
	return zero, common.ErrNotFound
}
func (fakeStoreStub[T]) DeleteOne(ctx context.Context, filter interface{}) error {
	return common.ErrNotFound
}
func (fakeStoreStub[T]) FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts *options.FindOneAndUpdateOptions) (T, error) {
	var zero T
	return zero, common.ErrNotFound
}
func (fakeStoreStub[T]) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	return 0, nil
}
func (fakeStoreStub[T]) Aggregate(ctx context.Context, pipeline interface{}) ([]bson.M, error) {
	return nil, nil
}
func (fakeStoreStub[T]) FindOneById(ctx context.Context, id primitive.ObjectID) (T, error) {
	var zero T
	return zero, common.ErrNotFound
}
func (fakeStoreStub[T]) FindManyByIds(ctx context.Context, ids []primitive.ObjectID) ([]T, error) {
	return nil, common.ErrNotFound
}
func (fakeStoreStub[T]) FindWithPagination(ctx context.Context, filter interface{}, page, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[T], error) {
	return nil, common.ErrNotFound
}
func (fakeStoreStub[T]) UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (T, error) {
	var zero T
	return zero, common.ErrNotFound
}
func (fakeStoreStub[T]) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	return common.ErrNotFound
}
func (fakeStoreStub[T]) Upsert(ctx context.Context, filter interface{}, data interface{}) (T, error) {
	var zero T
	return zero, common.ErrNotFound
}
func (fakeStoreStub[T]) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	return false, nil
}

// fakeRestaurantStore trả về một nhà hàng cố định.
type fakeRestaurantStore struct {
	restaurant restaurantmodels.Restaurant
}

func (f *fakeRestaurantStore) FindOneById(ctx context.Context, id primitive.ObjectID) (restaurantmodels.Restaurant, error) {
	return f.restaurant, nil
}

func (f *fakeRestaurantStore) CheckOwnership(ctx context.Context, restaurantID primitive.ObjectID, userID primitive.ObjectID) (restaurantmodels.Restaurant, error) {
	return f.restaurant, nil
}

// fakeCounter cấp số thứ tự cố định.
type fakeCounter struct{ next int64 }

func (f *fakeCounter) Next(ctx context.Context, restaurantID primitive.ObjectID, t time.Time) (int64, error) {
	return f.next, nil
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

func newTestOrderService(store *fakeOrderStore, menuStore *fakeMenuItemStore, gateway *fakeGateway, restaurant restaurantmodels.Restaurant) *OrderService {
	return &OrderService{
		BaseServiceMongo:  store,
		restaurantService: &fakeRestaurantStore{restaurant: restaurant},
		menuItemService:   menuStore,
		counterService:    &fakeCounter{next: 1},
		gateway:           gateway,
		broadcaster:       realtime.NopBroadcaster{},
		mailer:            nil,
	}
}

func testRestaurant(id primitive.ObjectID) restaurantmodels.Restaurant {
	return restaurantmodels.Restaurant{
		ID:   id,
		Name: "Quán Phở Test",
		Razorpay: restaurantmodels.RazorpayConfig{
			KeyID:       "rzp_test_key",
			KeySecret:   "rzp_test_secret",
			IsConnected: true,
		},
	}
}

func TestCreate_XoaDonKhiCongThanhToanLoi(t *testing.T) {
	restaurantID := primitive.NewObjectID()
	itemID := primitive.NewObjectID()
	store := &fakeOrderStore{}
	menuStore := &fakeMenuItemStore{items: map[primitive.ObjectID]*menumodels.MenuItem{
		itemID: {ID: itemID, RestaurantID: restaurantID, Name: "Phở bò", Price: 50},
	}}
	gateway := &fakeGateway{failCreate: true}
	svc := newTestOrderService(store, menuStore, gateway, testRestaurant(restaurantID))

	_, err := svc.Create(context.Background(), &orderdto.OrderCreateInput{
		RestaurantID: restaurantID.Hex(),
		Customer:     orderdto.OrderCustomerInput{Name: "Khách", Phone: "0901234567"},
		Items:        []orderdto.OrderItemInput{{MenuItemID: itemID.Hex(), Quantity: 1}},
	})
	if err == nil {
		t.Fatal("Cổng thanh toán lỗi mà Create vẫn thành công")
	}
	var appErr *common.Error
	if !errors.As(err, &appErr) || appErr.StatusCode != common.StatusBadGateway {
		t.Errorf("Lỗi trả về phải là BadGateway, được %v", err)
	}

	if len(store.inserted) != 1 {
		t.Fatalf("Đơn phải được lưu trước khi gọi cổng thanh toán, có %d bản ghi", len(store.inserted))
	}
	if len(store.deletedIDs) != 1 || store.deletedIDs[0] != store.inserted[0].ID {
		t.Errorf("Đơn vừa tạo phải bị xóa khi cổng thanh toán lỗi, deletedIDs = %v", store.deletedIDs)
	}
}

func TestCreate_SnapshotGiaMonTaiThoiDiemTao(t *testing.T) {
	restaurantID := primitive.NewObjectID()
	itemID := primitive.NewObjectID()
	store := &fakeOrderStore{}
	menuItem := &menumodels.MenuItem{ID: itemID, RestaurantID: restaurantID, Name: "Phở bò", Price: 50}
	menuStore := &fakeMenuItemStore{items: map[primitive.ObjectID]*menumodels.MenuItem{itemID: menuItem}}
	gateway := &fakeGateway{}
	svc := newTestOrderService(store, menuStore, gateway, testRestaurant(restaurantID))

	result, err := svc.Create(context.Background(), &orderdto.OrderCreateInput{
		RestaurantID: restaurantID.Hex(),
		Customer:     orderdto.OrderCustomerInput{Name: "Khách", Phone: "0901234567"},
		Items:        []orderdto.OrderItemInput{{MenuItemID: itemID.Hex(), Quantity: 3}},
	})
	if err != nil {
		t.Fatalf("Create lỗi: %v", err)
	}
	if result.Order.TotalAmount != 150 {
		t.Errorf("TotalAmount = %v, muốn 150 (3 x 50)", result.Order.TotalAmount)
	}

	// Đổi giá món sau khi tạo đơn: snapshot trong đơn không được thay đổi
	menuItem.Price = 99
	menuItem.Name = "Phở bò đặc biệt"
	saved := store.inserted[0]
	if saved.Items[0].Price != 50 || saved.Items[0].Name != "Phở bò" {
		t.Errorf("Snapshot món bị thay đổi theo menu: %+v", saved.Items[0])
	}
	if saved.TotalAmount != 150 {
		t.Errorf("TotalAmount snapshot bị thay đổi: %v", saved.TotalAmount)
	}

	if gateway.createCalls != 1 {
		t.Errorf("Cổng thanh toán phải được gọi đúng 1 lần, được %d", gateway.createCalls)
	}
	if len(store.deletedIDs) != 0 {
		t.Errorf("Không được xóa đơn khi thanh toán tạo thành công, deletedIDs = %v", store.deletedIDs)
	}
}
