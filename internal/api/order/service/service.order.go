package ordersvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	basemodels "qr_dine/internal/api/base/models"
	basesvc "qr_dine/internal/api/base/service"
	menumodels "qr_dine/internal/api/menu/models"
	orderdto "qr_dine/internal/api/order/dto"
	models "qr_dine/internal/api/order/models"
	restaurantmodels "qr_dine/internal/api/restaurant/models"
	restaurantsvc "qr_dine/internal/api/restaurant/service"
	"qr_dine/internal/common"
	"qr_dine/internal/global"
	"qr_dine/internal/mailer"
	"qr_dine/internal/payment"
	"qr_dine/internal/realtime"
	"qr_dine/internal/utility"

	"github.com/sirupsen/logrus"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// gatewayTimeout giới hạn thời gian chờ cổng thanh toán cho một request.
const gatewayTimeout = 10 * time.Second

// restaurantStore là phần của RestaurantService mà domain order cần,
// tách interface để test thay bằng fake.
type restaurantStore interface {
	FindOneById(ctx context.Context, id primitive.ObjectID) (restaurantmodels.Restaurant, error)
	CheckOwnership(ctx context.Context, restaurantID primitive.ObjectID, userID primitive.ObjectID) (restaurantmodels.Restaurant, error)
}

// queueCounter cấp số thứ tự atomic theo nhà hàng và ngày.
type queueCounter interface {
	Next(ctx context.Context, restaurantID primitive.ObjectID, t time.Time) (int64, error)
}

// OrderService là cấu trúc chứa các phương thức liên quan đến đơn hàng.
// Store, gateway, broadcaster và mailer đều đứng sau interface để service
// không phụ thuộc vào implementation cụ thể (test dùng fake).
type OrderService struct {
	basesvc.BaseServiceMongo[models.Order]
	restaurantService restaurantStore
	menuItemService   basesvc.BaseServiceMongo[menumodels.MenuItem]
	counterService    queueCounter
	gateway           payment.Gateway
	broadcaster       realtime.Broadcaster
	mailer            *mailer.Mailer
}

// NewOrderService tạo mới OrderService
func NewOrderService(gateway payment.Gateway, broadcaster realtime.Broadcaster, m *mailer.Mailer) (*OrderService, error) {
	orderCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Orders)
	if !exist {
		return nil, fmt.Errorf("failed to get orders collection: %v", common.ErrNotFound)
	}
	itemCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.MenuItems)
	if !exist {
		return nil, fmt.Errorf("failed to get menu_items collection: %v", common.ErrNotFound)
	}
	restaurantService, err := restaurantsvc.NewRestaurantService()
	if err != nil {
		return nil, fmt.Errorf("failed to create restaurant service: %v", err)
	}
	counterService, err := NewCounterService()
	if err != nil {
		return nil, fmt.Errorf("failed to create counter service: %v", err)
	}
	if broadcaster == nil {
		broadcaster = realtime.NopBroadcaster{}
	}
	return &OrderService{
		BaseServiceMongo:  basesvc.NewBaseServiceMongo[models.Order](orderCollection),
		restaurantService: restaurantService,
		menuItemService:   basesvc.NewBaseServiceMongo[menumodels.MenuItem](itemCollection),
		counterService:    counterService,
		gateway:           gateway,
		broadcaster:       broadcaster,
		mailer:            m,
	}, nil
}

// BuildOrderNumber sinh mã đơn ngắn dễ đọc: 6 chữ số cuối của unix-milli
// ghép với số thứ tự document zero-padded. Unique index trên orderNumber
// chặn trường hợp trùng hiếm gặp.
func BuildOrderNumber(unixMilli int64, docCount int64) string {
	return fmt.Sprintf("%06d%04d", unixMilli%1000000, docCount+1)
}

// Create tạo đơn hàng mới cho khách (không cần đăng nhập).
//
// Thứ tự các bước và đảm bảo:
//  1. Nhà hàng phải tồn tại và đã kết nối cổng thanh toán.
//  2. Mọi món trong đơn phải tồn tại; tên và giá được snapshot tại thời điểm này.
//  3. Số thứ tự cấp atomic qua CounterService (an toàn khi tạo đơn đồng thời).
//  4. Đơn được lưu trước, sau đó mới tạo intent trên cổng thanh toán bằng
//     credentials riêng của nhà hàng; nếu cổng lỗi thì xóa đơn (compensating
//     delete) để không còn đơn mồ côi.
func (s *OrderService) Create(ctx context.Context, input *orderdto.OrderCreateInput) (*orderdto.OrderCreateResult, error) {
	restaurantID := utility.String2ObjectID(input.RestaurantID)
	if restaurantID.IsZero() {
		return nil, common.NewError(common.ErrCodeValidationFormat, "restaurantId không hợp lệ", common.StatusBadRequest, nil)
	}
	restaurant, err := s.restaurantService.FindOneById(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if !restaurant.Razorpay.IsConnected {
		return nil, common.NewError(common.ErrCodeBusinessState, "Nhà hàng chưa cấu hình cổng thanh toán", common.StatusBadRequest, nil)
	}

	// Snapshot từng dòng món với giá hiện tại
	items := make([]models.OrderItem, 0, len(input.Items))
	var totalAmount float64
	for _, itemInput := range input.Items {
		menuItemID := utility.String2ObjectID(itemInput.MenuItemID)
		if menuItemID.IsZero() {
			return nil, common.NewError(common.ErrCodeValidationFormat, fmt.Sprintf("menuItemId không hợp lệ: %s", itemInput.MenuItemID), common.StatusBadRequest, nil)
		}
		menuItem, err := s.menuItemService.FindOneById(ctx, menuItemID)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return nil, common.NewError(common.ErrCodeValidationInput, fmt.Sprintf("Món không tồn tại: %s", itemInput.MenuItemID), common.StatusBadRequest, nil)
			}
			return nil, err
		}
		if menuItem.RestaurantID != restaurantID {
			return nil, common.NewError(common.ErrCodeValidationInput, fmt.Sprintf("Món không thuộc nhà hàng này: %s", itemInput.MenuItemID), common.StatusBadRequest, nil)
		}
		items = append(items, models.OrderItem{
			MenuItemID:          menuItem.ID,
			Name:                menuItem.Name,
			Price:               menuItem.Price,
			Quantity:            itemInput.Quantity,
			SpecialInstructions: itemInput.SpecialInstructions,
		})
		totalAmount += menuItem.Price * float64(itemInput.Quantity)
	}

	now := time.Now()
	queueNumber, err := s.counterService.Next(ctx, restaurantID, now)
	if err != nil {
		return nil, err
	}

	docCount, err := s.BaseServiceMongo.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	order := models.Order{
		RestaurantID:  restaurantID,
		OrderNumber:   BuildOrderNumber(now.UnixMilli(), docCount),
		QueueNumber:   queueNumber,
		Customer: models.CustomerInfo{
			Name:  input.Customer.Name,
			Phone: input.Customer.Phone,
			Email: input.Customer.Email,
		},
		Items:         items,
		TotalAmount:   totalAmount,
		Status:        models.OrderStatusPending,
		PaymentStatus: models.PaymentStatusPending,
		PaymentMethod: models.PaymentMethodRazorpay,
		TableNumber:   input.TableNumber,
		Notes:         input.Notes,
	}

	created, err := s.BaseServiceMongo.InsertOne(ctx, order)
	if err != nil {
		return nil, err
	}

	// Tạo intent trên cổng thanh toán bằng credentials riêng của nhà hàng
	gatewayCtx, cancel := context.WithTimeout(ctx, gatewayTimeout)
	defer cancel()
	intent, err := s.gateway.CreateIntent(gatewayCtx, payment.Credentials{
		KeyID:     restaurant.Razorpay.KeyID,
		KeySecret: restaurant.Razorpay.KeySecret,
	}, totalAmount, "INR", created.OrderNumber, map[string]interface{}{
		"orderId":      created.ID.Hex(),
		"restaurantId": restaurantID.Hex(),
	})
	if err != nil {
		// Compensating delete: không để lại đơn mồ côi khi cổng thanh toán lỗi
		if delErr := s.BaseServiceMongo.DeleteById(ctx, created.ID); delErr != nil {
			logrus.WithFields(logrus.Fields{
				"order_id": created.ID.Hex(),
				"error":    delErr.Error(),
			}).Error("Create: Không thể xóa đơn sau khi cổng thanh toán lỗi")
		}
		return nil, common.NewError(common.ErrCodePaymentGateway, "Không thể tạo đơn thanh toán trên cổng thanh toán", common.StatusBadGateway, err)
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"paymentDetails.gatewayOrderId": intent.GatewayOrderID,
			"paymentDetails.paymentGateway": models.PaymentMethodRazorpay,
		},
	}
	updated, err := s.BaseServiceMongo.UpdateById(ctx, created.ID, updateData)
	if err != nil {
		return nil, err
	}

	s.broadcaster.Publish(realtime.RestaurantChannel(restaurantID.Hex()), realtime.EventNewOrder, updated)

	return &orderdto.OrderCreateResult{
		Order:           updated,
		PaymentOrder:    intent,
		PaymentKey:      restaurant.Razorpay.KeyID,
		RequiresPayment: true,
	}, nil
}

// VerifyPayment xác minh chữ ký thanh toán của một đơn hàng.
// Chữ ký được kiểm lại bằng keySecret riêng của nhà hàng — đúng secret
// đã dùng để tạo intent. Sai chữ ký: trả lỗi, không thay đổi gì.
func (s *OrderService) VerifyPayment(ctx context.Context, input *orderdto.OrderVerifyPaymentInput) (*models.Order, error) {
	orderID := utility.String2ObjectID(input.OrderID)
	if orderID.IsZero() {
		return nil, common.NewError(common.ErrCodeValidationFormat, "orderId không hợp lệ", common.StatusBadRequest, nil)
	}
	order, err := s.BaseServiceMongo.FindOneById(ctx, orderID)
	if err != nil {
		return nil, err
	}
	restaurant, err := s.restaurantService.FindOneById(ctx, order.RestaurantID)
	if err != nil {
		return nil, err
	}

	if !s.gateway.VerifySignature(restaurant.Razorpay.KeySecret, input.RazorpayOrderID, input.RazorpayPaymentID, input.RazorpaySignature) {
		return nil, common.ErrInvalidSignature
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"paymentStatus":                   models.PaymentStatusPaid,
			"paymentDetails.gatewayOrderId":   input.RazorpayOrderID,
			"paymentDetails.gatewayPaymentId": input.RazorpayPaymentID,
			"paymentDetails.gatewaySignature": input.RazorpaySignature,
			"paymentDetails.paidAmount":       order.TotalAmount,
			"paymentDetails.paidAt":           time.Now().UnixMilli(),
			"paymentDetails.transactionId":    input.RazorpayPaymentID,
			"paymentDetails.paymentGateway":   models.PaymentMethodRazorpay,
		},
	}
	updated, err := s.BaseServiceMongo.UpdateById(ctx, orderID, updateData)
	if err != nil {
		return nil, err
	}

	s.broadcaster.Publish(realtime.RestaurantChannel(order.RestaurantID.Hex()), realtime.EventPaymentReceived, updated)

	// Email xác nhận best-effort, không bao giờ làm fail response
	if updated.Customer.Email != "" {
		body := fmt.Sprintf(
			"<p>Xin chào %s,</p><p>Thanh toán cho đơn <b>%s</b> tại %s đã được xác nhận.</p><p>Tổng tiền: %.2f. Số thứ tự của bạn: %d.</p>",
			updated.Customer.Name, updated.OrderNumber, restaurant.Name, updated.TotalAmount, updated.QueueNumber,
		)
		s.mailer.SendAsync(updated.Customer.Email, "Xác nhận thanh toán đơn "+updated.OrderNumber, body)
	}

	return &updated, nil
}

// UpdateStatus chuyển trạng thái đơn theo whitelist, chỉ chủ nhà hàng.
// Bước ghi dùng compare-and-swap: filter kèm trạng thái nguồn nên hai
// request chuyển trạng thái đồng thời chỉ có một request thắng.
func (s *OrderService) UpdateStatus(ctx context.Context, userID primitive.ObjectID, orderID primitive.ObjectID, input *orderdto.OrderStatusUpdateInput) (*models.Order, error) {
	order, err := s.BaseServiceMongo.FindOneById(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if _, err := s.restaurantService.CheckOwnership(ctx, order.RestaurantID, userID); err != nil {
		return nil, err
	}
	if err := ValidateTransition(order.Status, input.Status); err != nil {
		return nil, err
	}

	set := map[string]interface{}{
		"status": input.Status,
	}
	if input.EstimatedTime != nil {
		set["estimatedTime"] = *input.EstimatedTime
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	updated, err := s.BaseServiceMongo.FindOneAndUpdate(ctx,
		bson.M{"_id": orderID, "status": order.Status},
		&basesvc.UpdateData{Set: set},
		opts,
	)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// CAS thất bại: trạng thái đã bị thao tác khác thay đổi
			return nil, common.NewError(common.ErrCodeBusinessState, "Đơn hàng vừa được cập nhật bởi thao tác khác, vui lòng thử lại", common.StatusConflict, nil)
		}
		return nil, err
	}

	s.broadcaster.Publish(realtime.RestaurantChannel(order.RestaurantID.Hex()), realtime.EventOrderUpdated, updated)
	return &updated, nil
}

// StatsWindowStart trả về mốc bắt đầu (unix-milli) của kỳ thống kê.
// today: 0h local hôm nay; week: lùi 7 ngày; month: lùi 1 tháng theo ngày.
func StatsWindowStart(period string, now time.Time) (int64, error) {
	switch period {
	case "today":
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return start.UnixMilli(), nil
	case "week":
		return now.AddDate(0, 0, -7).UnixMilli(), nil
	case "month":
		return now.AddDate(0, -1, 0).UnixMilli(), nil
	}
	return 0, common.NewError(common.ErrCodeValidationInput, "Kỳ thống kê không hợp lệ, chấp nhận: today, week, month", common.StatusBadRequest, nil)
}

// Stats thống kê đơn hàng của nhà hàng theo kỳ (chỉ chủ nhà hàng).
// Gom nhóm theo trạng thái bằng aggregation pipeline, doanh thu là tổng
// totalAmount trên toàn bộ đơn trong kỳ. Chỉ đọc, không side effect.
func (s *OrderService) Stats(ctx context.Context, userID primitive.ObjectID, restaurantID primitive.ObjectID, period string) (*orderdto.OrderStatsResult, error) {
	if _, err := s.restaurantService.CheckOwnership(ctx, restaurantID, userID); err != nil {
		return nil, err
	}
	startMs, err := StatsWindowStart(period, time.Now())
	if err != nil {
		return nil, err
	}

	pipeline := []bson.M{
		{"$match": bson.M{
			"restaurantId": restaurantID,
			"createdAt":    bson.M{"$gte": startMs},
		}},
		{"$group": bson.M{
			"_id":    "$status",
			"count":  bson.M{"$sum": 1},
			"amount": bson.M{"$sum": "$totalAmount"},
		}},
	}
	rows, err := s.BaseServiceMongo.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	result := &orderdto.OrderStatsResult{
		Period:   period,
		ByStatus: map[string]orderdto.OrderStatusStat{},
	}
	for _, row := range rows {
		status, _ := row["_id"].(string)
		count := utility.P2Int64(row["count"])
		amount := utility.P2Float64(row["amount"])
		result.ByStatus[status] = orderdto.OrderStatusStat{Count: count, Amount: amount}
		result.TotalOrders += count
		result.Revenue += amount
	}
	return result, nil
}

// ListByRestaurant liệt kê đơn của nhà hàng có phân trang, lọc theo trạng thái
// nếu được cung cấp (chỉ chủ nhà hàng). Đơn mới nhất trước.
func (s *OrderService) ListByRestaurant(ctx context.Context, userID primitive.ObjectID, restaurantID primitive.ObjectID, status string, page, limit int64) (*basemodels.PaginateResult[models.Order], error) {
	if _, err := s.restaurantService.CheckOwnership(ctx, restaurantID, userID); err != nil {
		return nil, err
	}
	filter := bson.M{"restaurantId": restaurantID}
	if status != "" {
		filter["status"] = status
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.BaseServiceMongo.FindWithPagination(ctx, filter, page, limit, opts)
}

// FindByOrderNumber tìm đơn theo mã đơn (public, phục vụ trang theo dõi đơn của khách).
func (s *OrderService) FindByOrderNumber(ctx context.Context, orderNumber string) (models.Order, error) {
	return s.BaseServiceMongo.FindOne(ctx, bson.M{"orderNumber": orderNumber}, nil)
}
