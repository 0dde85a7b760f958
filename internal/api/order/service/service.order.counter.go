// Package ordersvc - service đơn hàng và bộ đếm số thứ tự.
package ordersvc

import (
	"context"
	"fmt"
	"time"

	basesvc "qr_dine/internal/api/base/service"
	models "qr_dine/internal/api/order/models"
	"qr_dine/internal/common"
	"qr_dine/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CounterService cấp số thứ tự đơn theo nhà hàng và ngày.
// Mỗi lần gọi Next tăng atomic bộ đếm bằng FindOneAndUpdate $inc + upsert,
// nên hai request tạo đơn đồng thời không bao giờ nhận trùng số.
type CounterService struct {
	*basesvc.BaseServiceMongoImpl[models.OrderCounter]
}

// NewCounterService tạo mới CounterService
func NewCounterService() (*CounterService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.OrderCounters)
	if !exist {
		return nil, fmt.Errorf("failed to get order_counters collection: %v", common.ErrNotFound)
	}
	return &CounterService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.OrderCounter](collection),
	}, nil
}

// QueueCounterKey trả về key bộ đếm cho một nhà hàng trong một ngày (giờ local).
func QueueCounterKey(restaurantID primitive.ObjectID, t time.Time) string {
	return fmt.Sprintf("order_queue:%s:%s", restaurantID.Hex(), t.Format("20060102"))
}

// Next cấp số thứ tự tiếp theo cho nhà hàng trong ngày chứa t.
// Số bắt đầu từ 1, liên tục trong ngày, reset sang ngày mới nhờ key theo ngày.
func (s *CounterService) Next(ctx context.Context, restaurantID primitive.ObjectID, t time.Time) (int64, error) {
	key := QueueCounterKey(restaurantID, t)
	update := &basesvc.UpdateData{
		Inc: map[string]interface{}{
			"seq": int64(1),
		},
		SetOnInsert: map[string]interface{}{
			"createdAt": time.Now().UnixMilli(),
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	counter, err := s.BaseServiceMongoImpl.FindOneAndUpdate(ctx, bson.M{"key": key}, update, opts)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}
