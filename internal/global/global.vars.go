package global

import (
	"qr_dine/config"
	"qr_dine/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Users          string // Tên collection cho người dùng (chủ nhà hàng)
	Restaurants    string // Tên collection cho nhà hàng
	MenuCategories string // Tên collection cho danh mục món ăn
	MenuItems      string // Tên collection cho món ăn
	Orders         string // Tên collection cho đơn hàng
	OrderCounters  string // Tên collection cho bộ đếm số thứ tự đơn theo ngày
	Subscriptions  string // Tên collection cho gói thuê bao dashboard
}

// Các biến toàn cục
var Validate *validator.Validate               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName    // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
