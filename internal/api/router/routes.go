package router

import (
	"github.com/gofiber/fiber/v3"

	"qr_dine/internal/api/middleware"
)

// ============================================================================
// ⚠️ QUAN TRỌNG: BUG FIBER V3 - CÁCH ĐĂNG KÝ MIDDLEWARE
// ============================================================================
//
// Fiber v3 có bug với cách đăng ký middleware trực tiếp trong route:
// middleware sẽ KHÔNG được gọi nếu truyền trực tiếp vào router.Get/Post/...
//
// ❌ CÁCH SAI (KHÔNG HOẠT ĐỘNG):
//    router.Get("/path", middleware.AuthMiddleware(), handler)
//
// ✅ CÁCH ĐÚNG (PHẢI DÙNG):
//    authMiddleware := middleware.AuthMiddleware()
//    RegisterRouteWithMiddleware(router, "/prefix", "GET", "/path", []fiber.Handler{authMiddleware}, handler)
//    → Middleware được đăng ký qua group .Use() nên luôn được gọi.
//
// ============================================================================

// CRUDHandler định nghĩa interface cho các handler CRUD
type CRUDHandler interface {
	InsertOne(c fiber.Ctx) error
	Find(c fiber.Ctx) error
	FindOneById(c fiber.Ctx) error
	FindWithPagination(c fiber.Ctx) error
	UpdateById(c fiber.Ctx) error
	DeleteById(c fiber.Ctx) error
	CountDocuments(c fiber.Ctx) error
}

// Router quản lý việc định tuyến cho API
type Router struct {
	app *fiber.App
}

// CRUDConfig cấu hình các operation được phép cho mỗi collection
type CRUDConfig struct {
	InsOne   bool // Insert One
	Find     bool // Find All
	FindById bool // Find By Id
	Paginate bool // Find With Pagination
	UpdById  bool // Update By Id
	DelById  bool // Delete By Id
	Count    bool // Count Documents
}

// Config cho từng collection. Các domain dùng chung: ReadOnlyConfig, ReadWriteConfig.
var (
	// ReadOnlyConfig chỉ cho phép đọc (find, find-by-id, paginate, count).
	ReadOnlyConfig = CRUDConfig{
		InsOne: false,
		Find:   true, FindById: true, Paginate: true,
		UpdById: false, DelById: false,
		Count: true,
	}

	// ReadWriteConfig cho phép đầy đủ CRUD.
	ReadWriteConfig = CRUDConfig{
		InsOne: true,
		Find:   true, FindById: true, Paginate: true,
		UpdById: true, DelById: true,
		Count: true,
	}
)

// RoutePrefix chứa các prefix cơ bản cho API
type RoutePrefix struct {
	Base string // Prefix cơ bản (/api)
	V1   string // Prefix cho API version 1 (/api/v1)
}

// NewRoutePrefix tạo mới một instance của RoutePrefix với các giá trị mặc định
func NewRoutePrefix() RoutePrefix {
	base := "/api"
	return RoutePrefix{
		Base: base,
		V1:   base + "/v1",
	}
}

// NewRouter tạo mới một instance của Router
func NewRouter(app *fiber.App) *Router {
	return &Router{
		app: app,
	}
}

// RegisterRouteWithMiddleware đăng ký route với middleware qua group .Use()
// (cách duy nhất hoạt động đúng trong Fiber v3 — xem comment đầu file).
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	// Tạo group với prefix, middleware chỉ áp dụng cho routes trong group này
	routeGroup := router.Group(prefix)
	for _, mw := range middlewares {
		routeGroup.Use(mw)
	}

	switch method {
	case "GET":
		routeGroup.Get(path, handler)
	case "POST":
		routeGroup.Post(path, handler)
	case "PUT":
		routeGroup.Put(path, handler)
	case "PATCH":
		routeGroup.Patch(path, handler)
	case "DELETE":
		routeGroup.Delete(path, handler)
	}
}

// RegisterCRUDRoutes đăng ký các route CRUD cho một collection.
// Tất cả route CRUD đều yêu cầu đăng nhập; các endpoint public của từng
// domain (menu công khai, theo dõi đơn) do domain router tự đăng ký.
func (r *Router) RegisterCRUDRoutes(router fiber.Router, prefix string, h CRUDHandler, config CRUDConfig) {
	authMiddleware := middleware.AuthMiddleware()

	if config.InsOne {
		RegisterRouteWithMiddleware(router, prefix, "POST", "/insert-one", []fiber.Handler{authMiddleware}, h.InsertOne)
	}
	if config.Find {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/find", []fiber.Handler{authMiddleware}, h.Find)
	}
	if config.FindById {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/find-by-id/:id", []fiber.Handler{authMiddleware}, h.FindOneById)
	}
	if config.Paginate {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/find-with-pagination", []fiber.Handler{authMiddleware}, h.FindWithPagination)
	}
	if config.UpdById {
		RegisterRouteWithMiddleware(router, prefix, "PUT", "/update-by-id/:id", []fiber.Handler{authMiddleware}, h.UpdateById)
	}
	if config.DelById {
		RegisterRouteWithMiddleware(router, prefix, "DELETE", "/delete-by-id/:id", []fiber.Handler{authMiddleware}, h.DeleteById)
	}
	if config.Count {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/count", []fiber.Handler{authMiddleware}, h.CountDocuments)
	}
}

// RegisterFunc là hàm đăng ký route của một domain (do domain/router export).
type RegisterFunc func(v1 fiber.Router, r *Router) error

// SetupRoutes thiết lập tất cả các route cho ứng dụng.
// Caller truyền lần lượt Register của từng domain để tránh import cycle.
func SetupRoutes(app *fiber.App, regs ...RegisterFunc) error {
	prefix := NewRoutePrefix()
	v1 := app.Group(prefix.V1)
	r := NewRouter(app)
	for _, reg := range regs {
		if err := reg(v1, r); err != nil {
			return err
		}
	}
	return nil
}
