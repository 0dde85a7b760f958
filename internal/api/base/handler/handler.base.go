// Package basehdl - base handlers cho các Fiber handler.
// Package này cung cấp các chức năng CRUD cơ bản và các tiện ích để xử lý request/response.
package basehdl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	basesvc "qr_dine/internal/api/base/service"
	"qr_dine/internal/common"
	"qr_dine/internal/global"
	"qr_dine/internal/utility"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// FilterOptions cấu hình validate filter từ query string
type FilterOptions struct {
	DeniedFields     []string // Các trường bị cấm filter
	AllowedOperators []string // Các operator MongoDB được phép
	MaxFields        int      // Số lượng field tối đa trong một filter
}

// BaseHandler là base handler cho các Fiber handler, cung cấp các chức năng CRUD cơ bản.
// Struct này sử dụng Generic Type để có thể tái sử dụng cho nhiều loại model khác nhau.
//
// Type parameters:
// - T: Kiểu dữ liệu của model
// - CreateInput: Kiểu dữ liệu của input khi tạo mới
// - UpdateInput: Kiểu dữ liệu của input khi cập nhật
type BaseHandler[T any, CreateInput any, UpdateInput any] struct {
	BaseService   basesvc.BaseServiceMongo[T] // Service xử lý logic nghiệp vụ với MongoDB
	filterOptions FilterOptions               // Cấu hình validate filter
}

// NewBaseHandler tạo mới một BaseHandler với BaseService được cung cấp
func NewBaseHandler[T any, CreateInput any, UpdateInput any](baseService basesvc.BaseServiceMongo[T]) *BaseHandler[T, CreateInput, UpdateInput] {
	return &BaseHandler[T, CreateInput, UpdateInput]{
		BaseService: baseService,
		filterOptions: FilterOptions{
			DeniedFields: []string{
				"password",
				"token",
				"tokens",
				"secret",
				"key",
				"hash",
				"razorpayKeySecret",
				"razorpay.keySecret",
				"payment.gatewaySignature",
				"paymentDetails.gatewaySignature",
			},
			AllowedOperators: []string{
				"$eq",
				"$gt",
				"$gte",
				"$lt",
				"$lte",
				"$in",
				"$nin",
				"$exists",
			},
			MaxFields: 10,
		},
	}
}

// ValidateInput thực hiện validate dữ liệu đầu vào theo struct tag `validate`
func (h *BaseHandler[T, CreateInput, UpdateInput]) ValidateInput(input interface{}) error {
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err)
	}
	return nil
}

// ParseRequestBody parse và validate dữ liệu từ request body.
// Sử dụng json.Decoder với UseNumber() để xử lý chính xác các số.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseRequestBody(c fiber.Ctx, input interface{}) error {
	body := c.Body()
	reader := bytes.NewReader(body)
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err)
	}

	return h.ValidateInput(input)
}

// ParseRequestParams parse và validate các tham số từ URI.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseRequestParams(c fiber.Ctx, input interface{}) error {
	if err := c.Bind().URI(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err)
	}

	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err)
	}

	return nil
}

// TransformCreateInputToModel chuyển DTO (CreateInput) sang Model (T)
// thông qua bson marshal/unmarshal — các field trùng tag bson được map tự động.
func (h *BaseHandler[T, CreateInput, UpdateInput]) TransformCreateInputToModel(input *CreateInput) (*T, error) {
	raw, err := bson.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("bson marshal input failed: %w", err)
	}
	model := new(T)
	if err := bson.Unmarshal(raw, model); err != nil {
		return nil, fmt.Errorf("bson unmarshal to model failed: %w", err)
	}
	return model, nil
}

// ProcessFilter xử lý và validate filter từ query string `filter` (JSON)
func (h *BaseHandler[T, CreateInput, UpdateInput]) ProcessFilter(c fiber.Ctx) (map[string]interface{}, error) {
	var filter map[string]interface{}

	filterStr := c.Query("filter", "{}")
	if err := json.Unmarshal([]byte(filterStr), &filter); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Filter không đúng định dạng JSON. Chi tiết lỗi: %v. Giá trị filter nhận được: %s", err, filterStr),
			common.StatusBadRequest,
			err,
		)
	}

	// Normalize filter: chuyển đổi các string ObjectId thành ObjectID
	filter = h.normalizeFilter(filter)

	if err := h.validateFilter(filter); err != nil {
		return nil, err
	}

	return filter, nil
}

// normalizeFilter chuyển đổi các string có format ObjectId thành ObjectID trong filter.
// Hỗ trợ các trường có tên kết thúc bằng "Id" hoặc "ID".
func (h *BaseHandler[T, CreateInput, UpdateInput]) normalizeFilter(filter map[string]interface{}) map[string]interface{} {
	if filter == nil {
		return filter
	}

	normalized := make(map[string]interface{})
	for field, value := range filter {
		fieldLower := strings.ToLower(field)
		isIDField := strings.HasSuffix(fieldLower, "id") && len(fieldLower) > 2

		normalized[field] = h.normalizeFilterValue(value, isIDField)
	}

	return normalized
}

// normalizeFilterValue chuyển đổi giá trị trong filter, hỗ trợ nested structures
func (h *BaseHandler[T, CreateInput, UpdateInput]) normalizeFilterValue(value interface{}, isIDField bool) interface{} {
	if value == nil {
		return value
	}

	if strValue, ok := value.(string); ok && isIDField {
		if primitive.IsValidObjectID(strValue) {
			objID, err := primitive.ObjectIDFromHex(strValue)
			if err == nil {
				return objID
			}
		}
		return strValue
	}

	if arrValue, ok := value.([]interface{}); ok {
		normalizedArr := make([]interface{}, len(arrValue))
		for i, item := range arrValue {
			normalizedArr[i] = h.normalizeFilterValue(item, isIDField)
		}
		return normalizedArr
	}

	// Map cho các operator như $in, $eq, xử lý đệ quy
	if mapValue, ok := value.(map[string]interface{}); ok {
		normalizedMap := make(map[string]interface{})
		for key, val := range mapValue {
			normalizedMap[key] = h.normalizeFilterValue(val, isIDField)
		}
		return normalizedMap
	}

	return value
}

// validateFilter kiểm tra tính hợp lệ của filter
func (h *BaseHandler[T, CreateInput, UpdateInput]) validateFilter(filter map[string]interface{}) error {
	if len(filter) > h.filterOptions.MaxFields {
		return common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Filter vượt quá số lượng trường cho phép. Tối đa %d trường, hiện tại có %d trường.", h.filterOptions.MaxFields, len(filter)),
			common.StatusBadRequest,
			nil,
		)
	}

	for field, value := range filter {
		// Các trường nhạy cảm không được phép filter
		if utility.Contains(h.filterOptions.DeniedFields, field) {
			return common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Trường '%s' không được phép sử dụng trong filter vì lý do bảo mật.", field),
				common.StatusBadRequest,
				nil,
			)
		}

		if mapValue, ok := value.(map[string]interface{}); ok {
			for op := range mapValue {
				if strings.HasPrefix(op, "$") && !utility.Contains(h.filterOptions.AllowedOperators, op) {
					return common.NewError(
						common.ErrCodeValidationFormat,
						fmt.Sprintf("Toán tử MongoDB '%s' không được phép sử dụng. Các toán tử được phép: %v", op, h.filterOptions.AllowedOperators),
						common.StatusBadRequest,
						nil,
					)
				}
			}
		}
	}

	return nil
}

// mongoOptions là cấu trúc options đơn giản parse từ query string
type mongoOptions struct {
	Projection map[string]interface{} `json:"projection"`
	Sort       map[string]interface{} `json:"sort"`
	Limit      int64                  `json:"limit"`
	Skip       int64                  `json:"skip"`
}

// parseSortMap chuyển sort map thành bson.D
func parseSortMap(sortMap map[string]interface{}) bson.D {
	sortBson := bson.D{}
	for field, value := range sortMap {
		sortBson = append(sortBson, bson.E{Key: field, Value: int(utility.P2Float64(value))})
	}
	return sortBson
}

// ProcessFindOptions xử lý options từ query string `options` (JSON) cho Find
func (h *BaseHandler[T, CreateInput, UpdateInput]) ProcessFindOptions(c fiber.Ctx) (*mongoopts.FindOptions, error) {
	raw, err := h.parseRawOptions(c)
	if err != nil {
		return nil, err
	}

	opts := mongoopts.Find()
	if len(raw.Projection) > 0 {
		opts.SetProjection(raw.Projection)
	}
	if len(raw.Sort) > 0 {
		opts.SetSort(parseSortMap(raw.Sort))
	}
	if raw.Limit > 0 {
		opts.SetLimit(raw.Limit)
	}
	if raw.Skip > 0 {
		opts.SetSkip(raw.Skip)
	}
	return opts, nil
}

// ProcessFindOneOptions xử lý options từ query string `options` (JSON) cho FindOne
func (h *BaseHandler[T, CreateInput, UpdateInput]) ProcessFindOneOptions(c fiber.Ctx) (*mongoopts.FindOneOptions, error) {
	raw, err := h.parseRawOptions(c)
	if err != nil {
		return nil, err
	}

	opts := mongoopts.FindOne()
	if len(raw.Projection) > 0 {
		opts.SetProjection(raw.Projection)
	}
	if len(raw.Sort) > 0 {
		opts.SetSort(parseSortMap(raw.Sort))
	}
	return opts, nil
}

func (h *BaseHandler[T, CreateInput, UpdateInput]) parseRawOptions(c fiber.Ctx) (*mongoOptions, error) {
	var raw mongoOptions

	optionsStr := c.Query("options", "{}")
	if err := json.Unmarshal([]byte(optionsStr), &raw); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Options không đúng định dạng JSON. Chi tiết lỗi: %v. Giá trị options nhận được: %s", err, optionsStr),
			common.StatusBadRequest,
			err,
		)
	}

	// Các trường nhạy cảm không được projection để tránh lộ dữ liệu
	for field := range raw.Projection {
		if utility.Contains(h.filterOptions.DeniedFields, field) {
			delete(raw.Projection, field)
		}
	}

	return &raw, nil
}

// ParsePagination lấy page và limit từ query string, có giá trị mặc định
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParsePagination(c fiber.Ctx) (int64, int64) {
	page := utility.P2Int64(c.Query("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit := utility.P2Int64(c.Query("limit", "10"))
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	return page, limit
}

// GetIDFromContext lấy ID từ URI params của request
func (h *BaseHandler[T, CreateInput, UpdateInput]) GetIDFromContext(c fiber.Ctx) string {
	return c.Params("id")
}
