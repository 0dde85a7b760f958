package basehdl

import (
	"errors"
	"fmt"
	"runtime/debug"

	"qr_dine/internal/common"

	"github.com/gofiber/fiber/v3"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
// để hỗ trợ UTF-8 encoding đúng cách (tên món ăn, ghi chú tiếng Việt).
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// SafeHandler bọc các handler với recover để bắt panic và xử lý lỗi an toàn.
// Đảm bảo server luôn trả về response cho client, kể cả khi có panic xảy ra.
func (h *BaseHandler[T, CreateInput, UpdateInput]) SafeHandler(c fiber.Ctx, handler func() error) error {
	defer func() {
		if r := recover(); r != nil {
			// Log stack trace để debug
			debug.PrintStack()

			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Lỗi hệ thống không mong muốn: %v", r),
				common.StatusInternalServerError,
				nil,
			))
		}
	}()
	return handler()
}

// HandleResponse xử lý và chuẩn hóa response trả về cho client.
// Đảm bảo format response thống nhất trong toàn bộ ứng dụng.
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleResponse(c fiber.Ctx, data interface{}, err error) {
	HandleResponse(c, data, err)
}

// HandleResponse là version package-level, dùng bởi các handler không embed BaseHandler.
func HandleResponse(c fiber.Ctx, data interface{}, err error) {
	if err != nil {
		var customErr *common.Error
		if errors.As(err, &customErr) {
			JSONResponse(c, customErr.StatusCode, fiber.Map{
				"code":    customErr.Code.Code,
				"message": customErr.Message,
				"details": customErr.Details,
				"status":  "error",
			})
			return
		}
		// Không phải custom error thì trả về internal server error
		JSONResponse(c, common.StatusInternalServerError, fiber.Map{
			"code":    common.ErrCodeInternalServer.Code,
			"message": err.Error(),
			"status":  "error",
		})
		return
	}

	// Trường hợp thành công
	JSONResponse(c, common.StatusOK, fiber.Map{
		"code":    common.StatusOK,
		"message": common.MsgSuccess,
		"data":    data,
		"status":  "success",
	})
}

// HandleCreatedResponse như HandleResponse nhưng trả 201 khi thành công,
// dùng cho các endpoint tạo mới resource.
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleCreatedResponse(c fiber.Ctx, data interface{}, err error) {
	if err != nil {
		HandleResponse(c, data, err)
		return
	}
	JSONResponse(c, common.StatusCreated, fiber.Map{
		"code":    common.StatusCreated,
		"message": common.MsgSuccess,
		"data":    data,
		"status":  "success",
	})
}
