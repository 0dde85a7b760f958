// Package basehdl - Test envelope response chuẩn.
package basehdl

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"qr_dine/internal/common"

	"github.com/gofiber/fiber/v3"
)

func doRequest(t *testing.T, handler fiber.Handler) (*http.Response, map[string]interface{}) {
	t.Helper()
	app := fiber.New()
	app.Get("/t", handler)
	req, err := http.NewRequest(http.MethodGet, "/t", nil)
	if err != nil {
		t.Fatalf("Không tạo được request: %v", err)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request thất bại: %v", err)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Không đọc được body: %v", err)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("Body không phải JSON: %v", err)
	}
	return resp, body
}

func TestHandleResponse_ThanhCongTra200(t *testing.T) {
	h := NewBaseHandler[struct{}, struct{}, struct{}](nil)
	resp, body := doRequest(t, func(c fiber.Ctx) error {
		h.HandleResponse(c, fiber.Map{"ok": true}, nil)
		return nil
	})
	if resp.StatusCode != common.StatusOK {
		t.Errorf("Status = %d, muốn %d", resp.StatusCode, common.StatusOK)
	}
	if body["status"] != "success" {
		t.Errorf("status trong envelope = %v, muốn success", body["status"])
	}
}

func TestHandleCreatedResponse_ThanhCongTra201(t *testing.T) {
	h := NewBaseHandler[struct{}, struct{}, struct{}](nil)
	resp, body := doRequest(t, func(c fiber.Ctx) error {
		h.HandleCreatedResponse(c, fiber.Map{"id": "abc"}, nil)
		return nil
	})
	if resp.StatusCode != common.StatusCreated {
		t.Errorf("Status = %d, muốn %d", resp.StatusCode, common.StatusCreated)
	}
	if body["status"] != "success" {
		t.Errorf("status trong envelope = %v, muốn success", body["status"])
	}
}

func TestHandleCreatedResponse_LoiGiuNguyenStatusCuaLoi(t *testing.T) {
	h := NewBaseHandler[struct{}, struct{}, struct{}](nil)
	resp, body := doRequest(t, func(c fiber.Ctx) error {
		h.HandleCreatedResponse(c, nil, common.ErrInvalidSignature)
		return nil
	})
	if resp.StatusCode == common.StatusCreated || resp.StatusCode == common.StatusOK {
		t.Errorf("Lỗi không được trả status thành công, được %d", resp.StatusCode)
	}
	if body["status"] != "error" {
		t.Errorf("status trong envelope = %v, muốn error", body["status"])
	}
}
