// Package global - Test các custom validator.
package global

import "testing"

func setupValidator(t *testing.T) {
	t.Helper()
	InitValidator()
}

func TestValidateNoXSS(t *testing.T) {
	setupValidator(t)
	type input struct {
		Name string `validate:"no_xss"`
	}

	safe := []string{
		"Phở bò tái",
		"Bàn số 5",
		"Nguyễn Văn A",
		"Không hành, thêm ớt",
	}
	for _, v := range safe {
		if err := Validate.Struct(input{Name: v}); err != nil {
			t.Errorf("no_xss từ chối chuỗi an toàn %q: %v", v, err)
		}
	}

	dangerous := []string{
		"<script>alert(1)</script>",
		"javascript:alert(1)",
		"<img onerror=alert(1)>",
		"<IFRAME src=x>",
		"eval(document.cookie)",
	}
	for _, v := range dangerous {
		if err := Validate.Struct(input{Name: v}); err == nil {
			t.Errorf("no_xss chấp nhận chuỗi nguy hiểm %q", v)
		}
	}
}

func TestValidateStrongPassword(t *testing.T) {
	setupValidator(t)
	type input struct {
		Password string `validate:"strong_password"`
	}

	valid := []string{
		"Abcdef12",    // hoa + thường + số
		"abcdef1!",    // thường + số + đặc biệt
		"ABCDEF1!",    // hoa + số + đặc biệt
		"MatKhau@2026",
	}
	for _, v := range valid {
		if err := Validate.Struct(input{Password: v}); err != nil {
			t.Errorf("strong_password từ chối mật khẩu hợp lệ %q: %v", v, err)
		}
	}

	invalid := []string{
		"Ab1!",      // quá ngắn
		"abcdefgh",  // chỉ 1 điều kiện
		"Abcdefgh",  // chỉ 2 điều kiện
		"12345678",  // chỉ số
	}
	for _, v := range invalid {
		if err := Validate.Struct(input{Password: v}); err == nil {
			t.Errorf("strong_password chấp nhận mật khẩu yếu %q", v)
		}
	}
}

func TestValidateOrderStatus(t *testing.T) {
	setupValidator(t)
	type input struct {
		Status string `validate:"order_status"`
	}

	for _, v := range []string{"pending", "confirmed", "preparing", "ready", "completed", "cancelled"} {
		if err := Validate.Struct(input{Status: v}); err != nil {
			t.Errorf("order_status từ chối trạng thái hợp lệ %q: %v", v, err)
		}
	}
	for _, v := range []string{"", "shipped", "PENDING", "done"} {
		if err := Validate.Struct(input{Status: v}); err == nil {
			t.Errorf("order_status chấp nhận trạng thái không hợp lệ %q", v)
		}
	}
}

func TestValidateStatsPeriod(t *testing.T) {
	setupValidator(t)
	type input struct {
		Period string `validate:"stats_period"`
	}

	for _, v := range []string{"today", "week", "month"} {
		if err := Validate.Struct(input{Period: v}); err != nil {
			t.Errorf("stats_period từ chối kỳ hợp lệ %q: %v", v, err)
		}
	}
	for _, v := range []string{"", "year", "Today", "quarter"} {
		if err := Validate.Struct(input{Period: v}); err == nil {
			t.Errorf("stats_period chấp nhận kỳ không hợp lệ %q", v)
		}
	}
}
