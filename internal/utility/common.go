package utility

import (
	"fmt"
)

// GoProtect bao bọc một hàm để bắt panic, tránh làm chết cả tiến trình.
// Dùng cho các goroutine nền (gửi email, phát sự kiện realtime).
func GoProtect(f func()) {
	defer func() {
		if err := recover(); err != nil {
			fmt.Printf("Đã bắt lỗi panic: %v\n", err)
		}
	}()

	f()
}
