// Package authdto - cấu trúc đầu vào của domain auth.
package authdto

// UserRegisterInput đầu vào đăng ký người dùng.
type UserRegisterInput struct {
	Name     string `json:"name" validate:"required,no_xss"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,strong_password"`
	Phone    string `json:"phone"`
}

// UserLoginInput đầu vào đăng nhập người dùng.
// Hwid định danh thiết bị, mỗi thiết bị giữ một token riêng.
type UserLoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Hwid     string `json:"hwid" validate:"required"`
}

// UserLogoutInput đầu vào đăng xuất người dùng.
type UserLogoutInput struct {
	Hwid string `json:"hwid" validate:"required"`
}

// UserChangeInfoInput đầu vào thay đổi thông tin người dùng.
type UserChangeInfoInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
