package utility

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// TokenClaims chứa data được mã hóa trong JWT token
type TokenClaims struct {
	UserID       string `json:"userId"`
	Time         string `json:"time"`
	RandomNumber string `json:"randomNumber"`
	jwt.StandardClaims
}

// CreateToken tạo JWT token cho người dùng.
// Token có hạn 30 ngày, RandomNumber đảm bảo mỗi lần login sinh token khác nhau.
//
// Returns:
//   - map chứa key "token" với giá trị là chuỗi JWT đã ký
func CreateToken(secret string, userID string, timeHex string, randomNumber string) (map[string]string, error) {
	claims := TokenClaims{
		UserID:       userID,
		Time:         timeHex,
		RandomNumber: randomNumber,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(30 * 24 * time.Hour).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return map[string]string{"token": signed}, nil
}

// ParseToken giải mã và kiểm tra JWT token, trả về claims nếu hợp lệ
func ParseToken(secret string, tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("token is not valid")
	}
	return claims, nil
}
