// Package utility - Test các hàm tiện ích dùng chung.
package utility

import (
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestHashPassword_AndCompare(t *testing.T) {
	hashed, err := HashPassword("MatKhau@2026")
	if err != nil {
		t.Fatalf("HashPassword trả lỗi: %v", err)
	}
	if hashed == "MatKhau@2026" {
		t.Error("HashPassword không được trả về plaintext")
	}
	if err := ComparePassword(hashed, "MatKhau@2026"); err != nil {
		t.Errorf("ComparePassword từ chối mật khẩu đúng: %v", err)
	}
	if err := ComparePassword(hashed, "MatKhauSai"); err == nil {
		t.Error("ComparePassword chấp nhận mật khẩu sai")
	}
}

func TestHashPassword_SaltDifferent(t *testing.T) {
	h1, _ := HashPassword("MatKhau@2026")
	h2, _ := HashPassword("MatKhau@2026")
	if h1 == h2 {
		t.Error("Hai lần hash cùng mật khẩu phải cho kết quả khác nhau (salt)")
	}
}

func TestGenerateQRDataURL(t *testing.T) {
	url, err := GenerateQRDataURL("http://localhost:3000/menu/507f1f77bcf86cd799439011", 256)
	if err != nil {
		t.Fatalf("GenerateQRDataURL trả lỗi: %v", err)
	}
	if !strings.HasPrefix(url, "data:image/png;base64,") {
		t.Errorf("QR data URL phải có prefix data:image/png;base64, được %q", url[:min(40, len(url))])
	}
	if len(url) <= len("data:image/png;base64,") {
		t.Error("QR data URL không có nội dung ảnh")
	}
}

func TestGenerateQRDataURL_EmptyContent(t *testing.T) {
	if _, err := GenerateQRDataURL("", 256); err == nil {
		t.Error("GenerateQRDataURL phải trả lỗi với nội dung rỗng")
	}
}

func TestGenerateQRDataURL_DefaultSize(t *testing.T) {
	url, err := GenerateQRDataURL("http://localhost:3000/menu/abc", 0)
	if err != nil {
		t.Fatalf("GenerateQRDataURL với size 0 trả lỗi: %v", err)
	}
	if !strings.HasPrefix(url, "data:image/png;base64,") {
		t.Error("GenerateQRDataURL với size 0 phải dùng size mặc định")
	}
}

func TestString2ObjectID(t *testing.T) {
	hex := "507f1f77bcf86cd799439011"
	id := String2ObjectID(hex)
	if id.IsZero() {
		t.Errorf("String2ObjectID(%q) trả về zero", hex)
	}
	if id.Hex() != hex {
		t.Errorf("String2ObjectID round-trip sai: %s != %s", id.Hex(), hex)
	}
	if !String2ObjectID("khong-hop-le").IsZero() {
		t.Error("String2ObjectID với chuỗi không hợp lệ phải trả về zero")
	}
}

func TestObjectID2String(t *testing.T) {
	id := primitive.NewObjectID()
	if ObjectID2String(id) != id.Hex() {
		t.Errorf("ObjectID2String sai: %s != %s", ObjectID2String(id), id.Hex())
	}
}

func TestContains(t *testing.T) {
	if !Contains([]string{"pending", "confirmed"}, "pending") {
		t.Error("Contains không tìm thấy phần tử có trong slice")
	}
	if Contains([]string{"pending", "confirmed"}, "ready") {
		t.Error("Contains tìm thấy phần tử không có trong slice")
	}
	if Contains([]int{}, 1) {
		t.Error("Contains trên slice rỗng phải trả về false")
	}
}

func TestP2Converters(t *testing.T) {
	if got := P2Float64(int32(42)); got != 42 {
		t.Errorf("P2Float64(int32) = %v, muốn 42", got)
	}
	if got := P2Float64(float64(3.5)); got != 3.5 {
		t.Errorf("P2Float64(float64) = %v, muốn 3.5", got)
	}
	if got := P2Int64(int32(7)); got != 7 {
		t.Errorf("P2Int64(int32) = %v, muốn 7", got)
	}
	if got := P2Int64(int64(9)); got != 9 {
		t.Errorf("P2Int64(int64) = %v, muốn 9", got)
	}
}
