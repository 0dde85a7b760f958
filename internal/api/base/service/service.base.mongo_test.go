// Package basesvc - Test chuyển đổi dữ liệu update.
package basesvc

import "testing"

func TestToUpdateData_PassthroughPointer(t *testing.T) {
	in := &UpdateData{Set: map[string]interface{}{"name": "Quán Phở"}}
	out, err := ToUpdateData(in)
	if err != nil {
		t.Fatalf("ToUpdateData trả lỗi: %v", err)
	}
	if out != in {
		t.Error("ToUpdateData phải trả về chính con trỏ UpdateData truyền vào")
	}
}

func TestToUpdateData_WrapsPlainMap(t *testing.T) {
	out, err := ToUpdateData(map[string]interface{}{"status": "confirmed"})
	if err != nil {
		t.Fatalf("ToUpdateData trả lỗi: %v", err)
	}
	if out.Set == nil {
		t.Fatal("Map thường phải được wrap trong $set")
	}
	if out.Set["status"] != "confirmed" {
		t.Errorf("Set[status] = %v, muốn confirmed", out.Set["status"])
	}
	if out.Inc != nil || out.Unset != nil || out.Push != nil {
		t.Error("Map thường không được sinh ra operator khác ngoài $set")
	}
}

func TestToUpdateData_MapWithOperators(t *testing.T) {
	out, err := ToUpdateData(map[string]interface{}{
		"$set":   map[string]interface{}{"status": "ready"},
		"$inc":   map[string]interface{}{"seq": int64(1)},
		"$unset": map[string]interface{}{"razorpay.keyId": ""},
	})
	if err != nil {
		t.Fatalf("ToUpdateData trả lỗi: %v", err)
	}
	if out.Set["status"] != "ready" {
		t.Errorf("Set[status] = %v, muốn ready", out.Set["status"])
	}
	if out.Inc["seq"] != int64(1) {
		t.Errorf("Inc[seq] = %v, muốn 1", out.Inc["seq"])
	}
	if _, ok := out.Unset["razorpay.keyId"]; !ok {
		t.Error("Unset thiếu key razorpay.keyId")
	}
}

func TestToUpdateData_ValueStruct(t *testing.T) {
	in := UpdateData{Inc: map[string]interface{}{"seq": int64(1)}}
	out, err := ToUpdateData(in)
	if err != nil {
		t.Fatalf("ToUpdateData trả lỗi: %v", err)
	}
	if out.Inc["seq"] != int64(1) {
		t.Errorf("Inc[seq] = %v, muốn 1", out.Inc["seq"])
	}
}
