package utility

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// ToMap chuyển đổi một struct thành map[string]interface{} thông qua
// bson marshal/unmarshal, giữ nguyên tên trường theo tag bson.
func ToMap(s interface{}) (map[string]interface{}, error) {
	var stringInterfaceMap map[string]interface{}
	raw, err := bson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("bson marshal failed: %w", err)
	}
	if err := bson.Unmarshal(raw, &stringInterfaceMap); err != nil {
		return nil, fmt.Errorf("bson unmarshal failed: %w", err)
	}
	return stringInterfaceMap, nil
}
