package article

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

const tagSeparator = ","

// TagList 文章标签列表，数据库中以逗号分隔的单列存储
type TagList []string

// Value 实现 driver.Valuer
func (t TagList) Value() (driver.Value, error) {
	return strings.Join(t, tagSeparator), nil
}

// Scan 实现 sql.Scanner
func (t *TagList) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case nil:
		raw = ""
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("cannot scan %T into TagList", src)
	}

	if raw == "" {
		*t = TagList{}
		return nil
	}
	*t = strings.Split(raw, tagSeparator)
	return nil
}

// MarshalJSON 空列表输出 [] 而不是 null
func (t TagList) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(t))
}

// UnmarshalJSON 兼容空字符串
func (t *TagList) UnmarshalJSON(data []byte) error {
	if string(data) == `""` || string(data) == `null` {
		*t = TagList{}
		return nil
	}

	var arr []string
	if err := json.Unmarshal(data, &arr); err != nil {
		return err
	}
	*t = arr
	return nil
}
