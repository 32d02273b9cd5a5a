package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is a []string column stored as a JSON array. Portable between
// the postgres and sqlite backends.
type StringList []string

// Value implements driver.Valuer.
func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	raw, err := json.Marshal([]string(s))
	if err != nil {
		return nil, fmt.Errorf("marshal string list: %w", err)
	}
	return string(raw), nil
}

// Scan implements sql.Scanner.
func (s *StringList) Scan(src any) error {
	if src == nil {
		*s = StringList{}
		return nil
	}

	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported string list source %T", src)
	}

	if len(raw) == 0 {
		*s = StringList{}
		return nil
	}

	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("unmarshal string list: %w", err)
	}
	*s = out
	return nil
}
