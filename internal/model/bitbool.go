package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// BitBool maps a MySQL BIT(1) column to a Go bool.
//
// The legacy Node backend read this column through at least four different
// wire shapes — raw byte buffer from the driver, numeric 0/1, stringified
// "0"/"1", and native boolean — and normalized it ad hoc at every call site.
// Here every shape funnels through bitToBool, the single conversion point:
// the SQL scanner, the JSON decoder, and any caller that holds a raw value
// all use it.
type BitBool bool

// bitToBool converts any of the known wire representations of a BIT(1) flag
// into a bool. Total and side-effect free; unknown shapes are an error, never
// a silent false.
func bitToBool(raw any) (bool, error) {
	switch v := raw.(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	case BitBool:
		return bool(v), nil
	case []byte:
		// MySQL BIT(1) arrives as a 1-byte buffer; multi-byte buffers keep
		// the least significant byte.
		if len(v) == 0 {
			return false, nil
		}
		return v[len(v)-1] != 0, nil
	case int:
		return v != 0, nil
	case int64:
		return v != 0, nil
	case float64:
		return v != 0, nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return false, nil
		}
		if b, err := strconv.ParseBool(s); err == nil {
			return b, nil
		}
		if n, err := strconv.Atoi(s); err == nil {
			return n != 0, nil
		}
		return false, fmt.Errorf("bitbool: valor string no reconocido %q", v)
	default:
		return false, fmt.Errorf("bitbool: tipo no soportado %T", raw)
	}
}

// Bool returns the plain boolean value.
func (b BitBool) Bool() bool { return bool(b) }

// Scan implements sql.Scanner for values coming from the MySQL driver.
func (b *BitBool) Scan(value any) error {
	v, err := bitToBool(value)
	if err != nil {
		return err
	}
	*b = BitBool(v)
	return nil
}

// Value implements driver.Valuer, writing the flag back as a single bit byte.
func (b BitBool) Value() (driver.Value, error) {
	if b {
		return []byte{1}, nil
	}
	return []byte{0}, nil
}

// nodeBuffer is the JSON shape the legacy API emitted for BIT columns:
// {"type":"Buffer","data":[1]}.
type nodeBuffer struct {
	Type string `json:"type"`
	Data []byte `json:"data"`
}

// UnmarshalJSON accepts true/false, 0/1, "0"/"1" and the serialized Node
// Buffer object.
func (b *BitBool) UnmarshalJSON(data []byte) error {
	var buf nodeBuffer
	if err := json.Unmarshal(data, &buf); err == nil && buf.Type == "Buffer" {
		v, convErr := bitToBool(buf.Data)
		if convErr != nil {
			return convErr
		}
		*b = BitBool(v)
		return nil
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := bitToBool(raw)
	if err != nil {
		return err
	}
	*b = BitBool(v)
	return nil
}

// MarshalJSON always emits a plain boolean, regardless of how the value was
// stored or received.
func (b BitBool) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(b))
}

// GormDataType keeps the column as BIT(1) so existing data stays readable by
// the other consumers of the schema.
func (BitBool) GormDataType() string { return "bit(1)" }
