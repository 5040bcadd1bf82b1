package bbcsport

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
)

var nullLiteral = []byte("null")

// FlexInt decodes integers the feed sends either as numbers or as numeric
// strings ("7", "07").
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, nullLiteral) {
		return nil
	}

	var raw any
	if err := sonic.Unmarshal(trimmed, &raw); err != nil {
		return err
	}

	switch typed := raw.(type) {
	case float64:
		if typed != math.Trunc(typed) {
			return fmt.Errorf("non-integer number %v", typed)
		}
		*f = FlexInt(int(typed))
		return nil
	case string:
		value := strings.TrimSpace(typed)
		if value == "" {
			return nil
		}
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("parse integer %q: %w", typed, err)
		}
		*f = FlexInt(parsed)
		return nil
	default:
		return fmt.Errorf("unsupported integer value %s", abbreviateBody(trimmed))
	}
}

func (f *FlexInt) Int() int {
	if f == nil {
		return 0
	}
	return int(*f)
}

// IntPtr returns nil for an absent value.
func (f *FlexInt) IntPtr() *int {
	if f == nil {
		return nil
	}
	v := int(*f)
	return &v
}

// FlexString decodes identifiers the feed sends either as strings or numbers.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, nullLiteral) {
		return nil
	}

	var raw any
	if err := sonic.Unmarshal(trimmed, &raw); err != nil {
		return err
	}

	switch typed := raw.(type) {
	case string:
		*f = FlexString(strings.TrimSpace(typed))
	case float64:
		*f = FlexString(strconv.FormatFloat(typed, 'f', -1, 64))
	case bool:
		*f = FlexString(strconv.FormatBool(typed))
	default:
		return fmt.Errorf("unsupported string value %s", abbreviateBody(trimmed))
	}
	return nil
}

func (f FlexString) String() string {
	return string(f)
}
