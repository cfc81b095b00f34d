package builder

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ValueKind tags the scalar variant a Value holds.
type ValueKind int

const (
	ValueNull = ValueKind(iota)
	ValueBool
	ValueInt
	ValueFloat
	ValueString
	ValueDate
	ValueTime
	ValueDateTime
	ValueDateTimeTz
	ValueUUID
	valueInvalid
)

// Value is a tagged scalar literal. It carries its own semantic type; the
// renderer formats each variant per dialect rules.
type Value struct {
	kind ValueKind

	boolVal  bool
	intVal   int64
	floatVal float64
	strVal   string // ValueString, or the Go type name for valueInvalid
	timeVal  time.Time
	uuidVal  uuid.UUID
}

func NullValue() Value                { return Value{kind: ValueNull} }
func BoolValue(v bool) Value          { return Value{kind: ValueBool, boolVal: v} }
func IntValue(v int64) Value          { return Value{kind: ValueInt, intVal: v} }
func FloatValue(v float64) Value      { return Value{kind: ValueFloat, floatVal: v} }
func StringValue(v string) Value      { return Value{kind: ValueString, strVal: v} }
func DateValue(v time.Time) Value     { return Value{kind: ValueDate, timeVal: v} }
func TimeValue(v time.Time) Value     { return Value{kind: ValueTime, timeVal: v} }
func DateTimeValue(v time.Time) Value { return Value{kind: ValueDateTime, timeVal: v} }
func UUIDValue(v uuid.UUID) Value     { return Value{kind: ValueUUID, uuidVal: v} }

// DateTimeTzValue renders with the value's UTC offset. A bare time.Time fed
// through ToValue is treated as a naive datetime; use this constructor when
// the offset must appear in the output.
func DateTimeTzValue(v time.Time) Value { return Value{kind: ValueDateTimeTz, timeVal: v} }

func (v Value) Kind() ValueKind { return v.kind }

// ToValue converts a Go scalar to a Value. Unconvertible types produce a
// Value that fails at render time; builder setters stay total.
func ToValue(v any) Value {
	switch val := v.(type) {
	case nil:
		return NullValue()
	case Value:
		return val
	case bool:
		return BoolValue(val)
	case int:
		return IntValue(int64(val))
	case int8:
		return IntValue(int64(val))
	case int16:
		return IntValue(int64(val))
	case int32:
		return IntValue(int64(val))
	case int64:
		return IntValue(val)
	case uint:
		return IntValue(int64(val))
	case uint8:
		return IntValue(int64(val))
	case uint16:
		return IntValue(int64(val))
	case uint32:
		return IntValue(int64(val))
	case uint64:
		return IntValue(int64(val))
	case float32:
		return FloatValue(float64(val))
	case float64:
		return FloatValue(val)
	case string:
		return StringValue(val)
	case time.Time:
		return DateTimeValue(val)
	case uuid.UUID:
		return UUIDValue(val)
	default:
		return Value{kind: valueInvalid, strVal: fmt.Sprintf("%T", v)}
	}
}

// inline formats the value as a SQL literal.
func (v Value) inline() (string, error) {
	switch v.kind {
	case ValueNull:
		return "NULL", nil
	case ValueBool:
		if v.boolVal {
			return "TRUE", nil
		}
		return "FALSE", nil
	case ValueInt:
		return strconv.FormatInt(v.intVal, 10), nil
	case ValueFloat:
		s := strconv.FormatFloat(v.floatVal, 'f', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s, nil
	case ValueString:
		return StringConstant(v.strVal), nil
	case ValueDate:
		return "'" + v.timeVal.Format("2006-01-02") + "'", nil
	case ValueTime:
		return "'" + v.timeVal.Format("15:04:05") + "'", nil
	case ValueDateTime:
		return "'" + v.timeVal.Format("2006-01-02 15:04:05") + "'", nil
	case ValueDateTimeTz:
		return "'" + v.timeVal.Format("2006-01-02 15:04:05 -07:00") + "'", nil
	case ValueUUID:
		return "'" + v.uuidVal.String() + "'", nil
	default:
		return "", fmt.Errorf("cannot render %s as a SQL literal", v.strVal)
	}
}

// Value implements driver.Valuer so the parameter vector returned by Build
// can be handed to database/sql as-is.
func (v Value) Value() (driver.Value, error) {
	switch v.kind {
	case ValueNull:
		return nil, nil
	case ValueBool:
		return v.boolVal, nil
	case ValueInt:
		return v.intVal, nil
	case ValueFloat:
		return v.floatVal, nil
	case ValueString:
		return v.strVal, nil
	case ValueDate, ValueTime, ValueDateTime, ValueDateTimeTz:
		return v.timeVal, nil
	case ValueUUID:
		return v.uuidVal.String(), nil
	default:
		return nil, fmt.Errorf("cannot bind %s as a parameter", v.strVal)
	}
}

// StringConstant single-quotes a string literal, doubling embedded quotes.
func StringConstant(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func toValues(vals []any) []Value {
	out := make([]Value, len(vals))
	for i, v := range vals {
		out[i] = ToValue(v)
	}
	return out
}
