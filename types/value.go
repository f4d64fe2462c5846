package types

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Value is a single attribute datum. A null Value still remembers its type.
type Value struct {
	valueType TypeID
	isNull    bool
	boolean   bool
	integer   int64
	float     float64
	varchar   string
}

func NewBoolean(value bool) Value {
	return Value{valueType: Boolean, boolean: value}
}

func NewSmallint(value int16) Value {
	return Value{valueType: Smallint, integer: int64(value)}
}

func NewInteger(value int32) Value {
	return Value{valueType: Integer, integer: int64(value)}
}

func NewBigInt(value int64) Value {
	return Value{valueType: BigInt, integer: value}
}

func NewFloat(value float64) Value {
	return Value{valueType: Float, float: value}
}

func NewVarchar(value string) Value {
	return Value{valueType: Varchar, varchar: value}
}

// NewTimestamp takes microseconds since the epoch.
func NewTimestamp(value int64) Value {
	return Value{valueType: Timestamp, integer: value}
}

func NewNull(valueType TypeID) Value {
	return Value{valueType: valueType, isNull: true}
}

func (v Value) ValueType() TypeID { return v.valueType }
func (v Value) IsNull() bool      { return v.isNull }
func (v Value) ToBoolean() bool   { return v.boolean }
func (v Value) ToSmallint() int16 { return int16(v.integer) }
func (v Value) ToInteger() int32  { return int32(v.integer) }
func (v Value) ToBigInt() int64   { return v.integer }
func (v Value) ToFloat() float64  { return v.float }
func (v Value) ToVarchar() string { return v.varchar }
func (v Value) ToTimestamp() int64 {
	return v.integer
}

// Size is the number of bytes SerializeTo writes.
func (v Value) Size() uint32 {
	if v.valueType.IsVarlen() {
		return uint32(VarlenHeaderSize + len(v.varchar))
	}
	return uint32(v.valueType.Size())
}

// SerializeTo writes the stored form of v at the start of buf, which must be
// at least v.Size() bytes long. Variable width values get a 4 byte length
// word counting itself.
func (v Value) SerializeTo(buf []byte) {
	switch v.valueType {
	case Boolean:
		if v.boolean {
			buf[0] = 1
		} else {
			buf[0] = 0
		}
	case Smallint:
		binary.LittleEndian.PutUint16(buf, uint16(v.integer))
	case Integer:
		binary.LittleEndian.PutUint32(buf, uint32(v.integer))
	case BigInt, Timestamp:
		binary.LittleEndian.PutUint64(buf, uint64(v.integer))
	case Float:
		binary.LittleEndian.PutUint64(buf, math.Float64bits(v.float))
	case Varchar:
		binary.LittleEndian.PutUint32(buf, v.Size())
		copy(buf[VarlenHeaderSize:], v.varchar)
	default:
		panic(fmt.Sprintf("can not serialize value of type %v", v.valueType))
	}
}

func (v Value) Serialize() []byte {
	buf := make([]byte, v.Size())
	v.SerializeTo(buf)
	return buf
}

// StoredSize returns the length of the value of type valueType stored at the
// start of data.
func StoredSize(data []byte, valueType TypeID) uint32 {
	if valueType.IsVarlen() {
		return binary.LittleEndian.Uint32(data)
	}
	return uint32(valueType.Size())
}

// NewValueFromBytes decodes the value of type valueType stored at the start
// of data.
func NewValueFromBytes(data []byte, valueType TypeID) Value {
	switch valueType {
	case Boolean:
		return NewBoolean(data[0] != 0)
	case Smallint:
		return NewSmallint(int16(binary.LittleEndian.Uint16(data)))
	case Integer:
		return NewInteger(int32(binary.LittleEndian.Uint32(data)))
	case BigInt:
		return NewBigInt(int64(binary.LittleEndian.Uint64(data)))
	case Timestamp:
		return NewTimestamp(int64(binary.LittleEndian.Uint64(data)))
	case Float:
		return NewFloat(math.Float64frombits(binary.LittleEndian.Uint64(data)))
	case Varchar:
		length := binary.LittleEndian.Uint32(data)
		return NewVarchar(string(data[VarlenHeaderSize:length]))
	}
	panic(fmt.Sprintf("can not deserialize value of type %v", valueType))
}

func (v Value) CompareEquals(right Value) bool {
	if v.valueType != right.valueType || v.isNull != right.isNull {
		return false
	}
	if v.isNull {
		return true
	}
	switch v.valueType {
	case Boolean:
		return v.boolean == right.boolean
	case Float:
		return v.float == right.float
	case Varchar:
		return v.varchar == right.varchar
	}
	return v.integer == right.integer
}

func (v Value) String() string {
	if v.isNull {
		return "NULL"
	}
	switch v.valueType {
	case Boolean:
		return fmt.Sprintf("%t", v.boolean)
	case Float:
		return fmt.Sprintf("%g", v.float)
	case Varchar:
		return v.varchar
	}
	return fmt.Sprintf("%d", v.integer)
}
