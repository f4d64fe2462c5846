package types

import "github.com/ryogrid/samehada-itup/common"

type TypeID int

// Every possible SQL type
const (
	Invalid TypeID = iota
	Boolean
	Smallint
	Integer
	BigInt
	Float
	Varchar
	Timestamp
)

// VarlenHeaderSize is the length word in front of every variable width value.
const VarlenHeaderSize = 4

// VariableLength is the Size of a type whose values carry their own length.
const VariableLength = int32(-1)

// Size returns the stored width of the type in bytes, or VariableLength.
func (t TypeID) Size() int32 {
	switch t {
	case Boolean:
		return 1
	case Smallint:
		return 2
	case Integer:
		return 4
	case BigInt, Float, Timestamp:
		return 8
	case Varchar:
		return VariableLength
	}
	return 0
}

// Align returns the alignment a stored value of the type must start on.
func (t TypeID) Align() int32 {
	switch t {
	case Boolean:
		return common.CharAlign
	case Smallint:
		return common.ShortAlign
	case Integer, Varchar:
		return common.IntAlign
	case BigInt, Float, Timestamp:
		return common.MaxAlign
	}
	return common.CharAlign
}

func (t TypeID) IsVarlen() bool {
	return t.Size() == VariableLength
}

func (t TypeID) String() string {
	switch t {
	case Boolean:
		return "boolean"
	case Smallint:
		return "smallint"
	case Integer:
		return "integer"
	case BigInt:
		return "bigint"
	case Float:
		return "float"
	case Varchar:
		return "varchar"
	case Timestamp:
		return "timestamp"
	}
	return "invalid"
}
