package column

import (
	"strings"

	"github.com/ryogrid/samehada-itup/types"
)

type Column struct {
	columnName string
	columnType types.TypeID
	attLen     int32 // stored width, types.VariableLength for varlen columns
	attAlign   int32 // alignment the stored value starts on
}

func NewColumn(name string, columnType types.TypeID) *Column {
	// note: alphabets on column name is stored in lowercase
	return &Column{
		columnName: strings.ToLower(name),
		columnType: columnType,
		attLen:     columnType.Size(),
		attAlign:   columnType.Align(),
	}
}

func (c *Column) IsInlined() bool {
	return c.attLen != types.VariableLength
}

func (c *Column) GetType() types.TypeID {
	return c.columnType
}

func (c *Column) AttLen() int32 {
	return c.attLen
}

func (c *Column) AttAlign() int32 {
	return c.attAlign
}

func (c *Column) GetColumnName() string {
	return c.columnName
}
