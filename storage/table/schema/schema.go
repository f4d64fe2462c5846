package schema

import (
	"fmt"
	"math"
	"sync/atomic"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/ryogrid/samehada-itup/common"
	"github.com/ryogrid/samehada-itup/storage/table/column"
)

// InvalidCacheOffset marks an attribute whose offset from the start of the
// tuple data is not (yet) known to be fixed.
const InvalidCacheOffset = int32(-1)

// Schema describes the attributes of an index. Columns may be shared between
// schemas, so the offset cache lives here, indexed by attribute position, and
// is shared by every tuple formed from one Schema.
type Schema struct {
	columns     []*column.Column
	varlenAttrs mapset.Set[uint32] // indexes of all varlen columns
	// offset of each attribute from the start of tuple data when no null or
	// varlen attribute precedes it. Writers may race but always store the
	// same value.
	attCacheOff []atomic.Int32
}

func NewSchema(columns []*column.Column) *Schema {
	common.SH_Assert(len(columns) <= common.IndexMaxKeys,
		fmt.Sprintf("number of index columns (%d) exceeds limit (%d)", len(columns), common.IndexMaxKeys))

	schema := &Schema{
		varlenAttrs: mapset.NewThreadUnsafeSet[uint32](),
		attCacheOff: make([]atomic.Int32, len(columns)),
	}
	for i, col := range columns {
		if !col.IsInlined() {
			schema.varlenAttrs.Add(uint32(i))
		}
		schema.columns = append(schema.columns, col)
	}
	schema.ResetCache()
	return schema
}

// ResetCache forgets every cached attribute offset. The first attribute
// always starts the data area.
func (s *Schema) ResetCache() {
	for i := range s.attCacheOff {
		s.attCacheOff[i].Store(InvalidCacheOffset)
	}
	if len(s.attCacheOff) > 0 {
		s.attCacheOff[0].Store(0)
	}
}

// AttCacheOff returns the cached data offset of the attribute at colIndex or
// InvalidCacheOffset.
func (s *Schema) AttCacheOff(colIndex uint32) int32 {
	return s.attCacheOff[colIndex].Load()
}

func (s *Schema) SetAttCacheOff(colIndex uint32, off int32) {
	s.attCacheOff[colIndex].Store(off)
}

func (s *Schema) GetColumn(colIndex uint32) *column.Column {
	return s.columns[colIndex]
}

func (s *Schema) GetColumnCount() uint32 {
	return uint32(len(s.columns))
}

func (s *Schema) GetColumns() []*column.Column {
	return s.columns
}

// HasVarlen reports whether any column is variable width.
func (s *Schema) HasVarlen() bool {
	return s.varlenAttrs.Cardinality() > 0
}

func (s *Schema) IsVarlenAttr(colIndex uint32) bool {
	return s.varlenAttrs.Contains(colIndex)
}

func (s *Schema) GetColIndex(columnName string) uint32 {
	for i := uint32(0); i < s.GetColumnCount(); i++ {
		if s.columns[i].GetColumnName() == columnName {
			return i
		}
	}

	return math.MaxUint32
}
