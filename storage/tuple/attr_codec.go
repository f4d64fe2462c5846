package tuple

import (
	"fmt"

	"github.com/ryogrid/samehada-itup/common"
	"github.com/ryogrid/samehada-itup/storage/table/column"
	"github.com/ryogrid/samehada-itup/types"
)

// TupleDescriptor is the view of an index's attribute list the codec works
// against. Column carries width and alignment. The offset cache belongs to
// the descriptor and is keyed by attribute position, since one Column may
// sit at different positions in different descriptors. A negative cached
// offset means unknown.
type TupleDescriptor interface {
	GetColumnCount() uint32
	GetColumn(colIndex uint32) *column.Column
	AttCacheOff(colIndex uint32) int32
	SetAttCacheOff(colIndex uint32, off int32)
}

func attAlign(col *column.Column, off uint32) uint32 {
	return common.TypeAlign(uint32(col.AttAlign()), off)
}

// fetchAtt decodes the value of col stored at the start of data.
func fetchAtt(col *column.Column, data []byte) types.Value {
	return types.NewValueFromBytes(data, col.GetType())
}

// attStoredSize returns how many bytes the value of col at the start of data
// occupies.
func attStoredSize(col *column.Column, data []byte) uint32 {
	if col.IsInlined() {
		return uint32(col.AttLen())
	}
	return types.StoredSize(data, col.GetType())
}

func checkAttValue(col *column.Column, attIdx uint32, value types.Value) {
	if value.ValueType() != col.GetType() {
		common.SH_Assert(false, fmt.Sprintf("attribute %d expects %v but got %v", attIdx+1, col.GetType(), value.ValueType()))
	}
}

// computeDataSize returns the length of the data area needed for values,
// measured from the MAXALIGNed data start.
func computeDataSize(desc TupleDescriptor, values []types.Value, isNull []bool) uint32 {
	var size uint32
	for i := uint32(0); i < desc.GetColumnCount(); i++ {
		if isNull[i] {
			continue
		}
		col := desc.GetColumn(i)
		checkAttValue(col, i, values[i])
		size = attAlign(col, size)
		size += values[i].Size()
	}
	return size
}

// fillData writes non-null values into data and marks null ones in bits,
// which is nil when the tuple has no bitmap. Returns the null and varwidth
// flags for what was actually written.
func fillData(data []byte, bits []byte, desc TupleDescriptor, values []types.Value, isNull []bool) TInfo {
	var infomask TInfo
	var off uint32
	for i := uint32(0); i < desc.GetColumnCount(); i++ {
		if isNull[i] {
			setAttNull(bits, i)
			infomask |= IndexNullMask
			continue
		}
		col := desc.GetColumn(i)
		off = attAlign(col, off)
		values[i].SerializeTo(data[off:])
		if !col.IsInlined() {
			infomask |= IndexVarMask
		}
		off += values[i].Size()
	}
	return infomask
}

// nocacheGetAttr walks attributes from the start of the data area up to
// attnum. Offsets that are the same for every tuple of desc are stored into
// the descriptor's cache on the way. The caller has checked that attnum is not null.
func (t *IndexTuple) nocacheGetAttr(attnum int, desc TupleDescriptor) types.Value {
	info := t.Info()
	hasNulls := info.HasNulls()
	var bits []byte
	if hasNulls {
		bits = t.bitmap()
	}
	data := t.data[DataOffset(info):]
	target := uint32(attnum - 1)

	// once a null or varlen attribute has been passed, later offsets depend
	// on this tuple's contents and must not be cached
	slow := false
	var off uint32
	for i := uint32(0); ; i++ {
		if hasNulls && attIsNull(bits, i) {
			slow = true
			continue
		}
		col := desc.GetColumn(i)
		if cacheOff := desc.AttCacheOff(i); !slow && cacheOff >= 0 {
			off = uint32(cacheOff)
		} else {
			off = attAlign(col, off)
			if !slow {
				desc.SetAttCacheOff(i, int32(off))
			}
		}
		if i == target {
			return fetchAtt(col, data[off:])
		}
		off += attStoredSize(col, data[off:])
		if !col.IsInlined() {
			slow = true
		}
	}
}

// GetAttribute returns the value of the 1-based attribute attnum and whether
// it is null. Attributes at a cached fixed offset in tuples without nulls are
// read directly; everything else walks the tuple.
func (t *IndexTuple) GetAttribute(attnum int, desc TupleDescriptor) (types.Value, bool) {
	if attnum <= 0 || attnum > int(desc.GetColumnCount()) {
		common.SH_Assert(false, fmt.Sprintf("attribute number %d out of range [1, %d]", attnum, desc.GetColumnCount()))
	}

	info := t.Info()
	col := desc.GetColumn(uint32(attnum - 1))
	if !info.HasNulls() {
		if cacheOff := desc.AttCacheOff(uint32(attnum - 1)); cacheOff >= 0 {
			return fetchAtt(col, t.data[DataOffset(info)+uint32(cacheOff):]), false
		}
		return t.nocacheGetAttr(attnum, desc), false
	}
	if attIsNull(t.bitmap(), uint32(attnum-1)) {
		return types.NewNull(col.GetType()), true
	}
	return t.nocacheGetAttr(attnum, desc), false
}

// DeformTuple decodes every attribute of t into a value slice and a parallel
// null flag slice, both desc.GetColumnCount() long.
func (t *IndexTuple) DeformTuple(desc TupleDescriptor) ([]types.Value, []bool) {
	natts := desc.GetColumnCount()
	values := make([]types.Value, natts)
	isNull := make([]bool, natts)

	info := t.Info()
	hasNulls := info.HasNulls()
	var bits []byte
	if hasNulls {
		bits = t.bitmap()
	}
	data := t.data[DataOffset(info):]

	slow := false
	var off uint32
	for i := uint32(0); i < natts; i++ {
		col := desc.GetColumn(i)
		if hasNulls && attIsNull(bits, i) {
			values[i] = types.NewNull(col.GetType())
			isNull[i] = true
			slow = true
			continue
		}
		if cacheOff := desc.AttCacheOff(i); !slow && cacheOff >= 0 {
			off = uint32(cacheOff)
		} else {
			off = attAlign(col, off)
			if !slow {
				desc.SetAttCacheOff(i, int32(off))
			}
		}
		values[i] = fetchAtt(col, data[off:])
		off += attStoredSize(col, data[off:])
		if !col.IsInlined() {
			slow = true
		}
	}
	return values, isNull
}
