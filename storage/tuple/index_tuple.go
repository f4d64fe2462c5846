package tuple

import (
	"encoding/binary"
	"fmt"

	pkgerrors "github.com/pkg/errors"
	"github.com/ryogrid/samehada-itup/common"
	"github.com/ryogrid/samehada-itup/errors"
	"github.com/ryogrid/samehada-itup/storage/page"
	"github.com/ryogrid/samehada-itup/types"
)

// ErrSizeExceeded is returned when the encoded tuple would not fit the 13 bit
// size field. Callers check it with errors.Is.
const ErrSizeExceeded = errors.Error("index row size exceeds maximum")

// ErrTruncatedTuple is returned when a byte slice is shorter than the tuple
// its header describes.
const ErrTruncatedTuple = errors.Error("index tuple is truncated")

// IndexTuple is one index entry: a RID followed by the encoded key values.
// All state lives in data, which is exactly Size() bytes long.
type IndexTuple struct {
	data []byte
}

// FormTuple builds a tuple from values. isNull[i] marks values[i] as null,
// and both must have one entry per attribute of desc. The RID is left zero
// for the caller to fill with SetRID.
func FormTuple(desc TupleDescriptor, values []types.Value, isNull []bool) (*IndexTuple, error) {
	return formTuple(page.RID{}, desc, values, isNull, false, 0)
}

// FormTupleWithRID is FormTuple with the RID written at construction.
func FormTupleWithRID(rid page.RID, desc TupleDescriptor, values []types.Value, isNull []bool) (*IndexTuple, error) {
	return formTuple(rid, desc, values, isNull, false, 0)
}

// FormTupleWithTupleCount is FormTuple for a tuple that carries a duplicate
// count initialized to tupleCount.
func FormTupleWithTupleCount(desc TupleDescriptor, values []types.Value, isNull []bool, tupleCount uint64) (*IndexTuple, error) {
	return formTuple(page.RID{}, desc, values, isNull, true, tupleCount)
}

func formTuple(rid page.RID, desc TupleDescriptor, values []types.Value, isNull []bool, withCount bool, tupleCount uint64) (*IndexTuple, error) {
	natts := int(desc.GetColumnCount())
	if len(values) != natts || len(isNull) != natts {
		common.SH_Assert(false, fmt.Sprintf("got %d values and %d null flags for %d attributes", len(values), len(isNull), natts))
	}
	if natts > common.IndexMaxKeys {
		common.SH_Assert(false, fmt.Sprintf("number of index columns (%d) exceeds limit (%d)", natts, common.IndexMaxKeys))
	}

	var infomask TInfo
	for i := 0; i < natts; i++ {
		if isNull[i] {
			infomask |= IndexNullMask
			break
		}
	}
	if withCount {
		infomask |= IndexHasTupleCount
	}

	hoff := DataOffset(infomask)
	size := hoff + computeDataSize(desc, values, isNull)
	if size > common.MaxIndexTupleSize {
		common.ShPrintf(common.DEBUG_INFO, "formTuple: size %d exceeds %d\n", size, common.MaxIndexTupleSize)
		return nil, pkgerrors.Wrapf(ErrSizeExceeded, "index row requires %d bytes, maximum size is %d", size, common.MaxIndexTupleSize)
	}

	data := make([]byte, size)
	var bits []byte
	if infomask.HasNulls() {
		bits = data[IndexTupleHeaderSize : IndexTupleHeaderSize+IndexAttributeBitMapSize]
	}
	infomask |= fillData(data[hoff:], bits, desc, values, isNull)

	t := &IndexTuple{data}
	t.SetRID(rid)
	t.setInfo(infomask.WithSize(size))
	if withCount {
		t.SetCount(tupleCount)
	}
	return t, nil
}

// NewIndexTupleFromBytes views the tuple stored at the start of data without
// copying it, so count updates write through to data.
func NewIndexTupleFromBytes(data []byte) (*IndexTuple, error) {
	if len(data) < IndexTupleHeaderSize {
		return nil, ErrTruncatedTuple
	}
	size := TInfo(binary.LittleEndian.Uint16(data[offsetTInfo:])).Size()
	if size < IndexTupleHeaderSize || int(size) > len(data) {
		return nil, pkgerrors.Wrapf(ErrTruncatedTuple, "header says %d bytes, have %d", size, len(data))
	}
	return &IndexTuple{data[:size]}, nil
}

func (t *IndexTuple) Info() TInfo {
	return TInfo(binary.LittleEndian.Uint16(t.data[offsetTInfo:]))
}

func (t *IndexTuple) setInfo(info TInfo) {
	binary.LittleEndian.PutUint16(t.data[offsetTInfo:], uint16(info))
}

func (t *IndexTuple) Size() uint32 {
	return t.Info().Size()
}

func (t *IndexTuple) Data() []byte {
	return t.data
}

func (t *IndexTuple) HasNulls() bool {
	return t.Info().HasNulls()
}

func (t *IndexTuple) HasVarWidths() bool {
	return t.Info().HasVarWidths()
}

func (t *IndexTuple) HasTupleCount() bool {
	return t.Info().HasTupleCount()
}

func (t *IndexTuple) GetRID() page.RID {
	return page.NewRIDFromBytes(t.data)
}

func (t *IndexTuple) SetRID(rid page.RID) {
	rid.SerializeTo(t.data)
}

func (t *IndexTuple) bitmap() []byte {
	return t.data[IndexTupleHeaderSize : IndexTupleHeaderSize+IndexAttributeBitMapSize]
}

// Copy returns a byte identical tuple backed by its own storage.
func (t *IndexTuple) Copy() *IndexTuple {
	data := make([]byte, len(t.data))
	copy(data, t.data)
	return &IndexTuple{data}
}

// CopyWithCount copies t and sets the copy's tuple count to tupleCount. When
// t has no count field one is inserted, which moves the data area.
func (t *IndexTuple) CopyWithCount(tupleCount uint64) (*IndexTuple, error) {
	info := t.Info()
	if info.HasTupleCount() {
		ret := t.Copy()
		ret.SetCount(tupleCount)
		return ret, nil
	}

	newInfo := info | IndexHasTupleCount
	payload := t.data[DataOffset(info):info.Size()]
	newHoff := DataOffset(newInfo)
	size := newHoff + uint32(len(payload))
	if size > common.MaxIndexTupleSize {
		return nil, pkgerrors.Wrapf(ErrSizeExceeded, "index row requires %d bytes, maximum size is %d", size, common.MaxIndexTupleSize)
	}

	data := make([]byte, size)
	copy(data, t.data[:IndexTupleHeaderSize])
	if info.HasNulls() {
		copy(data[IndexTupleHeaderSize:], t.bitmap())
	}
	// both data offsets are MAXALIGNed, so attribute alignment is kept
	copy(data[newHoff:], payload)

	ret := &IndexTuple{data}
	ret.setInfo(newInfo.WithSize(size))
	ret.SetCount(tupleCount)
	return ret, nil
}

func (t *IndexTuple) String() string {
	info := t.Info()
	rid := t.GetRID()
	return fmt.Sprintf("IndexTuple{rid:(%d,%d) size:%d nulls:%t varwidth:%t count:%t}",
		rid.GetPageId(), rid.GetSlotNum(), info.Size(), info.HasNulls(), info.HasVarWidths(), info.HasTupleCount())
}
