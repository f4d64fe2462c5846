package tuple

import (
	"github.com/ryogrid/samehada-itup/common"
	"github.com/ryogrid/samehada-itup/storage/page"
)

/**
 * Index tuple format:
 * ----------------------------------------------------------------------------------
 * | RID (6) | TInfo (2) | NULL BITMAP (if nulls) | TUPLE COUNT (if count) | DATA ... |
 * ----------------------------------------------------------------------------------
 * The null bitmap has a fixed size derived from IndexMaxKeys, so no attribute
 * count needs to be stored. The tuple count starts MAXALIGN64ed after
 * header+bitmap and the data starts MAXALIGNed after everything before it.
 */
const (
	offsetTInfo              = page.SizeOfRID
	IndexTupleHeaderSize     = page.SizeOfRID + 2
	IndexAttributeBitMapSize = (common.IndexMaxKeys + 8 - 1) / 8
	IndexTupleCountSize      = 8
)

// TInfo layout:
//
//	15th (high) bit: has nulls
//	14th bit: has var-width attributes
//	13th bit: has tuple count
//	12-0 bit: size of tuple
type TInfo uint16

const (
	IndexSizeMask      TInfo = 0x1FFF
	IndexHasTupleCount TInfo = 0x2000
	IndexVarMask       TInfo = 0x4000
	IndexNullMask      TInfo = 0x8000
)

func (info TInfo) Size() uint32 {
	return uint32(info & IndexSizeMask)
}

func (info TInfo) HasNulls() bool {
	return info&IndexNullMask != 0
}

func (info TInfo) HasVarWidths() bool {
	return info&IndexVarMask != 0
}

func (info TInfo) HasTupleCount() bool {
	return info&IndexHasTupleCount != 0
}

// WithSize keeps the flag bits of info and replaces its size.
func (info TInfo) WithSize(size uint32) TInfo {
	return (info &^ IndexSizeMask) | (TInfo(size) & IndexSizeMask)
}

// CountOffset returns where the tuple count lives for a tuple with info.
func CountOffset(info TInfo) uint32 {
	off := uint32(IndexTupleHeaderSize)
	if info.HasNulls() {
		off += IndexAttributeBitMapSize
	}
	return common.MaxAlign64Of(off)
}

// DataOffset returns where attribute data starts for a tuple with info.
func DataOffset(info TInfo) uint32 {
	off := CountOffset(info)
	if info.HasTupleCount() {
		off += IndexTupleCountSize
	}
	return common.MaxAlignOf(off)
}
