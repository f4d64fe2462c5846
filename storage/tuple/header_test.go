package tuple

import (
	"testing"

	"github.com/ryogrid/samehada-itup/common"
	testingpkg "github.com/ryogrid/samehada-itup/testing/testing_assert"
)

func TestTInfo(t *testing.T) {
	info := TInfo(0xE123)
	testingpkg.Equals(t, uint32(0x0123), info.Size())
	testingpkg.Assert(t, info.HasNulls(), "0x8000 is has-nulls")
	testingpkg.Assert(t, info.HasVarWidths(), "0x4000 is has-varwidth")
	testingpkg.Assert(t, info.HasTupleCount(), "0x2000 is has-count")

	info = IndexVarMask.WithSize(0x1FFF)
	testingpkg.Equals(t, TInfo(0x5FFF), info)
	info = info.WithSize(24)
	testingpkg.Equals(t, uint32(24), info.Size())
	testingpkg.Assert(t, info.HasVarWidths() && !info.HasNulls() && !info.HasTupleCount(), "flags kept")
}

func TestOffsets(t *testing.T) {
	cases := []struct {
		info        TInfo
		countOffset uint32
		dataOffset  uint32
	}{
		{0, 8, 8},
		{IndexNullMask, 16, 16},
		{IndexHasTupleCount, 8, 16},
		{IndexNullMask | IndexHasTupleCount, 16, 24},
	}
	for _, c := range cases {
		testingpkg.Equals(t, c.countOffset, CountOffset(c.info))
		testingpkg.Equals(t, c.dataOffset, DataOffset(c.info))

		// size and varwidth bits never move anything
		withOthers := c.info | IndexVarMask | 0x0ABC
		testingpkg.Equals(t, c.dataOffset, DataOffset(withOthers))
		testingpkg.Equals(t, c.countOffset, CountOffset(withOthers))

		testingpkg.Equals(t, uint32(0), DataOffset(c.info)%common.MaxAlign)
		if c.info.HasTupleCount() {
			testingpkg.Equals(t, uint32(0), CountOffset(c.info)%8)
			testingpkg.Assert(t, CountOffset(c.info)+IndexTupleCountSize <= DataOffset(c.info), "count ends before data")
		}
		if c.info.HasNulls() {
			testingpkg.Assert(t, IndexTupleHeaderSize+IndexAttributeBitMapSize <= CountOffset(c.info), "bitmap ends before count")
		}
	}
}

func TestNullBitmap(t *testing.T) {
	bits := make([]byte, IndexAttributeBitMapSize)
	setAttNull(bits, 1)
	setAttNull(bits, 9)
	setAttNull(bits, common.IndexMaxKeys-1)
	testingpkg.Equals(t, []byte{0x02, 0x02, 0x00, 0x80}, bits)
	for i := uint32(0); i < common.IndexMaxKeys; i++ {
		expect := i == 1 || i == 9 || i == common.IndexMaxKeys-1
		testingpkg.Equals(t, expect, attIsNull(bits, i))
	}
}

func TestMaxTuplesPerPage(t *testing.T) {
	testingpkg.Equals(t, (8192-24)/(16+4), MaxTuplesPerPage(8192, 24, 4))
	testingpkg.Equals(t, 408, MaxTuplesPerPage(8192, 24, 4))
	testingpkg.Equals(t, 203, MaxTuplesPerPage(4096, 24, 4))
	testingpkg.Equals(t, MaxTuplesPerPage(common.PageSize, 24, 4), MaxIndexTuplesPerPage)
}
