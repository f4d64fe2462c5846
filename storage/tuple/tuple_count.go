package tuple

import (
	"encoding/binary"

	"github.com/ryogrid/samehada-itup/common"
)

// The tuple count is how many equal keys a deduplicated tuple stands for.
// Updates are plain read-modify-write; callers sharing a tuple (e.g. on a
// page) must hold the page write latch.

func (t *IndexTuple) countField() []byte {
	info := t.Info()
	common.SH_Assert(info.HasTupleCount(), "index tuple has no tuple count")
	off := CountOffset(info)
	return t.data[off : off+IndexTupleCountSize]
}

func (t *IndexTuple) GetCount() uint64 {
	return binary.LittleEndian.Uint64(t.countField())
}

func (t *IndexTuple) SetCount(tupleCount uint64) {
	binary.LittleEndian.PutUint64(t.countField(), tupleCount)
}

// AddCount adds delta to the tuple count, wrapping at 2^64.
func (t *IndexTuple) AddCount(delta uint64) {
	field := t.countField()
	binary.LittleEndian.PutUint64(field, binary.LittleEndian.Uint64(field)+delta)
}
