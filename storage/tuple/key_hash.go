package tuple

import (
	"github.com/spaolacci/murmur3"
)

// HashKey hashes the key part of t: the null bitmap and the data area. The
// RID and the tuple count are left out, so tuples with equal keys hash
// equal whatever rows they point at or how many duplicates they stand for.
func (t *IndexTuple) HashKey() uint32 {
	info := t.Info()
	h := murmur3.New32()
	if info.HasNulls() {
		h.Write(t.bitmap())
	}
	h.Write(t.data[DataOffset(info):info.Size()])
	return h.Sum32()
}
