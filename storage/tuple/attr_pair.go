package tuple

import (
	pair "github.com/notEpsilon/go-pair"
	"github.com/ryogrid/samehada-itup/types"
)

// AttrPair is an attribute value together with its null flag.
type AttrPair = pair.Pair[types.Value, bool]

func (t *IndexTuple) GetAttributePair(attnum int, desc TupleDescriptor) AttrPair {
	value, isNull := t.GetAttribute(attnum, desc)
	return AttrPair{First: value, Second: isNull}
}

// DeformTuplePairs is DeformTuple returning one pair per attribute.
func (t *IndexTuple) DeformTuplePairs(desc TupleDescriptor) []AttrPair {
	values, isNull := t.DeformTuple(desc)
	ret := make([]AttrPair, len(values))
	for i := range values {
		ret[i] = AttrPair{First: values[i], Second: isNull[i]}
	}
	return ret
}
