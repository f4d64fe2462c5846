package page

import (
	"encoding/binary"

	"github.com/ryogrid/samehada-itup/types"
)

// SizeOfRID is the stored width of a RID: page id (4) + slot number (2).
const SizeOfRID = 6

// RID is the record identifier for the given page identifier and slot number
type RID struct {
	PageId  types.PageID
	SlotNum uint16
}

// Set sets the recod identifier
func (r *RID) Set(pageId types.PageID, slot uint16) {
	r.PageId = pageId
	r.SlotNum = slot
}

// GetPageId gets the page id
func (r RID) GetPageId() types.PageID {
	return r.PageId
}

// GetSlotNum gets the slot number
func (r RID) GetSlotNum() uint16 {
	return r.SlotNum
}

// SerializeTo writes the RID into the first SizeOfRID bytes of buf.
func (r RID) SerializeTo(buf []byte) {
	binary.LittleEndian.PutUint32(buf, uint32(r.PageId))
	binary.LittleEndian.PutUint16(buf[types.SizeOfPageID:], r.SlotNum)
}

// NewRIDFromBytes reads a RID stored by SerializeTo.
func NewRIDFromBytes(buf []byte) RID {
	return RID{
		PageId:  types.PageID(binary.LittleEndian.Uint32(buf)),
		SlotNum: binary.LittleEndian.Uint16(buf[types.SizeOfPageID:]),
	}
}
