package page

import (
	"encoding/binary"

	"github.com/dustin/go-humanize"
	"github.com/golang-collections/collections/stack"
	"github.com/ryogrid/samehada-itup/common"
	"github.com/ryogrid/samehada-itup/errors"
	"github.com/ryogrid/samehada-itup/types"
)

const (
	SizeOfIndexPageHeader = uint16(24)
	SizeOfItemID          = uint16(4)

	offsetLower     = uint32(8)
	offsetUpper     = uint32(10)
	offsetSpecial   = uint32(12)
	offsetItemCount = uint32(14)
)

const ErrNotEnoughSpace = errors.Error("there is not enough space.")
const ErrInvalidSlot = errors.Error("slot number is out of range or unused.")
const ErrEmptyItem = errors.Error("item cannot be empty.")

// Slotted index page format:
//
//	-----------------------------------------------------------------
//	| HEADER | ItemId_0 | ItemId_1 | ... FREE SPACE ... | ... ITEMS |
//	-----------------------------------------------------------------
//	                               ^ lower             ^ upper
//	Header format (size in bytes):
//	------------------------------------------------------------------------------------
//	| PageId (4)| LSN (4)| Lower (2)| Upper (2)| Special (2)| ItemCount (2)| Reserved (8)|
//	------------------------------------------------------------------------------------
//	ItemId format: | Offset (2) | Length (2) |, Length 0 marks an unused slot.
//
// Items are placed MAXALIGNed from the end of the page toward the header.
// The page stores bytes verbatim; it never interprets an item.
type IndexPage struct {
	*Page
	freeSlots *stack.Stack
}

// NewIndexPage wraps p. Unused slots already on the page become reusable.
func NewIndexPage(p *Page) *IndexPage {
	ip := &IndexPage{p, stack.New()}
	for slot := ip.GetItemCount(); slot > 0; slot-- {
		if _, length := ip.getItemID(slot - 1); length == 0 {
			ip.freeSlots.Push(slot - 1)
		}
	}
	return ip
}

// Init formats an empty index page.
func (ip *IndexPage) Init() {
	for i := range ip.data {
		ip.data[i] = 0
	}
	binary.LittleEndian.PutUint32(ip.data[OffsetPageStart:], uint32(ip.GetPageId()))
	ip.SetLSN(types.InvalidLSN)
	ip.setUint16(offsetLower, SizeOfIndexPageHeader)
	ip.setUint16(offsetUpper, common.PageSize)
	ip.setUint16(offsetSpecial, common.PageSize)
	ip.setUint16(offsetItemCount, 0)
	ip.freeSlots = stack.New()
}

func (ip *IndexPage) getUint16(offset uint32) uint16 {
	return binary.LittleEndian.Uint16(ip.data[offset:])
}

func (ip *IndexPage) setUint16(offset uint32, v uint16) {
	binary.LittleEndian.PutUint16(ip.data[offset:], v)
}

func (ip *IndexPage) GetLower() uint16     { return ip.getUint16(offsetLower) }
func (ip *IndexPage) GetUpper() uint16     { return ip.getUint16(offsetUpper) }
func (ip *IndexPage) GetItemCount() uint16 { return ip.getUint16(offsetItemCount) }

// GetFreeSpace returns the bytes between the line pointer array and the items.
func (ip *IndexPage) GetFreeSpace() uint16 {
	return ip.GetUpper() - ip.GetLower()
}

func itemIDOffset(slot uint16) uint32 {
	return uint32(SizeOfIndexPageHeader) + uint32(slot)*uint32(SizeOfItemID)
}

func (ip *IndexPage) getItemID(slot uint16) (offset uint16, length uint16) {
	at := itemIDOffset(slot)
	return ip.getUint16(at), ip.getUint16(at + 2)
}

func (ip *IndexPage) setItemID(slot uint16, offset uint16, length uint16) {
	at := itemIDOffset(slot)
	ip.setUint16(at, offset)
	ip.setUint16(at+2, length)
}

// AddItem copies item onto the page and returns its slot number.
func (ip *IndexPage) AddItem(item []byte) (uint16, error) {
	if len(item) == 0 {
		return 0, ErrEmptyItem
	}
	alignedSize := common.MaxAlignOf(len(item))
	needed := alignedSize
	reuse := ip.freeSlots.Len() > 0
	if !reuse {
		needed += int(SizeOfItemID)
	}
	if int(ip.GetFreeSpace()) < needed {
		common.ShPrintf(common.DEBUG_INFO, "IndexPage::AddItem no space. pageId:%d need:%s free:%s\n",
			ip.GetPageId(), humanize.Bytes(uint64(needed)), humanize.Bytes(uint64(ip.GetFreeSpace())))
		return 0, ErrNotEnoughSpace
	}

	var slot uint16
	if reuse {
		slot = ip.freeSlots.Pop().(uint16)
	} else {
		slot = ip.GetItemCount()
		ip.setUint16(offsetItemCount, slot+1)
		ip.setUint16(offsetLower, ip.GetLower()+SizeOfItemID)
	}

	upper := ip.GetUpper() - uint16(alignedSize)
	copy(ip.data[upper:], item)
	ip.setUint16(offsetUpper, upper)
	ip.setItemID(slot, upper, uint16(len(item)))
	ip.SetIsDirty(true)
	return slot, nil
}

// GetItem returns the bytes stored at slot. The slice aliases the page, so
// writes through it modify the page in place.
func (ip *IndexPage) GetItem(slot uint16) ([]byte, error) {
	if slot >= ip.GetItemCount() {
		return nil, ErrInvalidSlot
	}
	offset, length := ip.getItemID(slot)
	if length == 0 {
		return nil, ErrInvalidSlot
	}
	return ip.data[offset : offset+length], nil
}

// DeleteItem marks slot unused so a later AddItem can take it. The item's
// bytes are not reclaimed.
func (ip *IndexPage) DeleteItem(slot uint16) error {
	if _, err := ip.GetItem(slot); err != nil {
		return err
	}
	ip.setItemID(slot, 0, 0)
	ip.freeSlots.Push(slot)
	ip.SetIsDirty(true)
	return nil
}
