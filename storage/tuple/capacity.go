package tuple

import (
	"github.com/ryogrid/samehada-itup/common"
	"github.com/ryogrid/samehada-itup/storage/page"
)

// MaxTuplesPerPage bounds the number of index tuples on one page. Every tuple
// has at least one byte beyond the bare header (data, bitmap or count), is
// MAXALIGNed, and needs one slot pointer.
func MaxTuplesPerPage(pageSize int, pageHeaderSize int, slotSize int) int {
	return (pageSize - pageHeaderSize) / (common.MaxAlignOf(int(IndexTupleHeaderSize+1)) + slotSize)
}

// MaxIndexTuplesPerPage is MaxTuplesPerPage for page.IndexPage.
const MaxIndexTuplesPerPage = (common.PageSize - int(page.SizeOfIndexPageHeader)) /
	((IndexTupleHeaderSize+1+common.MaxAlign-1)&^(common.MaxAlign-1) + int(page.SizeOfItemID))
