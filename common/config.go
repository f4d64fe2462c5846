package common

const EnableDebug bool = false //true

const (
	// size of a data page in byte
	PageSize = 8192
	// max number of attributes an index can have. sizes the null bitmap
	IndexMaxKeys = 32
	// platform maximal alignment of any stored type
	MaxAlign = 8
	// alignment required by 64bit integer fields (tuple count)
	MaxAlign64 = 8
	// int32 alignment, used by variable length values
	IntAlign = 4
	// alignment of 16bit fields
	ShortAlign = 2
	CharAlign  = 1
	// longest index tuple t_info can describe
	MaxIndexTupleSize = 0x1FFF

	ActiveLogKindSetting = INFO | WARN | ERROR | FATAL //| DEBUG_INFO | DEBUGGING
)
