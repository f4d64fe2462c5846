package types

// LSN is the type of the log identifier
type LSN int32

const SizeOfLSN = 4

const InvalidLSN = LSN(-1)
