//go:build !itup_nocheck

package common

// EnableContractCheck turns SH_Assert on. Build with the itup_nocheck tag to
// strip caller contract checks from hot paths.
const EnableContractCheck = true
