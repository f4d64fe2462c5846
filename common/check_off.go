//go:build itup_nocheck

package common

const EnableContractCheck = false
