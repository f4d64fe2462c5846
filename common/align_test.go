package common

import (
	"testing"

	testingpkg "github.com/ryogrid/samehada-itup/testing/testing_assert"
)

func TestTypeAlign(t *testing.T) {
	testingpkg.Equals(t, 0, MaxAlignOf(0))
	testingpkg.Equals(t, 8, MaxAlignOf(1))
	testingpkg.Equals(t, 8, MaxAlignOf(8))
	testingpkg.Equals(t, 16, MaxAlignOf(9))
	testingpkg.Equals(t, uint16(12), IntAlignOf(uint16(9)))
	testingpkg.Equals(t, uint32(10), ShortAlignOf(uint32(9)))
	testingpkg.Equals(t, 16, MaxAlign64Of(12))
	testingpkg.Equals(t, 7, TypeAlign(CharAlign, 7))
}
