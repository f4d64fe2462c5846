package tuple

import (
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/ryogrid/samehada-itup/storage/table/column"
	"github.com/ryogrid/samehada-itup/storage/table/schema"
	testingpkg "github.com/ryogrid/samehada-itup/testing/testing_assert"
	"github.com/ryogrid/samehada-itup/types"
)

var allTypes = []types.TypeID{types.Boolean, types.Smallint, types.Integer, types.BigInt, types.Float, types.Varchar, types.Timestamp}

func randomValue(rng *rand.Rand, typeID types.TypeID) types.Value {
	switch typeID {
	case types.Boolean:
		return types.NewBoolean(rng.Intn(2) == 1)
	case types.Smallint:
		return types.NewSmallint(int16(rng.Intn(1 << 16)))
	case types.Integer:
		return types.NewInteger(rng.Int31() - rng.Int31())
	case types.BigInt:
		return types.NewBigInt(rng.Int63() - rng.Int63())
	case types.Float:
		return types.NewFloat(rng.NormFloat64())
	case types.Timestamp:
		return types.NewTimestamp(rng.Int63())
	}
	return types.NewVarchar(strings.Repeat(string(rune('a'+rng.Intn(26))), rng.Intn(40)))
}

func randomRow(rng *rand.Rand, s *schema.Schema, nullProb float64) ([]types.Value, []bool) {
	natts := s.GetColumnCount()
	values := make([]types.Value, natts)
	isNull := make([]bool, natts)
	for i := uint32(0); i < natts; i++ {
		typeID := s.GetColumn(i).GetType()
		if rng.Float64() < nullProb {
			values[i] = types.NewNull(typeID)
			isNull[i] = true
		} else {
			values[i] = randomValue(rng, typeID)
		}
	}
	return values, isNull
}

func randomSchema(rng *rand.Rand) *schema.Schema {
	natts := 1 + rng.Intn(10)
	typeIDs := make([]types.TypeID, natts)
	for i := range typeIDs {
		typeIDs[i] = allTypes[rng.Intn(len(allTypes))]
	}
	return newSchema(typeIDs...)
}

func checkRow(t *testing.T, tuple *IndexTuple, s *schema.Schema, values []types.Value, isNull []bool) {
	t.Helper()
	gotValues, gotNull := tuple.DeformTuple(s)
	testingpkg.Equals(t, isNull, gotNull)
	for i := range values {
		if !isNull[i] {
			testingpkg.Equals(t, values[i], gotValues[i])
		}
		v, null := tuple.GetAttribute(i+1, s)
		testingpkg.Equals(t, isNull[i], null)
		if !null {
			testingpkg.Equals(t, values[i], v)
			testingpkg.Equals(t, v, tuple.nocacheGetAttr(i+1, s))
		}
	}
}

func TestRoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 200; round++ {
		s := randomSchema(rng)
		for n := 0; n < 20; n++ {
			values, isNull := randomRow(rng, s, []float64{0, 0.2, 0.6}[n%3])
			var tuple *IndexTuple
			var err error
			if n%2 == 0 {
				tuple, err = FormTuple(s, values, isNull)
			} else {
				tuple, err = FormTupleWithTupleCount(s, values, isNull, uint64(n))
			}
			testingpkg.Ok(t, err)
			if n%2 == 1 {
				testingpkg.Equals(t, uint64(n), tuple.GetCount())
			}
			testingpkg.Equals(t, uint32(len(tuple.Data())), tuple.Size())
			checkRow(t, tuple, s, values, isNull)
		}
	}
}

// Reads through the fast path must match a full walk whether the cache was
// filled by this tuple, by other tuples, or not at all.
func TestPathEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 100; round++ {
		s := randomSchema(rng)
		tuples := make([]*IndexTuple, 0)
		rows := make([][]types.Value, 0)
		nulls := make([][]bool, 0)
		for n := 0; n < 10; n++ {
			values, isNull := randomRow(rng, s, 0.3)
			tuple, err := FormTuple(s, values, isNull)
			testingpkg.Ok(t, err)
			tuples = append(tuples, tuple)
			rows = append(rows, values)
			nulls = append(nulls, isNull)
		}

		natts := int(s.GetColumnCount())
		for i, tuple := range tuples {
			// cold cache, read last attribute first
			s.ResetCache()
			for attnum := natts; attnum >= 1; attnum-- {
				v, null := tuple.GetAttribute(attnum, s)
				testingpkg.Equals(t, nulls[i][attnum-1], null)
				if !null {
					testingpkg.Equals(t, rows[i][attnum-1], v)
				}
			}
		}
		// warm cache shared by every tuple of the schema
		for i, tuple := range tuples {
			checkRow(t, tuple, s, rows[i], nulls[i])
		}
	}
}

func TestFastPathAfterFirstDecode(t *testing.T) {
	s := newSchema(types.Integer, types.Integer)
	first, _ := FormTuple(s, []types.Value{types.NewInteger(10), types.NewInteger(20)}, []bool{false, false})
	first.DeformTuple(s)

	second, _ := FormTuple(s, []types.Value{types.NewInteger(30), types.NewInteger(40)}, []bool{false, false})
	// corrupting the cache proves the fast path reads through it
	s.SetAttCacheOff(1, 0)
	v, _ := second.GetAttribute(2, s)
	testingpkg.Equals(t, types.NewInteger(30), v)

	s.ResetCache()
	v, _ = second.GetAttribute(2, s)
	testingpkg.Equals(t, types.NewInteger(40), v)
	testingpkg.Equals(t, int32(4), s.AttCacheOff(1))
}

// One Column at position 2 of two schemas starts at a different offset in
// each, so cached offsets must not leak between them.
func TestSharedColumnAcrossSchemas(t *testing.T) {
	shared := column.NewColumn("k", types.Integer)
	s1 := schema.NewSchema([]*column.Column{column.NewColumn("a", types.Integer), shared})
	s2 := schema.NewSchema([]*column.Column{column.NewColumn("a", types.BigInt), shared})

	t1, err := FormTuple(s1, []types.Value{types.NewInteger(1), types.NewInteger(2)}, []bool{false, false})
	testingpkg.Ok(t, err)
	values, _ := t1.DeformTuple(s1)
	testingpkg.Equals(t, types.NewInteger(2), values[1])
	testingpkg.Equals(t, int32(4), s1.AttCacheOff(1))
	testingpkg.Equals(t, schema.InvalidCacheOffset, s2.AttCacheOff(1))

	t2, err := FormTuple(s2, []types.Value{types.NewBigInt(7), types.NewInteger(99)}, []bool{false, false})
	testingpkg.Ok(t, err)
	v, null := t2.GetAttribute(2, s2)
	testingpkg.Assert(t, !null, "attribute 2 is not null")
	testingpkg.Equals(t, types.NewInteger(99), v)
	values, _ = t2.DeformTuple(s2)
	testingpkg.Equals(t, []types.Value{types.NewBigInt(7), types.NewInteger(99)}, values)
	testingpkg.Equals(t, int32(8), s2.AttCacheOff(1))

	// s1 still reads through its own cached offset
	v, _ = t1.GetAttribute(2, s1)
	testingpkg.Equals(t, types.NewInteger(2), v)
	testingpkg.Equals(t, int32(4), s1.AttCacheOff(1))
}

func TestConcurrentCachePopulation(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	s := newSchema(types.Integer, types.BigInt, types.Smallint, types.Varchar, types.Integer)
	tuples := make([]*IndexTuple, 64)
	rows := make([][]types.Value, 64)
	nulls := make([][]bool, 64)
	for i := range tuples {
		rows[i], nulls[i] = randomRow(rng, s, 0.1)
		var err error
		tuples[i], err = FormTuple(s, rows[i], nulls[i])
		testingpkg.Ok(t, err)
	}

	wg := sync.WaitGroup{}
	errCh := make(chan int, len(tuples))
	for i := range tuples {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for attnum := 5; attnum >= 1; attnum-- {
				v, null := tuples[i].GetAttribute(attnum, s)
				if null != nulls[i][attnum-1] || (!null && !v.CompareEquals(rows[i][attnum-1])) {
					errCh <- i
					return
				}
			}
		}(i)
	}
	wg.Wait()
	close(errCh)
	for i := range errCh {
		t.Errorf("tuple %d decoded wrongly", i)
	}
}

func TestAttributePairs(t *testing.T) {
	s := newSchema(types.Varchar, types.Integer)
	tuple, err := FormTuple(s, []types.Value{types.NewNull(types.Varchar), types.NewInteger(8)}, []bool{true, false})
	testingpkg.Ok(t, err)

	p := tuple.GetAttributePair(2, s)
	testingpkg.Equals(t, types.NewInteger(8), p.First)
	testingpkg.Assert(t, !p.Second, "attribute 2 is not null")

	pairs := tuple.DeformTuplePairs(s)
	testingpkg.Equals(t, 2, len(pairs))
	testingpkg.Assert(t, pairs[0].Second, "attribute 1 is null")
	testingpkg.Equals(t, types.NewInteger(8), pairs[1].First)
}
