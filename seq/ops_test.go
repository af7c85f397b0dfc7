package seq

import (
	"errors"
	"math/rand"
	"strconv"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestSum(t *testing.T) {
	if Sum(New(1, 2, 3, 4, 5)) != 15 {
		t.Errorf("expected sum of (1 2 3 4 5) to be 15, is %d", Sum(New(1, 2, 3, 4, 5)))
	}
	if Sum(Empty[int]()) != 0 {
		t.Error("expected sum of empty sequence to be 0, isn't")
	}
}

func TestProduct(t *testing.T) {
	if Product(New(2.0, 3.0, 4.0)) != 24.0 {
		t.Errorf("expected product of (2 3 4) to be 24, is %v", Product(New(2.0, 3.0, 4.0)))
	}
	if Product(Empty[float64]()) != 1.0 {
		t.Error("expected product of empty sequence to be 1, isn't")
	}
	if Product(New(2.0, 0.0, 4.0)) != 0.0 {
		t.Error("expected product of a sequence containing zero to be 0, isn't")
	}
}

func TestLength(t *testing.T) {
	if Length(New(1, 2, 3)) != 3 {
		t.Errorf("expected length of (1 2 3) to be 3, is %d", Length(New(1, 2, 3)))
	}
	if Length(Empty[int]()) != 0 {
		t.Error("expected length of empty sequence to be 0, isn't")
	}
}

func TestAppend(t *testing.T) {
	r := Append(New(1, 2), New(3, 4))
	if !Equal(r, New(1, 2, 3, 4)) {
		t.Errorf("expected (1 2) ++ (3 4) to be (1 2 3 4), is %s", r)
	}
	b := New(3, 4)
	if Append(Empty[int](), b) != b {
		t.Error("expected appending to an empty sequence to share b unchanged, doesn't")
	}
	if !Equal(Append(New(1, 2), Empty[int]()), New(1, 2)) {
		t.Error("expected appending the empty sequence to keep a's elements, doesn't")
	}
}

func TestAppendSharesSecondArgument(t *testing.T) {
	a := New(1, 2)
	b := New(3, 4)
	r := Append(a, b)
	if Drop(r, 2) != b {
		t.Error("expected append result to hold b by reference after a's cells, doesn't")
	}
}

func TestAppendLengthProperty(t *testing.T) {
	rnd := rand.New(rand.NewSource(99))
	for i := 0; i < 50; i++ {
		a := randomSequence(rnd, rnd.Intn(100))
		b := randomSequence(rnd, rnd.Intn(100))
		require.Equal(t, Length(a)+Length(b), Length(Append(a, b)))
	}
}

func TestConcat(t *testing.T) {
	ss := New(New(1, 2), Empty[int](), New(3))
	if !Equal(Concat(ss), New(1, 2, 3)) {
		t.Errorf("expected concat to flatten to (1 2 3), is %s", Concat(ss))
	}
	if !IsEmpty(Concat(Empty[Seq[int]]())) {
		t.Error("expected concat of an empty outer sequence to be empty, isn't")
	}
}

func TestMap(t *testing.T) {
	r := Map(New(1, 2, 3), strconv.Itoa)
	if !Equal(r, New("1", "2", "3")) {
		t.Errorf("expected map(itoa) to be (1 2 3) as strings, is %s", r)
	}
}

func TestMapPreservesLengthProperty(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	double := func(x int) int { return x * 2 }
	for i := 0; i < 50; i++ {
		s := randomSequence(rnd, rnd.Intn(100))
		require.Equal(t, Length(s), Length(Map(s, double)))
	}
}

func TestFilter(t *testing.T) {
	even := func(x int) bool { return x%2 == 0 }
	r := Filter(New(1, 2, 3, 4, 5, 6), even)
	if !Equal(r, New(2, 4, 6)) {
		t.Errorf("expected filter(even) to keep (2 4 6) in order, is %s", r)
	}
	if !IsEmpty(Filter(Empty[int](), even)) {
		t.Error("expected filter of empty sequence to be empty, isn't")
	}
}

func TestFlatMap(t *testing.T) {
	twice := func(x int) Seq[int] { return New(x, x) }
	r := FlatMap(New(1, 2, 3), twice)
	if !Equal(r, New(1, 1, 2, 2, 3, 3)) {
		t.Errorf("expected flatMap to duplicate every element, is %s", r)
	}
	none := func(x int) Seq[int] { return Empty[int]() }
	if !IsEmpty(FlatMap(New(1, 2, 3), none)) {
		t.Error("expected flatMap to the empty sequence to be empty, isn't")
	}
}

func TestDrop(t *testing.T) {
	s := New(1, 2, 3, 4, 5)
	if !Equal(Drop(s, 2), New(3, 4, 5)) {
		t.Errorf("expected drop(2) to be (3 4 5), is %s", Drop(s, 2))
	}
	if Drop(s, 0) != s || Drop(s, -1) != s {
		t.Error("expected drop of n<=0 to return the sequence unchanged, doesn't")
	}
	if !IsEmpty(Drop(s, 10)) {
		t.Error("expected dropping past the end to be empty, isn't")
	}
	if !IsEmpty(Drop(Empty[int](), 3)) {
		t.Error("expected drop on empty sequence to be empty, isn't")
	}
}

func TestDropWhile(t *testing.T) {
	s := New(1, 2, 3, 4, 5, 6)
	r := DropWhile(s, func(x int) bool { return x <= 3 })
	if !Equal(r, New(4, 5, 6)) {
		t.Errorf("expected dropWhile(<=3) to be (4 5 6), is %s", r)
	}
	if !IsEmpty(DropWhile(Empty[int](), func(x int) bool { return true })) {
		t.Error("expected dropWhile on empty sequence to be empty, isn't")
	}
	all := DropWhile(s, func(x int) bool { return true })
	if !IsEmpty(all) {
		t.Errorf("expected dropWhile(true) to drop everything, kept %s", all)
	}
}

func TestInit(t *testing.T) {
	r, err := Init(New(1, 2, 3))
	if err != nil {
		t.Fatalf("expected init of (1 2 3) to succeed, got %v", err)
	}
	if !Equal(r, New(1, 2)) {
		t.Errorf("expected init of (1 2 3) to be (1 2), is %s", r)
	}

	one, err := Init(New(7))
	if err != nil || !IsEmpty(one) {
		t.Errorf("expected init of a singleton to be the empty sequence, is (%s, %v)", one, err)
	}

	_, err = Init(Empty[int]())
	if err == nil {
		t.Fatal("expected init of empty sequence to fail, didn't")
	}
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("expected error to match ErrEmpty, is %v", err)
	}
}

func TestZipWith(t *testing.T) {
	add := func(x, y int) int { return x + y }
	r := ZipWith(New(1, 2, 3), New(4, 5, 6), add)
	if !Equal(r, New(5, 7, 9)) {
		t.Errorf("expected zipWith(+) to be (5 7 9), is %s", r)
	}
	short := ZipWith(New(1, 2), New(4, 5, 6), add)
	if !Equal(short, New(5, 7)) {
		t.Errorf("expected zipWith to truncate to the shorter input, is %s", short)
	}
	if !IsEmpty(ZipWith(Empty[int](), New(1), add)) {
		t.Error("expected zip with an empty side to be empty, isn't")
	}
}

func TestAddPairwise(t *testing.T) {
	r := AddPairwise(New(1, 2, 3), New(4, 5, 6))
	if !Equal(r, New(5, 7, 9)) {
		t.Errorf("expected addPairwise to be (5 7 9), is %s", r)
	}
	if Length(AddPairwise(New(1, 2, 3), New(4))) != 1 {
		t.Error("expected addPairwise to truncate to the shorter input, doesn't")
	}
}

func TestHasSubsequence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpinscala.seq")
	defer teardown()
	//
	s := New(1, 2, 3, 4)
	if HasSubsequence(s, New(2, 4)) {
		t.Error("expected (2 4) not to be a contiguous subsequence of (1 2 3 4), is")
	}
	if !HasSubsequence(s, New(2, 3)) {
		t.Error("expected (2 3) to be a contiguous subsequence of (1 2 3 4), isn't")
	}
	if !HasSubsequence(s, Empty[int]()) {
		t.Error("expected the empty needle to match vacuously, doesn't")
	}
	if !HasSubsequence(s, New(1, 2, 3, 4)) {
		t.Error("expected a sequence to contain itself, doesn't")
	}
	if HasSubsequence(Empty[int](), New(1)) {
		t.Error("expected empty haystack not to contain (1), does")
	}
	// a failed partial match must restart at the next element, not skip it
	if !HasSubsequence(New(1, 1, 2), New(1, 2)) {
		t.Error("expected (1 2) to be found after a partial-match restart, isn't")
	}
}

func TestFind(t *testing.T) {
	x := Find(New(1, 2, 3, 4), func(x int) bool { return x > 2 })
	if x.WithDefault(0) != 3 {
		t.Errorf("expected find(>2) to be Just(3), is %v", x)
	}
	y := Find(New(1, 2), func(x int) bool { return x > 2 })
	var v int
	switch m := y.Match(); m {
	case m.Just(&v):
		t.Errorf("expected find(>2) on (1 2) to be Nothing, is Just(%d)", v)
	case m.Nothing():
	}
}

func TestReduce(t *testing.T) {
	add := func(x, y int) int { return x + y }
	r := Reduce(New(1, 2, 3, 4, 5), add)
	if v, err := r.Unwrap(); err != nil || v != 15 {
		t.Errorf("expected reduce(+) of (1 2 3 4 5) to be Ok(15), is (%d, %v)", v, err)
	}
	_, err := Reduce(Empty[int](), add).Unwrap()
	if err == nil {
		t.Fatal("expected reduce of empty sequence to be Err, isn't")
	}
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("expected reduce error to match ErrEmpty, is %v", err)
	}
}

func TestReduceAgreesWithSum(t *testing.T) {
	add := func(x, y int) int { return x + y }
	rnd := rand.New(rand.NewSource(31))
	for i := 0; i < 50; i++ {
		s := randomSequence(rnd, 1+rnd.Intn(100))
		require.Equal(t, Sum(s), Reduce(s, add).WithDefault(-1))
	}
}

func TestSlice(t *testing.T) {
	require.Equal(t, []int{1, 2, 3}, Slice(New(1, 2, 3)))
	require.Empty(t, Slice(Empty[int]()))
}
