package btree

import (
	"cmp"
	"testing"
	"time"

	"github.com/sharedcode/kvfifo"
)

type personKey struct {
	firstname string
	lastname  string
}

func (x personKey) Compare(other interface{}) int {
	y := other.(personKey)
	if i := cmp.Compare[string](x.lastname, y.lastname); i != 0 {
		return i
	}
	return cmp.Compare[string](x.firstname, y.firstname)
}

func Test_ComparerInterfaceKey(t *testing.T) {
	b3, err := New[personKey, string](DefaultSlotLength, true, nil)
	if err != nil {
		t.Fatalf("New failed, got = %v, want = nil.", err)
	}

	b3.Add(personKey{"joe", "krueger"}, "joe")
	b3.Add(personKey{"ann", "krueger"}, "ann")
	b3.Add(personKey{"zoe", "abbott"}, "zoe")

	if !b3.First() || b3.GetCurrentItem().Key.lastname != "abbott" {
		t.Errorf("First() failed, got = %v, want = abbott.", b3.GetCurrentItem().Key)
	}
	if !b3.Next() || b3.GetCurrentItem().Key.firstname != "ann" {
		t.Errorf("Next() failed, got = %v, want = ann krueger.", b3.GetCurrentItem().Key)
	}
	if !b3.Find(personKey{"joe", "krueger"}, false) {
		t.Errorf("Find(joe krueger) failed, got = false, want = true.")
	}
}

func Test_ComparerFuncOverride(t *testing.T) {
	// Descending comparer flips the traversal order.
	desc := func(a int, b int) int {
		return cmp.Compare[int](b, a)
	}
	b3, _ := New[int, int](DefaultSlotLength, true, desc)
	for i := 1; i <= 50; i++ {
		b3.Add(i, i)
	}
	if !b3.First() || b3.GetCurrentItem().Key != 50 {
		t.Errorf("First() failed, got = %v, want = 50.", b3.GetCurrentItem().Key)
	}
	if !b3.Last() || b3.GetCurrentItem().Key != 1 {
		t.Errorf("Last() failed, got = %v, want = 1.", b3.GetCurrentItem().Key)
	}
}

func Test_CompareCoercions(t *testing.T) {
	if Compare(1, 2) >= 0 {
		t.Errorf("Compare(1, 2) failed, got >= 0, want < 0.")
	}
	if Compare("b", "a") <= 0 {
		t.Errorf("Compare(b, a) failed, got <= 0, want > 0.")
	}
	a := kvfifo.NewUUID()
	if Compare(a, a) != 0 {
		t.Errorf("Compare(uuid, uuid) failed, got != 0, want 0.")
	}
	earlier := time.Now()
	later := earlier.Add(time.Second)
	if Compare(earlier, later) >= 0 {
		t.Errorf("Compare(earlier, later) failed, got >= 0, want < 0.")
	}
	cc := CoerceComparer(int64(0))
	if cc(int64(3), int64(3)) != 0 {
		t.Errorf("CoerceComparer(int64) failed, got != 0, want 0.")
	}
}
