package kvfifo

import "testing"

func Test_NewUUID(t *testing.T) {
	id := NewUUID()
	if id.IsNil() {
		t.Errorf("NewUUID() failed, got = nil UUID, want = non-nil.")
	}
	id2 := NewUUID()
	if id == id2 {
		t.Errorf("NewUUID() failed, got = duplicate IDs.")
	}
}

func Test_ParseUUID(t *testing.T) {
	id := NewUUID()
	parsed, err := ParseUUID(id.String())
	if err != nil {
		t.Fatalf("ParseUUID failed, got = %v, want = nil.", err)
	}
	if parsed != id {
		t.Errorf("ParseUUID round trip failed, got = %v, want = %v.", parsed, id)
	}
	if _, err = ParseUUID("not-a-uuid"); err == nil {
		t.Errorf("ParseUUID(garbage) failed, got = nil, want = error.")
	}
}

func Test_NilUUID(t *testing.T) {
	if !NilUUID.IsNil() {
		t.Errorf("NilUUID.IsNil() failed, got = false, want = true.")
	}
	var zero UUID
	if !zero.IsNil() {
		t.Errorf("zero UUID IsNil() failed, got = false, want = true.")
	}
}

func Test_UUIDCompare(t *testing.T) {
	a := NewUUID()
	if a.Compare(a) != 0 {
		t.Errorf("Compare(self) failed, got != 0, want = 0.")
	}
	b := NewUUID()
	if got, flipped := a.Compare(b), b.Compare(a); got != -flipped {
		t.Errorf("Compare symmetry failed, got = (%d, %d).", got, flipped)
	}
}
