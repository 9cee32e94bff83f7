package kakuro

import "testing"

func TestFullDomain(t *testing.T) {
	d := FullDomain(1, 9)
	for v := 1; v <= 9; v++ {
		if !d.Has(v) {
			t.Errorf("FullDomain(1,9) missing digit %d", v)
		}
	}
	if d.Has(0) || d.Count() != 9 {
		t.Errorf("FullDomain(1,9) = %v, want exactly digits 1-9", d)
	}
}

func TestDomainSetClearIntersectSubtract(t *testing.T) {
	d := FullDomain(1, 9).Clear(5).Clear(7)
	if d.Has(5) || d.Has(7) {
		t.Fatal("Clear did not remove digits")
	}
	if d.Count() != 7 {
		t.Errorf("Count = %d, want 7", d.Count())
	}

	narrow := Domain(0).Set(2).Set(4).Set(6)
	inter := d.Intersect(narrow)
	for _, v := range []int{2, 4, 6} {
		if !inter.Has(v) {
			t.Errorf("Intersect missing digit %d", v)
		}
	}
	if inter.Count() != 3 {
		t.Errorf("Intersect count = %d, want 3", inter.Count())
	}

	sub := d.Subtract(narrow)
	if sub.Has(2) || sub.Has(4) || sub.Has(6) {
		t.Error("Subtract left a removed digit")
	}
}

func TestDomainOnly(t *testing.T) {
	single := Domain(0).Set(3)
	if v, ok := single.Only(); !ok || v != 3 {
		t.Errorf("Only() = %d, %v; want 3, true", v, ok)
	}
	multi := Domain(0).Set(3).Set(4)
	if _, ok := multi.Only(); ok {
		t.Error("Only() should report false for a multi-digit domain")
	}
}

func TestDomainToSliceAscending(t *testing.T) {
	d := Domain(0).Set(7).Set(2).Set(5)
	got := d.ToSlice()
	want := []int{2, 5, 7}
	if len(got) != len(want) {
		t.Fatalf("ToSlice = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ToSlice = %v, want %v", got, want)
		}
	}
}

func TestDomainIsEmpty(t *testing.T) {
	if !(Domain(0)).IsEmpty() {
		t.Error("zero Domain should be empty")
	}
	if Domain(0).Set(1).IsEmpty() {
		t.Error("non-zero Domain should not be empty")
	}
}
