package kakuro

import "github.com/jellos/pykakuro/internal/kakuro/combo"

// Domain is the bitmask of digits still possible for one entry cell
// (component C3 of spec.md). Bit (d-1) corresponds to digit d; domains
// only ever shrink during solving (spec.md invariant I2).
//
// Grounded on the teacher's internal/sudoku/human/candidates.go
// Candidates bitmask, generalized from the fixed digits-1-9 domain to
// whatever [min_val..max_val] subrange a Puzzle is configured with.
type Domain uint16

// FullDomain returns a Domain with every digit in [min, max] set.
func FullDomain(min, max int) Domain {
	var d Domain
	for v := min; v <= max; v++ {
		d = d.Set(v)
	}
	return d
}

// FromMask lifts a combo.Mask (union of valid combinations) into a Domain.
func FromMask(m combo.Mask) Domain {
	return Domain(m)
}

// Has returns true if digit is a member of the domain.
func (d Domain) Has(digit int) bool {
	if digit < 1 || digit > 9 {
		return false
	}
	return d&(1<<uint(digit-1)) != 0
}

// Set adds digit to the domain and returns the new value.
func (d Domain) Set(digit int) Domain {
	if digit < 1 || digit > 9 {
		return d
	}
	return d | (1 << uint(digit-1))
}

// Clear removes digit from the domain and returns the new value.
func (d Domain) Clear(digit int) Domain {
	if digit < 1 || digit > 9 {
		return d
	}
	return d &^ (1 << uint(digit-1))
}

// Count returns the number of candidate digits remaining.
func (d Domain) Count() int {
	n := 0
	for v := 1; v <= 9; v++ {
		if d.Has(v) {
			n++
		}
	}
	return n
}

// Only returns the single digit if the domain is a singleton, else (0, false).
func (d Domain) Only() (int, bool) {
	if d.Count() != 1 {
		return 0, false
	}
	for v := 1; v <= 9; v++ {
		if d.Has(v) {
			return v, true
		}
	}
	return 0, false
}

// ToSlice returns the domain's digits in ascending order.
func (d Domain) ToSlice() []int {
	var out []int
	for v := 1; v <= 9; v++ {
		if d.Has(v) {
			out = append(out, v)
		}
	}
	return out
}

// IsEmpty reports whether the domain has no candidates left.
func (d Domain) IsEmpty() bool { return d == 0 }

// Intersect returns the digits present in both domains.
func (d Domain) Intersect(other Domain) Domain { return d & other }

// Union returns the digits present in either domain.
func (d Domain) Union(other Domain) Domain { return d | other }

// Subtract returns the digits in d that are not in other.
func (d Domain) Subtract(other Domain) Domain { return d &^ other }

func (d Domain) String() string {
	if d == 0 {
		return "{}"
	}
	s := "{"
	for i, v := range d.ToSlice() {
		if i > 0 {
			s += ","
		}
		s += string(rune('0' + v))
	}
	return s + "}"
}
