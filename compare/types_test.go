package compare

import "cmp"

// version defines all six operators as methods.
type version struct{ major, minor int }

func (v version) compare(o version) int {
	if c := cmp.Compare(v.major, o.major); c != 0 {
		return c
	}
	return cmp.Compare(v.minor, o.minor)
}

func (v version) Equal(o version) bool          { return v.compare(o) == 0 }
func (v version) NotEqual(o version) bool       { return v.compare(o) != 0 }
func (v version) Less(o version) bool           { return v.compare(o) < 0 }
func (v version) Greater(o version) bool        { return v.compare(o) > 0 }
func (v version) LessOrEqual(o version) bool    { return v.compare(o) <= 0 }
func (v version) GreaterOrEqual(o version) bool { return v.compare(o) >= 0 }

// token defines only equality.
type token struct{ id string }

func (t token) Equal(o token) bool    { return t.id == o.id }
func (t token) NotEqual(o token) bool { return t.id != o.id }

// broken claims every pair is both equal and unequal.
type broken struct{ n int }

func (broken) Equal(broken) bool    { return true }
func (broken) NotEqual(broken) bool { return true }

// meters compares against feet, but feet knows nothing about meters.
type meters float64
type feet float64

func (m meters) Less(f feet) bool { return float64(m) < float64(f)*0.3048 }

// score is an ordered kind that overrides < only.
type score int

func (s score) Less(o score) bool { return int(s) < int(o) }

// opaque defines no operators at all.
type opaque struct{ fn func() }

// ticket declares < on its pointer.
type ticket struct{ n int }

func (t *ticket) Less(o ticket) bool { return t.n < o.n }

// boxed is comparable, but == panics when v holds a slice.
type boxed struct{ v any }

// versioned is satisfied by version.
type versioned interface{ Equal(version) bool }
