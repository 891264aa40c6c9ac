package set

// Set is a set of string keys. It is not safe for concurrent use; callers
// keep one per evaluation.
type Set struct {
	m map[string]struct{}
}

// Add inserts val and reports whether it was not present before.
func (s *Set) Add(val string) bool {
	if _, ok := s.m[val]; ok {
		return false
	}
	s.m[val] = struct{}{}
	return true
}

func New(vals ...string) *Set {
	s := &Set{
		m: make(map[string]struct{}, len(vals)),
	}
	for _, v := range vals {
		s.Add(v)
	}
	return s
}
