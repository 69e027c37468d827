package status

// pathStack tracks the chain of currently open elements so text events can
// be attributed to the right field.
type pathStack struct {
	names []string
}

func (s *pathStack) push(name string) {
	s.names = append(s.names, name)
}

// pop removes the innermost element without checking the closing tag name.
// Source documents occasionally nest benignly, so resilience wins over
// strict well-formedness here.
func (s *pathStack) pop() {
	if n := len(s.names); n > 0 {
		s.names = s.names[:n-1]
	}
}

func (s *pathStack) current() string {
	if n := len(s.names); n > 0 {
		return s.names[n-1]
	}
	return ""
}

func (s *pathStack) depth() int {
	return len(s.names)
}
