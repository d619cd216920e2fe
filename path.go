package pwtext

import "strings"

// PathSeparator joins container names into a key path.
const PathSeparator = "/"

// pathStack is the chain of enclosing container names, outermost first.
// A pushed segment that itself contains the separator is split so that popping
// one segment always removes exactly what follows the last separator of the
// joined path.
type pathStack struct {
	segments []string
}

func (p *pathStack) empty() bool {
	return len(p.segments) == 0 || (len(p.segments) == 1 && p.segments[0] == "")
}

// push steps up one level. Pushing an empty segment onto a non-empty path is a no-op.
func (p *pathStack) push(segment string) {
	if p.empty() {
		p.segments = p.segments[:0]

		if segment != "" {
			p.segments = append(p.segments, strings.Split(segment, PathSeparator)...)
		}

		return
	}

	if segment == "" {
		return
	}

	p.segments = append(p.segments, strings.Split(segment, PathSeparator)...)
}

// pop steps down one level. Popping the outermost segment, or popping an empty
// path, leaves the empty path.
func (p *pathStack) pop() {
	if len(p.segments) <= 1 {
		p.segments = p.segments[:0]

		return
	}

	p.segments = p.segments[:len(p.segments)-1]
}

func (p *pathStack) String() string {
	return strings.Join(p.segments, PathSeparator)
}

// JoinPath joins segments into a key path, skipping empty segments.
func JoinPath(segments ...string) string {
	nonEmpty := make([]string, 0, len(segments))

	for _, segment := range segments {
		if segment != "" {
			nonEmpty = append(nonEmpty, segment)
		}
	}

	return strings.Join(nonEmpty, PathSeparator)
}

// SplitPath splits a key path into its segments. The empty path has no segments.
func SplitPath(path string) []string {
	if path == "" {
		return nil
	}

	return strings.Split(path, PathSeparator)
}
