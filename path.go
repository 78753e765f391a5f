// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package binary

import "strings"

// Path is an immutable value representing a position in a tree of
// named nodes: an absolute ("/a/b") or relative ("a/b", "../a") slash
// separated address. Values are always held in normal form (see
// [ParsePath]). Path holds a slice and so cannot be compared with ==;
// use [Path.Equal] or [Path.Compare].
type Path struct {
	absolute bool
	segments []string
}

// rootPath is the normal form of "/".
var rootPath = Path{absolute: true}

// ParsePath normalizes s into a Path. Normal form: absolute paths start
// with "/"; internal "." segments are elided; ".." segments collapse
// against the preceding non-".." segment when one exists (an absolute
// path can never ascend past root, so a leading ".." on an absolute
// path is simply dropped); an empty relative result becomes ".".
func ParsePath(s string) Path {
	absolute := strings.HasPrefix(s, "/")
	raw := strings.Split(s, "/")
	segments := make([]string, 0, len(raw))
	for _, seg := range raw {
		switch seg {
		case "", ".":
			continue
		case "..":
			if n := len(segments); n > 0 && segments[n-1] != ".." {
				segments = segments[:n-1]
				continue
			}
			if absolute {
				continue
			}
			segments = append(segments, "..")
		default:
			segments = append(segments, seg)
		}
	}
	return Path{absolute: absolute, segments: segments}
}

// String renders the path in normal form. An absolute path with no
// segments renders as "/"; a relative path with no segments renders as
// ".".
func (p Path) String() string {
	if p.absolute {
		if len(p.segments) == 0 {
			return "/"
		}
		return "/" + strings.Join(p.segments, "/")
	}
	if len(p.segments) == 0 {
		return "."
	}
	return strings.Join(p.segments, "/")
}

// IsAbsolute reports whether the path is rooted.
func (p Path) IsAbsolute() bool { return p.absolute }

// IsRoot reports whether the path is the absolute root.
func (p Path) IsRoot() bool { return p.absolute && len(p.segments) == 0 }

// Depth returns the number of segments in the path.
func (p Path) Depth() int { return len(p.segments) }

// NodeName returns the last segment, or "" for root/empty paths.
func (p Path) NodeName() string {
	if len(p.segments) == 0 {
		return ""
	}
	return p.segments[len(p.segments)-1]
}

// Parent returns the path one level up. The parent of root is root.
func (p Path) Parent() Path {
	if len(p.segments) == 0 {
		return p
	}
	return Path{absolute: p.absolute, segments: append([]string(nil), p.segments[:len(p.segments)-1]...)}
}

// Combine joins p with other. If other is absolute it replaces p
// entirely (combine with an absolute right operand returns the right
// operand verbatim); otherwise the result is p's segments followed by
// other's segments, re-normalized.
func (p Path) Combine(other Path) Path {
	if other.absolute {
		return other
	}
	return ParsePath(p.String() + "/" + other.String())
}

// RelativeTo computes the relative path from other to p. Both must be
// the same kind (absolute or relative); mixing kinds fails with
// ErrArgumentInvalid.
func (p Path) RelativeTo(other Path) Outcome[Path] {
	if p.absolute != other.absolute {
		return Err[Path](NewError(ErrArgumentInvalid, "relative_to requires paths of the same kind"))
	}
	common := p.CommonPrefix(other)
	upCount := len(other.segments) - common.Depth()
	tail := p.segments[common.Depth():]
	segments := make([]string, 0, upCount+len(tail))
	for i := 0; i < upCount; i++ {
		segments = append(segments, "..")
	}
	segments = append(segments, tail...)
	return Ok(Path{absolute: false, segments: segments})
}

// CommonPrefix returns the longest shared leading-segment prefix of p
// and other. The result is absolute only when both inputs are
// absolute; callers needing a strict-kind result should check
// IsAbsolute on both operands first.
func (p Path) CommonPrefix(other Path) Path {
	n := len(p.segments)
	if len(other.segments) < n {
		n = len(other.segments)
	}
	i := 0
	for i < n && p.segments[i] == other.segments[i] {
		i++
	}
	return Path{absolute: p.absolute && other.absolute, segments: append([]string(nil), p.segments[:i]...)}
}

// Compare produces a total order over paths: lexicographic over
// segments, with the separator treated as lowest (so "/a" < "/a/b").
// Comparing an absolute path to a relative one fails with
// ErrArgumentInvalid.
func (p Path) Compare(other Path) Outcome[int] {
	if p.absolute != other.absolute {
		return Err[int](NewError(ErrArgumentInvalid, "cannot compare paths of different kinds"))
	}
	for i := 0; i < len(p.segments) && i < len(other.segments); i++ {
		if p.segments[i] != other.segments[i] {
			if p.segments[i] < other.segments[i] {
				return Ok(-1)
			}
			return Ok(1)
		}
	}
	switch {
	case len(p.segments) < len(other.segments):
		return Ok(-1)
	case len(p.segments) > len(other.segments):
		return Ok(1)
	default:
		return Ok(0)
	}
}

// Equal reports whether p and other normalize to the same value.
func (p Path) Equal(other Path) bool {
	cmp := p.Compare(other)
	return cmp.IsOk() && cmp.Unwrap() == 0
}
