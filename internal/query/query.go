package query

import (
	"math"
	"strings"
)

const (
	DefaultPage = 0
	DefaultSize = 20

	// OrderByIDDesc is applied to every list query, whatever ordering the caller asked for,
	// so the most recently created records come first.
	OrderByIDDesc = "id DESC"

	// LikeEscape is the escape character used by SearchPattern.
	LikeEscape = "!"
)

// PageRequest selects one zero-based page of a list.
type PageRequest struct {
	Page int
	Size int
}

// Offset returns the number of records preceding the requested page. ok is false when
// that number does not fit in an int, in which case the page lies past any stored record.
func (r PageRequest) Offset() (offset int, ok bool) {
	if r.Size <= 0 {
		return 0, true
	}

	if r.Page > math.MaxInt/r.Size {
		return 0, false
	}

	return r.Page * r.Size, true
}

// Page holds one page of records together with the size of the whole result set.
type Page[T any] struct {
	Content       []T
	Page          int
	Size          int
	TotalElements int64
}

// TotalPages returns the number of pages needed for TotalElements at the page size.
func (p Page[T]) TotalPages() int {
	if p.Size <= 0 {
		return 1
	}

	return int((p.TotalElements + int64(p.Size) - 1) / int64(p.Size))
}

var likeEscaper = strings.NewReplacer(
	LikeEscape, LikeEscape+LikeEscape,
	"%", LikeEscape+"%",
	"_", LikeEscape+"_",
)

// SearchPattern builds a substring LIKE pattern for q. Wildcards in q match literally when
// the pattern is used with ESCAPE LikeEscape. Case folding is left to the database so both
// sides of the comparison fold the same way.
func SearchPattern(q string) string {
	return "%" + likeEscaper.Replace(q) + "%"
}
