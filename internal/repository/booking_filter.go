package repository

import (
	"strings"

	"gymmaster/internal/domain"
)

// BookingFilter narrows List. Empty fields match everything.
// ClassType and MemberName are case-sensitive substring matches; Status is
// an exact match.
type BookingFilter struct {
	ClassType  string
	MemberName string
	Status     domain.BookingStatus
}

type predicate struct {
	sql  string
	args []interface{}
}

// predicates returns one clause per present filter; List combines them with AND.
func (f BookingFilter) predicates(dialect string) []predicate {
	var out []predicate
	if f.ClassType != "" {
		out = append(out, containsPredicate(dialect, "ct.name", f.ClassType))
	}
	if f.MemberName != "" {
		out = append(out, containsPredicate(dialect, "m.name", f.MemberName))
	}
	if f.Status != "" {
		out = append(out, predicate{sql: "b.status = ?", args: []interface{}{string(f.Status)}})
	}
	return out
}

// containsPredicate matches needle literally anywhere in column, honouring case.
// SQLite's and MySQL's LIKE ignore case, so those dialects use GLOB and
// LIKE BINARY respectively. LIKE BINARY works whatever the column charset.
func containsPredicate(dialect, column, needle string) predicate {
	switch dialect {
	case "sqlite":
		return predicate{
			sql:  column + " GLOB ?",
			args: []interface{}{"*" + escapeGlob(needle) + "*"},
		}
	case "mysql":
		return predicate{
			sql:  column + " LIKE BINARY ?",
			args: []interface{}{"%" + escapeLike(needle) + "%"},
		}
	default:
		return predicate{
			sql:  column + " LIKE ?",
			args: []interface{}{"%" + escapeLike(needle) + "%"},
		}
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var globEscaper = strings.NewReplacer(`*`, `[*]`, `?`, `[?]`, `[`, `[[]`)

func escapeGlob(s string) string {
	return globEscaper.Replace(s)
}
