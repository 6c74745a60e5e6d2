package storage

import (
	"strconv"
	"strings"
)

// Cond is a single boolean condition over entity columns. Conditions use ?
// placeholders and are renumbered into positional arguments when the query
// is rendered, so they compose with the soft-delete filter.
type Cond struct {
	expr string
	args []any
}

func Eq(column string, value any) Cond {
	return Cond{expr: column + " = ?", args: []any{value}}
}

func NotEq(column string, value any) Cond {
	return Cond{expr: column + " <> ?", args: []any{value}}
}

// EqFold matches column = value case-insensitively.
func EqFold(column string, value string) Cond {
	return Cond{expr: "lower(" + column + ") = lower(?)", args: []any{value}}
}

func escapeLike(value string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(value)
}

// whereClause renders the conditions into a WHERE clause. The soft-delete
// filter is composed in unless includeDeleted is set; only the code-sequence
// counter asks for deleted rows.
func whereClause(conds []Cond, includeDeleted bool) (string, []any) {
	var parts []string
	var args []any
	if !includeDeleted {
		parts = append(parts, "NOT is_deleted")
	}
	n := 0
	for _, c := range conds {
		expr := c.expr
		for strings.Contains(expr, "?") {
			n++
			expr = strings.Replace(expr, "?", "$"+strconv.Itoa(n), 1)
		}
		parts = append(parts, expr)
		args = append(args, c.args...)
	}
	if len(parts) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(parts, " AND "), args
}
