package pg

import (
	"strconv"
	"strings"
)

// where collects AND-ed conditions and their positional arguments.
type where struct {
	conds []string
	args  []any
}

// arg binds v and returns its placeholder.
func (w *where) arg(v any) string {
	w.args = append(w.args, v)
	return "$" + strconv.Itoa(len(w.args))
}

func (w *where) add(cond string) {
	w.conds = append(w.conds, cond)
}

func (w *where) office(column, office string) {
	if office != "" {
		w.add("upper(" + column + ") = upper(" + w.arg(office) + ")")
	}
}

// regex adds a case-insensitive match; an empty expression matches everything.
func (w *where) regex(column, expr string) {
	if expr != "" {
		w.add(column + " ~* " + w.arg(expr))
	}
}

func (w *where) after(column, key string) {
	if key != "" {
		w.add(column + " > " + w.arg(key))
	}
}

func (w *where) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}
