package querier

import (
	"strconv"
	"strings"
)

// Patch collects "column = $n" assignments for a partial UPDATE. Column names
// must be constants; values are always bound.
type Patch struct {
	sets []string
	args []any
}

func (p *Patch) Set(column string, value any) {
	p.sets = append(p.sets, column+" = "+p.Arg(value))
}

// SetRaw appends an assignment whose right-hand side is a fixed SQL expression.
func (p *Patch) SetRaw(column, expr string) {
	p.sets = append(p.sets, column+" = "+expr)
}

// Arg binds value and returns its placeholder.
func (p *Patch) Arg(value any) string {
	p.args = append(p.args, value)
	return "$" + strconv.Itoa(len(p.args))
}

func (p *Patch) Empty() bool {
	return len(p.sets) == 0
}

func (p *Patch) Clause() string {
	return strings.Join(p.sets, ", ")
}

func (p *Patch) Args() []any {
	return p.args
}
