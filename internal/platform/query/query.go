// Package query composes optional filters into parameterized postgres
// statements on top of goqu.
package query

import (
	"strings"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // registers the dialect
	"github.com/doug-martin/goqu/v9/exp"
)

var dialect = goqu.Dialect("postgres")

// From starts a prepared SELECT so that every value becomes a $n parameter.
func From(table ...any) *goqu.SelectDataset {
	return dialect.From(table...).Prepared(true)
}

// Predicates collects WHERE conditions. Helpers ignore blank values so
// callers can feed optional filters straight through.
type Predicates struct {
	exprs []exp.Expression
}

func (p *Predicates) Add(e exp.Expression) *Predicates {
	if e != nil {
		p.exprs = append(p.exprs, e)
	}
	return p
}

// Equal adds col = v.
func (p *Predicates) Equal(col string, v any) *Predicates {
	return p.Add(goqu.I(col).Eq(v))
}

// EqualFold adds LOWER(col) = lower(v) when v is not blank.
func (p *Predicates) EqualFold(col, v string) *Predicates {
	v = strings.TrimSpace(v)
	if v == "" {
		return p
	}
	return p.Add(goqu.Func("LOWER", goqu.I(col)).Eq(strings.ToLower(v)))
}

// Contains adds a case-insensitive substring match when v is not blank.
func (p *Predicates) Contains(col, v string) *Predicates {
	v = strings.TrimSpace(v)
	if v == "" {
		return p
	}
	return p.Add(goqu.I(col).ILike(ContainsPattern(v)))
}

// ContainsAny matches v as a substring of any of cols.
func (p *Predicates) ContainsAny(v string, cols ...string) *Predicates {
	v = strings.TrimSpace(v)
	if v == "" || len(cols) == 0 {
		return p
	}
	pattern := ContainsPattern(v)
	ors := make([]exp.Expression, 0, len(cols))
	for _, col := range cols {
		ors = append(ors, goqu.I(col).ILike(pattern))
	}
	return p.Add(goqu.Or(ors...))
}

func (p *Predicates) Len() int {
	return len(p.exprs)
}

func (p *Predicates) Empty() bool {
	return len(p.exprs) == 0
}

// Apply ANDs every collected predicate onto ds.
func (p *Predicates) Apply(ds *goqu.SelectDataset) *goqu.SelectDataset {
	if p.Empty() {
		return ds
	}
	return ds.Where(goqu.And(p.exprs...))
}

// ContainsPattern escapes LIKE wildcards in v and wraps it in %...%.
func ContainsPattern(v string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(v) + "%"
}
