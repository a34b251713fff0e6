package donation

// Table is one finalized output table. Columns lists column names in
// first-seen order; Rows may omit columns that other rows carry.
type Table struct {
	Name    string
	Columns []string
	Rows    []Row
}

// Builder accumulates rows for one table across files. Finalize turns it into
// a Table, after which it must not be reused.
type Builder struct {
	name    string
	columns []string
	seen    map[string]struct{}
	rows    []Row
}

// NewBuilder creates an empty builder for the named table.
func NewBuilder(name string) *Builder {
	return &Builder{name: name, seen: map[string]struct{}{}}
}

// Append adds rows to the table, registering any columns not seen before in
// the order given.
func (b *Builder) Append(columns []string, rows []Row) {
	for _, col := range columns {
		if _, ok := b.seen[col]; ok {
			continue
		}
		b.seen[col] = struct{}{}
		b.columns = append(b.columns, col)
	}
	b.rows = append(b.rows, rows...)
}

// Len returns the number of accumulated rows.
func (b *Builder) Len() int {
	return len(b.rows)
}

// Finalize returns the accumulated table.
func (b *Builder) Finalize() *Table {
	return &Table{Name: b.name, Columns: b.columns, Rows: b.rows}
}
