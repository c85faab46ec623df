package sim

// Table is an ordered per-sector time series: one row per simulated year,
// one named float column per indicator. Rows are appended in increasing year
// order and never mutated or reordered after a simulation run completes.
type Table struct {
	// Columns lists indicator names in declared order; the year column is
	// held separately in Years.
	Columns []string
	Years   []int
	values  map[string][]float64
}

// NewTable creates an empty table with the given indicator columns.
func NewTable(columns ...string) *Table {
	values := make(map[string][]float64, len(columns))
	for _, c := range columns {
		values[c] = nil
	}
	return &Table{Columns: columns, values: values}
}

// AppendRow records one year's snapshot. vals must be ordered like Columns;
// extra or missing values indicate a programming error in the sector model
// and are dropped/zero-filled rather than panicking.
func (t *Table) AppendRow(year int, vals ...float64) {
	t.Years = append(t.Years, year)
	for i, c := range t.Columns {
		v := 0.0
		if i < len(vals) {
			v = vals[i]
		}
		t.values[c] = append(t.values[c], v)
	}
}

// Column returns the full per-year series for one indicator, or nil when the
// indicator is unknown.
func (t *Table) Column(name string) []float64 {
	return t.values[name]
}

// Len is the number of recorded years.
func (t *Table) Len() int {
	return len(t.Years)
}
