package controller

// reportRow is a single line of a report list: a highlighted key column and a
// free-form detail column.
type reportRow struct {
	key    string
	detail string
}

func (r reportRow) FilterValue() string {
	return r.key + " " + r.detail
}
