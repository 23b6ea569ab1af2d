package report

import "strconv"

// Stat is one row of a usage table: how much of a table is used.  A zero
// Capacity or Bytes is left blank.
type Stat struct {
	Name     string
	Used     int
	Capacity int
	Bytes    int
}

func (s Stat) row() []string {
	row := []string{s.Name, strconv.Itoa(s.Used), "", ""}

	if s.Capacity > 0 {
		row[2] = strconv.Itoa(s.Capacity)
	}

	if s.Bytes > 0 {
		row[3] = strconv.Itoa(s.Bytes)
	}

	return row
}
