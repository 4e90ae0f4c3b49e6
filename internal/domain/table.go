package domain

// Sector is a physical grouping of tables. Immutable reference data, created
// at load time.
type Sector struct {
	ID        string
	Name      string
	Color     string
	SortOrder int // defines vertical grouping order
}

// Capacity is the guest range a table can seat
type Capacity struct {
	Min int
	Max int
}

// Table is a seatable unit. Immutable reference data.
type Table struct {
	ID        string
	SectorID  string
	Name      string
	Capacity  Capacity
	SortOrder int // for Y-axis ordering within the sector
}

// Fits returns true if a party of the given size is within the table's
// capacity range (boundaries inclusive)
func (t *Table) Fits(partySize int) bool {
	return partySize >= t.Capacity.Min && partySize <= t.Capacity.Max
}
