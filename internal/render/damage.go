package render

// Damage accumulates the dirty row band of one write batch.
// Reset marks "no damage" as y0 = row count, y1 = -1; each touched row
// widens the band. The zero value is an empty band.
type Damage struct {
	y0 int
	y1 int
}

// Reset clears the accumulator for a grid with the given row count.
func (d *Damage) Reset(rows int) {
	d.y0 = rows
	d.y1 = -1
}

// Mark records a mutated row.
func (d *Damage) Mark(row int) {
	if row < d.y0 {
		d.y0 = row
	}
	if row > d.y1 {
		d.y1 = row
	}
}

// Dirty reports whether any row was marked since the last Reset.
func (d *Damage) Dirty() bool {
	return d.y1 >= 0
}

// Bounds returns the inclusive dirty row band. Only valid when Dirty.
func (d *Damage) Bounds() (y0, y1 int) {
	return d.y0, d.y1
}
