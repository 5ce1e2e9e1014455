package render

import "testing"

func TestDamageReset(t *testing.T) {
	var d Damage
	d.Reset(24)
	if d.Dirty() {
		t.Errorf("Dirty() after Reset = true, want false")
	}
}

func TestDamageMark(t *testing.T) {
	tests := []struct {
		name   string
		rows   []int
		wantY0 int
		wantY1 int
	}{
		{"single row", []int{5}, 5, 5},
		{"ascending", []int{2, 7}, 2, 7},
		{"descending", []int{7, 2}, 2, 7},
		{"widening", []int{5, 3, 9, 4}, 3, 9},
		{"first row", []int{0}, 0, 0},
	}

	for _, tt := range tests {
		var d Damage
		d.Reset(24)
		for _, r := range tt.rows {
			d.Mark(r)
		}
		if !d.Dirty() {
			t.Errorf("%s: Dirty() = false, want true", tt.name)
			continue
		}
		y0, y1 := d.Bounds()
		if y0 != tt.wantY0 || y1 != tt.wantY1 {
			t.Errorf("%s: Bounds() = (%d,%d), want (%d,%d)", tt.name, y0, y1, tt.wantY0, tt.wantY1)
		}
	}
}

func TestDamageReuse(t *testing.T) {
	var d Damage
	d.Reset(24)
	d.Mark(10)
	d.Reset(24)
	if d.Dirty() {
		t.Errorf("Dirty() after second Reset = true, want false")
	}
	d.Mark(3)
	y0, y1 := d.Bounds()
	if y0 != 3 || y1 != 3 {
		t.Errorf("Bounds() = (%d,%d), want (3,3)", y0, y1)
	}
}
