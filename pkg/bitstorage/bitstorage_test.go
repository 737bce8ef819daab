package bitstorage

import "testing"

func TestNibbleArraySetGet(t *testing.T) {
	a := NewNibbleArray(4096)
	a.Set(0, 5)
	a.Set(1, 9)
	a.Set(4095, 0xF)
	if got := a.Get(0); got != 5 {
		t.Errorf("Get(0) = %d, want 5", got)
	}
	if got := a.Get(1); got != 9 {
		t.Errorf("Get(1) = %d, want 9", got)
	}
	if got := a.Get(4095); got != 0xF {
		t.Errorf("Get(4095) = %d, want 15", got)
	}
	// Value masked to low nibble.
	a.Set(2, 0xFF)
	if got := a.Get(2); got != 0x0F {
		t.Errorf("Get(2) = %d, want masked 0x0F", got)
	}
}

func TestNibbleArrayFilled(t *testing.T) {
	a := NewNibbleArrayFilled(16, 15)
	for i := 0; i < 16; i++ {
		if got := a.Get(i); got != 15 {
			t.Errorf("Get(%d) = %d, want 15", i, got)
		}
	}
}

func TestNibbleArrayOutOfRangePanics(t *testing.T) {
	a := NewNibbleArray(4)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range index")
		}
	}()
	a.Get(4)
}

func TestVarWidthSetGetLaw(t *testing.T) {
	const n = 4096
	for _, bits := range []int{1, 4, 5, 8, 13, 15} {
		a := NewVarWidthArray(n, bits)
		values := make([]uint64, n)
		for i := 0; i < n; i++ {
			v := uint64((i*2654435761 + bits) & int((1<<uint(bits))-1))
			values[i] = v
			a.Set(i, v)
		}
		for i := 0; i < n; i++ {
			want := values[i] & bitMask(bits)
			if got := a.Get(i); got != want {
				t.Fatalf("bits=%d: Get(%d) = %d, want %d", bits, i, got, want)
			}
		}
	}
}

func TestVarWidthSetDoesNotDisturbOthers(t *testing.T) {
	a := NewVarWidthArray(100, 5)
	for i := 0; i < 100; i++ {
		a.Set(i, uint64(i%31))
	}
	a.Set(50, 7)
	for i := 0; i < 100; i++ {
		if i == 50 {
			continue
		}
		want := uint64(i % 31)
		if got := a.Get(i); got != want {
			t.Errorf("Get(%d) = %d, want %d (disturbed by unrelated Set)", i, got, want)
		}
	}
	if got := a.Get(50); got != 7 {
		t.Errorf("Get(50) = %d, want 7", got)
	}
}

func TestBitsNeeded(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{1, 1}, {2, 2}, {3, 2}, {4, 3}, {7, 3}, {8, 4}, {15, 4}, {16, 5}, {255, 8}, {256, 9},
	}
	for _, tt := range tests {
		if got := BitsNeeded(tt.n); got != tt.want {
			t.Errorf("BitsNeeded(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestChangeBitWidthPreservesValues(t *testing.T) {
	const n = 4096
	a := NewVarWidthArray(n, 4)
	for i := 0; i < n; i++ {
		a.Set(i, uint64(i%16))
	}
	promoted := a.ChangeBitWidth(8)
	for i := 0; i < n; i++ {
		want := uint64(i % 16)
		if got := promoted.Get(i); got != want {
			t.Errorf("after promotion Get(%d) = %d, want %d", i, got, want)
		}
	}
	if promoted.BitWidth() != 8 {
		t.Errorf("BitWidth() = %d, want 8", promoted.BitWidth())
	}
}
