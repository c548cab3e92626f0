package vis

import "testing"

func TestGcd(t *testing.T) {
	cases := []struct {
		a, b, want int
	}{
		{12, 18, 6},
		{18, 12, 6},
		{7, 13, 1},
		{5, 0, 5},
		{0, 5, 5},
		{-4, 6, 2},
		{4, -6, 2},
		{-9, -6, 3},
		{1, 1, 1},
		{10, 10, 10},
	}
	for _, c := range cases {
		got, err := Gcd(c.a, c.b)
		if err != nil {
			t.Errorf("Gcd(%d,%d) unexpected error: %v", c.a, c.b, err)
			continue
		}
		if got != c.want {
			t.Errorf("Gcd(%d,%d)=%d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestGcdCommutes(t *testing.T) {
	for a := -6; a <= 6; a++ {
		for b := -6; b <= 6; b++ {
			if a == 0 && b == 0 {
				continue
			}
			ab, _ := Gcd(a, b)
			ba, _ := Gcd(b, a)
			if ab != ba {
				t.Errorf("Gcd(%d,%d)=%d but Gcd(%d,%d)=%d", a, b, ab, b, a, ba)
			}
		}
	}
}

func TestGcdZeroZeroUndefined(t *testing.T) {
	if _, err := Gcd(0, 0); err != ErrGCDUndefined {
		t.Errorf("Gcd(0,0) err=%v, want ErrGCDUndefined", err)
	}
}
