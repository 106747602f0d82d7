package transforms

import "testing"

func TestMandelbrot(t *testing.T) {
	tests := []struct {
		name string
		z, c complex128
		want complex128
	}{
		{"origin", 0, 0, 0},
		{"first step is c", 0, complex(0.25, -0.5), complex(0.25, -0.5)},
		{"square", complex(0, 1), 0, -1},
		{"square plus c", complex(1, 1), complex(1, -2), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mandelbrot(tt.z, tt.c); got != tt.want {
				t.Errorf("Mandelbrot(%v, %v) = %v, want %v", tt.z, tt.c, got, tt.want)
			}
		})
	}
}
