package transforms

// Mandelbrot is one step of the quadratic map z -> z^2 + c.
func Mandelbrot(z complex128, c complex128) complex128 {
	return z*z + c
}
