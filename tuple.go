package vecmath

import "fmt"

// Tuple is a read-only view of a fixed-size ordered set of components.
type Tuple[T Float] interface {
	// Dim returns the number of components.
	Dim() int
	// At returns component i. It panics if i is outside [0, Dim()).
	At(i int) T
}

// MutableTuple is a Tuple whose components can be written in place.
type MutableTuple[T Float] interface {
	Tuple[T]
	// SetAt sets component i. It panics if i is outside [0, Dim()).
	SetAt(i int, v T)
}

var (
	_ MutableTuple[float32] = (*Vec2[float32])(nil)
	_ MutableTuple[float32] = (*Vec3[float32])(nil)
	_ MutableTuple[float32] = (*Vec4[float32])(nil)
	_ MutableTuple[float64] = (*Quat[float64])(nil)
)

// MinComponent returns the smallest component of t and its index.
// Ties resolve to the lowest index. An empty tuple yields (0, -1).
func MinComponent[T Float](t Tuple[T]) (T, int) {
	n := t.Dim()
	if n == 0 {
		return 0, -1
	}
	best, idx := t.At(0), 0
	for i := 1; i < n; i++ {
		if c := t.At(i); c < best {
			best, idx = c, i
		}
	}
	return best, idx
}

// MaxComponent returns the greatest component of t and its index.
// Ties resolve to the lowest index. An empty tuple yields (0, -1).
func MaxComponent[T Float](t Tuple[T]) (T, int) {
	n := t.Dim()
	if n == 0 {
		return 0, -1
	}
	best, idx := t.At(0), 0
	for i := 1; i < n; i++ {
		if c := t.At(i); c > best {
			best, idx = c, i
		}
	}
	return best, idx
}

// Dot returns the dot product of two tuples of equal dimension.
func Dot[T Float](a, b Tuple[T]) (T, error) {
	if a.Dim() != b.Dim() {
		return 0, NewDimensionMismatch(a.Dim(), b.Dim(), nil)
	}
	var sum T
	for i := range a.Dim() {
		sum += a.At(i) * b.At(i)
	}
	return sum, nil
}

// Component returns component i of t, or ErrIndexOutOfRange.
func Component[T Float](t Tuple[T], i int) (T, error) {
	if i < 0 || i >= t.Dim() {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, t.Dim())
	}
	return t.At(i), nil
}

// SetComponent sets component i of t, or returns ErrIndexOutOfRange.
func SetComponent[T Float](t MutableTuple[T], i int, v T) error {
	if i < 0 || i >= t.Dim() {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, t.Dim())
	}
	t.SetAt(i, v)
	return nil
}

// CopyTuple copies the components of src into dst and returns the number
// of components copied, which is the smaller of the two dimensions.
func CopyTuple[T Float](dst MutableTuple[T], src Tuple[T]) int {
	n := min(dst.Dim(), src.Dim())
	for i := range n {
		dst.SetAt(i, src.At(i))
	}
	return n
}

func indexPanic(i, n int) {
	panic(fmt.Sprintf("vecmath: component index %d out of range [0, %d)", i, n))
}
