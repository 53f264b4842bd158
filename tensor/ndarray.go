package tensor

import "errors"

// Sentinel errors for NDArray.
var (
	// ErrBadShape is returned when a requested shape has a negative
	// dimension.
	ErrBadShape = errors.New("tensor: shape dimensions must be non-negative")

	// ErrIndexOutOfRange is returned when At/Set receives an out-of-bounds
	// index for some axis.
	ErrIndexOutOfRange = errors.New("tensor: index out of range")

	// ErrIndexArity is returned when At/Set receives the wrong number of
	// indices for the array's shape.
	ErrIndexArity = errors.New("tensor: wrong number of indices")
)

// NDArray is a dense, row-major, N-dimensional array of float64 values,
// the flat-slice storage style of matrix.Dense generalized from two axes
// to an arbitrary shape.
type NDArray struct {
	shape   []int
	strides []int
	data    []float64
}

// NewNDArray allocates a zero-filled NDArray of the given shape. An empty
// shape (zero dimensions) is a valid scalar array of one element; any
// dimension of length zero is also valid (an empty sample axis, per the
// spec's E5 scenario) and yields a zero-length backing slice.
func NewNDArray(shape ...int) (*NDArray, error) {
	for _, d := range shape {
		if d < 0 {
			return nil, ErrBadShape
		}
	}

	strides := make([]int, len(shape))
	size := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = size
		size *= shape[i]
	}

	return &NDArray{
		shape:   append([]int(nil), shape...),
		strides: strides,
		data:    make([]float64, size),
	}, nil
}

// Shape returns a copy of the array's shape.
func (a *NDArray) Shape() []int {
	return append([]int(nil), a.shape...)
}

// Len returns the total number of elements.
func (a *NDArray) Len() int {
	return len(a.data)
}

func (a *NDArray) flatIndex(idx []int) (int, error) {
	if len(idx) != len(a.shape) {
		return 0, ErrIndexArity
	}
	flat := 0
	for axis, i := range idx {
		if i < 0 || i >= a.shape[axis] {
			return 0, ErrIndexOutOfRange
		}
		flat += i * a.strides[axis]
	}

	return flat, nil
}

// At returns the value at idx.
func (a *NDArray) At(idx ...int) (float64, error) {
	flat, err := a.flatIndex(idx)
	if err != nil {
		return 0, err
	}

	return a.data[flat], nil
}

// Set assigns v at idx.
func (a *NDArray) Set(v float64, idx ...int) error {
	flat, err := a.flatIndex(idx)
	if err != nil {
		return err
	}
	a.data[flat] = v

	return nil
}

// Raw exposes the flat backing slice directly, for callers that already
// know the flat offset and want to avoid repeated bounds-checked indexing.
func (a *NDArray) Raw() []float64 {
	return a.data
}

// Clone returns a deep copy of a.
func (a *NDArray) Clone() *NDArray {
	out := &NDArray{
		shape:   append([]int(nil), a.shape...),
		strides: append([]int(nil), a.strides...),
		data:    make([]float64, len(a.data)),
	}
	copy(out.data, a.data)

	return out
}
