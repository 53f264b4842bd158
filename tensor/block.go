package tensor

import (
	"errors"

	"github.com/atomistics/rascaline/labels"
)

// Sentinel errors for Block construction and access.
var (
	// ErrShapeMismatch indicates the Values array's shape disagrees with
	// the samples/components/properties Labels it was constructed with.
	ErrShapeMismatch = errors.New("tensor: values shape does not match samples/components/properties")

	// ErrUnknownGradient indicates Gradient was called with a parameter
	// name that has no GradientBlock on this Block.
	ErrUnknownGradient = errors.New("tensor: no gradient block for that parameter")
)

// GradientBlock carries the analytic derivative of a parent Block's
// values with respect to a named parameter (e.g. "positions"). Its
// Samples' first column is always "sample", a row index into the parent
// Block's Samples.
type GradientBlock struct {
	Samples    *labels.Labels
	Components []*labels.Labels
	Properties *labels.Labels
	Values     *NDArray
}

// NewGradientBlock allocates a zero-filled GradientBlock whose Values
// shape is (samples.Count(), components[0].Count(), ..., properties.Count()).
// samples' first column must be named "sample"; ErrShapeMismatch is
// returned otherwise.
func NewGradientBlock(samples *labels.Labels, components []*labels.Labels, properties *labels.Labels) (*GradientBlock, error) {
	names := samples.Names()
	if len(names) == 0 || names[0] != "sample" {
		return nil, ErrShapeMismatch
	}

	values, err := allocateValues(samples, components, properties)
	if err != nil {
		return nil, err
	}

	return &GradientBlock{Samples: samples, Components: components, Properties: properties, Values: values}, nil
}

// Block is one labeled slab of a TensorMap: a dense tensor of values over
// (samples, components..., properties), plus any number of named gradient
// blocks.
type Block struct {
	Samples    *labels.Labels
	Components []*labels.Labels
	Properties *labels.Labels
	Values     *NDArray
	Gradients  map[string]*GradientBlock
}

// NewBlock allocates a zero-filled Block whose Values shape is
// (samples.Count(), components[0].Count(), ..., properties.Count()).
func NewBlock(samples *labels.Labels, components []*labels.Labels, properties *labels.Labels) (*Block, error) {
	values, err := allocateValues(samples, components, properties)
	if err != nil {
		return nil, err
	}

	return &Block{
		Samples:    samples,
		Components: components,
		Properties: properties,
		Values:     values,
		Gradients:  make(map[string]*GradientBlock),
	}, nil
}

func allocateValues(samples *labels.Labels, components []*labels.Labels, properties *labels.Labels) (*NDArray, error) {
	shape := make([]int, 0, len(components)+2)
	shape = append(shape, samples.Count())
	for _, c := range components {
		shape = append(shape, c.Count())
	}
	shape = append(shape, properties.Count())

	return NewNDArray(shape...)
}

// AddGradient attaches a gradient block under parameter name, replacing
// any previous block under the same name.
func (b *Block) AddGradient(parameter string, grad *GradientBlock) {
	b.Gradients[parameter] = grad
}

// Gradient returns the gradient block for parameter, or ErrUnknownGradient.
func (b *Block) Gradient(parameter string) (*GradientBlock, error) {
	g, ok := b.Gradients[parameter]
	if !ok {
		return nil, ErrUnknownGradient
	}

	return g, nil
}
