package nn

import "fmt"

// Model is an ordered pipeline of layers sharing a fixed vector width.
//
// Each layer's output feeds the next layer's input. The final layer is
// expected to narrow to width 1; Forward returns that scalar. Layer widths
// are checked when the model is assembled, never on the hot path.
type Model struct {
	width  int
	layers []Layer
}

// NewModel creates an empty model whose first layer must accept vectors of
// the given width.
func NewModel(width int) *Model {
	return &Model{width: width}
}

// AddLayer appends a layer, rejecting it if its input width does not chain
// with the current output width of the pipeline.
func (m *Model) AddLayer(l Layer) error {
	want := m.width
	if n := len(m.layers); n > 0 {
		want = m.layers[n-1].OutSize()
	}
	if l.InSize() != want {
		return fmt.Errorf("layer %d: input width %d does not chain with previous output width %d",
			len(m.layers), l.InSize(), want)
	}
	m.layers = append(m.layers, l)
	return nil
}

// Forward runs one sample through every layer and returns the first element
// of the final layer's output. It performs no allocation.
func (m *Model) Forward(x []float32) float32 {
	out := x
	for _, l := range m.layers {
		out = l.Forward(out)
	}
	return out[0]
}

// Reset propagates to every layer; only stateful layers react.
func (m *Model) Reset() {
	for _, l := range m.layers {
		l.Reset()
	}
}

// Len returns the number of layers.
func (m *Model) Len() int { return len(m.layers) }

// Layer returns the i-th layer. Callers use a type assertion to reach the
// concrete variant, mirroring how the effect engine addresses its fixed
// topology.
func (m *Model) Layer(i int) Layer { return m.layers[i] }

// Width returns the model's input vector width.
func (m *Model) Width() int { return m.width }
