package model

// model is the implementation of the Model interface.
type model struct {
	name           string
	vertices       []GPUVertex
	indices        []uint32
	boundingRadius float32
}

// Model defines the interface for renderable triangle geometry.
// A Model holds CPU-side vertices and indices; the renderer uploads them once per model.
// Models are immutable after construction and may be shared between scene nodes.
type Model interface {
	// Name retrieves the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// Vertices returns the model's vertices.
	//
	// Returns:
	//   - []GPUVertex: the vertex list
	Vertices() []GPUVertex

	// Indices returns the model's triangle list indices (counter-clockwise front faces).
	//
	// Returns:
	//   - []uint32: the index list
	Indices() []uint32

	// VertexData returns the raw vertex data for this model's mesh.
	//
	// Returns:
	//   - []byte: the vertex data
	VertexData() []byte

	// IndexData returns the raw index data for this model's mesh.
	//
	// Returns:
	//   - []byte: the index data
	IndexData() []byte

	// IndexCount returns the number of indices in the model's mesh.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// BoundingRadius returns the distance from the model origin to its farthest vertex.
	//
	// Returns:
	//   - float32: the bounding sphere radius
	BoundingRadius() float32
}

var _ Model = &model{}

// NewModel creates a new Model from the given options.
//
// Parameters:
//   - options: a variadic list of ModelBuilderOption functions to configure the Model
//
// Returns:
//   - Model: the newly created model
func NewModel(options ...ModelBuilderOption) Model {
	m := &model{}
	for _, opt := range options {
		opt(m)
	}
	for _, v := range m.vertices {
		p := v.Position
		if r := length(p); r > m.boundingRadius {
			m.boundingRadius = r
		}
	}
	return m
}

func (m *model) Name() string {
	return m.name
}

func (m *model) Vertices() []GPUVertex {
	return m.vertices
}

func (m *model) Indices() []uint32 {
	return m.indices
}

func (m *model) VertexData() []byte {
	return MarshalVertices(m.vertices)
}

func (m *model) IndexData() []byte {
	return MarshalIndices(m.indices)
}

func (m *model) IndexCount() int {
	return len(m.indices)
}

func (m *model) BoundingRadius() float32 {
	return m.boundingRadius
}
