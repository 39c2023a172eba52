package model

// ModelBuilderOption is a functional option for configuring a Model via NewModel.
type ModelBuilderOption func(*model)

// WithName is an option builder that sets the name of the Model.
//
// Parameters:
//   - name: the model identifier
//
// Returns:
//   - ModelBuilderOption: a function that applies the name option to a model
func WithName(name string) ModelBuilderOption {
	return func(m *model) {
		m.name = name
	}
}

// WithGeometry is an option builder that sets the vertices and indices of the Model.
//
// Parameters:
//   - vertices: the vertex list
//   - indices: the triangle list indices
//
// Returns:
//   - ModelBuilderOption: a function that applies the geometry option to a model
func WithGeometry(vertices []GPUVertex, indices []uint32) ModelBuilderOption {
	return func(m *model) {
		m.vertices = vertices
		m.indices = indices
	}
}
