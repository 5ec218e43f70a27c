package common

// Named dependencies shared between the app wiring and the HTTP introspection page.
const (
	IntrospectionGraphKey    = "mixby.introspection.graph"
	IntrospectionDefaultsKey = "mixby.introspection.defaults"
)

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
