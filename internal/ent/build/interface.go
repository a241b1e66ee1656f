package build

// Builder is the interface that wraps the Build method.
type Builder interface {
	// Build converts the publications CSV into the canonical dataset.
	Build() error
}
