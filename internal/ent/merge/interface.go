package merge

// Merger is the interface that wraps the Merge method.
type Merger interface {
	// Merge folds research findings into the canonical dataset.
	Merge() error
}
