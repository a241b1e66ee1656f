package pubdex

// Version and Build are set during compilation via ldflags.
var (
	Version = "v0.1.0"
	Build   = "n/a"
)
