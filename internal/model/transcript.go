package model

// Path represents a file system path.
type Path string

// Transcript holds the rendered output of a single demonstration.
type Transcript struct {
	Demo Demo
	Text string
}
