// Package model defines the data structures for pitfall demonstrations.
package model

// Slug identifies a demonstration (kebab-case, stable across releases).
type Slug string

// Demo describes one pitfall demonstration.
type Demo struct {
	Slug   Slug   `yaml:"slug"`
	Number int    `yaml:"number"` // 1-based position in the fixed run order
	Title  string `yaml:"title"`
	Topic  string `yaml:"topic"`
}
