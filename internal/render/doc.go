// Package render substitutes version placeholders in template text and writes
// the result to a destination only when its content actually changes, so that
// build systems keyed on modification time do not rebuild needlessly.
package render
