package console

import "fmt"

// Str returns the textual representation of v, as fmt.Sprint renders it
// (a String method is used when v has one).
func Str[T any](v T) string {
	return fmt.Sprint(v)
}
