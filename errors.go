package solid

/*
	Error is an implementation for the error interface that allow you to declare exported errors with the `const` keyword.

		TL;DR:
			const ErrSomething solid.Error = "something is an error"

*/
type Error string

// Error implement the error interface
func (err Error) Error() string { return string(err) }

// ErrNotSupported is the runtime failure the problematic examples lean on.
// A type that has to return this from a method it inherited through its base abstraction
// is a type that should not have been forced to implement that method in the first place.
const ErrNotSupported Error = "operation not supported"
