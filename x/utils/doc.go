// Package utils contains generic decorators that are useful to
// build applications but contain no business logic of their own.
package utils
