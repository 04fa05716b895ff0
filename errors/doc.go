/*
Package errors implements custom error interfaces for the engine.

The idea is to reuse as many errors from this package as possible and
define custom package errors when absolutely necessary. Errors are
categorized by a root error kind. Every error created during runtime
should wrap one of the registered root errors, so that callers can
test the failure category with the root's Is method and decide whether
to retry, fix arguments, or give up.
*/
package errors
