/*
Package custostest provides mocks and helpers for testing extensions.

Structures defined here are intended to reduce the boilerplate of
tests: condition and key fixtures, authentication doubles, transaction
doubles and ready-made contexts.
*/
package custostest
