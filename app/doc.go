/*
Package app ties the extensions together into an application: a
message router to dispatch transactions to their handlers, a program
router to dispatch delegated calls, and a decorator chain builder.
*/
package app
