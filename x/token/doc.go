/*
Package token implements the token-custody collaborator of the escrow
engine.

Every account is bound to a single mint (identified by its ticker) and
holds one balance. The Controller exposes the transfer, balance and
mint primitives consumed by other extensions. The Controller performs
no authorization: callers (handlers, or the token Program when invoked
through the passthrough path) are responsible for checking that the
acting identity may debit the source account.
*/
package token
