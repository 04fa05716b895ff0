/*
Package sigs provides basic authentication middleware to verify the
signatures on the transaction, and maintain nonces for replay
protection.

Every signer is tracked in its own bucket entry holding the public key
and the next expected sequence value. A transaction signature must be
computed over the chain id and the current sequence, so a committed
transaction can never be replayed, on this chain or another.
*/
package sigs
