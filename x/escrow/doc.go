/*
Package escrow implements the custody engine at the heart of this
repository.

A depositor locks fungible tokens in a vault controlled by a derived
address. A counterparty may withdraw them net of a fee before the
agreement expires. The depositor may cancel at any time and reclaim
the full balance. While the agreement is live, the depositor may also
direct the vault's custody authority at a single delegated call into
another program.

Both the escrow record address and the vault address are pure
functions of a caller-chosen seed, so every call referencing an
existing agreement is checked against a fresh re-derivation. No
private key can ever move vault funds; the engine alone acts on
behalf of the record's condition.
*/
package escrow
