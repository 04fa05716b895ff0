/*
Package custos defines the common interfaces that tie the escrow
custody engine together, as well as implementations of some of the
simpler components (when interfaces would be too much overhead).

The root package holds the vocabulary shared by every extension:
deterministic Conditions and their derived Addresses, the Tx/Msg
request envelope, the Handler processing interface, the KVStore
abstraction and the request Context helpers. The business logic lives
under x/ (x/escrow, x/token, x/sigs), wired together by the app
package.

We pass context through context.Context between app, middleware and
handlers. Each extension, such as sigs, may add its own keys to enrich
the context with specific data.
*/
package custos
