/*
Package dorium defines all common interfaces used to wire together the
Dorium contract modules, as well as implementations of some of the
simpler components (when interfaces would be too much overhead).

The settlement logic lives under x/escrow and x/exchange. Both are
built as message handlers that read and write a KVStore and emit
instructions for an external asset ledger. The host is expected to
execute one handler call at a time against a cache-wrapped store and
either commit or discard the whole call (see app.Dispatcher).

We pass context through context.Context between the host, middleware,
and handlers. Extensions, such as auth, may add their own keys to
enrich the context with specific data.
*/
package dorium
