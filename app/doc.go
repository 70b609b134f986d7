/*
Package app assembles the extensions into one dispatchable unit. The
host hands every request to a Dispatcher which routes it to the proper
handler, runs it on a scratch pad of the store and commits or discards
the writes depending on the outcome.
*/
package app
