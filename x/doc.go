/*
Package x contains extensions that together implement the contract
semantics. Subpackages follow a common layout: messages with their
validation in msg.go, persistent models in model.go, and handlers
wired up through a RegisterRoutes function.

The helpers in this package are shared between extensions but are not
part of the framework core.
*/
package x
