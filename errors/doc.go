/*
Package errors implements custom error interfaces for dorium.

The idea is to reuse as many errors from this package as possible and
define custom package errors when absolutely necessary. Errors are
registered with a unique code so that the host can return them to a
client in a safe, machine-readable manner.

Use the `Wrap` function to create an error that layers a description
on top of a registered root error:

  myError := errors.Wrap(errors.ErrNotFound, "escrow")

Create an error with a stacktrace attached at the lowest wrap, and
check for a kind with `ErrNotFound.Is(err)`.
*/
package errors
