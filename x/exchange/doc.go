/*
Package exchange implements the one for one token swap. Incoming sobz
tokens are burned and the same amount of value tokens is paid out to
the caller. A running counter keeps track of the total amount ever
exchanged.
*/
package exchange
