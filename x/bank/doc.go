/*
Package bank defines the payment instructions handlers emit when funds
leave the contract. Handlers never move funds themselves. They return
instructions in their DeliverResult and the host executes them after
the state changes were committed. This keeps handler logic pure and
lets the host decide how native transfers and token contract calls are
actually carried out.
*/
package bank
