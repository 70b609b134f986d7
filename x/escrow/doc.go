/*
Package escrow implements proposal escrows. Funds are collected under a
client chosen id and held until the validators decide. An approval pays
the full balance out to the proposer, a refund disposes of it according
to the configured refund policy. Both decisions are final, a decided
escrow stays readable but rejects any further funding or decision.
*/
package escrow
