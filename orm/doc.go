/*
Package orm provides an easy to use db wrapper

Break state space into prefixed sections called Buckets. Each bucket
contains only one type of object, addressed by a client chosen key.
Objects are serialized with amino before they hit the store and keys
can be enumerated in raw byte order.
*/
package orm
