/*
Package sigs checks threshold signature bundles.

A bundle is the concatenation of exactly threshold signature units, each 65
bytes long (32 bytes r, 32 bytes s, 1 byte v). Every unit must recover to a
current owner and the recovered owners must be strictly increasing, which
rules out duplicate signers without any extra bookkeeping.
*/
package sigs
