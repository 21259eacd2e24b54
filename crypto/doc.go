/*
Package crypto provides secp256k1 signing for owners and the recovery
primitive used to verify signature bundles.

A signature is the 65 byte concatenation r || s || v with v being 27 or 28.
*/
package crypto
