/*
Package eip712 computes the typed structured data digests that owners sign.

Two request types are supported, a value transfer with an arbitrary payload
and an administrative action. Both are bound to a domain made of the engine
name, its version, the chain identifier and the engine address, so a
signature can never be replayed on another chain or against another engine.

	digest = keccak256(0x19 0x01 || domainSeparator || structHash)
*/
package eip712
