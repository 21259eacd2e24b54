/*
Package state holds the authorization state of the engine: the owner set, the
approval threshold, the executor and the shared nonce.

All four live in a single aggregate that is loaded from and saved to the KV
store as one record. Mutations validate the complete resulting state before
anything is changed, so a rejected mutation leaves the aggregate untouched.
*/
package state
