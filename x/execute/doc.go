/*
Package execute implements owner approved value transfers and external calls.

Only the executor may submit a transfer, and only together with a bundle of
threshold owner signatures over the typed transfer digest. The digest commits
to the current nonce, so every approval can be used once.

Two flavours exist. Execute is best effort: when the external call fails the
nonce stays consumed and the failure is reported in the result. ExecuteStrict
is all or nothing: a failed call rolls back the whole operation, nonce
included, and surfaces the callee failure payload.
*/
package execute
