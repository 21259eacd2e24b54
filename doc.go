/*

Package quorum defines interfaces used throughout the engine, such as storage,
context keys and addresses.

The authorization core is split into extensions under x/: signature
validation (x/sigs), the authorization state (x/state), the transaction
executor (x/execute), the admin action processor (x/admin), the reentrancy
guard (x/guard), the value ledger (x/ledger) and notifications (x/events).
Package app wires them together into an Engine.

*/

package quorum
