/*
Package ledger keeps native value balances.

The engine holds value on behalf of its owners. Transfers move value from the
engine to a destination, deposits credit the engine. Balances are arbitrary
precision non negative integers.
*/
package ledger
