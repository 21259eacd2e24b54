/*
Package quorumtest provides fixtures shared by the engine package tests:
ordered owner keys, prepared contexts and a ready authorization state.
*/
package quorumtest
