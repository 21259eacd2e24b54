/*
Package admin implements owner approved changes of the engine governance.

An admin action is a self contained capability: anyone may submit it, the
threshold signatures over the typed action digest are the only
authorization. Every parameter of the action is part of the signed digest
together with an action tag, so a signature for one action or parameter can
never be applied to another.
*/
package admin
