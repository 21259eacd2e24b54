/*
Package guard provides a non blocking mutual exclusion flag for engine entry
points.

Unlike a mutex, a Guard never waits. Entering an active guard fails right
away with ErrReentrant, which is what a callee trying to call back into the
engine during a dispatch must observe.
*/
package guard
