/*
Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

A configuration is a protobuf message saved under a "_c:" prefixed key named
after the owning package. It is loaded from the genesis file once and read on
every engine start. The engine configuration itself lives here as well.
*/
package gconf
