/*
Package session serialises access to a single engine on behalf of UI layers.

A Session owns one twoway.Engine, remembers the last input so a run can be
reset, tracks the states visited for graph overlays and fans step events out
to subscribers (the HTTP event stream). Every method is safe for concurrent use.
*/
package session
