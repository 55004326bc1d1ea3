/*
Package observability provides monitoring for the bridge's dispatcher.

It turns dispatcher hooks into Prometheus metrics and lets several hook sets
observe the same invocations.
*/
package observability
