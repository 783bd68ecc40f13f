// Package http implements the local HTTP trigger boundary of the sync engine.
//
// It exposes a manual sync trigger and a status endpoint. Cross-cutting
// concerns such as request tracing and access logging are handled in this
// package before requests are delegated to the sync manager. Both the manual
// trigger and the scheduled job share the same entry point, so single-flight
// semantics hold across trigger sources.
package http
