// Package server runs the local HTTP trigger server.
//
// It provides lifecycle orchestration for the trigger endpoint: startup,
// and graceful shutdown when the application stops.
package server
