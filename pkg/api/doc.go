// Package api defines the request and response messages of the kasir.v1
// services. Messages travel as JSON; see package apiconnect for the service
// bindings.
package api
