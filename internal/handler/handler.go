// Package handler is the HTTP layer, the first entry point for
// business logic after the router.
//
// Handlers parse requests, validate input through the validation
// package, call the appropriate service, and shape responses. They
// never talk to repositories directly.
package handler
