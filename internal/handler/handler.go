// Package handler is the HTTP entry point after the router.
//
// It binds and validates requests through the validation package, calls the
// service layer and shapes responses for the admin front end.
package handler
