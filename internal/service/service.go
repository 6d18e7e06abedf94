// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives validated
// records from the handler, applies the resource rules (not found, zero-row
// mutations) and calls repository methods to reach the database.
package service
