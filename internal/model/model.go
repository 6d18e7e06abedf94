// Package model holds the resource descriptors that drive the generic CRUD
// pipeline.
//
// A Schema names a table, its id column and the ordered business fields with
// their wire names, column names, kinds and validation rules. Validation,
// persistence and handlers are written once against Schema and instantiated
// per resource, so adding a resource means adding a Schema value.
package model
