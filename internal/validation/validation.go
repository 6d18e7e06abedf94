// Package validation checks inbound data before it reaches a handler.
//
// Two flavours live here:
//   - BindAndValidate binds typed request structs (path ids, query params)
//     and runs their `validate` struct tags.
//   - ValidatePayload checks a free-form JSON body against a model.Schema,
//     collecting every violation instead of stopping at the first.
package validation
