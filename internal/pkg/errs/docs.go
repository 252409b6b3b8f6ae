// Package errs holds the typed errors shared by the domain, the use cases and the
// adapters.
//
// Each type pairs with a sentinel so callers match with errors.Is and the HTTP layer
// picks a status code without knowing the concrete type:
//   - ValueIsRequiredError unwraps to ErrValueIsRequired (missing field, 400)
//   - ValueIsInvalidError unwraps to ErrValueIsInvalid (unknown package, bad status, 400)
//   - ValueIsOutOfRangeError unwraps to ErrValueIsOutOfRange (calendar month, 400)
//   - ObjectNotFoundError unwraps to ErrObjectNotFound (order, checkout or session, 404)
//
// Constructors come in two flavors, with and without a cause. The cause is kept in the
// message and in the unwrap chain.
package errs
