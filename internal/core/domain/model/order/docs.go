// Package order provides the Order aggregate of the intake service and the Draft a
// customer fills in at checkout.
//
// The package includes:
//   - Order: a placed delivery request with its package snapshot and lifecycle status
//   - Status: the six stages staff move orders through, with display labels
//   - Draft: the incremental checkout input and its submittability rule
//   - Contact and Address: plain value types shared by Draft and Order
//
// Key business rules:
//   - A draft is submittable only with package, size, date, a name longer than three
//     characters, a WhatsApp number of at least ten characters and a full address
//   - Every placed order starts as New
//   - Status may change from any value to any other
//   - Only status and admin notes change after an order is stored
package order
