// Package services provides domain services of the order intake service: logic that
// reads orders or prices but does not belong to a single aggregate.
//
// The package includes:
//   - OrderFilter: the admin list search and status predicate
//   - PriceFormatter: locale aware display of package prices and totals
//   - WhatsAppLinkBuilder: click-to-chat links carrying an order summary
package services
