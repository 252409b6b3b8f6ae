// Package catalog holds the fixed offer of the landing page: the purchasable package
// tiers and the garment sizes a customer can pick from.
//
// The catalog is defined once at process start and never changes while the service
// runs. Orders keep a snapshot of the chosen package name and price, so editing the
// catalog between deployments never rewrites historical orders.
package catalog
