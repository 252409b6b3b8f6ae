// Package queries contains read operations for retrieving system state.
// Queries return read models shaped for the checkout form and the admin panel; they
// never change stored data.
package queries
