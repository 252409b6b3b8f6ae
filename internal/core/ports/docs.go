// Package ports declares the interfaces the application core needs from the outside
// world: order persistence, session registries and credential checks. Adapters under
// internal/adapters implement them.
package ports
