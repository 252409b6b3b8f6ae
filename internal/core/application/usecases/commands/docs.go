// Package commands contains business operations that modify system state: the
// customer checkout flow, admin order changes, admin sessions and maintenance runs.
// Every command is built through a validating constructor and executed by its handler.
package commands
