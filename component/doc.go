// Package component defines the lifecycle contract for toolkit pieces that
// hosts manage explicitly.
//
// An authkit host registers components (wire adapters, capability probes),
// starts them in order, health-checks them, and stops them in reverse order
// on shutdown.
//
// # Interfaces
//
//   - Component: lifecycle interface (Start/Stop/Health)
//   - Describable: optional self-reported summary
package component
