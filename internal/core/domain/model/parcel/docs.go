// Package parcel contains the Parcel aggregate and its lifecycle Status
// state machine. The aggregate enforces the booking invariants (customer is
// mandatory, addresses are required) and the Status value object enforces
// which transitions between lifecycle states are legal.
package parcel
