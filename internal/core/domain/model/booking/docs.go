// Package booking implements the Booking aggregate of the freight marketplace.
//
// A booking is a transporter's rate proposal against a specific load. It is
// created PENDING and moves to ACCEPTED or REJECTED by an explicit decision.
// A booking in PENDING or ACCEPTED status counts as active and keeps its load
// in BOOKED status; removal of the last active booking reverts the load to
// POSTED. That coordination lives in the application layer, not here.
package booking
