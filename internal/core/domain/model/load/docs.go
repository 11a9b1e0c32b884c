// Package load implements the Load aggregate of the freight marketplace.
//
// A load is a shipment posting created by a shipper that seeks transport
// capacity. Loads own the POSTED/BOOKED/CANCELLED status machine: a load is
// POSTED while no active booking exists, BOOKED while at least one booking is
// pending or accepted, and CANCELLED after an explicit soft delete. CANCELLED
// is terminal for booking creation: a cancelled load accepts no new bookings.
package load
