package load

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cargopro/internal/core/domain/model/kernel"
	"cargopro/internal/pkg/errs"
)

var (
	// ErrLoadIsNotConstructed is returned when a Load instance was not created
	// through the NewLoad or RestoreLoad factory functions.
	ErrLoadIsNotConstructed = errors.New("Load must be created via NewLoad or RestoreLoad")

	// ErrLoadCancelled is returned when a booking is attempted against a
	// cancelled load.
	ErrLoadCancelled = errors.New("cannot create booking for a cancelled load")
)

// Details carries the shipper-supplied attributes of a load.
// It is the input to NewLoad; every field except Comment is required.
type Details struct {
	ShipperID      string
	LoadingPoint   string
	UnloadingPoint string
	LoadingDate    time.Time
	UnloadingDate  time.Time
	ProductType    string
	TruckType      string
	TruckCount     int
	Weight         float64
	Comment        string
}

// Update carries a partial edit of a load. Nil fields are left unchanged;
// present fields must satisfy the same constraints as at creation.
type Update struct {
	LoadingPoint   *string
	UnloadingPoint *string
	LoadingDate    *time.Time
	UnloadingDate  *time.Time
	ProductType    *string
	TruckType      *string
	TruckCount     *int
	Weight         *float64
	Comment        *string
}

// Load represents a shipment posting in the marketplace. It is an aggregate
// root owning the POSTED/BOOKED/CANCELLED lifecycle.
//
// Load maintains these invariants:
//   - Must have a valid unique identifier
//   - Shipper, loading/unloading points, product type, and truck type are non-blank
//   - Loading and unloading dates are present
//   - Truck count is at least 1, weight is positive
//   - Status transitions follow the rules encoded in Status
//   - Can only be created through NewLoad or RestoreLoad
type Load struct {
	id             kernel.UUID
	shipperID      string
	loadingPoint   string
	unloadingPoint string
	loadingDate    time.Time
	unloadingDate  time.Time
	productType    string
	truckType      string
	truckCount     int
	weight         float64
	comment        string
	status         Status
	datePosted     time.Time

	// isConstructed ensures the load was created via a factory function
	isConstructed bool
}

// NewLoad creates a load from shipper-supplied details.
// The load starts in Posted status with datePosted set to the current time.
// Returns a validation error if any required field is blank, a date is
// missing, the truck count is below 1, or the weight is not positive.
func NewLoad(id kernel.UUID, details Details) (*Load, error) {
	l := &Load{
		status:        Posted,
		datePosted:    time.Now(),
		isConstructed: true,
	}

	if err := errors.Join(
		l.setID(id),
		l.setShipperID(details.ShipperID),
		l.setLoadingPoint(details.LoadingPoint),
		l.setUnloadingPoint(details.UnloadingPoint),
		l.setLoadingDate(details.LoadingDate),
		l.setUnloadingDate(details.UnloadingDate),
		l.setProductType(details.ProductType),
		l.setTruckType(details.TruckType),
		l.setTruckCount(details.TruckCount),
		l.setWeight(details.Weight),
	); err != nil {
		return nil, err
	}

	l.comment = details.Comment
	return l, nil
}

// RestoreLoad reconstructs a load from persistence.
// All invariants are re-validated so corrupt rows surface as errors instead
// of invalid aggregates.
func RestoreLoad(id kernel.UUID, details Details, status Status, datePosted time.Time) (*Load, error) {
	l, err := NewLoad(id, details)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	l.status = status
	l.datePosted = datePosted
	return l, nil
}

// Validate ensures the Load instance was properly constructed through a
// factory function. Called when aggregates cross the persistence boundary.
func (l *Load) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLoadIsNotConstructed
	}

	return nil
}

// IsEqual compares two loads by their unique identifiers.
func (l *Load) IsEqual(other *Load) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the load's unique identifier.
func (l *Load) ID() kernel.UUID {
	return l.id
}

// ShipperID returns the identifier of the shipper who posted the load.
func (l *Load) ShipperID() string {
	return l.shipperID
}

// LoadingPoint returns the pickup location.
func (l *Load) LoadingPoint() string {
	return l.loadingPoint
}

// UnloadingPoint returns the delivery location.
func (l *Load) UnloadingPoint() string {
	return l.unloadingPoint
}

// LoadingDate returns the scheduled pickup time.
func (l *Load) LoadingDate() time.Time {
	return l.loadingDate
}

// UnloadingDate returns the scheduled delivery time.
func (l *Load) UnloadingDate() time.Time {
	return l.unloadingDate
}

// ProductType returns the kind of cargo being shipped.
func (l *Load) ProductType() string {
	return l.productType
}

// TruckType returns the kind of truck the shipment requires.
func (l *Load) TruckType() string {
	return l.truckType
}

// TruckCount returns the number of trucks required.
func (l *Load) TruckCount() int {
	return l.truckCount
}

// Weight returns the shipment weight.
func (l *Load) Weight() float64 {
	return l.weight
}

// Comment returns the shipper's free-text comment.
func (l *Load) Comment() string {
	return l.comment
}

// Status returns the current lifecycle status.
func (l *Load) Status() Status {
	return l.status
}

// DatePosted returns the time the load was posted.
func (l *Load) DatePosted() time.Time {
	return l.datePosted
}

// Book marks the load as having at least one active booking.
//
// The transition is unconditional for posted and already-booked loads; a
// cancelled load rejects it with ErrLoadCancelled.
func (l *Load) Book() error {
	newStatus, err := l.status.Book()
	if err != nil {
		return err
	}

	l.status = newStatus
	return nil
}

// RevertToPosted returns the load to Posted status.
// Called when the last active booking on the load has been removed.
func (l *Load) RevertToPosted() error {
	newStatus, err := l.status.Repost()
	if err != nil {
		return err
	}

	l.status = newStatus
	return nil
}

// Cancel soft-deletes the load. The record and its bookings are retained,
// but the load accepts no new bookings afterwards.
func (l *Load) Cancel() error {
	newStatus, err := l.status.Cancel()
	if err != nil {
		return err
	}

	l.status = newStatus
	return nil
}

// ApplyUpdate edits the fields present in the update, leaving nil fields
// unchanged. Present fields are validated with the creation constraints.
// The status is unconditionally reset to Posted afterwards: editing a load
// re-opens it for bidding, mirroring the behavior of the source system.
func (l *Load) ApplyUpdate(update Update) error {
	var errsJoined []error

	if update.LoadingPoint != nil {
		errsJoined = append(errsJoined, l.setLoadingPoint(*update.LoadingPoint))
	}
	if update.UnloadingPoint != nil {
		errsJoined = append(errsJoined, l.setUnloadingPoint(*update.UnloadingPoint))
	}
	if update.LoadingDate != nil {
		errsJoined = append(errsJoined, l.setLoadingDate(*update.LoadingDate))
	}
	if update.UnloadingDate != nil {
		errsJoined = append(errsJoined, l.setUnloadingDate(*update.UnloadingDate))
	}
	if update.ProductType != nil {
		errsJoined = append(errsJoined, l.setProductType(*update.ProductType))
	}
	if update.TruckType != nil {
		errsJoined = append(errsJoined, l.setTruckType(*update.TruckType))
	}
	if update.TruckCount != nil {
		errsJoined = append(errsJoined, l.setTruckCount(*update.TruckCount))
	}
	if update.Weight != nil {
		errsJoined = append(errsJoined, l.setWeight(*update.Weight))
	}
	if update.Comment != nil {
		l.comment = *update.Comment
	}

	if err := errors.Join(errsJoined...); err != nil {
		return err
	}

	newStatus, err := l.status.Repost()
	if err != nil {
		return err
	}

	l.status = newStatus
	return nil
}

func (l *Load) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Load) setShipperID(shipperID string) error {
	if strings.TrimSpace(shipperID) == "" {
		return errs.NewValueIsRequiredError("shipperId")
	}
	l.shipperID = shipperID
	return nil
}

func (l *Load) setLoadingPoint(loadingPoint string) error {
	if strings.TrimSpace(loadingPoint) == "" {
		return errs.NewValueIsRequiredError("loadingPoint")
	}
	l.loadingPoint = loadingPoint
	return nil
}

func (l *Load) setUnloadingPoint(unloadingPoint string) error {
	if strings.TrimSpace(unloadingPoint) == "" {
		return errs.NewValueIsRequiredError("unloadingPoint")
	}
	l.unloadingPoint = unloadingPoint
	return nil
}

func (l *Load) setLoadingDate(loadingDate time.Time) error {
	if loadingDate.IsZero() {
		return errs.NewValueIsRequiredError("loadingDate")
	}
	l.loadingDate = loadingDate
	return nil
}

func (l *Load) setUnloadingDate(unloadingDate time.Time) error {
	if unloadingDate.IsZero() {
		return errs.NewValueIsRequiredError("unloadingDate")
	}
	l.unloadingDate = unloadingDate
	return nil
}

func (l *Load) setProductType(productType string) error {
	if strings.TrimSpace(productType) == "" {
		return errs.NewValueIsRequiredError("productType")
	}
	l.productType = productType
	return nil
}

func (l *Load) setTruckType(truckType string) error {
	if strings.TrimSpace(truckType) == "" {
		return errs.NewValueIsRequiredError("truckType")
	}
	l.truckType = truckType
	return nil
}

func (l *Load) setTruckCount(truckCount int) error {
	if truckCount < 1 {
		return errs.NewValueIsInvalidErrorWithCause("noOfTrucks",
			fmt.Errorf("%d is not greater than or equal to 1", truckCount))
	}
	l.truckCount = truckCount
	return nil
}

func (l *Load) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%g is not greater than 0", weight))
	}
	l.weight = weight
	return nil
}
