// Package vehicle provides the Vehicle aggregate for the fixmate system.
// A vehicle belongs to one owner and is the subject of zero or more service
// requests. The request workflow only needs vehicles to exist and resolve;
// field-level formatting of plates or VINs is handled upstream.
package vehicle

import (
	"errors"

	"fixmate/internal/core/domain/model/kernel"
	"fixmate/internal/pkg/errs"
)

// Field bounds for vehicle attributes.
const (
	MakeMaxLength         = 50
	ModelMaxLength        = 50
	LicensePlateMaxLength = 20
	YearMin               = 1900
	YearMax               = 2100
)

// ErrVehicleIsNotConstructed is returned when a Vehicle instance was not
// created through the NewVehicle factory method.
var ErrVehicleIsNotConstructed = errors.New(
	"Vehicle must be created via NewVehicle constructor",
)

// Vehicle represents a vehicle registered by an owner.
//
// Vehicle follows these invariants:
//   - Must have a valid unique identifier and owner reference
//   - Make and model are required and bounded in length
//   - Year falls within [YearMin, YearMax]
//   - License plate is required and bounded in length
type Vehicle struct {
	id           kernel.UUID
	make         string
	model        string
	year         int
	licensePlate string
	ownerID      kernel.UUID

	isConstructed bool
}

// NewVehicle creates a Vehicle with validation. This is the only way to
// create a valid Vehicle; persistence restore uses it as well since vehicles
// carry no lifecycle state beyond their attributes.
func NewVehicle(
	id kernel.UUID,
	make string,
	model string,
	year int,
	licensePlate string,
	ownerID kernel.UUID,
) (*Vehicle, error) {
	v := &Vehicle{
		isConstructed: true,
	}

	if err := errors.Join(
		v.setID(id),
		v.setMake(make),
		v.setModel(model),
		v.setYear(year),
		v.setLicensePlate(licensePlate),
		v.setOwnerID(ownerID),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// Validate ensures the Vehicle instance was properly constructed through NewVehicle.
func (v *Vehicle) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVehicleIsNotConstructed
	}

	return nil
}

// IsEqual compares two vehicles by their unique identifiers.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	return other != nil && v.id.IsEqual(other.id)
}

// ID returns the vehicle's unique identifier.
func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// Make returns the vehicle's manufacturer name.
func (v *Vehicle) Make() string {
	return v.make
}

// Model returns the vehicle's model name.
func (v *Vehicle) Model() string {
	return v.model
}

// Year returns the vehicle's model year.
func (v *Vehicle) Year() int {
	return v.year
}

// LicensePlate returns the vehicle's registration plate.
func (v *Vehicle) LicensePlate() string {
	return v.licensePlate
}

// OwnerID returns the identifier of the owning user.
func (v *Vehicle) OwnerID() kernel.UUID {
	return v.ownerID
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setMake(make string) error {
	if make == "" {
		return errs.NewValueIsRequiredError("make")
	}
	if len(make) > MakeMaxLength {
		return errs.NewValueIsOutOfRangeError("make length", len(make), 1, MakeMaxLength)
	}
	v.make = make
	return nil
}

func (v *Vehicle) setModel(model string) error {
	if model == "" {
		return errs.NewValueIsRequiredError("model")
	}
	if len(model) > ModelMaxLength {
		return errs.NewValueIsOutOfRangeError("model length", len(model), 1, ModelMaxLength)
	}
	v.model = model
	return nil
}

func (v *Vehicle) setYear(year int) error {
	if year < YearMin || year > YearMax {
		return errs.NewValueIsOutOfRangeError("year", year, YearMin, YearMax)
	}
	v.year = year
	return nil
}

func (v *Vehicle) setLicensePlate(licensePlate string) error {
	if licensePlate == "" {
		return errs.NewValueIsRequiredError("licensePlate")
	}
	if len(licensePlate) > LicensePlateMaxLength {
		return errs.NewValueIsOutOfRangeError("licensePlate length", len(licensePlate), 1, LicensePlateMaxLength)
	}
	v.licensePlate = licensePlate
	return nil
}

func (v *Vehicle) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	v.ownerID = ownerID
	return nil
}
