package provider

import (
	"fmt"

	"fixmate/internal/core/domain/model/request"
	"fixmate/internal/pkg/errs"
)

// Specialization is the trade a service provider is qualified for.
// It is a value object; the zero value is invalid and must not be persisted.
type Specialization int

const (
	// UnknownSpecialization represents an invalid or undefined specialization.
	// This value (0) helps catch uninitialized Specialization values.
	UnknownSpecialization Specialization = iota

	// Mechanic is the general trade covering most mechanical work.
	// It is the platform default.
	Mechanic

	// Electrician covers electrical systems and wiring work.
	Electrician

	// Diagnostics covers inspection and fault-finding work.
	Diagnostics

	// Towing covers roadside recovery.
	Towing
)

func getSpecializationStrings() map[Specialization]string {
	return map[Specialization]string{
		UnknownSpecialization: "Unknown",
		Mechanic:              "Mechanic",
		Electrician:           "Electrician",
		Diagnostics:           "Diagnostics",
		Towing:                "Towing",
	}
}

func getValidSpecializationStrings() map[Specialization]string {
	//nolint:exhaustive // UnknownSpecialization is intentionally excluded as it's invalid
	return map[Specialization]string{
		Mechanic:    "Mechanic",
		Electrician: "Electrician",
		Diagnostics: "Diagnostics",
		Towing:      "Towing",
	}
}

// SpecializationFromString parses a specialization from its string representation.
func SpecializationFromString(s string) (Specialization, error) {
	for spec, str := range getValidSpecializationStrings() {
		if str == s {
			return spec, nil
		}
	}
	return UnknownSpecialization, errs.NewValueIsInvalidErrorWithCause(
		"specialization is invalid",
		fmt.Errorf("%q is not a valid specialization", s),
	)
}

// Validate checks if the Specialization value is valid.
// Valid specializations are: Mechanic, Electrician, Diagnostics, Towing.
func (s Specialization) Validate() error {
	if _, ok := getValidSpecializationStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"specialization is invalid",
			fmt.Errorf("%d is not a valid specialization", s),
		)
	}
	return nil
}

// String returns the human-readable name of the specialization.
// Implements the fmt.Stringer interface and is safe to call on any value.
func (s Specialization) String() string {
	if str, ok := getSpecializationStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// CanServe reports whether this specialization covers the given service type.
//
// Coverage:
//   - Mechanic: Maintenance, Repair, Inspection
//   - Electrician: Repair, Inspection
//   - Diagnostics: Inspection
//   - Towing: Emergency
//
// The mapping is used by the dispatcher when matching pending requests to
// providers; explicit assignment does not consult it.
func (s Specialization) CanServe(serviceType request.ServiceType) bool {
	covered, ok := getServiceTypeCoverage()[s]
	if !ok {
		return false
	}

	for _, t := range covered {
		if t == serviceType {
			return true
		}
	}
	return false
}

func getServiceTypeCoverage() map[Specialization][]request.ServiceType {
	return map[Specialization][]request.ServiceType{
		Mechanic:    {request.Maintenance, request.Repair, request.Inspection},
		Electrician: {request.Repair, request.Inspection},
		Diagnostics: {request.Inspection},
		Towing:      {request.Emergency},
	}
}
