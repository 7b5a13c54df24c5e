package request

import (
	"fmt"

	"fixmate/internal/pkg/errs"
)

// ServiceType is the enumerated category of work a service request asks for.
// It is a value object; the zero value is invalid and must not be persisted.
type ServiceType int

const (
	// UnknownServiceType represents an invalid or undefined service type.
	// This value (0) helps catch uninitialized ServiceType values.
	UnknownServiceType ServiceType = iota

	// Maintenance covers routine scheduled work such as oil changes.
	Maintenance

	// Repair covers corrective work on a reported defect.
	Repair

	// Inspection covers diagnostic examination without repair work.
	Inspection

	// Emergency covers roadside incidents that need immediate attention.
	Emergency
)

func getServiceTypeStrings() map[ServiceType]string {
	return map[ServiceType]string{
		UnknownServiceType: "Unknown",
		Maintenance:        "Maintenance",
		Repair:             "Repair",
		Inspection:         "Inspection",
		Emergency:          "Emergency",
	}
}

func getValidServiceTypeStrings() map[ServiceType]string {
	//nolint:exhaustive // UnknownServiceType is intentionally excluded as it's invalid
	return map[ServiceType]string{
		Maintenance: "Maintenance",
		Repair:      "Repair",
		Inspection:  "Inspection",
		Emergency:   "Emergency",
	}
}

// ServiceTypeFromString parses a service type from its string representation.
// Used when reconstructing requests from inbound calls.
func ServiceTypeFromString(s string) (ServiceType, error) {
	for t, str := range getValidServiceTypeStrings() {
		if str == s {
			return t, nil
		}
	}
	return UnknownServiceType, errs.NewValueIsInvalidErrorWithCause(
		"service type is invalid",
		fmt.Errorf("%q is not a valid service type", s),
	)
}

// Validate checks if the ServiceType value is valid.
// Valid types are: Maintenance, Repair, Inspection, Emergency.
func (t ServiceType) Validate() error {
	if _, ok := getValidServiceTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"service type is invalid",
			fmt.Errorf("%d is not a valid service type", t),
		)
	}
	return nil
}

// String returns the human-readable name of the service type.
// Implements the fmt.Stringer interface and is safe to call on any value.
func (t ServiceType) String() string {
	if str, ok := getServiceTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}
