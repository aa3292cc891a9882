package models

// Special service type codes.
const (
	ServiceEarlyPickup = "EARLY_PICKUP"
	ServiceLatePickup  = "LATE_PICKUP"
	ServiceExtraPickup = "EXTRA_PICKUP"
	ServiceOther       = "OTHER"
)

var serviceTypeLabels = map[string]string{
	ServiceEarlyPickup: "Early Pickup",
	ServiceLatePickup:  "Late Pickup",
	ServiceExtraPickup: "Extra Pickup",
	ServiceOther:       "Other",
}

// ServiceTypeLabel maps a service type code to its display label, falling
// back to the raw code.
func ServiceTypeLabel(code string) string {
	if label, ok := serviceTypeLabels[code]; ok {
		return label
	}
	return code
}
