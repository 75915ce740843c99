package types

// HospitalStatus represents the load status of a hospital node
type HospitalStatus string

const (
	HospitalStatusNormal   HospitalStatus = "NORMAL"
	HospitalStatusWarning  HospitalStatus = "WARNING"
	HospitalStatusCritical HospitalStatus = "CRITICAL"
)

// IsValid checks if the hospital status is valid
func (s HospitalStatus) IsValid() bool {
	switch s {
	case HospitalStatusNormal, HospitalStatusWarning, HospitalStatusCritical:
		return true
	default:
		return false
	}
}

// ResourceLevel represents a coarse availability level of a hospital resource
type ResourceLevel string

const (
	ResourceLevelLow    ResourceLevel = "LOW"
	ResourceLevelMedium ResourceLevel = "MEDIUM"
	ResourceLevelHigh   ResourceLevel = "HIGH"
)

// IsValid checks if the resource level is valid
func (l ResourceLevel) IsValid() bool {
	switch l {
	case ResourceLevelLow, ResourceLevelMedium, ResourceLevelHigh:
		return true
	default:
		return false
	}
}
