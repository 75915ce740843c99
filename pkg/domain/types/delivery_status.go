package types

// DeliveryStatus represents the outcome of a single notification attempt
type DeliveryStatus string

const (
	DeliveryStatusQueued DeliveryStatus = "QUEUED"
	DeliveryStatusSent   DeliveryStatus = "SENT"
	DeliveryStatusFailed DeliveryStatus = "FAILED"
)

// IsValid checks if the delivery status is valid
func (s DeliveryStatus) IsValid() bool {
	switch s {
	case DeliveryStatusQueued, DeliveryStatusSent, DeliveryStatusFailed:
		return true
	default:
		return false
	}
}

// String returns the string representation of the delivery status
func (s DeliveryStatus) String() string {
	return string(s)
}
