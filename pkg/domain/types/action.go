package types

// ActionType represents the kind of operational action being recommended
type ActionType string

const (
	ActionTypeStaffing ActionType = "STAFFING"
	ActionTypeSupply   ActionType = "SUPPLY"
	ActionTypeAdvisory ActionType = "ADVISORY"
)

// IsValid checks if the action type is valid
func (t ActionType) IsValid() bool {
	switch t {
	case ActionTypeStaffing, ActionTypeSupply, ActionTypeAdvisory:
		return true
	default:
		return false
	}
}

// String returns the string representation of the action type
func (t ActionType) String() string {
	return string(t)
}

// ActionTarget represents the audience an action addresses
type ActionTarget string

const (
	ActionTargetStaff    ActionTarget = "STAFF"
	ActionTargetVendor   ActionTarget = "VENDOR"
	ActionTargetOfficial ActionTarget = "OFFICIAL"
	ActionTargetPublic   ActionTarget = "PUBLIC"
)

// IsValid checks if the action target is valid
func (t ActionTarget) IsValid() bool {
	switch t {
	case ActionTargetStaff, ActionTargetVendor, ActionTargetOfficial, ActionTargetPublic:
		return true
	default:
		return false
	}
}

// String returns the string representation of the action target
func (t ActionTarget) String() string {
	return string(t)
}

// ActionChannel represents the delivery channel for an action's notification
type ActionChannel string

const (
	ActionChannelSMS      ActionChannel = "SMS"
	ActionChannelWhatsApp ActionChannel = "WHATSAPP"
	ActionChannelEmail    ActionChannel = "EMAIL"
)

// IsValid checks if the action channel is valid
func (c ActionChannel) IsValid() bool {
	switch c {
	case ActionChannelSMS, ActionChannelWhatsApp, ActionChannelEmail:
		return true
	default:
		return false
	}
}

// String returns the string representation of the action channel
func (c ActionChannel) String() string {
	return string(c)
}
