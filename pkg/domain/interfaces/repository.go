package interfaces

// Repository defines the interface for data access
type Repository interface {
	Action() ActionRepository
}
