package user

// --- UseCase Inputs ---

type CreateInput struct {
	Name  string
	Email string
}

// UpdateInput is a partial update: nil fields keep their current value.
type UpdateInput struct {
	ID    int64
	Name  *string
	Email *string
}
