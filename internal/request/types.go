package request

// --- UseCase Inputs ---

type CreateInput struct {
	Description string
}

type ListInput struct {
	From int
	Size int
}
