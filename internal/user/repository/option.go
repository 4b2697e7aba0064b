package repository

type CreateUserOptions struct {
	Name  string
	Email string
}

// GetOneUserOptions filters by every non-zero field (AND).
type GetOneUserOptions struct {
	ID    int64
	Email string
}

type ListUsersOptions struct {
	Limit  int
	Offset int
}

type UpdateUserOptions struct {
	ID    int64
	Name  string
	Email string
}
