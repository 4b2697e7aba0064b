package postgre

import (
	"fmt"
	"strings"

	repo "shareit/internal/user/repository"
)

// buildGetOneQuery builds the WHERE clause for GetOneUser.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneUserOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != 0 {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.Email != "" {
		conditions = append(conditions, fmt.Sprintf("email = $%d", idx))
		args = append(args, opt.Email)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds ORDER + LIMIT + OFFSET for ListUsers.
func (r *implRepository) buildListQuery(opt repo.ListUsersOptions) (string, []any) {
	parts := []string{"ORDER BY id"}
	var args []any
	idx := 1

	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, opt.Offset)
	}
	return strings.Join(parts, " "), args
}
