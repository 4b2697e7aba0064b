package postgre

import (
	"fmt"
	"strings"

	repo "shareit/internal/request/repository"
)

// buildListQuery builds WHERE + ORDER + LIMIT + OFFSET for ListRequests.
func (r *implRepository) buildListQuery(opt repo.ListRequestsOptions) (string, []any) {
	var parts []string
	var conditions []string
	var args []any
	idx := 1

	if opt.RequestorID != 0 {
		conditions = append(conditions, fmt.Sprintf("requestor_id = $%d", idx))
		args = append(args, opt.RequestorID)
		idx++
	}
	if opt.ExcludeRequestorID != 0 {
		conditions = append(conditions, fmt.Sprintf("requestor_id <> $%d", idx))
		args = append(args, opt.ExcludeRequestorID)
		idx++
	}

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	parts = append(parts, "ORDER BY created DESC, id DESC")

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
