package postgre

import (
	"fmt"
	"strings"

	repo "shareit/internal/item/repository"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildListQuery builds WHERE + ORDER + LIMIT + OFFSET for ListItems.
func (r *implRepository) buildListQuery(opt repo.ListItemsOptions) (string, []any) {
	var parts []string
	var conditions []string
	var args []any
	idx := 1

	if opt.OwnerID != 0 {
		conditions = append(conditions, fmt.Sprintf("owner_id = $%d", idx))
		args = append(args, opt.OwnerID)
		idx++
	}
	if opt.Text != "" {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", idx, idx))
		args = append(args, "%"+likeEscaper.Replace(opt.Text)+"%")
		idx++
	}
	if opt.AvailableOnly {
		conditions = append(conditions, "available = TRUE")
	}
	if len(opt.RequestIDs) > 0 {
		conditions = append(conditions, fmt.Sprintf("request_id = ANY($%d)", idx))
		args = append(args, opt.RequestIDs)
		idx++
	}

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	parts = append(parts, "ORDER BY id")

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
