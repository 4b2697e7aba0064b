package usecase

import (
	"context"

	itemRepo "shareit/internal/item/repository"
	"shareit/internal/model"
)

// attachItems loads the answering items of all requests in one query.
func (uc *implUseCase) attachItems(ctx context.Context, rqs []model.Request) ([]model.Request, error) {
	if len(rqs) == 0 {
		return []model.Request{}, nil
	}

	ids := make([]int64, len(rqs))
	for i := range rqs {
		ids[i] = rqs[i].ID
		rqs[i].Items = []model.Item{}
	}

	items, err := uc.itemRepo.ListItems(ctx, itemRepo.ListItemsOptions{RequestIDs: ids})
	if err != nil {
		uc.l.Errorf(ctx, "uc.attachItems ListItems: %v", err)
		return nil, err
	}

	pos := make(map[int64]int, len(rqs))
	for i, rq := range rqs {
		pos[rq.ID] = i
	}
	for _, it := range items {
		if it.RequestID == nil {
			continue
		}
		if i, ok := pos[*it.RequestID]; ok {
			rqs[i].Items = append(rqs[i].Items, it)
		}
	}
	return rqs, nil
}
