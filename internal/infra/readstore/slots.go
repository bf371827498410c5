package readstore

import (
	"context"

	"github.com/KostasTheodoro/GArts-Edu/internal/infra/calcom"
	"github.com/KostasTheodoro/GArts-Edu/internal/infra/converter"
	"github.com/KostasTheodoro/GArts-Edu/internal/usecase/queries"
)

type SlotAPI interface {
	ListSlots(ctx context.Context, q calcom.SlotQuery) (calcom.Slots, error)
}

type SlotReadStore struct {
	api SlotAPI
}

func NewSlotReadStore(api SlotAPI) *SlotReadStore {
	return &SlotReadStore{api: api}
}

func (r *SlotReadStore) FindSlots(ctx context.Context, w queries.SlotWindow) (queries.SlotSet, error) {
	slots, err := r.api.ListSlots(ctx, converter.SlotQueryToInfra(w))
	if err != nil {
		return queries.SlotSet{}, err
	}
	return converter.SlotSetFromInfra(slots), nil
}
