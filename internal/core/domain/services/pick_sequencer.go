package services

import (
	"sort"

	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picking"
)

// PickSequencer orders pick work along the warehouse walk path.
type PickSequencer struct{}

func NewPickSequencer() PickSequencer {
	return PickSequencer{}
}

// BuildItems creates one item per allocation for its unpicked remainder and
// returns them sorted by aisle, then position. The sort is stable, so items at
// the same bin keep the order of allocations. Allocations that are no longer
// live are rejected with the allocation error.
func (s PickSequencer) BuildItems(allocations []*allocation.Allocation) ([]*picking.Item, error) {
	items := make([]*picking.Item, 0, len(allocations))

	for n, a := range allocations {
		if err := a.Validate(); err != nil {
			return nil, err
		}
		if err := a.Status().ValidateMutation(); err != nil {
			return nil, err
		}

		item, err := picking.NewItem(
			kernel.NewUUID(),
			a.ID(),
			a.Line().ProductID,
			a.Source().Location,
			a.Remaining(),
			n,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	s.Sequence(items)
	return items, nil
}

// Sequence sorts items in place by walk order, ties broken by creation index.
func (s PickSequencer) Sequence(items []*picking.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		if c := items[i].Location().Compare(items[j].Location()); c != 0 {
			return c < 0
		}
		return items[i].CreationIndex() < items[j].CreationIndex()
	})
}
