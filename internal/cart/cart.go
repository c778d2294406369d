package cart

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/witherings/PocePao-sub001/internal/entity"
)

// Store owns the ordered cart lines for one session. It is plain in-memory
// state constructed by whoever owns the session; persistence is the caller's
// concern. Every operation is total: nothing here returns an error, and a
// malformed price contributes zero to the total instead of failing checkout.
type Store struct {
	lines []entity.CartLine
}

// New seeds a store with previously persisted lines, if any.
func New(lines ...entity.CartLine) *Store {
	s := &Store{}
	s.lines = append(s.lines, lines...)
	return s
}

// AddItem inserts the candidate into the cart. Custom bowls always become a
// new line under a freshly generated id, even when two candidates are
// identical. Fixed menu items merge by id with an existing non-custom line,
// incrementing its quantity and keeping the original snapshot fields.
func (s *Store) AddItem(candidate entity.CartLine) {
	qty := candidate.Quantity
	if qty <= 0 {
		qty = 1
	}

	if candidate.Customization != nil {
		candidate.ID = freshLineID(candidate.ID)
		candidate.Quantity = qty
		s.lines = append(s.lines, candidate)
		return
	}

	for i, line := range s.lines {
		if line.ID == candidate.ID && line.Customization == nil {
			s.lines[i].Quantity += qty
			return
		}
	}

	candidate.Quantity = qty
	s.lines = append(s.lines, candidate)
}

// RemoveItem deletes the matching line. Absent ids are a no-op.
func (s *Store) RemoveItem(id string) {
	for i, line := range s.lines {
		if line.ID == id {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the quantity for the matching line. A quantity of zero
// or less removes the line, same as RemoveItem.
func (s *Store) UpdateQuantity(id string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(id)
		return
	}
	for i, line := range s.lines {
		if line.ID == id {
			s.lines[i].Quantity = quantity
			return
		}
	}
}

// UpdateItem merges the set fields of the update into the matching line.
// Identity and quantity stay untouched; unknown ids are a no-op.
func (s *Store) UpdateItem(id string, update entity.CartUpdate) {
	for i := range s.lines {
		if s.lines[i].ID != id {
			continue
		}
		if update.Name != nil {
			s.lines[i].Name = *update.Name
		}
		if update.NameDE != nil {
			s.lines[i].NameDE = *update.NameDE
		}
		if update.Price != nil {
			s.lines[i].Price = *update.Price
		}
		if update.Image != nil {
			s.lines[i].Image = *update.Image
		}
		if update.Size != nil {
			s.lines[i].Size = *update.Size
		}
		return
	}
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.lines = nil
}

// Items returns a copy of the current lines in insertion order.
func (s *Store) Items() []entity.CartLine {
	items := make([]entity.CartLine, len(s.lines))
	copy(items, s.lines)
	return items
}

// Total sums price times quantity over all lines. Unparseable prices count
// as zero so a corrupted line never blocks the checkout view.
func (s *Store) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range s.lines {
		price, err := decimal.NewFromString(line.Price)
		if err != nil || line.Quantity <= 0 {
			continue
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// freshLineID derives a collision-free id for a custom bowl line from the
// candidate's base id, the current time and a random suffix.
func freshLineID(base string) string {
	return fmt.Sprintf("%s-%d-%s", base, time.Now().UnixMilli(), uuid.NewString()[:8])
}
