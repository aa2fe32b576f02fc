package cart

import "github.com/seafood-house/pos-backend/internal/menu"

// Entry is a menu item plus its ordered quantity.
type Entry struct {
	menu.Item
	Quantity int `json:"quantity"`
}

// Cart is an insertion-ordered collection of entries, at most one per item
// id. All operations are pure: they return a new Cart and never mutate the
// receiver, so callers can keep old values around safely.
type Cart struct {
	entries []Entry
}

func New() Cart {
	return Cart{}
}

func (c Cart) clone() Cart {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return Cart{entries: out}
}

// Add increments the quantity of item if already present, otherwise appends
// a new entry with quantity 1 at the end of the iteration order.
func (c Cart) Add(item menu.Item) Cart {
	next := c.clone()
	for i := range next.entries {
		if next.entries[i].ID == item.ID {
			next.entries[i].Quantity++
			return next
		}
	}
	next.entries = append(next.entries, Entry{Item: item, Quantity: 1})
	return next
}

// RemoveOne decrements the quantity for id, deleting the entry when it
// reaches zero. An absent id is a no-op, not an error. Note that an entry
// removed to zero and re-added later moves to the end of the iteration
// order, since removal forgets its original position.
func (c Cart) RemoveOne(id string) Cart {
	next := c.clone()
	for i := range next.entries {
		if next.entries[i].ID == id {
			next.entries[i].Quantity--
			if next.entries[i].Quantity <= 0 {
				next.entries = append(next.entries[:i], next.entries[i+1:]...)
			}
			return next
		}
	}
	return next
}

// Clear returns an empty cart.
func (c Cart) Clear() Cart {
	return Cart{}
}

// Total is the sum of price × quantity over all entries, in VND.
func (c Cart) Total() int {
	total := 0
	for _, e := range c.entries {
		total += e.Price * e.Quantity
	}
	return total
}

// Entries returns a copy of the entries in insertion order.
func (c Cart) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c Cart) Contains(id string) bool {
	for _, e := range c.entries {
		if e.ID == id {
			return true
		}
	}
	return false
}

func (c Cart) Len() int {
	return len(c.entries)
}
