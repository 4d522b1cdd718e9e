package order

import "strings"

// CustomerSuggestion is a (name, phone) pair offered by the new-order form's
// autocomplete. The directory is derived from order history, not a separate
// customer registry.
type CustomerSuggestion struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// SuggestCustomers de-duplicates the (name, phone) pairs across the given
// orders and returns those whose name or phone contains the query,
// case-insensitively. A blank query returns every known pair. Pairs appear
// in first-seen order, matching the history the cashier remembers.
func SuggestCustomers(orders []Order, query string) []CustomerSuggestion {
	q := strings.ToLower(strings.TrimSpace(query))

	seen := make(map[CustomerSuggestion]struct{})
	var out []CustomerSuggestion
	for _, o := range orders {
		s := CustomerSuggestion{Name: o.CustomerName, Phone: o.CustomerPhone}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}

		if q != "" &&
			!strings.Contains(strings.ToLower(s.Name), q) &&
			!strings.Contains(strings.ToLower(s.Phone), q) {
			continue
		}
		out = append(out, s)
	}
	return out
}
