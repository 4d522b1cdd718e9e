package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestCustomers(t *testing.T) {
	orders := []Order{
		{ID: "ORD-001", CustomerName: "Budi Santoso", CustomerPhone: "0812-1111"},
		{ID: "ORD-002", CustomerName: "Siti Aminah", CustomerPhone: "0813-2222"},
		{ID: "ORD-003", CustomerName: "Budi Santoso", CustomerPhone: "0812-1111"}, // repeat customer
		{ID: "ORD-004", CustomerName: "Budi Santoso", CustomerPhone: "0899-3333"}, // same name, new phone
	}

	t.Run("blank query returns de-duplicated directory", func(t *testing.T) {
		got := SuggestCustomers(orders, "")
		assert.Equal(t, []CustomerSuggestion{
			{Name: "Budi Santoso", Phone: "0812-1111"},
			{Name: "Siti Aminah", Phone: "0813-2222"},
			{Name: "Budi Santoso", Phone: "0899-3333"},
		}, got)
	})

	t.Run("matches name case-insensitively", func(t *testing.T) {
		got := SuggestCustomers(orders, "BUDI")
		assert.Len(t, got, 2)
	})

	t.Run("matches phone substring", func(t *testing.T) {
		got := SuggestCustomers(orders, "0813")
		assert.Equal(t, []CustomerSuggestion{{Name: "Siti Aminah", Phone: "0813-2222"}}, got)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, SuggestCustomers(orders, "joko"))
	})
}
