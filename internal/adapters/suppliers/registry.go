package suppliers

import "hotels_merge/internal/domain"

// Registry returns the supplier adapters in the fixed fetch order. Merge
// semantics are order-dependent, so both run modes use this exact order.
func Registry(base string) []domain.Supplier {
	return []domain.Supplier{
		Acme{Base: base},
		Paperflies{Base: base},
		Patagonia{Base: base},
	}
}
