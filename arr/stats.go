package arr

// Number covers the built-in numeric types the statistics helpers accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum returns the sum of items; an empty slice sums to zero.
func Sum[T Number](items []T) T {
	var total T
	for _, item := range items {
		total += item
	}
	return total
}

// Average returns the arithmetic mean of items, or 0 for an empty slice.
func Average[T Number](items []T) float64 {
	if len(items) == 0 {
		return 0
	}
	var total float64
	for _, item := range items {
		total += float64(item)
	}
	return total / float64(len(items))
}

// Min returns the smallest element of items.
// Returns the zero value and false if items is empty.
func Min[T Number](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	least := items[0]
	for _, item := range items[1:] {
		if item < least {
			least = item
		}
	}
	return least, true
}

// Max returns the largest element of items.
// Returns the zero value and false if items is empty.
func Max[T Number](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	most := items[0]
	for _, item := range items[1:] {
		if item > most {
			most = item
		}
	}
	return most, true
}
