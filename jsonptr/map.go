package jsonptr

// Get resolves p against doc and asserts the result to T.
// A JSON null, a missing step, or a value of another type all report false.
//
// JSON numbers decode to float64, so numeric fields should be read as
// float64 and converted by the caller (see Number).
func Get[T any](doc any, p Pointer) (T, bool) {
	var zero T
	v, ok := p.Lookup(doc)
	if !ok || v == nil {
		return zero, false
	}
	tv, ok := v.(T)
	if !ok {
		return zero, false
	}
	return tv, true
}

// GetOr is Get with a fallback for the not-found case.
func GetOr[T any](doc any, p Pointer, fallback T) T {
	if v, ok := Get[T](doc, p); ok {
		return v
	}
	return fallback
}

// Number resolves p to a JSON number and converts it to N.
func Number[N ~int | ~int64 | ~uint | ~uint64 | ~float64](doc any, p Pointer) (N, bool) {
	f, ok := Get[float64](doc, p)
	if !ok {
		return 0, false
	}
	return N(f), true
}

// Truthy resolves p and reports whether it holds a true JSON boolean.
// Absent, null, and non-boolean values are false.
func Truthy(doc any, p Pointer) bool {
	b, _ := Get[bool](doc, p)
	return b
}

// Object resolves p to a nested JSON object.
func Object(doc any, p Pointer) (map[string]any, bool) {
	return Get[map[string]any](doc, p)
}
