package service

// Pointer-field merge helpers for partial updates. A field is applied
// only when it was present in the payload; empty strings never clear.

func applyInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func applyFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func applyUint(dst *uint, src *uint) {
	if src != nil && *src != 0 {
		*dst = *src
	}
}

func applyUintPtr(dst **uint, src *uint) {
	if src != nil && *src != 0 {
		*dst = src
	}
}
