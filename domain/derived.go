package domain

// ValueSource tells whether a resolved input came from the caller or was
// derived from other inputs.
type ValueSource string

const (
	SourceUser     ValueSource = "user"
	SourceComputed ValueSource = "computed"
)

type DerivedValue struct {
	Value  float64     `json:"value"`
	Source ValueSource `json:"source"`
}

// UserValue wraps a caller-supplied value.
func UserValue(v float64) DerivedValue {
	return DerivedValue{Value: v, Source: SourceUser}
}

// ComputedValue wraps a default derived from other inputs.
func ComputedValue(v float64) DerivedValue {
	return DerivedValue{Value: v, Source: SourceComputed}
}

// Resolve returns the user value when set and the computed default otherwise.
// compute is only called when override is nil.
func Resolve(override *float64, compute func() float64) DerivedValue {
	if override != nil {
		return UserValue(*override)
	}
	return ComputedValue(compute())
}
