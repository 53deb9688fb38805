package pkg

import (
	"fmt"
	"math"
	"unicode/utf8"

	"go.uber.org/multierr"
)

// Bounds of the INTEGER columns.
const (
	MaxInt4 = math.MaxInt32
	MinInt4 = math.MinInt32
)

// CheckInt4 fails when a set value does not fit an INTEGER column.
func CheckInt4(field string, v *int) error {
	if v == nil || (*v >= MinInt4 && *v <= MaxInt4) {
		return nil
	}
	return fmt.Errorf("%s out of range", field)
}

// CheckMaxLen fails when the value has more than maxChars characters (VARCHAR(n) semantics).
func CheckMaxLen(field, value string, maxChars int) error {
	if utf8.RuneCountInString(value) <= maxChars {
		return nil
	}
	return fmt.Errorf("%s longer than %d characters", field, maxChars)
}

// CheckMaxLenPtr is CheckMaxLen for optional values.
func CheckMaxLenPtr(field string, value *string, maxChars int) error {
	if value == nil {
		return nil
	}
	return CheckMaxLen(field, *value, maxChars)
}

// CheckAll runs all the checks and combines their failures.
func CheckAll(errs ...error) error {
	return multierr.Combine(errs...)
}
