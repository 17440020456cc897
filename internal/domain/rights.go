package domain

import "math"

const (
	DefaultWhiteRight = 80
	DefaultFreeRight  = 20

	reasonFreeNotBelowWhite = "free >= white"
	reasonSumAbove100       = "sum > 100"
	reasonBlackNotBelowFree = "black >= free"
)

// Rights are the percentage weights of the white and free tiers. The black
// tier gets whatever is left of 100.
type Rights struct {
	White int
	Free  int
}

func DefaultRights() Rights {
	return Rights{White: DefaultWhiteRight, Free: DefaultFreeRight}
}

func (r Rights) Black() int {
	return 100 - r.White - r.Free
}

func (r Rights) Validate() error {
	if r.Free >= r.White {
		return &RightsError{Reason: reasonFreeNotBelowWhite, Rights: r}
	}
	if r.White+r.Free > 100 {
		return &RightsError{Reason: reasonSumAbove100, Rights: r}
	}
	if r.Black() >= r.Free {
		return &RightsError{Reason: reasonBlackNotBelowFree, Rights: r}
	}

	return nil
}

// NewRights truncates fractional input toward zero and validates the result.
func NewRights(white, free float64) (Rights, error) {
	r := Rights{White: int(math.Trunc(white)), Free: int(math.Trunc(free))}
	if err := r.Validate(); err != nil {
		return Rights{}, err
	}
	return r, nil
}
