package attendance

import "errors"

var (
	ErrInvalidClassification = errors.New("invalid override classification")
	ErrPunchOutsidePeriod    = errors.New("punch timestamp outside the report period")
)
