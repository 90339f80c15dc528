package clock

import (
	"time"

	"wardlab-service/internal/app/contracts"
)

type systemClock struct{}

func NewSystemClock() contracts.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}
