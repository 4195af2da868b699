package projector

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/ksts/profileselector/internal/projector"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}
