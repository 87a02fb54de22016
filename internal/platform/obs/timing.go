package obs

import (
	"time"

	"github.com/Rajesh-cpy/bengaluru-traffic-predictor/internal/platform/logger"
	"go.uber.org/zap"
)

// Time reports an operation's duration and outcome when the deferred closure
// runs. Usage:
//
//	defer obs.Time("ors.routeDistance")(&err)
func Time(name string) func(errp *error) {
	start := time.Now()

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			logger.Warn("operation failed",
				zap.String("op", name),
				zap.Duration("dur", dur),
				zap.Error(*errp),
			)
			return
		}
		logger.Debug("operation complete",
			zap.String("op", name),
			zap.Duration("dur", dur),
		)
	}
}
