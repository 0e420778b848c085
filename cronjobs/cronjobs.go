package cronjobs

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"go-spillwatch/session"
)

// InitCronJobs starts the scheduled maintenance jobs. Currently just the
// session reaper; the schedule comes from config.
func InitCronJobs(manager *session.Manager, reapSchedule string) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc(reapSchedule, func() {
		if n := manager.ReapIdle(); n > 0 {
			zap.L().Info("reaped idle sessions", zap.Int("count", n))
		}
	})
	if err != nil {
		zap.L().Error("error scheduling session reaper", zap.Error(err))
	}

	c.Start()
	return c
}
