package app

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/gefm2002/juancito-mercado-boutique/internal/domain"
)

func (a *Application) initJob() {
	loc, err := time.LoadLocation(a.appConfig.System.Location)
	if err != nil {
		loc = time.Local
	}
	a.sched = cron.New(cron.WithLocation(loc))

	// Pick up site_config rows edited outside this process.
	_, err = a.sched.AddFunc("@every 5m", func() {
		a.configManager.Load()
	})
	if err != nil {
		zap.L().Error("failed to schedule config refresh", zap.Error(err))
	}

	_, err = a.sched.AddFunc("@daily", a.logOrderDigest)
	if err != nil {
		zap.L().Error("failed to schedule order digest", zap.Error(err))
	}

	a.sched.Start()
}

// logOrderDigest emits a daily log line with order counts by status
// for the previous 24 hours.
func (a *Application) logOrderDigest() {
	since := time.Now().Add(-24 * time.Hour)
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	err := a.gormDB.Model(&domain.Order{}).
		Select("status, COUNT(*) as count").
		Where("created_at >= ?", since).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		zap.L().Error("order digest query failed", zap.Error(err))
		return
	}
	fields := make([]zap.Field, 0, len(rows))
	var total int64
	for _, r := range rows {
		fields = append(fields, zap.Int64(r.Status, r.Count))
		total += r.Count
	}
	fields = append(fields, zap.Int64("total", total))
	zap.L().Info("daily order digest", fields...)
}
