// Package scheduler runs the host-level cron jobs. The core stays
// request/response; these jobs just call the same public operations
// ahead of time so patterns and absences always find the current and
// coming month materialized.
package scheduler

import (
	"time"

	"rota-manager/internal/service"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

type GridScheduler struct {
	cronEngine *cron.Cron
	sheets     *service.SheetService
	logger     *logrus.Logger
	prepSpec   string
}

func NewGridScheduler(sheets *service.SheetService, prepSpec string) *GridScheduler {
	return &GridScheduler{
		cronEngine: cron.New(cron.WithLocation(time.Local)),
		sheets:     sheets,
		logger:     logrus.New(),
		prepSpec:   prepSpec,
	}
}

func (s *GridScheduler) Start() error {
	_, err := s.cronEngine.AddFunc(s.prepSpec, s.prepareUpcomingGrids)
	if err != nil {
		return err
	}

	s.cronEngine.Start()
	s.logger.WithField("cron", s.prepSpec).Info("Grid preparation scheduler started")
	return nil
}

// prepareUpcomingGrids makes sure the current and next month's grids
// exist before anyone needs them.
func (s *GridScheduler) prepareUpcomingGrids() {
	now := time.Now()
	// First-of-month arithmetic: AddDate on day 29-31 can skip a month.
	next := time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, time.Local)
	months := [][2]int{
		{int(now.Month()), now.Year()},
		{int(next.Month()), next.Year()},
	}

	for _, my := range months {
		_, created, err := s.sheets.GetOrCreate(my[0], my[1])
		if err != nil {
			s.logger.WithError(err).WithFields(logrus.Fields{
				"month": my[0],
				"year":  my[1],
			}).Error("Failed to prepare month grid")
			continue
		}
		if created {
			s.logger.WithFields(logrus.Fields{
				"month": my[0],
				"year":  my[1],
			}).Info("Prepared month grid ahead of time")
		}
	}

	if err := s.sheets.Flush(); err != nil {
		s.logger.WithError(err).Error("Failed to flush workbook after grid preparation")
	}
}

func (s *GridScheduler) Stop() {
	ctx := s.cronEngine.Stop()
	<-ctx.Done()
	s.logger.Info("Grid preparation scheduler stopped")
}
