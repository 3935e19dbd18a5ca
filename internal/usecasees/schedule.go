package usecasees

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// scheduleUseCase captures the all-states view on a cron schedule.
type scheduleUseCase struct {
	cron         *cron.Cron
	priceUseCase *priceUseCase
	logger       *logrus.Logger
}

func NewScheduleUseCase(
	priceUseCase *priceUseCase,
	logger *logrus.Logger,
) *scheduleUseCase {
	return &scheduleUseCase{
		cron:         cron.New(),
		priceUseCase: priceUseCase,
		logger:       logger,
	}
}

// Register adds the all-states capture under a standard five field spec.
func (u *scheduleUseCase) Register(spec string) error {
	if _, err := u.cron.AddFunc(spec, u.captureAllStates); err != nil {
		return err
	}

	u.logger.WithField("method", "Register").Infof("all states capture scheduled at %q", spec)

	return nil
}

func (u *scheduleUseCase) Start() {
	u.cron.Start()
}

// Stop waits for a running capture to finish.
func (u *scheduleUseCase) Stop() {
	<-u.cron.Stop().Done()
}

func (u *scheduleUseCase) captureAllStates() {
	records, err := u.priceUseCase.AllStates(context.Background())
	if err != nil {
		u.logger.WithField("method", "captureAllStates").Error(err)
		return
	}

	u.logger.WithField("method", "captureAllStates").Debugf("captured %d records", len(records))
}
