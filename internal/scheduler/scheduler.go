package scheduler

import (
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/zlee-dev/dice-rewards/internal/user"
)

// Runs the daily play-counter reset at hour 0. A failed run is logged
// and left for the next tick; it never reaches request traffic.
type Scheduler struct {
	cron *cron.Cron
}

func New(users *user.Service) (*Scheduler, error) {
	c := cron.New()
	_, err := c.AddFunc("0 0 * * *", func() {
		if err := users.ResetDailyPlays(); err != nil {
			log.Error().Err(err).Msg("daily play reset failed, retrying on next tick")
		}
	})
	if err != nil {
		return nil, err
	}
	return &Scheduler{cron: c}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}
