package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dreschagin/vitals-dashboard/internal/application/usecase"
	"github.com/dreschagin/vitals-dashboard/pkg/logger"
)

// State представляет состояние планировщика
type State string

const (
	// StateSeeding — начальное состояние: буферы истории заполняются
	// синхронно до показа первого кадра
	StateSeeding State = "seeding"

	// StateSteady — рабочее состояние: один такт на тик таймера,
	// терминального состояния нет
	StateSteady State = "steady"
)

// ErrNotSeeded возвращается при запуске Run до завершения фазы Seeding
var ErrNotSeeded = errors.New("scheduler has not completed seeding")

// UpdateScheduler владеет каденсом симуляции: сначала прогоняет полный цикл
// generate→derive→append seedCount раз без рассылки, затем по таймеру
// выполняет ровно один цикл за тик и публикует результат.
//
// Единственный мутатор состояния движка: тики не перекрываются,
// потому что цикл выполняется в одной goroutine
type UpdateScheduler struct {
	advance   *usecase.AdvanceVitalsUseCase
	interval  time.Duration
	seedCount int
	clock     func() time.Time

	mu    sync.RWMutex
	state State

	logger *logger.Logger
}

// NewUpdateScheduler создает планировщик с валидацией конфигурации
func NewUpdateScheduler(
	advance *usecase.AdvanceVitalsUseCase,
	interval time.Duration,
	seedCount int,
	logger *logger.Logger,
) (*UpdateScheduler, error) {
	if interval <= 0 {
		return nil, errors.New("tick interval must be positive")
	}
	if seedCount <= 0 {
		return nil, errors.New("seed count must be positive")
	}

	return &UpdateScheduler{
		advance:   advance,
		interval:  interval,
		seedCount: seedCount,
		clock:     time.Now,
		state:     StateSeeding,
		logger:    logger,
	}, nil
}

// State возвращает текущее состояние планировщика
func (s *UpdateScheduler) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Seed синхронно выполняет seedCount циклов, чтобы каждая история стартовала
// заполненной до емкости. Timestamps проставляются задним числом с шагом
// в интервал тика и заканчиваются текущим моментом, чтобы у графиков
// сразу была правдоподобная ось времени.
// По завершении последнего цикла переходит в Steady
func (s *UpdateScheduler) Seed(ctx context.Context) error {
	if s.State() != StateSeeding {
		return errors.New("scheduler already seeded")
	}

	now := s.clock()
	for i := 0; i < s.seedCount; i++ {
		at := now.Add(-s.interval * time.Duration(s.seedCount-1-i))
		if err := s.advance.Warmup(ctx, at); err != nil {
			return fmt.Errorf("seeding cycle %d failed: %w", i+1, err)
		}
	}

	s.mu.Lock()
	s.state = StateSteady
	s.mu.Unlock()

	s.logger.Info("History seeded", "cycles", s.seedCount)
	return nil
}

// Run запускает периодические такты и блокируется до отмены контекста.
// Остановка — это просто прекращение будущих тиков: внутри такта нет
// блокирующих операций, отменять нечего
func (s *UpdateScheduler) Run(ctx context.Context) error {
	if s.State() != StateSteady {
		return ErrNotSeeded
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("Update scheduler started", "interval", s.interval.String())

	for {
		select {
		case <-ticker.C:
			if _, err := s.advance.Execute(ctx, s.clock()); err != nil {
				s.logger.Error("Tick failed", err)
			}
		case <-ctx.Done():
			s.logger.Info("Update scheduler stopped")
			return nil
		}
	}
}
