package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"exchange_calculator/internal/database"
	"exchange_calculator/internal/models"

	"github.com/sirupsen/logrus"
)

// Внешний источник котировок
type RatesFeed interface {
	GetRates(ctx context.Context) ([]models.RateQuote, error)
}

// Текущая таблица курсов, которую обновляет воркер
type RateLoader interface {
	Load(quotes []models.RateQuote) error
	Snapshot() models.RatesResponse
}

// Удаление простаивающих сессий
type SessionSweeper interface {
	Sweep(now time.Time) int
}

// Worker представляет фоновый воркер: обновление курсов и очистка сессий
type Worker struct {
	store    database.RateStore
	feed     RatesFeed
	rates    RateLoader
	sessions SessionSweeper
	logger   *logrus.Logger

	refreshInterval time.Duration
	sweepInterval   time.Duration

	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// Создаём новый воркер. feed может быть nil: тогда курсы не обновляются.
func New(store database.RateStore, feed RatesFeed, rates RateLoader, sessions SessionSweeper, logger *logrus.Logger, refreshInterval, sweepInterval time.Duration) *Worker {
	return &Worker{
		store:           store,
		feed:            feed,
		rates:           rates,
		sessions:        sessions,
		logger:          logger,
		refreshInterval: refreshInterval,
		sweepInterval:   sweepInterval,
		done:            make(chan struct{}),
	}
}

// Запускаем воркер
func (w *Worker) Start(ctx context.Context) {
	if w.feed != nil && w.refreshInterval > 0 {
		w.logger.WithField("interval", w.refreshInterval.String()).Info("Starting rates refresh worker")
		w.wg.Add(1)
		go w.loop(ctx, w.refreshInterval, true, func() {
			if err := w.Refresh(ctx); err != nil {
				w.logger.WithError(err).Error("Failed to refresh rates, keeping current table")
			}
		})
	} else {
		w.logger.Info("Rates feed is not configured, refresh disabled")
	}

	if w.sessions != nil && w.sweepInterval > 0 {
		w.wg.Add(1)
		go w.loop(ctx, w.sweepInterval, false, func() {
			w.sessions.Sweep(time.Now())
		})
	}
}

func (w *Worker) loop(ctx context.Context, interval time.Duration, runNow bool, job func()) {
	defer w.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Первый запуск сразу
	if runNow {
		job()
	}

	for {
		select {
		case <-ticker.C:
			job()
		case <-w.done:
			return
		case <-ctx.Done():
			return
		}
	}
}

// Стопаем воркер и ждём завершения циклов
func (w *Worker) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
	})
	w.wg.Wait()
	w.logger.Info("Worker stopped")
}

// Получаем курсы из внешнего источника, загружаем их и сохраняем в хранилище
func (w *Worker) Refresh(ctx context.Context) error {
	w.logger.Debug("Refreshing rates from feed")

	quotes, err := w.feed.GetRates(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch rates: %w", err)
	}

	if err := w.rates.Load(quotes); err != nil {
		return fmt.Errorf("failed to load rates: %w", err)
	}

	snapshot := w.rates.Snapshot()
	if err := w.store.ReplaceRates(ctx, snapshot.Rates); err != nil {
		// Таблица в памяти уже обновлена, следующий цикл перезапишет хранилище
		return fmt.Errorf("failed to persist refreshed rates: %w", err)
	}

	w.logger.WithFields(logrus.Fields{
		"base":  snapshot.Base,
		"count": len(snapshot.Rates),
	}).Info("Rates refreshed")

	return nil
}
