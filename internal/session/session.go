package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"exchange_calculator/internal/calculator"
	"exchange_calculator/internal/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrTooManySessions = errors.New("too many sessions")
)

// TableProvider отдаёт текущую таблицу курсов
type TableProvider interface {
	Table() *calculator.RateTable
}

// Options для новой сессии
type Options struct {
	From string
	To   string
	Mode calculator.Mode
}

type session struct {
	mu       sync.Mutex
	calc     *calculator.Calculator
	lastUsed time.Time
}

// Manager хранит калькуляторы, по одному на каждую активацию UI.
// Калькулятор не потокобезопасен, поэтому все обращения к нему идут под мьютексом сессии.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*session

	tables        TableProvider
	defaultTarget string
	ttl           time.Duration
	maxSessions   int
	now           func() time.Time
	logger        *logrus.Logger
}

func NewManager(tables TableProvider, ttl time.Duration, maxSessions int, logger *logrus.Logger) *Manager {
	return &Manager{
		sessions:    make(map[string]*session),
		tables:      tables,
		ttl:         ttl,
		maxSessions: maxSessions,
		now:         time.Now,
		logger:      logger,
	}
}

// Валюта получения для новых сессий, если её нет в запросе.
// Если её нет в таблице или она совпадает с отдаваемой, калькулятор выбирает сам.
func (m *Manager) WithDefaultTarget(code string) *Manager {
	m.defaultTarget = code
	return m
}

// Создаём сессию на текущей таблице курсов
func (m *Manager) Create(opts Options) (string, calculator.State, error) {
	id := uuid.NewString()
	log := m.logger.WithField("session_id", id)

	table := m.tables.Table()
	to := opts.To
	if to == "" && m.defaultTarget != "" && table.Has(m.defaultTarget) {
		from := opts.From
		if from == "" {
			from = table.Base()
		}
		if from != m.defaultTarget {
			to = m.defaultTarget
		}
	}

	calc, err := calculator.New(table, calculator.Options{
		FormatNumber: utils.FormatGrouped,
		Mode:         opts.Mode,
		From:         opts.From,
		To:           to,
		OnChange: func(s calculator.State) {
			log.WithFields(logrus.Fields{
				"mode":        s.Mode,
				"from":        s.From,
				"to":          s.To,
				"raw_from":    s.RawFrom,
				"raw_to":      s.RawTo,
				"last_edited": s.LastEdited,
			}).Debug("Calculator state changed")
		},
	})
	if err != nil {
		return "", calculator.State{}, fmt.Errorf("failed to create calculator: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.maxSessions > 0 && len(m.sessions) >= m.maxSessions {
		return "", calculator.State{}, fmt.Errorf("%w: limit %d", ErrTooManySessions, m.maxSessions)
	}
	m.sessions[id] = &session{calc: calc, lastUsed: m.now()}

	log.WithFields(logrus.Fields{
		"from": calc.FromCurrency(),
		"to":   calc.ToCurrency(),
		"mode": calc.Mode(),
	}).Info("Session created")

	return id, calc.State(), nil
}

func (m *Manager) lookup(id string) (*session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return s, nil
}

// Выполняем fn над калькулятором сессии и возвращаем новое состояние
func (m *Manager) Do(id string, fn func(*calculator.Calculator) error) (calculator.State, error) {
	s, err := m.lookup(id)
	if err != nil {
		return calculator.State{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastUsed = m.now()
	if fn != nil {
		if err := fn(s.calc); err != nil {
			return s.calc.State(), err
		}
	}
	return s.calc.State(), nil
}

func (m *Manager) Get(id string) (calculator.State, error) {
	return m.Do(id, nil)
}

func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	delete(m.sessions, id)

	m.logger.WithField("session_id", id).Info("Session deleted")
	return nil
}

// Удаляем сессии, простаивающие дольше TTL. Возвращает число удалённых.
func (m *Manager) Sweep(now time.Time) int {
	if m.ttl <= 0 {
		return 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, s := range m.sessions {
		s.mu.Lock()
		idle := now.Sub(s.lastUsed)
		s.mu.Unlock()

		if idle > m.ttl {
			delete(m.sessions, id)
			removed++
		}
	}

	if removed > 0 {
		m.logger.WithFields(logrus.Fields{
			"removed": removed,
			"active":  len(m.sessions),
		}).Info("Expired sessions swept")
	}
	return removed
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
