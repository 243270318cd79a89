package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/darkobits/frontlawn-website/internal/client/cache"
	"github.com/darkobits/frontlawn-website/internal/client/identity"
	"github.com/darkobits/frontlawn-website/internal/client/preload"
	"github.com/darkobits/frontlawn-website/internal/client/rotation"
	"github.com/darkobits/frontlawn-website/internal/models"
)

// ErrNotReady indicates that the session has not been started successfully
var ErrNotReady = errors.New("session is not ready")

// Status представляет состояние сессии просмотра
type Status int

const (
	// StatusUninitialized сессия не запущена или запуск завершился ошибкой
	StatusUninitialized Status = iota
	// StatusLoading коллекция загружается
	StatusLoading
	// StatusReady коллекция загружена, текущая фотография определена
	StatusReady
)

// String returns human-readable status name
func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	default:
		return "uninitialized"
	}
}

// Session объединяет кэш, перемешивание, дневной индекс и предзагрузку
// в одну сессию просмотра. Состояние ротации живет только в памяти
// и создается заново при каждом запуске.
type Session struct {
	cache     cache.Service
	identity  identity.Service
	preloader preload.Preloader
	logger    *slog.Logger
	now       func() time.Time

	mu     sync.Mutex
	status Status
	state  rotation.State
}

// New creates a new view session
func New(cacheService cache.Service, identityService identity.Service, imagePreloader preload.Preloader, logger *slog.Logger) *Session {
	return &Session{
		cache:     cacheService,
		identity:  identityService,
		preloader: imagePreloader,
		logger:    logger,
		now:       time.Now,
	}
}

// Start выполняет последовательность монтирования: коллекция из кэша,
// перемешивание по имени клиента, позиция по текущим UTC суткам.
// Ошибка загрузки возвращает сессию в Uninitialized, автоматических
// повторов нет - нужен новый Start
func (s *Session) Start(ctx context.Context) (rotation.State, error) {
	s.setStatus(StatusLoading)

	photos, err := s.cache.GetCollection(ctx)
	if err != nil {
		s.logger.Error("Failed to load photo collection", "error", err)
		s.setStatus(StatusUninitialized)
		return rotation.State{}, fmt.Errorf("failed to load collection: %w", err)
	}

	seed, err := s.identity.GetOrCreate(ctx)
	if err != nil {
		// Без имени порядок общий для всех безымянных клиентов, но сессия рабочая
		s.logger.Warn("Failed to resolve client identity, using fallback seed", "error", err)
		seed = rotation.FallbackSeed
	}

	shuffled := rotation.Shuffle(photos, seed)
	state := rotation.State{
		Photos: shuffled,
		Index:  rotation.DayIndex(s.now(), len(shuffled)),
	}

	s.mu.Lock()
	s.status = StatusReady
	s.state = state
	s.mu.Unlock()

	s.logger.Info("Session ready",
		"photos", len(shuffled),
		"index", state.Index)

	s.preloadAsync(state)

	return state, nil
}

// Next сдвигает ротацию на одну позицию вперед
func (s *Session) Next() (rotation.State, error) {
	return s.step(1)
}

// Prev сдвигает ротацию на одну позицию назад
func (s *Session) Prev() (rotation.State, error) {
	return s.step(-1)
}

// step меняет сырой индекс без нормализации - она выполняется при чтении
func (s *Session) step(delta int) (rotation.State, error) {
	s.mu.Lock()
	if s.status != StatusReady {
		s.mu.Unlock()
		return rotation.State{}, ErrNotReady
	}

	s.state.Index += delta
	state := s.state
	s.mu.Unlock()

	s.preloadAsync(state)

	return state, nil
}

// Current возвращает текущую фотографию, если сессия готова
func (s *Session) Current() (models.Photo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusReady || len(s.state.Photos) == 0 {
		return models.Photo{}, false
	}

	return s.state.Current(), true
}

// Status возвращает текущее состояние сессии
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.status
}

func (s *Session) setStatus(status Status) {
	s.mu.Lock()
	s.status = status
	s.mu.Unlock()
}

// preloadAsync прогревает соседей текущей позиции, не блокируя показ
// текущей фотографии. Ошибка предзагрузки не мешает навигации
func (s *Session) preloadAsync(state rotation.State) {
	go func() {
		if err := s.preloader.Preload(context.Background(), state.Photos, state.Index); err != nil {
			s.logger.Warn("Neighbor preload failed", "error", err)
		}
	}()
}
