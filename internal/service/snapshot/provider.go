// Package snapshot keeps an in-memory availability snapshot fresh against
// the document store. The evaluators stay pure; this is the only place that
// bridges pushed collection changes to them.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ateliernature/animations-booking/internal/availability"
	"github.com/ateliernature/animations-booking/internal/domain"
	settingsRepo "github.com/ateliernature/animations-booking/internal/infra/storage/settings"
)

// SettingsRepository интерфейс репозитория настроек
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.AppSettings, error)
}

// AnimationRepository интерфейс репозитория анимаций
type AnimationRepository interface {
	List(ctx context.Context) ([]*domain.Animation, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// ErrInternal возвращается при ошибках загрузки снапшота
var ErrInternal = errors.New("snapshot: internal error")

// Provider кэширует снапшот и инвалидирует его по уведомлениям хранилища
// Потребители получают консистентный снапшот на момент вызова Get; между
// вызовами он может устареть: тогда приходит инвалидация и Get перечитает
type Provider struct {
	settingsRepo  SettingsRepository
	animationRepo AnimationRepository
	bookingRepo   BookingRepository
	logger        Logger

	mu     sync.Mutex
	cached *availability.Snapshot
}

// NewProvider создает новый экземпляр провайдера снапшотов
func NewProvider(
	settingsRepo SettingsRepository,
	animationRepo AnimationRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *Provider {
	return &Provider{
		settingsRepo:  settingsRepo,
		animationRepo: animationRepo,
		bookingRepo:   bookingRepo,
		logger:        logger,
	}
}

// Invalidate сбрасывает кэш; вызывается watcher'ом при изменении коллекций
func (p *Provider) Invalidate() {
	p.mu.Lock()
	p.cached = nil
	p.mu.Unlock()
}

// Get возвращает актуальный снапшот, перечитывая коллекции при необходимости
func (p *Provider) Get(ctx context.Context) (*availability.Snapshot, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cached != nil {
		return p.cached, nil
	}

	started := time.Now()

	settings, err := p.settingsRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return nil, fmt.Errorf("%w: load settings: %v", ErrInternal, err)
		}
		settings = domain.DefaultSettings(time.Now())
		p.logger.Warn("snapshot: settings document missing, using defaults (year=%s)", settings.ActiveYear)
	}

	animations, err := p.animationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: load animations: %v", ErrInternal, err)
	}

	bookings, err := p.bookingRepo.List(ctx, domain.BookingsFilter{})
	if err != nil {
		return nil, fmt.Errorf("%w: load bookings: %v", ErrInternal, err)
	}

	p.cached = availability.NewSnapshot(settings, animations, bookings)
	p.logger.Info("snapshot: reloaded in %s (animations=%d, bookings=%d)",
		time.Since(started).Round(time.Millisecond), len(animations), len(bookings))

	return p.cached, nil
}
