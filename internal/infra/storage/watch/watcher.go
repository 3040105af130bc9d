// Package watch delivers collection-change notifications to in-process
// subscribers. Postgres triggers NOTIFY on a single channel with the table
// name as payload; subscribers refetch the collection they care about.
package watch

import (
	"context"
	"sync"
	"time"

	"github.com/lib/pq"
)

// Channel канал Postgres NOTIFY, используемый триггерами коллекций
const Channel = "collection_changes"

const (
	minReconnectInterval = time.Second
	maxReconnectInterval = 30 * time.Second
	pingInterval         = 90 * time.Second
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Watcher слушает изменения коллекций и раздает их подписчикам
type Watcher struct {
	listener *pq.Listener
	log      Logger

	mu       sync.RWMutex
	handlers map[string][]func()
}

// New создает watcher поверх pq.Listener
// Ошибки соединения логируются и обрабатываются переподключением внутри pq
func New(dsn string, log Logger) (*Watcher, error) {
	w := &Watcher{
		log:      log,
		handlers: make(map[string][]func()),
	}

	w.listener = pq.NewListener(dsn, minReconnectInterval, maxReconnectInterval,
		func(event pq.ListenerEventType, err error) {
			if err != nil {
				log.Error("watch: listener event %d: %v", event, err)
			}
		})

	if err := w.listener.Listen(Channel); err != nil {
		_ = w.listener.Close()
		return nil, err
	}

	return w, nil
}

// Subscribe регистрирует обработчик изменений коллекции (имя таблицы)
// Обработчик вызывается из горутины Run; он должен быть быстрым
// (обычно инвалидация кэша, а не перезагрузка данных)
func (w *Watcher) Subscribe(collection string, onChange func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers[collection] = append(w.handlers[collection], onChange)
}

// Run обрабатывает уведомления до отмены контекста
func (w *Watcher) Run(ctx context.Context) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case n := <-w.listener.Notify:
			// nil приходит после переподключения: состояние могло
			// измениться незаметно, оповещаем всех подписчиков
			if n == nil {
				w.log.Warn("watch: listener reconnected, notifying all subscribers")
				w.dispatchAll()
				continue
			}
			w.dispatch(n.Extra)

		case <-ticker.C:
			if err := w.listener.Ping(); err != nil {
				w.log.Error("watch: listener ping failed: %v", err)
			}
		}
	}
}

func (w *Watcher) dispatch(collection string) {
	w.mu.RLock()
	handlers := w.handlers[collection]
	w.mu.RUnlock()

	for _, h := range handlers {
		h()
	}
}

func (w *Watcher) dispatchAll() {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, handlers := range w.handlers {
		for _, h := range handlers {
			h()
		}
	}
}

// Close закрывает соединение listener
func (w *Watcher) Close() error {
	return w.listener.Close()
}
