package sessions

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/BRS-RentalGateway/internal/domain"
)

// Store потокобезопасное in-memory хранилище сессий оформления брони.
// Срок жизни сессии продлевается при каждом обращении, просроченные
// сессии удаляются фоновой горутиной.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*session

	ttl  time.Duration
	now  func() time.Time
	done chan struct{}
	once sync.Once
}

type session struct {
	flow      *domain.ReservationFlow
	expiresAt time.Time
}

// New создает хранилище и запускает горутину очистки просроченных сессий
func New(ttl, cleanupInterval time.Duration) *Store {
	s := &Store{
		sessions: make(map[string]*session),
		ttl:      ttl,
		now:      time.Now,
		done:     make(chan struct{}),
	}

	go s.janitor(cleanupInterval)

	return s
}

// Create регистрирует новую сессию и возвращает её идентификатор
func (s *Store) Create(flow *domain.ReservationFlow) string {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[id] = &session{
		flow:      flow,
		expiresAt: s.now().Add(s.ttl),
	}

	return id
}

// Get возвращает снимок состояния сессии и продлевает её срок жизни
func (s *Store) Get(id string) (domain.ReservationFlow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(id)
	if err != nil {
		return domain.ReservationFlow{}, err
	}

	sess.expiresAt = s.now().Add(s.ttl)

	return sess.flow.Snapshot(), nil
}

// Update применяет fn к состоянию сессии под блокировкой хранилища.
// Ошибка fn возвращается вызывающему как есть.
func (s *Store) Update(id string, fn func(*domain.ReservationFlow) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(id)
	if err != nil {
		return err
	}

	sess.expiresAt = s.now().Add(s.ttl)

	return fn(sess.flow)
}

// Delete удаляет сессию. Удаление несуществующей сессии не ошибка.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
}

// Stop останавливает горутину очистки
func (s *Store) Stop() {
	s.once.Do(func() {
		close(s.done)
	})
}

func (s *Store) lookup(id string) (*session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	if s.now().After(sess.expiresAt) {
		delete(s.sessions, id)
		return nil, ErrSessionNotFound
	}

	return sess, nil
}

func (s *Store) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.done:
			return
		}
	}
}

func (s *Store) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, sess := range s.sessions {
		if now.After(sess.expiresAt) {
			delete(s.sessions, id)
		}
	}
}
