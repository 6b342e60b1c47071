package sessions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRS-RentalGateway/internal/domain"
)

func newTestStore(t *testing.T) (*Store, *time.Time) {
	t.Helper()

	now := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
	s := New(30*time.Minute, time.Hour)
	s.now = func() time.Time { return now }
	t.Cleanup(s.Stop)

	return s, &now
}

func TestStoreCreateGet(t *testing.T) {
	s, _ := newTestStore(t)

	id := s.Create(domain.NewReservationFlow())
	require.NotEmpty(t, id)

	flow, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, domain.StepSelectProducts, flow.Step)
}

func TestStoreGetUnknown(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Get("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStoreUpdate(t *testing.T) {
	s, _ := newTestStore(t)
	id := s.Create(domain.NewReservationFlow())

	err := s.Update(id, func(f *domain.ReservationFlow) error {
		return f.ApplySelection([]string{"p1"}, 1, 1)
	})
	require.NoError(t, err)

	flow, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, domain.StepConfigureSchedule, flow.Step)

	// Ошибка fn возвращается вызывающему как есть
	err = s.Update(id, func(f *domain.ReservationFlow) error {
		return f.ApplySelection([]string{"p1"}, 1, 1)
	})
	assert.ErrorIs(t, err, domain.ErrInvalidStep)
}

func TestStoreExpiry(t *testing.T) {
	s, now := newTestStore(t)
	id := s.Create(domain.NewReservationFlow())

	// Обращение внутри TTL продлевает срок жизни
	*now = now.Add(25 * time.Minute)
	_, err := s.Get(id)
	require.NoError(t, err)

	*now = now.Add(25 * time.Minute)
	_, err = s.Get(id)
	require.NoError(t, err)

	// Без обращений сессия истекает
	*now = now.Add(31 * time.Minute)
	_, err = s.Get(id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStoreCleanup(t *testing.T) {
	s, now := newTestStore(t)
	id := s.Create(domain.NewReservationFlow())

	*now = now.Add(31 * time.Minute)
	s.cleanup()

	s.mu.Lock()
	_, ok := s.sessions[id]
	s.mu.Unlock()
	assert.False(t, ok)
}

func TestStoreDelete(t *testing.T) {
	s, _ := newTestStore(t)
	id := s.Create(domain.NewReservationFlow())

	s.Delete(id)

	_, err := s.Get(id)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// Повторное удаление не паникует и не ошибка
	s.Delete(id)
}

func TestStoreSnapshotIsolation(t *testing.T) {
	s, _ := newTestStore(t)
	id := s.Create(domain.NewReservationFlow())

	require.NoError(t, s.Update(id, func(f *domain.ReservationFlow) error {
		return f.ApplySelection([]string{"p1", "p2"}, 1, 1)
	}))

	flow, err := s.Get(id)
	require.NoError(t, err)
	flow.Form.SelectedProductIDs[0] = "mutated"

	fresh, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2"}, fresh.Form.SelectedProductIDs)
}
