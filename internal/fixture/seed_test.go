package fixture

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingStore records writes and can fail on chosen keys.
type countingStore struct {
	*MemoryStore

	mu         sync.Mutex
	sets       int
	removes    int
	failSet    map[string]error
	failGet    map[string]error
	failRemove map[string]error
}

func newCountingStore() *countingStore {
	return &countingStore{
		MemoryStore: NewMemoryStore(),
		failSet:     map[string]error{},
		failGet:     map[string]error{},
		failRemove:  map[string]error{},
	}
}

func (s *countingStore) Get(key string) ([]byte, bool, error) {
	if err := s.failGet[key]; err != nil {
		return nil, false, err
	}
	return s.MemoryStore.Get(key)
}

func (s *countingStore) Set(key string, value []byte) error {
	if err := s.failSet[key]; err != nil {
		return err
	}
	s.mu.Lock()
	s.sets++
	s.mu.Unlock()
	return s.MemoryStore.Set(key, value)
}

func (s *countingStore) Remove(key string) error {
	if err := s.failRemove[key]; err != nil {
		return err
	}
	s.mu.Lock()
	s.removes++
	s.mu.Unlock()
	return s.MemoryStore.Remove(key)
}

func (s *countingStore) writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sets
}

func snapshot(t *testing.T, store KeyValueStore) map[string]string {
	t.Helper()
	out := map[string]string{}
	for _, key := range Keys() {
		v, ok, err := store.Get(key)
		require.NoError(t, err)
		if ok {
			out[key] = string(v)
		}
	}
	return out
}

func canonical(t *testing.T) map[string]string {
	t.Helper()
	out := map[string]string{}
	for _, c := range Catalog() {
		data, err := c.Encode()
		require.NoError(t, err)
		out[c.Key] = string(data)
	}
	return out
}

func TestSeedIfAbsent_ClientJobsOnEmptyStore(t *testing.T) {
	store := NewMemoryStore()

	report, err := NewSeeder(nil).SeedIfAbsent(store)
	require.NoError(t, err)
	assert.Equal(t, Keys(), report.Seeded)
	assert.Empty(t, report.Skipped)
	assert.NotEmpty(t, report.RunID)

	jobs, err := ClientJobs(store)
	require.NoError(t, err)
	require.Len(t, jobs, 5)
	assert.Equal(t, 1, jobs[0].ID)
	assert.Equal(t, "E-commerce Website Development", jobs[0].Title)
	assert.Equal(t, "in_progress", jobs[0].Status)
}

func TestSeedIfAbsent_Idempotent(t *testing.T) {
	store := newCountingStore()
	seeder := NewSeeder(nil)

	_, err := seeder.SeedIfAbsent(store)
	require.NoError(t, err)
	first := snapshot(t, store)
	require.Equal(t, 5, store.writes())

	report, err := seeder.SeedIfAbsent(store)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Writes())
	assert.Equal(t, Keys(), report.Skipped)
	assert.Equal(t, 5, store.writes(), "second call must not write")
	assert.Equal(t, first, snapshot(t, store))
}

func TestSeedIfAbsent_LeavesPresentKeyUntouched(t *testing.T) {
	for _, key := range Keys() {
		t.Run(key, func(t *testing.T) {
			store := NewMemoryStore()
			require.NoError(t, store.Set(key, []byte("{not json")))

			report, err := SeedIfAbsent(store)
			require.NoError(t, err)
			assert.Equal(t, []string{key}, report.Skipped)
			assert.Len(t, report.Seeded, 4)

			got := snapshot(t, store)
			want := canonical(t)
			want[key] = "{not json"
			assert.Equal(t, want, got)
		})
	}
}

func TestSeedIfAbsent_EmptyPaymentHistoryKept(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Set(KeyPaymentHistory, []byte("[]")))

	_, err := SeedIfAbsent(store)
	require.NoError(t, err)

	v, ok, err := store.Get(KeyPaymentHistory)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "[]", string(v))

	payments, err := Payments(store)
	require.NoError(t, err)
	assert.Empty(t, payments)
}

func TestReset_RemovesAllKeys(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Set("unrelated", []byte("keep")))

	_, err := SeedIfAbsent(store)
	require.NoError(t, err)
	require.NoError(t, Reset(store))

	for _, key := range Keys() {
		_, ok, err := store.Get(key)
		require.NoError(t, err)
		assert.False(t, ok, key)
	}
	_, ok, _ := store.Get("unrelated")
	assert.True(t, ok, "reset must only touch canonical keys")

	// Resetting an empty store is a no-op.
	require.NoError(t, Reset(store))
}

func TestReset_ThenSeedRestoresCanonicalContent(t *testing.T) {
	store := NewMemoryStore()
	seeder := NewSeeder(nil)

	_, err := seeder.SeedIfAbsent(store)
	require.NoError(t, err)
	require.NoError(t, store.Set(KeyClientJobs, []byte(`[{"id":99}]`)))

	require.NoError(t, seeder.Reset(store))
	report, err := seeder.SeedIfAbsent(store)
	require.NoError(t, err)
	assert.Equal(t, 5, report.Writes())
	assert.Equal(t, canonical(t), snapshot(t, store))
}

func TestSeedIfAbsent_WriteFailureStopsRun(t *testing.T) {
	store := newCountingStore()
	quota := errors.New("quota exceeded")
	store.failSet[KeyWorkerRatings] = quota

	report, err := NewSeeder(nil).SeedIfAbsent(store)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIOFailure)
	assert.ErrorIs(t, err, quota)
	assert.True(t, IsKind(err, KindIO))

	var opErr *OpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, KeyWorkerRatings, opErr.Key)
	assert.Equal(t, "seed", opErr.Op)

	assert.Equal(t, []string{KeyClientJobs, KeyGigApplications}, report.Seeded)
	got := snapshot(t, store)
	assert.Contains(t, got, KeyClientJobs)
	assert.Contains(t, got, KeyGigApplications)
	assert.NotContains(t, got, KeyWorkerRatings)
	assert.NotContains(t, got, KeyPaymentHistory)
	assert.NotContains(t, got, KeyIssuedCredentials)
}

func TestSeedIfAbsent_ReadFailure(t *testing.T) {
	store := newCountingStore()
	denied := errors.New("permission denied")
	store.failGet[KeyClientJobs] = denied

	_, err := SeedIfAbsent(store)
	assert.ErrorIs(t, err, ErrIOFailure)
	assert.ErrorIs(t, err, denied)
	assert.Equal(t, 0, store.writes())
}

func TestReset_FailureStopsRun(t *testing.T) {
	store := newCountingStore()
	_, err := SeedIfAbsent(store)
	require.NoError(t, err)

	broken := errors.New("disk error")
	store.failRemove[KeyWorkerRatings] = broken

	err = Reset(store)
	assert.ErrorIs(t, err, ErrIOFailure)
	assert.ErrorIs(t, err, broken)

	got := snapshot(t, store)
	assert.NotContains(t, got, KeyClientJobs)
	assert.NotContains(t, got, KeyGigApplications)
	assert.Contains(t, got, KeyWorkerRatings)
	assert.Contains(t, got, KeyPaymentHistory)
}

func TestSeedIfAbsent_ConcurrentCallsWriteOnce(t *testing.T) {
	store := newCountingStore()
	seeder := NewSeeder(nil)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := seeder.SeedIfAbsent(store)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, store.writes())
	assert.Equal(t, canonical(t), snapshot(t, store))
}

// mapStore has a non-comparable dynamic type.
type mapStore map[string][]byte

func (m mapStore) Get(key string) ([]byte, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

func (m mapStore) Set(key string, value []byte) error {
	m[key] = value
	return nil
}

func (m mapStore) Remove(key string) error {
	delete(m, key)
	return nil
}

func TestSeedIfAbsent_NonComparableStore(t *testing.T) {
	store := mapStore{}

	report, err := NewSeeder(nil).SeedIfAbsent(store)
	require.NoError(t, err)
	assert.Equal(t, 5, report.Writes())
	assert.Len(t, store, 5)
}

// wrapped is a comparable struct whose dynamic field is not.
type wrapped struct{ KeyValueStore }

func TestSeedIfAbsent_WrappedNonComparableStore(t *testing.T) {
	inner := mapStore{}
	store := wrapped{inner}
	seeder := NewSeeder(nil)

	report, err := seeder.SeedIfAbsent(store)
	require.NoError(t, err)
	assert.Equal(t, 5, report.Writes())
	assert.Len(t, inner, 5)

	require.NoError(t, seeder.Reset(store))
	assert.Empty(t, inner)
}

func TestSeeder_NilStore(t *testing.T) {
	seeder := NewSeeder(nil)
	var typed *MemoryStore

	_, err := seeder.SeedIfAbsent(nil)
	assert.ErrorIs(t, err, ErrNilStore)
	_, err = seeder.SeedIfAbsent(typed)
	assert.ErrorIs(t, err, ErrNilStore)
	assert.ErrorIs(t, seeder.Reset(nil), ErrNilStore)
	_, err = seeder.Status(nil)
	assert.ErrorIs(t, err, ErrNilStore)
}

func TestSeeder_LocksReleasedAfterCalls(t *testing.T) {
	seeder := NewSeeder(nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store := NewMemoryStore()
			_, err := seeder.SeedIfAbsent(store)
			assert.NoError(t, err)
			assert.NoError(t, seeder.Reset(store))
		}()
	}
	wg.Wait()

	seeder.mu.Lock()
	defer seeder.mu.Unlock()
	assert.Empty(t, seeder.locks)
}

func TestStatus(t *testing.T) {
	store := NewMemoryStore()
	seeder := NewSeeder(nil)
	require.NoError(t, store.Set(KeyWorkerRatings, []byte("[]")))

	statuses, err := seeder.Status(store)
	require.NoError(t, err)
	require.Len(t, statuses, 5)
	for _, st := range statuses {
		if st.Key == KeyWorkerRatings {
			assert.True(t, st.Present)
			assert.Equal(t, 2, st.Size)
		} else {
			assert.False(t, st.Present, st.Key)
		}
	}
}
