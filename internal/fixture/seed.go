package fixture

import (
	"log/slog"
	"reflect"
	"sync"

	"github.com/google/uuid"

	"github.com/gigmarket/gigadmin/internal/logger"
)

// Report describes what one SeedIfAbsent call did.
type Report struct {
	RunID   string   `json:"run_id"`
	Seeded  []string `json:"seeded"`
	Skipped []string `json:"skipped"`
}

// Writes returns the number of keys written.
func (r *Report) Writes() int {
	return len(r.Seeded)
}

// KeyStatus is the presence of one canonical key.
type KeyStatus struct {
	Key     string `json:"key"`
	Present bool   `json:"present"`
	Size    int    `json:"size"`
}

// Seeder seeds and resets the canonical collections. Calls on the same store
// are serialized. Locks live only while a call holds or waits on them.
type Seeder struct {
	catalog []Collection
	log     *slog.Logger

	mu     sync.Mutex
	shared sync.Mutex
	locks  map[uintptr]*storeLock
}

// storeLock is dropped from Seeder.locks once nobody holds or waits on it.
type storeLock struct {
	mu   sync.Mutex
	refs int
}

// NewSeeder returns a Seeder over the canned catalog. A nil logger means the
// process logger at call time.
func NewSeeder(log *slog.Logger) *Seeder {
	return &Seeder{
		catalog: Catalog(),
		log:     log,
		locks:   make(map[uintptr]*storeLock),
	}
}

func (s *Seeder) logs() *slog.Logger {
	if s.log == nil {
		return logger.L()
	}
	return s.log
}

// acquire locks store and returns the matching release. Pointer stores are
// locked by address; stores of any other kind share one lock.
func (s *Seeder) acquire(store KeyValueStore) (func(), error) {
	v := reflect.ValueOf(store)
	if !v.IsValid() || (v.Kind() == reflect.Pointer && v.IsNil()) {
		return nil, ErrNilStore
	}
	if v.Kind() != reflect.Pointer {
		s.shared.Lock()
		return s.shared.Unlock, nil
	}

	key := v.Pointer()
	s.mu.Lock()
	l, ok := s.locks[key]
	if !ok {
		l = &storeLock{}
		s.locks[key] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, key)
		}
		s.mu.Unlock()
	}, nil
}

// SeedIfAbsent writes each canned collection whose key is absent from store.
// A present key is skipped whatever its content. The first store failure
// stops the run; keys already written stay written.
func (s *Seeder) SeedIfAbsent(store KeyValueStore) (*Report, error) {
	release, err := s.acquire(store)
	if err != nil {
		return nil, err
	}
	defer release()

	report := &Report{RunID: uuid.NewString(), Seeded: []string{}, Skipped: []string{}}
	as, atomic := store.(AbsentSetter)

	for _, c := range s.catalog {
		var (
			written bool
			err     error
		)
		if atomic {
			written, err = s.seedAtomic(as, c)
		} else {
			written, err = s.seedChecked(store, c)
		}
		if err != nil {
			s.logs().Error("fixture.seed_failed", "run_id", report.RunID, "key", c.Key, "error", err)
			return report, err
		}

		if written {
			report.Seeded = append(report.Seeded, c.Key)
			s.logs().Info("fixture.seeded", "run_id", report.RunID, "key", c.Key, "records", c.Len())
		} else {
			report.Skipped = append(report.Skipped, c.Key)
			s.logs().Debug("fixture.skipped", "run_id", report.RunID, "key", c.Key)
		}
	}

	return report, nil
}

func (s *Seeder) seedChecked(store KeyValueStore, c Collection) (bool, error) {
	_, present, err := store.Get(c.Key)
	if err != nil {
		return false, ioError("seed", c.Key, err)
	}
	if present {
		return false, nil
	}

	data, err := c.Encode()
	if err != nil {
		return false, &OpError{Op: "seed", Kind: KindEncode, Key: c.Key, Err: err}
	}
	if err := store.Set(c.Key, data); err != nil {
		return false, ioError("seed", c.Key, err)
	}
	return true, nil
}

func (s *Seeder) seedAtomic(store AbsentSetter, c Collection) (bool, error) {
	data, err := c.Encode()
	if err != nil {
		return false, &OpError{Op: "seed", Kind: KindEncode, Key: c.Key, Err: err}
	}
	written, err := store.SetIfAbsent(c.Key, data)
	if err != nil {
		return false, ioError("seed", c.Key, err)
	}
	return written, nil
}

// Reset removes every canonical key from store. The first store failure
// stops the run.
func (s *Seeder) Reset(store KeyValueStore) error {
	release, err := s.acquire(store)
	if err != nil {
		return err
	}
	defer release()

	for _, c := range s.catalog {
		if err := store.Remove(c.Key); err != nil {
			s.logs().Error("fixture.reset_failed", "key", c.Key, "error", err)
			return ioError("reset", c.Key, err)
		}
	}
	s.logs().Info("fixture.reset", "keys", len(s.catalog))
	return nil
}

// Status reports which canonical keys are present in store.
func (s *Seeder) Status(store KeyValueStore) ([]KeyStatus, error) {
	release, err := s.acquire(store)
	if err != nil {
		return nil, err
	}
	defer release()

	statuses := make([]KeyStatus, 0, len(s.catalog))
	for _, c := range s.catalog {
		value, ok, err := store.Get(c.Key)
		if err != nil {
			return nil, ioError("status", c.Key, err)
		}
		statuses = append(statuses, KeyStatus{Key: c.Key, Present: ok, Size: len(value)})
	}
	return statuses, nil
}

var defaultSeeder = NewSeeder(nil)

// SeedIfAbsent seeds store using the package-level Seeder.
func SeedIfAbsent(store KeyValueStore) (*Report, error) {
	return defaultSeeder.SeedIfAbsent(store)
}

// Reset resets store using the package-level Seeder.
func Reset(store KeyValueStore) error {
	return defaultSeeder.Reset(store)
}
