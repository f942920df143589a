package fixture

// KeyValueStore is the persistent byte store the fixtures live in.
// Get reports a missing key with ok == false and a nil error. Remove of a
// missing key is not an error.
type KeyValueStore interface {
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
	Remove(key string) error
}

// AbsentSetter is implemented by stores that can test for presence and
// write in one atomic step.
type AbsentSetter interface {
	SetIfAbsent(key string, value []byte) (written bool, err error)
}
