package fixture

import "fmt"

// Typed readers for the dashboard. Seeding never calls these: a present key
// counts as seeded even when it would not decode.

func ClientJobs(store KeyValueStore) ([]ClientJob, error) {
	return load[ClientJob](store, KeyClientJobs)
}

func GigApplications(store KeyValueStore) ([]GigApplication, error) {
	return load[GigApplication](store, KeyGigApplications)
}

func WorkerRatings(store KeyValueStore) ([]WorkerRating, error) {
	return load[WorkerRating](store, KeyWorkerRatings)
}

func Payments(store KeyValueStore) ([]Payment, error) {
	return load[Payment](store, KeyPaymentHistory)
}

func Credentials(store KeyValueStore) ([]Credential, error) {
	return load[Credential](store, KeyIssuedCredentials)
}

// ApplicationsForGig returns the applications whose gigId matches id, in
// stored order.
func ApplicationsForGig(store KeyValueStore, id int) ([]GigApplication, error) {
	all, err := GigApplications(store)
	if err != nil {
		return nil, err
	}
	var out []GigApplication
	for _, a := range all {
		if a.GigID == id {
			out = append(out, a)
		}
	}
	return out, nil
}

func load[T any](store KeyValueStore, key string) ([]T, error) {
	data, ok, err := store.Get(key)
	if err != nil {
		return nil, ioError("read", key, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotSeeded, key)
	}

	var records []T
	if err := codec.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return records, nil
}
