package record

import (
	"context"
	"sort"
)

// fakeStore is an in-memory stand-in for the Redis store, implementing just
// the hash, set, and sorted-set behavior the repository relies on.
type fakeStore struct {
	hashes map[string]map[string]string
	sets   map[string]map[string]struct{}
	zsets  map[string]map[string]float64

	failOp  string
	failErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		hashes: make(map[string]map[string]string),
		sets:   make(map[string]map[string]struct{}),
		zsets:  make(map[string]map[string]float64),
	}
}

func (f *fakeStore) fail(op string) error {
	if f.failOp == op {
		return f.failErr
	}
	return nil
}

func (f *fakeStore) HSet(_ context.Context, key string, fields map[string]string) error {
	if err := f.fail("hset"); err != nil {
		return err
	}
	h, ok := f.hashes[key]
	if !ok {
		h = make(map[string]string, len(fields))
		f.hashes[key] = h
	}
	for k, v := range fields {
		h[k] = v
	}
	return nil
}

func (f *fakeStore) HGetAll(_ context.Context, key string) (map[string]string, error) {
	if err := f.fail("hgetall"); err != nil {
		return nil, err
	}
	// Missing key yields an empty map, like HGETALL.
	out := make(map[string]string, len(f.hashes[key]))
	for k, v := range f.hashes[key] {
		out[k] = v
	}
	return out, nil
}

func (f *fakeStore) HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error) {
	if err := f.fail("hgetallmulti"); err != nil {
		return nil, err
	}
	out := make([]map[string]string, len(keys))
	for i, key := range keys {
		h, err := f.HGetAll(ctx, key)
		if err != nil {
			return nil, err
		}
		out[i] = h
	}
	return out, nil
}

func (f *fakeStore) Del(_ context.Context, key string) error {
	if err := f.fail("del"); err != nil {
		return err
	}
	delete(f.hashes, key)
	return nil
}

func (f *fakeStore) Exists(_ context.Context, key string) (bool, error) {
	if err := f.fail("exists"); err != nil {
		return false, err
	}
	_, ok := f.hashes[key]
	return ok, nil
}

func (f *fakeStore) SAdd(_ context.Context, key string, members ...string) error {
	if err := f.fail("sadd"); err != nil {
		return err
	}
	s, ok := f.sets[key]
	if !ok {
		s = make(map[string]struct{})
		f.sets[key] = s
	}
	for _, m := range members {
		s[m] = struct{}{}
	}
	return nil
}

func (f *fakeStore) SRem(_ context.Context, key string, members ...string) error {
	if err := f.fail("srem"); err != nil {
		return err
	}
	for _, m := range members {
		delete(f.sets[key], m)
	}
	return nil
}

func (f *fakeStore) SMembers(_ context.Context, key string) ([]string, error) {
	if err := f.fail("smembers"); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(f.sets[key]))
	for m := range f.sets[key] {
		out = append(out, m)
	}
	sort.Strings(out)
	return out, nil
}

func (f *fakeStore) ZAdd(_ context.Context, key string, score float64, member string) error {
	if err := f.fail("zadd"); err != nil {
		return err
	}
	z, ok := f.zsets[key]
	if !ok {
		z = make(map[string]float64)
		f.zsets[key] = z
	}
	z[member] = score
	return nil
}

func (f *fakeStore) ZRem(_ context.Context, key string, members ...string) error {
	if err := f.fail("zrem"); err != nil {
		return err
	}
	for _, m := range members {
		delete(f.zsets[key], m)
	}
	return nil
}

func (f *fakeStore) ZRevRange(_ context.Context, key string, start, stop int64) ([]string, error) {
	if err := f.fail("zrevrange"); err != nil {
		return nil, err
	}
	type entry struct {
		member string
		score  float64
	}
	entries := make([]entry, 0, len(f.zsets[key]))
	for m, s := range f.zsets[key] {
		entries = append(entries, entry{m, s})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].score != entries[j].score {
			return entries[i].score > entries[j].score
		}
		return entries[i].member > entries[j].member
	})

	if start < 0 || start >= int64(len(entries)) {
		return nil, nil
	}
	if stop >= int64(len(entries)) {
		stop = int64(len(entries)) - 1
	}
	out := make([]string, 0, stop-start+1)
	for _, e := range entries[start : stop+1] {
		out = append(out, e.member)
	}
	return out, nil
}
