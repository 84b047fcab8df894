package memory

import (
	"cmp"
	"slices"

	"deliverysystem/internal/pkg/errs"
)

type opKind int

const (
	opAdd opKind = iota + 1
	opUpdate
	opDelete
)

type record[T any] struct {
	seq   uint64
	value T
}

// table holds committed snapshots keyed by id string. seq keeps insertion
// order, which is the order listings are returned in.
type table[T any] struct {
	rows map[string]record[T]
}

func newTable[T any]() table[T] {
	return table[T]{rows: make(map[string]record[T])}
}

type op[T any] struct {
	kind  opKind
	id    string
	value T
}

type stagedRow[T any] struct {
	value   T
	deleted bool
}

// staged collects the writes of one transaction. rows is the transaction's
// own view of the ids it touched; ops is replayed against the table on commit.
type staged[T any] struct {
	ops   []op[T]
	rows  map[string]stagedRow[T]
	added []string
}

func newStaged[T any]() staged[T] {
	return staged[T]{rows: make(map[string]stagedRow[T])}
}

func (s *staged[T]) record(o op[T]) {
	s.ops = append(s.ops, o)
	switch o.kind {
	case opDelete:
		s.rows[o.id] = stagedRow[T]{deleted: true}
	case opAdd:
		s.rows[o.id] = stagedRow[T]{value: o.value}
		s.added = append(s.added, o.id)
	default:
		s.rows[o.id] = stagedRow[T]{value: o.value}
	}
}

// check replays ops against the committed rows without changing them.
func (t *table[T]) check(e entity[T], ops []op[T]) error {
	exists := make(map[string]bool)
	present := func(id string) bool {
		if v, ok := exists[id]; ok {
			return v
		}
		_, ok := t.rows[id]
		return ok
	}

	for _, o := range ops {
		switch o.kind {
		case opAdd:
			if present(o.id) {
				return errs.NewObjectAlreadyExistsError(e.name, o.id)
			}
			exists[o.id] = true
		case opUpdate:
			if !present(o.id) {
				return errs.NewObjectNotFoundError(e.name, o.id)
			}
		case opDelete:
			if !present(o.id) {
				return errs.NewObjectNotFoundError(e.name, o.id)
			}
			exists[o.id] = false
		}
	}
	return nil
}

// apply writes ops that already passed check.
func (t *table[T]) apply(ops []op[T], nextSeq func() uint64) {
	for _, o := range ops {
		switch o.kind {
		case opAdd:
			t.rows[o.id] = record[T]{seq: nextSeq(), value: o.value}
		case opUpdate:
			r := t.rows[o.id]
			r.value = o.value
			t.rows[o.id] = r
		case opDelete:
			delete(t.rows, o.id)
		}
	}
}

// view merges committed rows with the staged ones, drops deleted ids and
// returns the values in insertion order. Ids added in the transaction come last.
func (t *table[T]) view(s *staged[T], keep func(T) bool) []T {
	merged := make([]record[T], 0, len(t.rows))
	for id, r := range t.rows {
		if s != nil {
			if row, ok := s.rows[id]; ok {
				if row.deleted {
					continue
				}
				r.value = row.value
			}
		}
		merged = append(merged, r)
	}

	if s != nil {
		seq := maxSeq(t.rows)
		seen := make(map[string]bool, len(s.added))
		for _, id := range s.added {
			row, ok := s.rows[id]
			if !ok || row.deleted || seen[id] {
				continue
			}
			if _, committed := t.rows[id]; committed {
				continue
			}
			seen[id] = true
			seq++
			merged = append(merged, record[T]{seq: seq, value: row.value})
		}
	}

	slices.SortFunc(merged, func(a, b record[T]) int {
		return cmp.Compare(a.seq, b.seq)
	})

	out := make([]T, 0, len(merged))
	for _, r := range merged {
		if keep == nil || keep(r.value) {
			out = append(out, r.value)
		}
	}
	return out
}

func maxSeq[T any](rows map[string]record[T]) uint64 {
	var m uint64
	for _, r := range rows {
		m = max(m, r.seq)
	}
	return m
}
