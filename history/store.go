// SPDX-License-Identifier: MIT
//
// File: store.go
// Role: Badger-backed run log.
// Policy:
//   - Keys are "run/<graph>/<seq>" with seq zero-padded, so lexical order is
//     insertion order within a graph.
//   - Sequence numbers come from a badger.Sequence leased in small blocks.

package history

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Sentinel errors for the run history.
var (
	// ErrNotFound is returned by Latest when a graph has no recorded runs.
	ErrNotFound = errors.New("history: no runs recorded")

	// ErrBadGraphKey rejects empty graph keys and keys containing '/'.
	ErrBadGraphKey = errors.New("history: bad graph key")

	// ErrReadOnly is returned by Record on a store opened with ReadOnly.
	ErrReadOnly = errors.New("history: store is read-only")
)

var seqKey = []byte("meta/seq")

const seqLease = 64

// Options configures Open.
type Options struct {
	Path     string // directory; empty means in-memory
	ReadOnly bool
	Logger   zerolog.Logger
}

// Store is a handle on an open run log. Safe for concurrent use.
type Store struct {
	db  *badger.DB
	seq *badger.Sequence
	log zerolog.Logger
}

// Open opens (or creates) the store described by opts.
func Open(opts Options) (*Store, error) {
	dbOpts := badger.DefaultOptions(opts.Path)
	dbOpts.Logger = badgerLogger{opts.Logger}
	dbOpts.ReadOnly = opts.ReadOnly
	if opts.Path == "" {
		if opts.ReadOnly {
			return nil, errors.Wrap(ErrReadOnly, "in-memory store cannot be read-only")
		}
		dbOpts.InMemory = true
	}

	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, errors.Wrapf(err, "open history %q", opts.Path)
	}
	s := &Store{db: db, log: opts.Logger}
	if !opts.ReadOnly {
		if s.seq, err = db.GetSequence(seqKey, seqLease); err != nil {
			db.Close()
			return nil, errors.Wrap(err, "lease sequence")
		}
	}
	s.log.Debug().Str("path", opts.Path).Bool("in_memory", dbOpts.InMemory).Msg("history opened")
	return s, nil
}

// Close releases the sequence lease and closes the database.
func (s *Store) Close() error {
	if s.seq != nil {
		if err := s.seq.Release(); err != nil {
			s.db.Close()
			return errors.Wrap(err, "release sequence")
		}
	}
	return s.db.Close()
}

// Record appends e under its graph key and returns the assigned sequence.
func (s *Store) Record(ctx context.Context, e Entry) (uint64, error) {
	if err := checkGraphKey(e.Graph); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s.seq == nil {
		return 0, ErrReadOnly
	}
	seq, err := s.seq.Next()
	if err != nil {
		return 0, errors.Wrap(err, "next sequence")
	}
	val, err := json.Marshal(e)
	if err != nil {
		return 0, errors.Wrap(err, "encode entry")
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(entryKey(e.Graph, seq), val)
	})
	if err != nil {
		return 0, errors.Wrapf(err, "record run for %q", e.Graph)
	}
	s.log.Debug().Str("graph", e.Graph).Uint64("seq", seq).Int64("triangles", e.Triangles).Msg("run recorded")
	return seq, nil
}

// List returns every run recorded for graph, oldest first.
func (s *Store) List(graph string) ([]Entry, error) {
	if err := checkGraphKey(graph); err != nil {
		return nil, err
	}
	prefix := graphPrefix(graph)
	var out []Entry
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{PrefetchValues: true, PrefetchSize: 16, Prefix: prefix})
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			e, err := decode(it.Item())
			if err != nil {
				return err
			}
			out = append(out, e)
		}
		return nil
	})
	return out, errors.Wrapf(err, "list runs for %q", graph)
}

// Latest returns the newest run for graph or ErrNotFound.
func (s *Store) Latest(graph string) (Entry, error) {
	if err := checkGraphKey(graph); err != nil {
		return Entry{}, err
	}
	prefix := graphPrefix(graph)
	var (
		out   Entry
		found bool
	)
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Reverse: true, Prefix: prefix})
		defer it.Close()
		it.Seek(append(append([]byte{}, prefix...), 0xFF))
		if !it.ValidForPrefix(prefix) {
			return nil
		}
		e, err := decode(it.Item())
		out, found = e, err == nil
		return err
	})
	if err != nil {
		return Entry{}, errors.Wrapf(err, "latest run for %q", graph)
	}
	if !found {
		return Entry{}, errors.Wrapf(ErrNotFound, "graph %q", graph)
	}
	return out, nil
}

func decode(item *badger.Item) (Entry, error) {
	var e Entry
	err := item.Value(func(val []byte) error {
		return json.Unmarshal(val, &e)
	})
	if err != nil {
		return Entry{}, errors.Wrapf(err, "decode %s", item.Key())
	}
	key := string(item.Key())
	_, err = fmt.Sscanf(key[strings.LastIndexByte(key, '/')+1:], "%d", &e.Seq)
	return e, errors.Wrapf(err, "parse key %s", key)
}

func checkGraphKey(graph string) error {
	if graph == "" || strings.ContainsRune(graph, '/') {
		return errors.Wrapf(ErrBadGraphKey, "%q", graph)
	}
	return nil
}

func graphPrefix(graph string) []byte {
	return []byte("run/" + graph + "/")
}

func entryKey(graph string, seq uint64) []byte {
	return []byte(fmt.Sprintf("run/%s/%020d", graph, seq))
}

// badgerLogger routes Badger's printf-style logging into zerolog.
// Badger's info chatter goes to Debug.
type badgerLogger struct{ zerolog.Logger }

func (l badgerLogger) Errorf(f string, args ...interface{}) {
	l.Error().Str("component", "badger").Msg(strings.TrimSpace(fmt.Sprintf(f, args...)))
}

func (l badgerLogger) Warningf(f string, args ...interface{}) {
	l.Warn().Str("component", "badger").Msg(strings.TrimSpace(fmt.Sprintf(f, args...)))
}

func (l badgerLogger) Infof(f string, args ...interface{}) {
	l.Debug().Str("component", "badger").Msg(strings.TrimSpace(fmt.Sprintf(f, args...)))
}

func (l badgerLogger) Debugf(f string, args ...interface{}) {
	l.Trace().Str("component", "badger").Msg(strings.TrimSpace(fmt.Sprintf(f, args...)))
}
