// Package store keeps named graphs in a single bbolt file. Graphs are
// stored in their binary form and validated when they are read back.
package store

import (
	"sort"
	"time"
)

import (
	"github.com/timtadh/data-structures/errors"
	"go.etcd.io/bbolt"
)

import (
	"github.com/timtadh/fastgraph/fastgraph"
)

var graphsBucket = []byte("graphs")

type Store struct {
	path string
	db   *bbolt.DB
}

func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o644, &bbolt.Options{
		Timeout:      5 * time.Second,
		NoGrowSync:   bbolt.DefaultOptions.NoGrowSync,
		FreelistType: bbolt.DefaultOptions.FreelistType,
	})
	if err != nil {
		return nil, errors.Errorf("could not open graph store %v: %v", path, err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(graphsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{path: path, db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Path() string {
	return s.path
}

// Save stores g under name, replacing any graph already stored there.
func (s *Store) Save(name string, g *fastgraph.FastGraph) error {
	if name == "" {
		return fastgraph.InvalidArgumentf("graphs need a non-empty name")
	}
	bytes, err := g.MarshalBinary()
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(graphsBucket).Put([]byte(name), bytes)
	})
}

// Load returns the graph stored under name. A missing name is an
// InvalidArgument error; a damaged record is a Structural one.
func (s *Store) Load(name string) (*fastgraph.FastGraph, error) {
	var g *fastgraph.FastGraph
	err := s.db.View(func(tx *bbolt.Tx) error {
		bytes := tx.Bucket(graphsBucket).Get([]byte(name))
		if bytes == nil {
			return fastgraph.InvalidArgumentf("no graph named %q in %v", name, s.path)
		}
		g = new(fastgraph.FastGraph)
		// bytes are only valid inside the transaction and UnmarshalBinary copies
		return g.UnmarshalBinary(bytes)
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (s *Store) Has(name string) (has bool, err error) {
	err = s.db.View(func(tx *bbolt.Tx) error {
		has = tx.Bucket(graphsBucket).Get([]byte(name)) != nil
		return nil
	})
	return has, err
}

// Names lists the stored graph names in sorted order.
func (s *Store) Names() ([]string, error) {
	names := make([]string, 0, 10)
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(graphsBucket).ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes name. Deleting a missing name is not an error.
func (s *Store) Delete(name string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(graphsBucket).Delete([]byte(name))
	})
}
