package store

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"path/filepath"
)

import (
	"go.etcd.io/bbolt"
)

import (
	"github.com/timtadh/fastgraph/fastgraph"
)

func open(t *testing.T) *Store {
	s, err := Open(filepath.Join(t.TempDir(), "graphs.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveLoad(t *testing.T) {
	x := assert.New(t)
	s := open(t)
	g, err := fastgraph.RandomGraph(20, 40, 1, true, true, true)
	x.Nil(err)
	g.SetName("random")
	g.SetNodeLabel(3, "three")
	x.Nil(s.Save("r", g))
	h, err := s.Load("r")
	x.Nil(err)
	x.Equal(g.String(), h.String())
	x.Equal("random", h.Name())
	x.True(h.CheckConsistency())
}

func TestNamesAndDelete(t *testing.T) {
	x := assert.New(t)
	s := open(t)
	names, err := s.Names()
	x.Nil(err)
	x.Empty(names)
	for _, name := range []string{"c", "a", "b"} {
		g, err := fastgraph.RandomGraph(3, 2, 0, false, false, false)
		x.Nil(err)
		x.Nil(s.Save(name, g))
	}
	names, err = s.Names()
	x.Nil(err)
	x.Equal([]string{"a", "b", "c"}, names)
	x.Nil(s.Delete("b"))
	x.Nil(s.Delete("missing"))
	has, err := s.Has("b")
	x.Nil(err)
	x.False(has)
	names, err = s.Names()
	x.Nil(err)
	x.Equal([]string{"a", "c"}, names)
}

func TestErrors(t *testing.T) {
	x := assert.New(t)
	s := open(t)
	_, err := s.Load("nope")
	x.True(fastgraph.IsInvalidArgument(err), "%v", err)
	g, err := fastgraph.RandomGraph(3, 2, 0, false, false, false)
	x.Nil(err)
	x.True(fastgraph.IsInvalidArgument(s.Save("", g)))

	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(graphsBucket).Put([]byte("junk"), []byte("not a graph"))
	})
	x.Nil(err)
	_, err = s.Load("junk")
	x.True(fastgraph.IsStructural(err), "%v", err)
}

func TestReopen(t *testing.T) {
	x := assert.New(t)
	path := filepath.Join(t.TempDir(), "graphs.db")
	s, err := Open(path)
	x.Nil(err)
	g, err := fastgraph.RandomGraph(5, 4, 9, false, false, false)
	x.Nil(err)
	x.Nil(s.Save("g", g))
	x.Nil(s.Close())

	s, err = Open(path)
	x.Nil(err)
	defer s.Close()
	h, err := s.Load("g")
	x.Nil(err)
	x.Equal(g.String(), h.String())
}
