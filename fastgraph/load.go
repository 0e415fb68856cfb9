package fastgraph

import (
	"bytes"
	"io"
	"io/ioutil"
	"path/filepath"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
)

type Format string

const (
	DotFormat      Format = "dot"
	SimpleFormat   Format = "simple"
	NodeLinkFormat Format = "nodelink"
	BinaryFormat   Format = "binary"
)

var Formats = []Format{DotFormat, SimpleFormat, NodeLinkFormat, BinaryFormat}

// FormatOf guesses the format from a file name. A trailing .gz is
// ignored. Unknown extensions are reported as the simple format.
func FormatOf(path string) Format {
	path = strings.TrimSuffix(path, ".gz")
	switch strings.ToLower(filepath.Ext(path)) {
	case ".dot", ".gv":
		return DotFormat
	case ".json", ".yaml", ".yml":
		return NodeLinkFormat
	case FileExtension:
		return BinaryFormat
	default:
		return SimpleFormat
	}
}

func ParseFormat(name string) (Format, error) {
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", InvalidArgumentf("unknown graph format %q (expected one of %v)", name, Formats)
}

func LoadFormat(format Format, input io.Reader) (*FastGraph, error) {
	switch format {
	case DotFormat:
		return LoadDot(input)
	case SimpleFormat:
		return LoadSimple(input)
	case NodeLinkFormat:
		return LoadNodeLink(input)
	case BinaryFormat:
		data, err := ioutil.ReadAll(input)
		if err != nil {
			return nil, err
		}
		g := new(FastGraph)
		if err := g.UnmarshalBinary(data); err != nil {
			return nil, err
		}
		return g, nil
	}
	return nil, errors.Errorf("unknown graph format %q", format)
}

func (g *FastGraph) WriteFormat(format Format, w io.Writer) error {
	switch format {
	case DotFormat:
		return g.WriteDot(w)
	case SimpleFormat:
		return g.WriteSimple(w)
	case NodeLinkFormat:
		return g.WriteNodeLink(w)
	case BinaryFormat:
		data, err := g.MarshalBinary()
		if err != nil {
			return err
		}
		_, err = io.Copy(w, bytes.NewReader(data))
		return err
	}
	return errors.Errorf("unknown graph format %q", format)
}
