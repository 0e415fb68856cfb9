package cmd

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Input opens path for reading. "-" is stdin, files ending in .gz are
// decompressed and a directory is read as the concatenation of its files
// in name order.
func Input(path string) (reader io.Reader, closeall func(), err error) {
	if path == "-" {
		return os.Stdin, func() {}, nil
	}
	stat, err := os.Stat(path)
	if err != nil {
		return nil, nil, err
	}
	if stat.IsDir() {
		return InputDir(path)
	}
	return InputFile(path)
}

func InputFile(path string) (reader io.Reader, closeall func(), err error) {
	freader, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	if strings.HasSuffix(path, ".gz") {
		greader, err := gzip.NewReader(freader)
		if err != nil {
			freader.Close()
			return nil, nil, err
		}
		return greader, func() {
			greader.Close()
			freader.Close()
		}, nil
	}
	return freader, func() {
		freader.Close()
	}, nil
}

func InputDir(dir string) (reader io.Reader, closeall func(), err error) {
	var readers []io.Reader
	var closers []func()
	closeall = func() {
		for _, closer := range closers {
			closer()
		}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		creader, closer, err := InputFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			closeall()
			return nil, nil, err
		}
		readers = append(readers, creader)
		closers = append(closers, closer)
	}
	return io.MultiReader(readers...), closeall, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}

type gzipFile struct {
	*gzip.Writer
	file *os.File
}

func (g *gzipFile) Close() error {
	err := g.Writer.Close()
	if cerr := g.file.Close(); err == nil {
		err = cerr
	}
	return err
}

// Output creates path for writing. "-" is stdout and files ending in .gz
// are compressed. Close flushes and must be checked.
func Output(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".gz") {
		return &gzipFile{Writer: gzip.NewWriter(f), file: f}, nil
	}
	return f, nil
}
