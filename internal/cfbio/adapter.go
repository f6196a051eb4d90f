// Package cfbio is the thin adapter over the generic OLE Compound File
// Binary reader. It buffers every stream in the container once, up front,
// and reconstructs a path-indexed view — open-stream-by-path and
// list-children-of-a-storage — on top of richardlehane/mscfb's flat entry
// iteration, driven with its Next()/Name/Path/Size/Read calls.
package cfbio

import (
	"io"
	"strings"

	"github.com/richardlehane/mscfb"
)

// Sep is the path component separator used by .msg containers, matching
// the on-disk convention (storage names joined to child names with a
// backslash).
const Sep = `\`

// Kind discriminates a storage from a stream when listing children.
type Kind int

const (
	// KindStream is a leaf byte sequence.
	KindStream Kind = iota
	// KindStorage is an inner node that itself has children.
	KindStorage
)

// Child describes one immediate child of a storage.
type Child struct {
	Name string
	Kind Kind
}

// Adapter is a fully-buffered, read-only view over a compound file. It is
// held only for the duration of one parse: once constructed, no further
// reads reach the underlying source.
type Adapter struct {
	streams  map[string][]byte
	children map[string]map[string]Kind
}

// Open reads every entry out of the compound file reachable from ra and
// builds the path index. The whole input is assumed to already be
// buffered in memory by the caller (ra is typically a *bytes.Reader), so
// nothing here can observe concurrent mutation of the source.
func Open(ra io.ReaderAt) (*Adapter, error) {
	doc, err := mscfb.New(ra)
	if err != nil {
		return nil, err
	}

	a := &Adapter{
		streams:  make(map[string][]byte),
		children: make(map[string]map[string]Kind),
	}

	for entry, err := doc.Next(); err == nil; entry, err = doc.Next() {
		full := make([]string, 0, len(entry.Path)+1)
		full = append(full, entry.Path...)
		full = append(full, entry.Name)
		path := strings.Join(full, Sep)

		buf := make([]byte, entry.Size)
		if entry.Size > 0 {
			if _, rerr := io.ReadFull(entry, buf); rerr != nil && rerr != io.ErrUnexpectedEOF && rerr != io.EOF {
				return nil, rerr
			}
		}
		a.streams[path] = buf

		// Register this entry, and every storage on the way down to it,
		// as a child of its immediate parent. mscfb only yields leaf
		// entries, so a storage's existence is inferred purely from
		// being a path prefix of something that was actually read.
		for i := 1; i <= len(full); i++ {
			parent := strings.Join(full[:i-1], Sep)
			name := full[i-1]
			kind := KindStorage
			if i == len(full) {
				kind = KindStream
			}
			a.addChild(parent, name, kind)
		}
	}

	return a, nil
}

// FromStreams builds an Adapter directly from a flat path->bytes map,
// without going through mscfb at all. It exists for callers (and this
// module's own tests) that already have extracted stream contents and
// need the same path-indexed Children/OpenStream view Open produces from
// a real compound file.
func FromStreams(streams map[string][]byte) *Adapter {
	a := &Adapter{
		streams:  make(map[string][]byte, len(streams)),
		children: make(map[string]map[string]Kind),
	}
	for path, data := range streams {
		path = strings.Trim(path, Sep)
		full := strings.Split(path, Sep)
		a.streams[path] = data
		for i := 1; i <= len(full); i++ {
			parent := strings.Join(full[:i-1], Sep)
			kind := KindStorage
			if i == len(full) {
				kind = KindStream
			}
			a.addChild(parent, full[i-1], kind)
		}
	}
	return a
}

func (a *Adapter) addChild(parent, name string, kind Kind) {
	set, ok := a.children[parent]
	if !ok {
		set = make(map[string]Kind)
		a.children[parent] = set
	}
	// A storage that later turns out to also hold a directly-read stream
	// (shouldn't happen in a well-formed .msg, but lenient parsing never
	// assumes it can't) is recorded as a storage: KindStorage is never
	// overwritten, while a name first seen as a stream is upgraded, since
	// a path is a storage the instant anything nests under it.
	if existing, ok := set[name]; !ok || existing == KindStream {
		set[name] = kind
	}
}

// OpenStream returns the buffered contents of the stream at path, joining
// path components the same way the container does (backslash-separated,
// no leading separator). The bool is false when no such stream exists.
func (a *Adapter) OpenStream(path string) ([]byte, bool) {
	b, ok := a.streams[strings.Trim(path, Sep)]
	return b, ok
}

// HasStorage reports whether path names a storage (a node with at least
// one child) inside the container.
func (a *Adapter) HasStorage(path string) bool {
	_, ok := a.children[strings.Trim(path, Sep)]
	return ok
}

// Children lists the immediate children of the storage at path. The bool
// is false when path is not a known storage.
func (a *Adapter) Children(path string) ([]Child, bool) {
	set, ok := a.children[strings.Trim(path, Sep)]
	if !ok {
		return nil, false
	}
	out := make([]Child, 0, len(set))
	for name, kind := range set {
		out = append(out, Child{Name: name, Kind: kind})
	}
	return out, true
}

// Join combines a storage path and a child name using the container's
// separator convention, mirroring how .msg paths are built throughout the
// rest of this module (recipient/attachment storages, name-id streams).
func Join(parts ...string) string {
	nonEmpty := parts[:0]
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, Sep)
}
