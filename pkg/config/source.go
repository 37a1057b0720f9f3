package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// SourceKind identifies where a barcodes file lives.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

// Source points at a barcodes file.
type Source interface {
	Location() string
	Kind() SourceKind
}

type fileSource struct {
	path string
}

func (s fileSource) Location() string { return s.path }
func (s fileSource) Kind() SourceKind { return SourceKindFile }

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

type fsSource struct {
	name string
}

func (s fsSource) Location() string { return s.name }
func (s fsSource) Kind() SourceKind { return SourceKindFS }

// SourceFromFS identifies a file inside the loader's fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

type urlSource struct {
	raw string
}

func (s urlSource) Location() string { return s.raw }
func (s urlSource) Kind() SourceKind { return SourceKindURL }

// SourceFromURL returns a Source for an HTTP(S) location. It panics on an
// invalid URL to surface configuration mistakes early.
func SourceFromURL(raw string) Source {
	if raw == "" {
		panic("config: empty URL source")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		panic(fmt.Sprintf("config: invalid URL %q: %v", raw, err))
	}
	return urlSource{raw: raw}
}

// ParseSource picks a file or URL source from a command line argument.
func ParseSource(raw string) Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return SourceFromURL(path)
	}
	return SourceFromFile(path)
}

// ErrUnsupportedSource is returned when the loader has no way to read a source.
var ErrUnsupportedSource = errors.New("config: unsupported source")

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFileSystem sets the fs.FS used for SourceFromFS.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(l *Loader) {
		l.files = files
	}
}

// WithHTTPClient enables URL sources using client.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(l *Loader) {
		l.client = client
	}
}

// Loader reads barcodes files from disk, an fs.FS, or HTTP.
type Loader struct {
	files  fs.FS
	client *http.Client
}

// NewLoader constructs a Loader. URL sources stay disabled unless an HTTP
// client is supplied.
func NewLoader(options ...LoaderOption) *Loader {
	l := &Loader{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(l)
	}
	return l
}

// Load reads and decodes src.
func (l *Loader) Load(ctx context.Context, src Source) (Document, error) {
	if src == nil {
		return Document{}, fmt.Errorf("%w: source is nil", ErrUnsupportedSource)
	}
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}

	switch src.Kind() {
	case SourceKindFile:
		f, err := os.Open(src.Location())
		if err != nil {
			return Document{}, fmt.Errorf("config: open %s: %w", src.Location(), err)
		}
		defer f.Close()
		return Decode(f)
	case SourceKindFS:
		if l.files == nil {
			return Document{}, fmt.Errorf("%w: no fs.FS configured for %s", ErrUnsupportedSource, src.Location())
		}
		f, err := l.files.Open(src.Location())
		if err != nil {
			return Document{}, fmt.Errorf("config: open %s: %w", src.Location(), err)
		}
		defer f.Close()
		return Decode(f)
	case SourceKindURL:
		return l.loadURL(ctx, src.Location())
	default:
		return Document{}, fmt.Errorf("%w: kind %q", ErrUnsupportedSource, src.Kind())
	}
}

func (l *Loader) loadURL(ctx context.Context, location string) (Document, error) {
	if l.client == nil {
		return Document{}, fmt.Errorf("%w: HTTP sources need a client", ErrUnsupportedSource)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return Document{}, fmt.Errorf("config: build request: %w", err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return Document{}, fmt.Errorf("config: fetch %s: %w", location, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return Document{}, fmt.Errorf("config: fetch %s: unexpected status %s", location, resp.Status)
	}
	return Decode(resp.Body)
}
