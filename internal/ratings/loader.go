package ratings

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ErrMissingReferenceData is returned together with the fallback Index when
// rating data could not be loaded.
var ErrMissingReferenceData = errors.New("missing reference data")

// ErrNotConfigured marks a source with no location set.
var ErrNotConfigured = errors.New("no location configured")

const maxBodySize = 32 << 20

// Source locates the two reference documents. Each is a file path or an
// http(s) URL.
type Source struct {
	Professors string
	Mappings   string
}

// Configured reports whether both locations are set.
func (s Source) Configured() bool {
	return s.Professors != "" && s.Mappings != ""
}

// Loader fetches reference data once per call.
type Loader struct {
	Client *http.Client
	Logger *zap.Logger
}

// NewLoader returns a Loader with a bounded HTTP client.
func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		Client: &http.Client{Timeout: 15 * time.Second},
		Logger: logger,
	}
}

// Load reads both documents. On any failure it returns the fallback Index
// and an error wrapping ErrMissingReferenceData, so callers can warn and
// carry on.
func (l *Loader) Load(ctx context.Context, src Source) (*Index, error) {
	profData, err := l.read(ctx, src.Professors)
	if err != nil {
		return Fallback(), fmt.Errorf("%w: professors: %w", ErrMissingReferenceData, err)
	}
	professors, err := ParseProfessors(profData)
	if err != nil {
		return Fallback(), fmt.Errorf("%w: %w", ErrMissingReferenceData, err)
	}

	mapData, err := l.read(ctx, src.Mappings)
	if err != nil {
		return Fallback(), fmt.Errorf("%w: mappings: %w", ErrMissingReferenceData, err)
	}
	mappings, err := ParseMappings(mapData)
	if err != nil {
		return Fallback(), fmt.Errorf("%w: %w", ErrMissingReferenceData, err)
	}

	l.logger().Debug("loaded reference data",
		zap.Int("professors", len(professors)),
		zap.Int("mappings", len(mappings)))

	return NewIndex(professors, mappings), nil
}

func (l *Loader) read(ctx context.Context, location string) ([]byte, error) {
	location = strings.TrimSpace(location)
	switch {
	case location == "":
		return nil, ErrNotConfigured
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return l.fetch(ctx, location)
	default:
		return os.ReadFile(location)
	}
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}

	l.logger().Debug("fetching reference data", zap.String("url", url))
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
}

func (l *Loader) logger() *zap.Logger {
	if l.Logger == nil {
		return zap.NewNop()
	}
	return l.Logger
}
