package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/Flyrell/coursecal/internal/calendar"
	"github.com/Flyrell/coursecal/internal/conflict"
	"github.com/Flyrell/coursecal/internal/extract"
	"github.com/Flyrell/coursecal/internal/prefs"
	"github.com/Flyrell/coursecal/internal/quarter"
	"github.com/Flyrell/coursecal/internal/ratings"
	"github.com/Flyrell/coursecal/internal/schedule"
	"go.uber.org/zap"
)

// ErrNoEventsFound is returned when a page yields no exportable events.
// It is a status, not a failure.
var ErrNoEventsFound = errors.New("no registered courses found on the page")

// Snapshot is one captured registration page.
type Snapshot interface {
	extract.MeetingTextSource
	TermLabel() string
}

// CourseAnnotation is the derived display state of one course.
type CourseAnnotation struct {
	conflict.Annotation
	Course schedule.Course
	Rating ratings.Match
}

// Export is the outcome of an extraction pass.
type Export struct {
	Window  quarter.Window
	Courses []schedule.Course
	Events  []calendar.Event
	ICS     string
}

// Deps are the collaborators of a Service.
type Deps struct {
	Config   *Config
	Prefs    *prefs.Prefs
	Quarters *quarter.Calendar
	Loader   *ratings.Loader
	Logger   *zap.Logger
}

// Service holds the application context: preferences, rating data, the
// term table and the committed schedule. All UI actions go through it.
type Service struct {
	cfg      *Config
	quarters *quarter.Calendar
	loader   *ratings.Loader
	logger   *zap.Logger

	refMu     sync.Mutex
	refLoaded bool
	index     *ratings.Index

	mu          sync.Mutex
	prefs       prefs.Prefs
	committed   []schedule.Entry
	pinned      bool
	courses     []schedule.Course
	annotations []CourseAnnotation

	refreshing atomic.Bool
}

// NewService wires a Service. Missing dependencies get defaults.
func NewService(d Deps) *Service {
	s := &Service{
		cfg:      d.Config,
		quarters: d.Quarters,
		loader:   d.Loader,
		logger:   d.Logger,
		index:    ratings.Fallback(),
	}
	if s.cfg == nil {
		s.cfg = &Config{}
	}
	if s.quarters == nil {
		s.quarters = quarter.Default()
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.loader == nil {
		s.loader = ratings.NewLoader(s.logger)
	}
	if d.Prefs != nil {
		s.prefs = *d.Prefs
	} else {
		s.prefs = prefs.Defaults()
	}
	return s
}

// Prefs returns a copy of the active preferences.
func (s *Service) Prefs() prefs.Prefs {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs
}

// Quarters returns the term table in use.
func (s *Service) Quarters() *quarter.Calendar {
	return s.quarters
}

// LoadReference fetches rating data once. Later calls are no-ops until
// Reload. On failure the fallback dataset stays in place and the error,
// wrapping ratings.ErrMissingReferenceData, is logged and returned.
func (s *Service) LoadReference(ctx context.Context) error {
	s.refMu.Lock()
	defer s.refMu.Unlock()

	if s.refLoaded {
		return nil
	}
	s.refLoaded = true

	idx, err := s.loader.Load(ctx, s.cfg.RatingsSource())
	s.index = idx
	switch {
	case errors.Is(err, ratings.ErrNotConfigured):
		s.logger.Debug("no rating data configured, using built-in dataset")
	case err != nil:
		s.logger.Warn("rating data unavailable, using built-in dataset", zap.Error(err))
	default:
		s.logger.Debug("rating data loaded", zap.Int("professors", idx.Len()))
	}
	return err
}

// Reload discards loaded rating data and fetches it again.
func (s *Service) Reload(ctx context.Context) error {
	s.refMu.Lock()
	s.refLoaded = false
	s.refMu.Unlock()
	return s.LoadReference(ctx)
}

// Ratings returns the current rating index.
func (s *Service) Ratings() *ratings.Index {
	s.refMu.Lock()
	defer s.refMu.Unlock()
	return s.index
}

// PinSchedule fixes the committed schedule to the registered courses of
// src instead of deriving it from each refreshed page.
func (s *Service) PinSchedule(src extract.MeetingTextSource) error {
	x, err := s.extractor()
	if err != nil {
		return err
	}
	courses, err := x.Courses(src, true)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.committed = schedule.Entries(courses)
	s.pinned = true
	return nil
}

// Committed returns the committed schedule.
func (s *Service) Committed() []schedule.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]schedule.Entry, len(s.committed))
	copy(out, s.committed)
	return out
}

// ExtractEvents runs one extraction pass over snap and renders the
// calendar. It returns ErrNoEventsFound when nothing qualifies and an
// *extract.ExtractionError when the page cannot be scanned.
func (s *Service) ExtractEvents(snap Snapshot) (*Export, error) {
	p := s.Prefs()

	x, err := s.extractor()
	if err != nil {
		return nil, err
	}
	courses, err := x.Courses(snap, p.RegisteredOnly)
	if err != nil {
		return nil, err
	}

	label := snap.TermLabel()
	window := s.quarters.Resolve(label)
	s.logger.Debug("resolved quarter",
		zap.String("label", label),
		zap.String("window", window.Label))

	events := extract.Events(courses, window)
	if len(events) == 0 {
		return nil, ErrNoEventsFound
	}

	mode, err := p.Mode()
	if err != nil {
		return nil, err
	}
	b := calendar.NewBuilder()
	b.Timezone = p.Timezone
	b.Mode = mode

	ics, err := b.Build(events)
	if err != nil {
		return nil, fmt.Errorf("building calendar: %w", err)
	}

	return &Export{Window: window, Courses: courses, Events: events, ICS: ics}, nil
}

// ContentChanged re-scans snap and recomputes annotations. At most one pass
// runs at a time: a call arriving while a pass is in flight is dropped and
// reports false.
func (s *Service) ContentChanged(snap Snapshot) (bool, error) {
	if !s.refreshing.CompareAndSwap(false, true) {
		s.logger.Debug("refresh already running, dropping change notification")
		return false, nil
	}
	defer s.refreshing.Store(false)

	x, err := s.extractor()
	if err != nil {
		return true, err
	}
	courses, err := x.Courses(snap, false)
	if err != nil {
		return true, err
	}

	s.mu.Lock()
	s.courses = courses
	if !s.pinned {
		var registered []schedule.Course
		for _, c := range courses {
			if c.Registered {
				registered = append(registered, c)
			}
		}
		s.committed = schedule.Entries(registered)
	}
	s.mu.Unlock()

	_, err = s.reannotate()
	return true, err
}

// ApplyPreferences replaces the active preferences and re-classifies the
// last scanned page.
func (s *Service) ApplyPreferences(p prefs.Prefs) ([]CourseAnnotation, error) {
	if _, err := p.ConflictOptions(); err != nil {
		return nil, err
	}
	if _, err := p.Mode(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.prefs = p
	s.mu.Unlock()

	return s.reannotate()
}

// Annotations returns the result of the last refresh.
func (s *Service) Annotations() []CourseAnnotation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]CourseAnnotation, len(s.annotations))
	copy(out, s.annotations)
	return out
}

func (s *Service) reannotate() ([]CourseAnnotation, error) {
	s.mu.Lock()
	p := s.prefs
	courses := s.courses
	committed := s.committed
	s.mu.Unlock()

	opts, err := p.ConflictOptions()
	if err != nil {
		return nil, err
	}

	var index *ratings.Index
	if p.ShowRatings {
		index = s.Ratings()
	}

	out := make([]CourseAnnotation, 0, len(courses))
	for _, c := range courses {
		a := CourseAnnotation{
			Annotation: conflict.Classify(c, committed, opts),
			Course:     c,
		}
		if index != nil {
			a.Rating = index.Lookup(c.Instructor)
		}
		out = append(out, a)
	}

	s.mu.Lock()
	s.annotations = out
	s.mu.Unlock()
	return out, nil
}

func (s *Service) extractor() (*extract.Extractor, error) {
	p := s.Prefs()
	loc, err := schedule.LoadLocation(p.Timezone)
	if err != nil {
		return nil, err
	}
	return &extract.Extractor{
		DefaultType: p.DefaultMeetingType,
		Location:    loc,
		Logger:      s.logger,
	}, nil
}
