package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/Flyrell/coursecal/internal/prefs"
)

// Action names a UI request.
type Action string

const (
	ActionExtractEvents    Action = "extractEvents"
	ActionApplyPreferences Action = "applyPreferences"
)

// ErrUnknownAction is returned for requests with an unsupported Action.
var ErrUnknownAction = errors.New("unknown action")

// Request is one message from the UI surface. Reply, when set, receives
// exactly one Response.
type Request struct {
	Action   Action
	Snapshot Snapshot
	Prefs    *prefs.Prefs
	Reply    chan<- Response
}

// Response answers a Request. Err is nil on success.
type Response struct {
	Export      *Export
	Annotations []CourseAnnotation
	Err         error
}

// Status renders the user-facing status line for a response.
func (r Response) Status() string {
	switch {
	case errors.Is(r.Err, ErrNoEventsFound):
		return "No registered courses found on the page"
	case r.Err != nil:
		return fmt.Sprintf("Error: %v", r.Err)
	case r.Export != nil && len(r.Export.Events) == 0:
		return "No events found"
	case r.Export != nil:
		return fmt.Sprintf("Found %d events! Generating ICS file...", len(r.Export.Events))
	default:
		return fmt.Sprintf("Preferences applied to %d courses", len(r.Annotations))
	}
}

// Handle processes one request synchronously.
func (s *Service) Handle(req Request) Response {
	switch req.Action {
	case ActionExtractEvents:
		if req.Snapshot == nil {
			return Response{Err: errors.New("no page to extract from")}
		}
		exp, err := s.ExtractEvents(req.Snapshot)
		return Response{Export: exp, Err: err}

	case ActionApplyPreferences:
		p := s.Prefs()
		if req.Prefs != nil {
			p = *req.Prefs
		}
		if req.Snapshot != nil {
			if _, err := s.ContentChanged(req.Snapshot); err != nil {
				return Response{Err: err}
			}
		}
		annotations, err := s.ApplyPreferences(p)
		return Response{Annotations: annotations, Err: err}
	}

	return Response{Err: fmt.Errorf("%w %q", ErrUnknownAction, req.Action)}
}

// Serve handles requests one at a time until ctx is done or requests is
// closed.
func (s *Service) Serve(ctx context.Context, requests <-chan Request) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case req, ok := <-requests:
			if !ok {
				return nil
			}
			resp := s.Handle(req)
			if req.Reply == nil {
				continue
			}
			select {
			case req.Reply <- resp:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}
