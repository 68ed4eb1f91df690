// Package service orchestrates a badge render: attendee lookup, template
// resolution, document assembly, and the lock/usage bookkeeping that follows
// a successful render.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"lanyard/internal/audit"
	"lanyard/internal/badge/metrics"
	"lanyard/internal/badge/models"
	"lanyard/internal/badge/ports"
	"lanyard/internal/badge/resolver"
	"lanyard/internal/issued"
	"lanyard/internal/render"
	"lanyard/internal/render/assets"
	"lanyard/internal/render/placeholder"
	id "lanyard/pkg/domain"
	dErrors "lanyard/pkg/domain-errors"
	"lanyard/pkg/platform/sentinel"
)

// Render outcomes recorded in metrics.
const (
	outcomeRendered     = "rendered"
	outcomeRedirected   = "redirected"
	outcomeNotFound     = "not_found"
	outcomeIneligible   = "ineligible"
	outcomeUnconfigured = "unconfigured"
	outcomeFailed       = "failed"
)

// RenderRequest identifies the attendee to render for. Identifier is a
// secure check-in token, or a registration number when EventID is present to
// scope the fallback lookup.
type RenderRequest struct {
	Identifier string
	EventID    *id.EventID
}

// RenderResult is either a finished document or a redirect to a previously
// stored copy. Exactly one of PDF and RedirectURL is set.
type RenderResult struct {
	PDF      []byte
	Filename string

	// OmittedElements lists visuals dropped by soft asset failures.
	OmittedElements []string

	// RedirectURL points at a trusted stored copy of an earlier render.
	RedirectURL string
}

// Service wires the registry ports, the document assembler, and the issued
// copy store into the single badge render operation.
type Service struct {
	attendees ports.AttendeeStore
	events    ports.EventStore
	templates ports.TemplateStore
	metadata  ports.RenderMetadataStore
	copies    issued.Store

	assembler *render.Assembler
	audit     *audit.Publisher
	metrics   *metrics.Metrics
	logger    *slog.Logger

	verifyBaseURL      string
	trustedStorageHost string
}

// Config carries the service's collaborators. Copies, Audit, and Metrics are
// optional; a nil value disables that concern.
type Config struct {
	Attendees ports.AttendeeStore
	Events    ports.EventStore
	Templates ports.TemplateStore
	Metadata  ports.RenderMetadataStore
	Copies    issued.Store

	Assembler *render.Assembler
	Audit     *audit.Publisher
	Metrics   *metrics.Metrics
	Logger    *slog.Logger

	VerifyBaseURL      string
	TrustedStorageHost string
}

func New(cfg Config) *Service {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		attendees:          cfg.Attendees,
		events:             cfg.Events,
		templates:          cfg.Templates,
		metadata:           cfg.Metadata,
		copies:             cfg.Copies,
		assembler:          cfg.Assembler,
		audit:              cfg.Audit,
		metrics:            cfg.Metrics,
		logger:             logger,
		verifyBaseURL:      cfg.VerifyBaseURL,
		trustedStorageHost: cfg.TrustedStorageHost,
	}
}

// Render produces a badge document for one attendee, or a redirect to a
// stored copy. Only the final result is returned; asset problems surface in
// OmittedElements, never as errors.
func (s *Service) Render(ctx context.Context, req RenderRequest) (*RenderResult, error) {
	start := time.Now()
	result, outcome, err := s.render(ctx, req)
	s.metrics.IncrementRender(outcome)
	s.metrics.ObserveRenderDuration(time.Since(start))
	return result, err
}

func (s *Service) render(ctx context.Context, req RenderRequest) (*RenderResult, string, error) {
	attendee, err := s.lookupAttendee(ctx, req)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeNotFound) {
			return nil, outcomeNotFound, err
		}
		return nil, outcomeFailed, err
	}

	if !attendee.Status.EligibleForBadge() {
		err := dErrors.Newf(dErrors.CodeBadRequest,
			"badge not available for %s registration", attendee.Status)
		s.emitFailure(ctx, attendee, err)
		return nil, outcomeIneligible, err
	}

	if url, ok := s.storedCopy(ctx, attendee); ok {
		s.audit.Emit(ctx, audit.Event{
			Action:     audit.ActionBadgeRedirected,
			AttendeeID: attendee.ID,
			EventID:    attendee.EventID,
		})
		return &RenderResult{RedirectURL: url}, outcomeRedirected, nil
	}

	event, templates, err := s.gatherRegistry(ctx, attendee.EventID)
	if err != nil {
		s.emitFailure(ctx, attendee, err)
		if dErrors.HasCode(err, dErrors.CodeNotFound) {
			return nil, outcomeNotFound, err
		}
		return nil, outcomeFailed, err
	}

	tpl, err := resolver.Resolve(templates, attendee.TicketTypeID)
	if err != nil {
		s.emitFailure(ctx, attendee, err)
		return nil, outcomeUnconfigured, err
	}

	s.reassignIfChanged(ctx, attendee, tpl)

	out, err := s.assembler.Assemble(ctx, render.Input{
		Template: tpl,
		Tokens: placeholder.Context{
			Attendee:      attendee,
			Event:         event,
			VerifyBaseURL: s.verifyBaseURL,
		},
	})
	if err != nil {
		s.emitFailure(ctx, attendee, err)
		return nil, outcomeFailed, err
	}

	s.recordRender(ctx, tpl)
	s.metrics.AddOmittedAssets(len(out.OmittedElements))

	s.audit.Emit(ctx, audit.Event{
		Action:          audit.ActionBadgeRendered,
		AttendeeID:      attendee.ID,
		EventID:         attendee.EventID,
		TemplateID:      tpl.ID,
		OmittedElements: len(out.OmittedElements),
	})

	return &RenderResult{
		PDF:             out.PDF,
		Filename:        badgeFilename(attendee),
		OmittedElements: out.OmittedElements,
	}, outcomeRendered, nil
}

// lookupAttendee tries the secure token first, then falls back to the
// case-insensitive registration number when an event scope was provided.
func (s *Service) lookupAttendee(ctx context.Context, req RenderRequest) (*models.Attendee, error) {
	attendee, err := s.attendees.FindByToken(ctx, req.Identifier)
	if err == nil {
		return attendee, nil
	}
	if !errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "attendee lookup failed")
	}

	if req.EventID != nil {
		attendee, err = s.attendees.FindByRegistrationNumber(ctx, *req.EventID, req.Identifier)
		if err == nil {
			return attendee, nil
		}
		if !errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "attendee lookup failed")
		}
	}

	return nil, dErrors.New(dErrors.CodeNotFound, "attendee not found")
}

// storedCopy reports a previously issued copy URL when one exists and its
// host matches the trusted storage domain. Anything else renders fresh.
func (s *Service) storedCopy(ctx context.Context, attendee *models.Attendee) (string, bool) {
	if s.copies == nil {
		return "", false
	}
	url, err := s.copies.FindCopyURL(ctx, attendee.ID)
	if err != nil {
		if !errors.Is(err, sentinel.ErrNotFound) {
			s.logger.WarnContext(ctx, "issued copy lookup failed",
				"attendee_id", attendee.ID,
				"error", err,
			)
		}
		return "", false
	}
	if err := assets.CheckRedirectTarget(url, s.trustedStorageHost); err != nil {
		s.logger.WarnContext(ctx, "stored badge copy rejected, rendering fresh",
			"attendee_id", attendee.ID,
			"error", err,
		)
		return "", false
	}
	return url, true
}

// gatherRegistry fetches the event record and template set in parallel; the
// two lookups are independent and share cancellation.
func (s *Service) gatherRegistry(ctx context.Context, eventID id.EventID) (*models.Event, []models.Template, error) {
	g, ctx := errgroup.WithContext(ctx)

	var (
		event     *models.Event
		templates []models.Template
	)

	g.Go(func() error {
		ev, err := s.events.FindByID(ctx, eventID)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return dErrors.New(dErrors.CodeNotFound, "event not found")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "event lookup failed")
		}
		event = ev
		return nil
	})

	g.Go(func() error {
		tpls, err := s.templates.FindByEvent(ctx, eventID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "template lookup failed")
		}
		templates = tpls
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return event, templates, nil
}

// reassignIfChanged overwrites the stored template assignment when
// re-resolution picked a different template. A write failure is logged but
// never blocks the render; the assignment is advisory.
func (s *Service) reassignIfChanged(ctx context.Context, attendee *models.Attendee, tpl *models.Template) {
	prev := attendee.AssignedTemplateID
	if prev != nil && *prev == tpl.ID {
		return
	}

	s.logger.InfoContext(ctx, "template assignment changed",
		"attendee_id", attendee.ID,
		"previous_template_id", templateIDString(prev),
		"template_id", tpl.ID,
	)

	if err := s.metadata.ReassignTemplate(ctx, attendee.ID, tpl.ID); err != nil {
		s.logger.WarnContext(ctx, "template reassignment failed",
			"attendee_id", attendee.ID,
			"template_id", tpl.ID,
			"error", err,
		)
		return
	}

	s.audit.Emit(ctx, audit.Event{
		Action:     audit.ActionTemplateSwitch,
		AttendeeID: attendee.ID,
		EventID:    attendee.EventID,
		TemplateID: tpl.ID,
		Reason:     templateIDString(prev),
	})
}

// recordRender applies the lock/usage transition after a successful
// assembly. The document has already been produced, so a bookkeeping failure
// is logged rather than returned.
func (s *Service) recordRender(ctx context.Context, tpl *models.Template) {
	count, err := s.metadata.RecordRender(ctx, tpl.ID)
	if err != nil {
		s.logger.ErrorContext(ctx, "render bookkeeping failed",
			"template_id", tpl.ID,
			"error", err,
		)
		return
	}
	if count == 1 {
		s.metrics.IncrementLockTransition()
		s.logger.InfoContext(ctx, "template locked by first render",
			"template_id", tpl.ID,
		)
	}
}

func (s *Service) emitFailure(ctx context.Context, attendee *models.Attendee, cause error) {
	s.audit.Emit(ctx, audit.Event{
		Action:     audit.ActionBadgeFailed,
		AttendeeID: attendee.ID,
		EventID:    attendee.EventID,
		Reason:     cause.Error(),
	})
}

func badgeFilename(attendee *models.Attendee) string {
	name := attendee.RegistrationNumber
	if name == "" {
		name = attendee.ID.String()
	}
	return fmt.Sprintf("badge-%s.pdf", name)
}

func templateIDString(tid *id.TemplateID) string {
	if tid == nil {
		return ""
	}
	return tid.String()
}
