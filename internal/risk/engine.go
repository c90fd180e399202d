package risk

import (
	"fmt"
	"time"

	"docrisk/internal/model"
)

// Policy selects which upload represents a document type when several exist.
type Policy string

const (
	// PolicyFarthestExpiry picks the upload whose expiry lies farthest in the future.
	PolicyFarthestExpiry Policy = "farthest_expiry"
	// PolicyLatestUpload picks the most recently uploaded file.
	PolicyLatestUpload Policy = "latest_upload"
)

// ParsePolicy validates a policy name. An empty name selects PolicyFarthestExpiry.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case "", PolicyFarthestExpiry:
		return PolicyFarthestExpiry, nil
	case PolicyLatestUpload:
		return PolicyLatestUpload, nil
	default:
		return "", fmt.Errorf("unknown best upload policy %q", s)
	}
}

// prefers reports whether candidate should replace best.
// Ties keep best, so the first-encountered upload wins.
func (p Policy) prefers(candidate, best *model.Upload) bool {
	if p == PolicyLatestUpload {
		return candidate.UploadedAt.After(best.UploadedAt)
	}
	if candidate.ExpiresAt == nil {
		return false
	}
	return best.ExpiresAt == nil || candidate.ExpiresAt.After(*best.ExpiresAt)
}

// Engine evaluates client documents. It is safe for concurrent use; it holds
// no mutable state.
type Engine struct {
	policy Policy
	loc    *time.Location
	now    func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithPolicy sets the best-upload policy.
func WithPolicy(p Policy) Option {
	return func(e *Engine) { e.policy = p }
}

// WithLocation sets the time zone in which "today" is determined.
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		if loc != nil {
			e.loc = loc
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// NewEngine returns an Engine using PolicyFarthestExpiry, the local time zone
// and the wall clock unless overridden.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		policy: PolicyFarthestExpiry,
		loc:    time.Local,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.policy == "" {
		e.policy = PolicyFarthestExpiry
	}
	return e
}

// Policy returns the configured best-upload policy.
func (e *Engine) Policy() Policy {
	return e.policy
}

// Begin samples the clock once and returns a Pass bound to that date.
func (e *Engine) Begin() *Pass {
	return NewPass(e.now().In(e.loc), e.policy)
}

// Evaluate runs a single Pass over one client's requirements and uploads.
func (e *Engine) Evaluate(reqs []model.Requirement, uploads []model.Upload) Report {
	return e.Begin().Evaluate(reqs, uploads)
}

// Pass is one evaluation run. All documents judged by the same Pass are
// compared against the same date, even if the run crosses midnight.
type Pass struct {
	today  time.Time
	policy Policy
}

// NewPass returns a Pass that treats the calendar date of today as the current day.
func NewPass(today time.Time, policy Policy) *Pass {
	if policy == "" {
		policy = PolicyFarthestExpiry
	}
	return &Pass{today: dateOf(today), policy: policy}
}

// Today is the date the Pass judges against (midnight UTC of that calendar day).
func (p *Pass) Today() time.Time {
	return p.today
}

// Classify is Classify bound to the Pass date.
func (p *Pass) Classify(expiresAt *time.Time) Status {
	return Classify(expiresAt, p.today)
}

// Resolve computes the status of one requirement from the client's uploads.
// Uploads for other document types are ignored. It always returns a status.
func (p *Pass) Resolve(req model.Requirement, uploads []model.Upload) RequirementStatus {
	rs := RequirementStatus{
		RequirementID:  req.ID,
		DocumentTypeID: req.DocumentTypeID,
		Required:       req.Required,
	}
	if req.DocumentType != nil {
		rs.DocumentName = req.DocumentType.Name
		rs.Description = req.DocumentType.Description
	}

	if req.DocumentTypeID == "" {
		rs.Status = StatusMissing
		rs.Reason = ReasonNotConfigured
		rs.Message = rs.message()
		return rs
	}

	var best *model.Upload
	for i := range uploads {
		u := &uploads[i]
		if u.DocumentTypeID != req.DocumentTypeID {
			continue
		}
		if best == nil || p.policy.prefers(u, best) {
			best = u
		}
	}

	if best == nil {
		rs.Status = StatusMissing
		rs.Reason = ReasonNoUpload
		rs.Message = rs.message()
		return rs
	}

	picked := *best
	rs.BestUpload = &picked
	if picked.ExpiresAt == nil {
		rs.Status = StatusExpired
		rs.Reason = ReasonNoExpiry
	} else {
		days := DaysUntil(*picked.ExpiresAt, p.today)
		rs.DaysUntilExpiry = &days
		rs.Status = classifyDays(days)
	}
	rs.Message = rs.message()
	return rs
}

// Score aggregates the required requirements of one client.
// Non-required requirements contribute nothing.
func (p *Pass) Score(reqs []model.Requirement, uploads []model.Upload) Summary {
	var s Summary
	for _, req := range reqs {
		if !req.Required {
			continue
		}
		s.add(p.Resolve(req, uploads).Status)
	}
	return s.finish()
}

// Evaluate resolves every requirement (required or not) and aggregates the
// required ones into the client summary.
func (p *Pass) Evaluate(reqs []model.Requirement, uploads []model.Upload) Report {
	report := Report{
		Today:        p.today,
		Requirements: make([]RequirementStatus, 0, len(reqs)),
	}
	var s Summary
	for _, req := range reqs {
		rs := p.Resolve(req, uploads)
		report.Requirements = append(report.Requirements, rs)
		if req.Required {
			s.add(rs.Status)
		}
	}
	report.Summary = s.finish()
	return report
}

// Report is the full evaluation of one client.
type Report struct {
	Today        time.Time           `json:"evaluated_on"`
	Summary      Summary             `json:"summary"`
	Requirements []RequirementStatus `json:"requirements"`
}
