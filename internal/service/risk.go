package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"docrisk/internal/metrics"
	"docrisk/internal/model"
	"docrisk/internal/repository"
	"docrisk/internal/risk"
)

const (
	dashboardPageSize = 100
	// MaxCalendarDays bounds the span of a calendar query.
	MaxCalendarDays = 366
)

var tracer = otel.Tracer("docrisk/internal/service")

// ClientReport is the risk detail of one client.
type ClientReport struct {
	Client model.CorporateClient `json:"client"`
	risk.Report
}

// DashboardRow is one client line of the dashboard.
type DashboardRow struct {
	ClientID  string       `json:"client_id"`
	Name      string       `json:"name"`
	Summary   risk.Summary `json:"summary"`
	TopReason *Reason      `json:"top_reason"`
}

// Reason names the most pressing bucket of a client and how many documents are in it.
type Reason struct {
	Status risk.Status `json:"status"`
	Count  int         `json:"count"`
}

// DashboardTotals sums required-document counts across all clients.
type DashboardTotals struct {
	Clients int `json:"clients"`
	Expired int `json:"expired"`
	Risk    int `json:"risk"`
	Missing int `json:"missing"`
}

// Dashboard is the portfolio view: every client ranked by score.
type Dashboard struct {
	EvaluatedOn time.Time       `json:"evaluated_on"`
	Totals      DashboardTotals `json:"totals"`
	Clients     []DashboardRow  `json:"clients"`
}

// CalendarEntry is one upcoming (or past) expiry.
type CalendarEntry struct {
	model.ExpiringUpload
	Status          risk.Status `json:"status"`
	DaysUntilExpiry int         `json:"days_until_expiry"`
}

// Calendar lists expiries in a date window.
type Calendar struct {
	EvaluatedOn time.Time       `json:"evaluated_on"`
	From        time.Time       `json:"from"`
	To          time.Time       `json:"to"`
	Entries     []CalendarEntry `json:"entries"`
}

// RiskService exposes the risk engine over stored data.
type RiskService interface {
	ClientReport(ctx context.Context, clientID string) (*ClientReport, error)
	Dashboard(ctx context.Context) (*Dashboard, error)
	// Calendar returns uploads expiring in [from, to], classified against today.
	Calendar(ctx context.Context, from, to time.Time) (*Calendar, error)
	// Evaluate runs the engine on caller-supplied data without touching storage.
	Evaluate(ctx context.Context, reqs []model.Requirement, uploads []model.Upload) risk.Report
	// Today is the engine's current calendar date.
	Today() time.Time
}

type riskService struct {
	engine  *risk.Engine
	clients repository.ClientRepository
	uploads repository.UploadRepository
	eval    *evaluator
}

// NewRiskService constructs a new RiskService.
func NewRiskService(
	engine *risk.Engine,
	clients repository.ClientRepository,
	reqs repository.RequirementRepository,
	uploads repository.UploadRepository,
	rec metrics.Recorder,
	concurrency int,
) RiskService {
	return &riskService{
		engine:  engine,
		clients: clients,
		uploads: uploads,
		eval:    newEvaluator(reqs, uploads, rec, concurrency),
	}
}

func (s *riskService) Today() time.Time {
	return s.engine.Begin().Today()
}

func (s *riskService) ClientReport(ctx context.Context, clientID string) (*ClientReport, error) {
	ctx, span := tracer.Start(ctx, "risk.ClientReport")
	defer span.End()
	span.SetAttributes(attribute.String("client.id", clientID))

	if clientID == "" {
		return nil, ErrIDRequired
	}
	c, err := s.clients.FindByID(ctx, clientID)
	if err != nil {
		return nil, notFound(err, ErrClientNotFound)
	}
	report, err := s.eval.evaluate(ctx, s.engine.Begin(), clientID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("risk.score", report.Summary.Score),
		attribute.String("risk.level", string(report.Summary.EffectiveLevel)),
	)
	return &ClientReport{Client: *c, Report: report}, nil
}

func (s *riskService) Dashboard(ctx context.Context) (*Dashboard, error) {
	ctx, span := tracer.Start(ctx, "risk.Dashboard")
	defer span.End()

	pass := s.engine.Begin()
	var clients []model.CorporateClient
	for offset := 0; ; offset += dashboardPageSize {
		page, err := s.clients.List(ctx, repository.PageQuery{Limit: dashboardPageSize, Offset: offset})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, fmt.Errorf("list clients: %w", err)
		}
		clients = append(clients, page.Items...)
		if len(page.Items) < dashboardPageSize || len(clients) >= page.Total {
			break
		}
	}

	reports, err := s.eval.evaluateAll(ctx, pass, clients)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	d := &Dashboard{
		EvaluatedOn: pass.Today(),
		Clients:     make([]DashboardRow, len(clients)),
	}
	for i, c := range clients {
		sum := reports[i].Summary
		row := DashboardRow{ClientID: c.ID, Name: c.Name, Summary: sum}
		if st, n := sum.TopReason(); n > 0 {
			row.TopReason = &Reason{Status: st, Count: n}
		}
		d.Clients[i] = row
		d.Totals.Expired += sum.ExpiredCount
		d.Totals.Risk += sum.RiskCount
		d.Totals.Missing += sum.MissingCount
	}
	d.Totals.Clients = len(clients)
	sort.SliceStable(d.Clients, func(i, j int) bool {
		a, b := d.Clients[i], d.Clients[j]
		if a.Summary.Score != b.Summary.Score {
			return a.Summary.Score > b.Summary.Score
		}
		return a.Name < b.Name
	})
	span.SetAttributes(attribute.Int("dashboard.clients", len(clients)))
	return d, nil
}

func (s *riskService) Calendar(ctx context.Context, from, to time.Time) (*Calendar, error) {
	ctx, span := tracer.Start(ctx, "risk.Calendar")
	defer span.End()

	if to.Before(from) {
		return nil, invalid("to must not be before from")
	}
	if to.Sub(from) > MaxCalendarDays*24*time.Hour {
		return nil, invalid("window must not exceed %d days", MaxCalendarDays)
	}
	pass := s.engine.Begin()
	rows, err := s.uploads.ListExpiringBetween(ctx, from, to)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("list expiring uploads: %w", err)
	}
	cal := &Calendar{
		EvaluatedOn: pass.Today(),
		From:        from,
		To:          to,
		Entries:     make([]CalendarEntry, 0, len(rows)),
	}
	for _, row := range rows {
		if row.ExpiresAt == nil {
			continue
		}
		cal.Entries = append(cal.Entries, CalendarEntry{
			ExpiringUpload:  row,
			Status:          pass.Classify(row.ExpiresAt),
			DaysUntilExpiry: risk.DaysUntil(*row.ExpiresAt, pass.Today()),
		})
	}
	span.SetAttributes(attribute.Int("calendar.entries", len(cal.Entries)))
	return cal, nil
}

func (s *riskService) Evaluate(ctx context.Context, reqs []model.Requirement, uploads []model.Upload) risk.Report {
	_, span := tracer.Start(ctx, "risk.Evaluate")
	defer span.End()
	report := s.engine.Evaluate(reqs, uploads)
	span.SetAttributes(attribute.Int("risk.score", report.Summary.Score))
	return report
}
