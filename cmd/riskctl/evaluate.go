package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"docrisk/internal/config"
	"docrisk/internal/model"
	"docrisk/internal/risk"
)

var errThresholdExceeded = errors.New("risk level above threshold")

// fixture is the YAML input of "riskctl evaluate".
type fixture struct {
	Today        string               `yaml:"today"`
	Policy       string               `yaml:"policy"`
	Requirements []fixtureRequirement `yaml:"requirements"`
	Uploads      []fixtureUpload      `yaml:"uploads"`
}

type fixtureRequirement struct {
	ID             string  `yaml:"id"`
	DocumentTypeID string  `yaml:"document_type_id"`
	DocumentName   string  `yaml:"document_name"`
	Description    *string `yaml:"description"`
	Required       *bool   `yaml:"required"`
}

type fixtureUpload struct {
	ID             string     `yaml:"id"`
	DocumentTypeID string     `yaml:"document_type_id"`
	Filename       string     `yaml:"filename"`
	UploadedAt     time.Time  `yaml:"uploaded_at"`
	ExpiresAt      *time.Time `yaml:"expires_at"`
}

type evaluateOptions struct {
	file   string
	today  string
	policy string
	json   bool
	failOn string
}

func newEvaluateCmd() *cobra.Command {
	var opts evaluateOptions
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate a checklist fixture",
		Long: `Read requirements and uploads from a YAML fixture and print each
requirement's status with the client's score and levels.

Examples:
  riskctl evaluate -f client.yaml
  riskctl evaluate -f client.yaml --today 2026-03-10 --policy latest_upload
  riskctl evaluate -f client.yaml --json
  riskctl evaluate -f client.yaml --fail-on medium

Exit Codes:
  0 = evaluated (and at or below --fail-on)
  1 = effective level above --fail-on
  2 = error`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEvaluate(cmd.OutOrStdout(), opts)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.file, "file", "f", "", "fixture file (YAML), - for stdin")
	f.StringVar(&opts.today, "today", "", "evaluation date YYYY-MM-DD (default: fixture today, else now)")
	f.StringVar(&opts.policy, "policy", "", "best upload policy: farthest_expiry or latest_upload")
	f.BoolVar(&opts.json, "json", false, "print the report as JSON")
	f.StringVar(&opts.failOn, "fail-on", "", "exit 1 when the effective level reaches LOW, MEDIUM or HIGH")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func runEvaluate(out io.Writer, opts evaluateOptions) error {
	fx, err := readFixture(opts.file)
	if err != nil {
		return err
	}

	policyName := fx.Policy
	if opts.policy != "" {
		policyName = opts.policy
	}
	if policyName == "" {
		policyName = string(risk.PolicyFarthestExpiry)
	}
	policy, err := risk.ParsePolicy(policyName)
	if err != nil {
		return err
	}

	today, err := resolveToday(opts.today, fx.Today)
	if err != nil {
		return err
	}

	var threshold risk.Level
	if opts.failOn != "" {
		threshold = risk.Level(strings.ToUpper(opts.failOn))
		switch threshold {
		case risk.LevelLow, risk.LevelMedium, risk.LevelHigh:
		default:
			return fmt.Errorf("invalid --fail-on %q", opts.failOn)
		}
	}

	reqs, uploads := fx.toModel()
	report := risk.NewPass(today, policy).Evaluate(reqs, uploads)

	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else if err := printReport(out, report, policy); err != nil {
		return err
	}

	if threshold != "" && report.Summary.EffectiveLevel.Weight() >= threshold.Weight() {
		return errThresholdExceeded
	}
	return nil
}

func readFixture(path string) (*fixture, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	var fx fixture
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	for i, u := range fx.Uploads {
		if u.DocumentTypeID == "" {
			return nil, fmt.Errorf("upload %d: document_type_id is required", i)
		}
	}
	return &fx, nil
}

// resolveToday prefers the flag, then the fixture, then the wall clock in APP_TIMEZONE.
func resolveToday(flag, fromFixture string) (time.Time, error) {
	for _, s := range []string{flag, fromFixture} {
		if s == "" {
			continue
		}
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
		}
		return t, nil
	}
	loc, err := config.Load().Location()
	if err != nil {
		return time.Time{}, err
	}
	return time.Now().In(loc), nil
}

func (fx *fixture) toModel() ([]model.Requirement, []model.Upload) {
	reqs := make([]model.Requirement, len(fx.Requirements))
	for i, r := range fx.Requirements {
		required := true
		if r.Required != nil {
			required = *r.Required
		}
		id := r.ID
		if id == "" {
			id = fmt.Sprintf("req-%d", i+1)
		}
		reqs[i] = model.Requirement{ID: id, DocumentTypeID: r.DocumentTypeID, Required: required}
		if r.DocumentTypeID != "" {
			name := r.DocumentName
			if name == "" {
				name = r.DocumentTypeID
			}
			reqs[i].DocumentType = &model.DocumentType{ID: r.DocumentTypeID, Name: name, Description: r.Description}
		}
	}
	uploads := make([]model.Upload, len(fx.Uploads))
	for i, u := range fx.Uploads {
		uploads[i] = model.Upload{
			ID:             u.ID,
			DocumentTypeID: u.DocumentTypeID,
			Filename:       u.Filename,
			UploadedAt:     u.UploadedAt,
			ExpiresAt:      u.ExpiresAt,
		}
	}
	return reqs, uploads
}

func printReport(out io.Writer, report risk.Report, policy risk.Policy) error {
	s := report.Summary
	fmt.Fprintf(out, "Evaluated on %s (policy %s)\n\n", report.Today.Format("2006-01-02"), policy)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DOCUMENT\tREQUIRED\tSTATUS\tUPLOAD\tDETAIL")
	for _, rs := range report.Requirements {
		name := rs.DocumentName
		if name == "" {
			name = "(not configured)"
		}
		upload := "-"
		if rs.BestUpload != nil {
			upload = rs.BestUpload.ID
			if rs.BestUpload.Filename != "" {
				upload = rs.BestUpload.Filename
			}
		}
		fmt.Fprintf(tw, "%s\t%t\t%s\t%s\t%s\n", name, rs.Required, rs.Status, upload, rs.Message)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nScore %d (%s), effective level %s: %d expired, %d at risk, %d missing\n",
		s.Score, s.ScoreLevel, s.EffectiveLevel, s.ExpiredCount, s.RiskCount, s.MissingCount)
	return nil
}
