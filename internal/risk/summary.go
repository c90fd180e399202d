package risk

import (
	"fmt"

	"docrisk/internal/model"
)

// Score weights per non-compliant required document.
const (
	weightExpired = 5
	weightMissing = 3
	weightRisk    = 2
)

// Score thresholds for ScoreLevel.
const (
	highScore   = 9
	mediumScore = 4
)

// Summary is the aggregate risk of one client.
//
// EffectiveLevel is the severity to show anywhere a level is displayed.
// ScoreLevel is derived from the numeric score only and kept for ranking and
// reference; it can disagree with EffectiveLevel (one missing document scores 3,
// which is LOW by score but MEDIUM effectively).
type Summary struct {
	Score          int   `json:"score"`
	ScoreLevel     Level `json:"score_level"`
	EffectiveLevel Level `json:"effective_level"`
	ExpiredCount   int   `json:"expired_count"`
	RiskCount      int   `json:"risk_count"`
	MissingCount   int   `json:"missing_count"`
}

func (s *Summary) add(st Status) {
	switch st {
	case StatusMissing:
		s.MissingCount++
		s.Score += weightMissing
	case StatusExpired:
		s.ExpiredCount++
		s.Score += weightExpired
	case StatusRisk:
		s.RiskCount++
		s.Score += weightRisk
	}
}

func (s Summary) finish() Summary {
	s.ScoreLevel = ScoreLevel(s.Score)
	s.EffectiveLevel = EffectiveLevel(s.ExpiredCount, s.RiskCount, s.MissingCount)
	return s
}

// ScoreLevel maps a numeric score to a level: >=9 HIGH, >=4 MEDIUM, else LOW.
func ScoreLevel(score int) Level {
	switch {
	case score >= highScore:
		return LevelHigh
	case score >= mediumScore:
		return LevelMedium
	default:
		return LevelLow
	}
}

// EffectiveLevel is the count-based severity: any expired document is HIGH,
// any at-risk or missing document is MEDIUM, otherwise LOW.
func EffectiveLevel(expired, atRisk, missing int) Level {
	if expired > 0 {
		return LevelHigh
	}
	if atRisk > 0 || missing > 0 {
		return LevelMedium
	}
	return LevelLow
}

// TopReason names the most pressing bucket of a summary and its count.
// Priority is expired, then missing, then at risk; StatusOK with 0 when clean.
func (s Summary) TopReason() (Status, int) {
	switch {
	case s.ExpiredCount > 0:
		return StatusExpired, s.ExpiredCount
	case s.MissingCount > 0:
		return StatusMissing, s.MissingCount
	case s.RiskCount > 0:
		return StatusRisk, s.RiskCount
	default:
		return StatusOK, 0
	}
}

// Reason qualifies a status.
type Reason string

const (
	ReasonNoUpload      Reason = "no_upload"
	ReasonNotConfigured Reason = "not_configured"
	ReasonNoExpiry      Reason = "no_expiry"
)

// RequirementStatus is the resolved state of one client requirement.
// DaysUntilExpiry is nil when there is no upload or the upload has no expiry.
type RequirementStatus struct {
	RequirementID   string        `json:"requirement_id,omitempty"`
	DocumentTypeID  string        `json:"document_type_id"`
	DocumentName    string        `json:"document_name,omitempty"`
	Description     *string       `json:"description,omitempty"`
	Required        bool          `json:"required"`
	Status          Status        `json:"status"`
	Reason          Reason        `json:"reason,omitempty"`
	BestUpload      *model.Upload `json:"best_upload"`
	DaysUntilExpiry *int          `json:"days_until_expiry"`
	Message         string        `json:"message"`
}

func (rs RequirementStatus) message() string {
	switch rs.Status {
	case StatusMissing:
		if rs.Reason == ReasonNotConfigured {
			return "Document type not configured"
		}
		return "No document uploaded"
	case StatusExpired:
		if rs.DaysUntilExpiry == nil {
			return "No expiry date recorded"
		}
		return fmt.Sprintf("Expired %s ago", plural(-*rs.DaysUntilExpiry, "day"))
	case StatusRisk:
		if *rs.DaysUntilExpiry == 0 {
			return "Expires today"
		}
		return fmt.Sprintf("Expires in %s", plural(*rs.DaysUntilExpiry, "day"))
	default:
		return "Valid until " + rs.BestUpload.ExpiresAt.Format("2006-01-02")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
