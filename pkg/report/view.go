package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/artem13815/smarthire-admin/pkg/application"
	"github.com/artem13815/smarthire-admin/pkg/feedback"
)

const placeholder = "—"

// Stat is one labelled figure of the report header.
type Stat struct {
	Label string
	Value string
}

// TierRow is a rendered scorecard tier.
type TierRow struct {
	Name    string
	Asked   int
	Correct int
}

// HistoryRow is a rendered Q&A entry; empty fields are omitted by the template.
type HistoryRow struct {
	Question   string
	Answer     string
	Difficulty string
	PCorrect   string
	Verdict    string
	Correct    bool
}

// View is everything the report dialog renders for one application.
// Optional sections are nil when the report does not carry them.
type View struct {
	Application  application.Application
	Found        bool
	Stats        []Stat
	Summary      string
	Strengths    []string
	Improvements []string
	NextSteps    []string

	HasScorecard    bool
	Tiers           []TierRow
	SectionAccuracy string

	History []HistoryRow
}

// BuildView merges the latest report with the application row. When the
// report lacks structured strengths or improvements, bullets are extracted
// from the row's legacy free-text feedback instead.
func BuildView(app application.Application, rep *InterviewReport) View {
	v := View{Application: app}
	if rep == nil {
		return v
	}
	v.Found = true

	suitability := placeholder
	if rep.Suitability != nil {
		suitability = *rep.Suitability
	}
	if rep.IsSuitable {
		suitability += " ✅"
	}
	v.Stats = []Stat{
		{Label: "Status", Value: rep.Status},
		{Label: "Score", Value: strconv.FormatFloat(rep.Score, 'f', -1, 64)},
		{Label: "Accuracy", Value: percent(rep.AccuracyPct)},
		{Label: "Suitability", Value: suitability},
	}

	v.Summary = firstNonEmpty(deref(rep.Summary), app.Feedback, placeholder)

	v.Strengths = rep.Strengths
	if len(v.Strengths) == 0 {
		v.Strengths = feedback.Extract(app.Feedback, feedback.Strength)
	}
	v.Improvements = rep.AreasToImprove
	if len(v.Improvements) == 0 {
		v.Improvements = feedback.Extract(app.Feedback, feedback.Improvement)
	}
	if len(rep.NextSteps) > 0 {
		v.NextSteps = rep.NextSteps
	}

	if sc := rep.Scorecard; sc != nil {
		v.HasScorecard = true
		for _, t := range []struct {
			name string
			tier *Tier
		}{{"easy", sc.Easy}, {"medium", sc.Medium}, {"hard", sc.Hard}} {
			if t.tier != nil {
				v.Tiers = append(v.Tiers, TierRow{Name: t.name, Asked: t.tier.Asked, Correct: t.tier.Correct})
			}
		}
		if sc.AccuracyPct != nil {
			v.SectionAccuracy = percent(*sc.AccuracyPct)
		}
	}

	for _, h := range rep.History {
		row := HistoryRow{Question: h.Question, Answer: h.Answer, Difficulty: h.Difficulty}
		if h.PCorrect != nil {
			row.PCorrect = percent(*h.PCorrect * 100)
		}
		if h.IsCorrect != nil {
			row.Correct = *h.IsCorrect
			row.Verdict = "Incorrect"
			if row.Correct {
				row.Verdict = "Correct"
			}
		}
		v.History = append(v.History, row)
	}
	return v
}

func percent(v float64) string { return fmt.Sprintf("%d%%", int64(math.Round(v))) }

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
