package models

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// Topic is a single study item inside a plan module.
//
// Early plan documents stored topics as plain strings. UnmarshalJSON accepts
// both forms so that persisted plans from either era decode to the object
// form; string topics are lifted to {text, completed:false}. The upgrade
// happens on read only, the stored document is untouched until the next
// whole-document write.
type Topic struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

func (t *Topic) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		t.Text = text
		t.Completed = false
		return nil
	}

	type topicObject Topic // avoids recursing into this method
	var obj topicObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*t = Topic(obj)
	return nil
}

// PlanModule is one unit of a generated study plan.
type PlanModule struct {
	Title          string  `json:"title"`
	Topics         []Topic `json:"topics"`
	EstimatedHours float64 `json:"estimated_hours"`
	SuggestedDays  string  `json:"suggested_days"`
}

// PlanDocument is the full study plan stored as one opaque blob in the
// study_plans table. Updates replace the whole document (last writer wins).
type PlanDocument struct {
	Subject string       `json:"subject"`
	Modules []PlanModule `json:"modules"`
}

// Validate checks the document against the expected generated shape.
func (d *PlanDocument) Validate() error {
	if d.Subject == "" {
		return fmt.Errorf("plan document missing subject")
	}
	for i, mod := range d.Modules {
		if mod.Title == "" {
			return fmt.Errorf("plan module %d missing title", i)
		}
	}
	return nil
}

// Progress returns the completion percentage across all topics, rounded to
// the nearest integer. A plan with zero topics reports 0.
func (d *PlanDocument) Progress() int {
	total, done := 0, 0
	for _, mod := range d.Modules {
		for _, topic := range mod.Topics {
			total++
			if topic.Completed {
				done++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(done) / float64(total)))
}

// ToggleTopic flips the completed flag of the topic at the given module and
// topic indices.
func (d *PlanDocument) ToggleTopic(moduleIndex, topicIndex int) error {
	if moduleIndex < 0 || moduleIndex >= len(d.Modules) {
		return fmt.Errorf("module index %d out of range", moduleIndex)
	}
	topics := d.Modules[moduleIndex].Topics
	if topicIndex < 0 || topicIndex >= len(topics) {
		return fmt.Errorf("topic index %d out of range", topicIndex)
	}
	topics[topicIndex].Completed = !topics[topicIndex].Completed
	return nil
}

// StudyPlan defines the study plan model based on the 'study_plans' table.
type StudyPlan struct {
	ID        int64        `json:"id" db:"id"`
	UserID    int64        `json:"user_id" db:"user_id"`
	Subject   string       `json:"subject" db:"subject"`
	Plan      PlanDocument `json:"plan_json" db:"plan_json"`
	CreatedAt time.Time    `json:"created_at" db:"created_at"`
}
