// Package wizard holds the in-progress registration draft and drives the
// step transitions of the registration form. A draft lives only in memory,
// keyed by a session id; it is discarded on reset or after its idle TTL.
package wizard

import (
	"time"

	"github.com/google/uuid"

	"github.com/rcnapps/ordinand/internal/common"
	"github.com/rcnapps/ordinand/internal/server/schema"
)

// Step identifies the current position of a draft in the wizard.
type Step string

const (
	StepOne       Step = "step_one"
	StepTwo       Step = "step_two"
	StepThree     Step = "step_three"
	StepSubmitted Step = "submitted"
)

// HistoryEntry is one line of the applicant's spiritual history.
// Ids are local to the draft and never reused for lookup across sessions.
type HistoryEntry struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

// Asset is a file the applicant selected but that has not been stored yet.
// The bytes stay with the draft so a failed submission can be retried
// without re-selecting the file.
type Asset struct {
	FileName    string
	ContentType string
	Data        []byte
}

// Draft is the full in-progress aggregate of one registration attempt.
// All mutation goes through the Store, which serializes access.
type Draft struct {
	ID        string
	Step      Step
	StepOne   *schema.StepOne
	StepTwo   *schema.StepTwo
	StepThree *schema.StepThree
	History   []HistoryEntry
	Passport  *Asset
	Document  *Asset

	touched time.Time
}

func newDraft() *Draft {
	d := &Draft{ID: uuid.NewString(), touched: time.Now()}
	d.reset()
	return d
}

func (d *Draft) reset() {
	d.Step = StepOne
	d.StepOne = nil
	d.StepTwo = nil
	d.StepThree = nil
	d.History = []HistoryEntry{{ID: 1, Text: ""}}
	d.Passport = nil
	d.Document = nil
}

// CommitStepOne validates the payload and, on success, stores it and advances
// the draft to step two. Field errors are returned without advancing.
func (d *Draft) CommitStepOne(p *schema.StepOne) (map[string]string, error) {
	if d.Step != StepOne {
		return nil, common.ErrorWrongStep
	}
	if errs := p.Validate(); len(errs) > 0 {
		return errs, common.ErrorValidation
	}
	d.StepOne = p
	d.Step = StepTwo
	return nil, nil
}

// CommitStepTwo validates the payload and, on success, stores it and advances
// the draft to step three.
func (d *Draft) CommitStepTwo(p *schema.StepTwo) (map[string]string, error) {
	if d.Step != StepTwo {
		return nil, common.ErrorWrongStep
	}
	if errs := p.Validate(); len(errs) > 0 {
		return errs, common.ErrorValidation
	}
	d.StepTwo = p
	d.Step = StepThree
	return nil, nil
}

// CommitStepThree validates the essay payload and stores it. The draft stays
// on step three; submission is a separate, explicit action.
func (d *Draft) CommitStepThree(p *schema.StepThree) (map[string]string, error) {
	if d.Step != StepThree {
		return nil, common.ErrorWrongStep
	}
	if errs := p.Validate(); len(errs) > 0 {
		return errs, common.ErrorValidation
	}
	d.StepThree = p
	return nil, nil
}

// Back moves the draft one step backwards. Committed payloads are kept so
// the applicant can move forward again without retyping.
func (d *Draft) Back() error {
	switch d.Step {
	case StepTwo:
		d.Step = StepOne
	case StepThree:
		d.Step = StepTwo
	default:
		return common.ErrorWrongStep
	}
	return nil
}

// Reset discards everything and returns the draft to a blank step one.
// This is the "register another" action of the success screen.
func (d *Draft) Reset() {
	d.reset()
}

// AddHistory appends a blank entry. The new id is one greater than the
// current count; duplicates after removals are acceptable.
func (d *Draft) AddHistory() HistoryEntry {
	e := HistoryEntry{ID: len(d.History) + 1}
	d.History = append(d.History, e)
	return e
}

// UpdateHistory replaces the text of the first entry matching id.
// Unknown ids are a no-op.
func (d *Draft) UpdateHistory(id int, text string) {
	for i := range d.History {
		if d.History[i].ID == id {
			d.History[i].Text = text
			return
		}
	}
}

// RemoveHistory deletes the first entry matching id. The list never becomes
// empty: while only one entry remains the call is ignored.
func (d *Draft) RemoveHistory(id int) {
	if len(d.History) <= 1 {
		return
	}
	for i := range d.History {
		if d.History[i].ID == id {
			d.History = append(d.History[:i], d.History[i+1:]...)
			return
		}
	}
}

// HistoryTexts projects the entries to their non-blank texts in order.
func (d *Draft) HistoryTexts() []string {
	texts := make([]string, 0, len(d.History))
	for _, e := range d.History {
		if e.Text != "" {
			texts = append(texts, e.Text)
		}
	}
	return texts
}

// SelectPassport attaches a passport photo to the draft.
func (d *Draft) SelectPassport(a *Asset) error {
	if d.Step == StepSubmitted {
		return common.ErrorWrongStep
	}
	d.Passport = a
	return nil
}

// RemovePassport discards the selected passport photo.
func (d *Draft) RemovePassport() { d.Passport = nil }

// SelectDocument attaches the supporting document to the draft.
func (d *Draft) SelectDocument(a *Asset) error {
	if d.Step == StepSubmitted {
		return common.ErrorWrongStep
	}
	d.Document = a
	return nil
}

// RemoveDocument discards the selected supporting document.
func (d *Draft) RemoveDocument() { d.Document = nil }

// Submission is a copy of everything a submission attempt needs, taken under
// the store lock so uploads and the insert can run without holding it.
type Submission struct {
	StepOne   schema.StepOne
	StepTwo   schema.StepTwo
	StepThree schema.StepThree
	History   []string
	Passport  *Asset
	Document  *Asset
}

// BeginSubmission checks that every step has been committed and returns the
// submission bundle. The draft stays on step three until CompleteSubmission;
// a failed attempt therefore leaves all entered data in place for retry.
func (d *Draft) BeginSubmission() (*Submission, error) {
	if d.Step != StepThree || d.StepOne == nil || d.StepTwo == nil || d.StepThree == nil {
		return nil, common.ErrorWrongStep
	}
	return &Submission{
		StepOne:   *d.StepOne,
		StepTwo:   *d.StepTwo,
		StepThree: *d.StepThree,
		History:   d.HistoryTexts(),
		Passport:  d.Passport,
		Document:  d.Document,
	}, nil
}

// CompleteSubmission marks the draft submitted. The success screen is an
// absorbing state until Reset.
func (d *Draft) CompleteSubmission() {
	d.Step = StepSubmitted
}

// Snapshot is a copy-safe view of the draft for state queries.
type Snapshot struct {
	ID            string         `json:"id"`
	Step          Step           `json:"step"`
	StepOneDone   bool           `json:"stepOneDone"`
	StepTwoDone   bool           `json:"stepTwoDone"`
	StepThreeDone bool           `json:"stepThreeDone"`
	History       []HistoryEntry `json:"spiritualHistory"`
	PassportName  string         `json:"passportFileName,omitempty"`
	DocumentName  string         `json:"documentFileName,omitempty"`
}

// Snapshot returns the current state of the draft.
func (d *Draft) Snapshot() Snapshot {
	s := Snapshot{
		ID:            d.ID,
		Step:          d.Step,
		StepOneDone:   d.StepOne != nil,
		StepTwoDone:   d.StepTwo != nil,
		StepThreeDone: d.StepThree != nil,
		History:       append([]HistoryEntry(nil), d.History...),
	}
	if d.Passport != nil {
		s.PassportName = d.Passport.FileName
	}
	if d.Document != nil {
		s.DocumentName = d.Document.FileName
	}
	return s
}
