package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Submitter is either InspectorSubmitter or CitizenSubmitter.
type Submitter interface {
	Kind() SubmitterKind
	isSubmitter()
}

type InspectorSubmitter struct {
	Username string `json:"username" validate:"notblank"`
}

func (InspectorSubmitter) Kind() SubmitterKind { return SubmitterInspector }
func (InspectorSubmitter) isSubmitter()        {}

type CitizenSubmitter struct {
	Name     string  `json:"citizen_name" validate:"notblank,max=100"`
	Lastname *string `json:"citizen_lastname" validate:"omitempty,max=100"`
	Phone    *string `json:"citizen_phone" validate:"omitempty,max=20"`
	Email    *string `json:"citizen_email" validate:"omitempty,email,max=254"`
}

func (CitizenSubmitter) Kind() SubmitterKind { return SubmitterCitizen }
func (CitizenSubmitter) isSubmitter()        {}

type PhotoUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

type Submission struct {
	CategoryID int64           `json:"category_id" validate:"gt=0"`
	Latitude   decimal.Decimal `json:"latitude" validate:"lat"`
	Longitude  decimal.Decimal `json:"longitude" validate:"lng"`
	Summary    string          `json:"summary" validate:"notblank"`
	Reference  string          `json:"reference" validate:"max=500"`
	Submitter  Submitter       `json:"-" validate:"-"`
	Photos     []PhotoUpload   `json:"-" validate:"-"`
}

// Keys accepted by the partial update.
const (
	PatchShowOnMap          = "show_on_map"
	PatchIsClosed           = "is_closed"
	PatchPriority           = "priority"
	PatchDerivationDocument = "derivation_document"
	PatchClosureType        = "closure_type"
	PatchClosureDescription = "closure_description"
)

var PatchableFields = map[string]struct{}{
	PatchShowOnMap:          {},
	PatchIsClosed:           {},
	PatchPriority:           {},
	PatchDerivationDocument: {},
	PatchClosureType:        {},
	PatchClosureDescription: {},
}

const MaxDerivationDocumentLen = 8

// IncidentPatch keeps raw values so that "absent", "null" and a value can be
// told apart per key.
type IncidentPatch map[string]json.RawMessage

type IncidentFilter struct {
	CategoryID *int64
	StateID    *int
	ShowOnMap  *bool
	TextSearch string
	IncidentID *int64
	From       *time.Time
	To         *time.Time
}
