package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// SubmitterKind uses the same codes as the legacy user_type column.
type SubmitterKind string

const (
	SubmitterInspector SubmitterKind = "1"
	SubmitterCitizen   SubmitterKind = "2"
)

func (k SubmitterKind) Valid() bool {
	return k == SubmitterInspector || k == SubmitterCitizen
}

type Incident struct {
	ID               int64           `json:"id_incident"`
	RegistrationDate time.Time       `json:"registration_date"`
	CategoryID       int64           `json:"category"`
	CategoryName     string          `json:"category_name"`
	Latitude         decimal.Decimal `json:"latitude"`
	Longitude        decimal.Decimal `json:"longitude"`
	Summary          string          `json:"summary"`
	Reference        string          `json:"reference"`
	ShowOnMap        bool            `json:"show_on_map"`
	UserType         SubmitterKind   `json:"user_type"`
	IsClosed         bool            `json:"is_closed"`

	InspectorID       *int64  `json:"inspector"`
	InspectorUsername *string `json:"inspector_username"`

	CitizenName     *string `json:"citizen_name"`
	CitizenLastname *string `json:"citizen_lastname"`
	CitizenPhone    *string `json:"citizen_phone"`
	CitizenEmail    *string `json:"citizen_email"`

	PriorityID         *int64  `json:"priority"`
	PriorityName       *string `json:"priority_name"`
	DerivationDocument *string `json:"derivation_document"`

	ClosureTypeID      *int64     `json:"closure_type"`
	ClosureTypeName    *string    `json:"closure_type_name"`
	ClosureDescription *string    `json:"closure_description"`
	ClosureDate        *time.Time `json:"closure_date"`
	ClosureUserID      *int64     `json:"closure_user"`
	ClosureUsername    *string    `json:"closure_user_username"`

	Photographs []Photograph `json:"photographs"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// EnforceInvariants must run before every write: show_on_map follows the
// submitter kind, and only the fields of that kind may be set.
func (i *Incident) EnforceInvariants() {
	i.ShowOnMap = i.UserType == SubmitterInspector
	switch i.UserType {
	case SubmitterInspector:
		i.CitizenName, i.CitizenLastname, i.CitizenPhone, i.CitizenEmail = nil, nil, nil, nil
	case SubmitterCitizen:
		i.InspectorID, i.InspectorUsername = nil, nil
	}
}

func (i *Incident) State() State {
	return DeriveState(i.IsClosed, i.PriorityID != nil)
}

func (i *Incident) CitizenFullName() *string {
	if i.UserType != SubmitterCitizen || i.CitizenName == nil || *i.CitizenName == "" {
		return nil
	}
	full := *i.CitizenName
	if i.CitizenLastname != nil {
		full = strings.TrimSpace(full + " " + *i.CitizenLastname)
	}
	return &full
}

// Photograph describes the stored rendition, not the uploaded file. Name is
// the client's file name. ContentType and FileSize are those of the bytes in
// the bucket: image/jpeg and the re-encoded size when the photo was
// normalized, the original values when it was passed through.
type Photograph struct {
	ID          int64     `json:"id_photography"`
	IncidentID  int64     `json:"incident"`
	Name        string    `json:"name"`
	ContentType string    `json:"content_type"`
	FileSize    int64     `json:"file_size"`
	R2Key       string    `json:"r2_key"`
	UploadDate  time.Time `json:"upload_date"`
}

type Attachment struct {
	ID           int64     `json:"id_attachment"`
	IncidentID   int64     `json:"incident"`
	Description  string    `json:"description"`
	URL          string    `json:"url"`
	UploadDate   time.Time `json:"upload_date"`
	UploadUserID *int64    `json:"upload_user"`
}

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// AnnotatedIncident is the read model: the stored incident plus the state
// derived from it at read time.
type AnnotatedIncident struct {
	Incident
	CitizenFullName  *string `json:"citizen_full_name"`
	IDState          int     `json:"id_state"`
	DescriptionState string  `json:"description_state"`
	ColorState       string  `json:"color_state"`
}

func Annotate(inc *Incident) *AnnotatedIncident {
	st := inc.State()
	if inc.Photographs == nil {
		inc.Photographs = []Photograph{}
	}
	return &AnnotatedIncident{
		Incident:         *inc,
		CitizenFullName:  inc.CitizenFullName(),
		IDState:          st.ID,
		DescriptionState: st.Description,
		ColorState:       st.Color,
	}
}

// PhotographView is a photograph with a short-lived download URL. URL is nil
// when the object store could not sign one.
type PhotographView struct {
	Photograph
	URL *string `json:"url"`
}
