package service

import (
	"encoding/json"
	"time"
	"unicode/utf8"

	"github.com/mariomediam/maps-backend/internal/domain"
	"github.com/mariomediam/maps-backend/pkg/e"
)

type optionalID struct {
	present bool
	value   *int64
}

type optionalText struct {
	present bool
	value   *string
}

// incidentChanges is a partial update after decoding; absent keys stay
// untouched.
type incidentChanges struct {
	isClosed           *bool
	priority           optionalID
	closureType        optionalID
	derivationDocument optionalText
	closureDescription optionalText
}

// decodePatch rejects unknown keys before looking at any value.
func decodePatch(patch domain.IncidentPatch) (incidentChanges, error) {
	var rejected []string
	for key := range patch {
		if _, ok := domain.PatchableFields[key]; !ok {
			rejected = append(rejected, key)
		}
	}
	if len(rejected) > 0 {
		return incidentChanges{}, e.NewValidationError("fields not allowed", rejected...)
	}

	var (
		c       incidentChanges
		invalid []string
	)
	for key, raw := range patch {
		var err error
		switch key {
		case domain.PatchShowOnMap:
			// Recomputed from user_type on save; only the type is checked.
			_, err = decodeBool(raw)
		case domain.PatchIsClosed:
			c.isClosed, err = decodeBool(raw)
		case domain.PatchPriority:
			c.priority, err = decodeID(raw)
		case domain.PatchClosureType:
			c.closureType, err = decodeID(raw)
		case domain.PatchDerivationDocument:
			c.derivationDocument, err = decodeFalsyText(raw)
			if err == nil && c.derivationDocument.value != nil &&
				utf8.RuneCountInString(*c.derivationDocument.value) > domain.MaxDerivationDocumentLen {
				err = errTooLong
			}
		case domain.PatchClosureDescription:
			c.closureDescription, err = decodeFalsyText(raw)
		}
		if err != nil {
			invalid = append(invalid, key)
		}
	}
	if len(invalid) > 0 {
		return incidentChanges{}, e.NewValidationError("invalid values", invalid...)
	}

	return c, nil
}

// apply mutates inc and reports whether this update closed it for the first
// time. Re-closing keeps the original closure stamp; reopening only clears
// the flag.
func (c incidentChanges) apply(inc *domain.Incident, actor *domain.User, now time.Time) bool {
	closedNow := false
	if c.isClosed != nil {
		inc.IsClosed = *c.isClosed
		if inc.IsClosed && inc.ClosureDate == nil {
			inc.ClosureDate = &now
			inc.ClosureUserID = &actor.ID
			closedNow = true
		}
	}
	if c.priority.present {
		inc.PriorityID = c.priority.value
	}
	if c.closureType.present {
		inc.ClosureTypeID = c.closureType.value
	}
	if c.derivationDocument.present {
		inc.DerivationDocument = c.derivationDocument.value
	}
	if c.closureDescription.present {
		inc.ClosureDescription = c.closureDescription.value
	}
	return closedNow
}

var (
	errTooLong     = e.NewValidationError("value too long")
	errWrongType   = e.NewValidationError("wrong type")
	errNotPositive = e.NewValidationError("id must be positive")
)

func decodeBool(raw json.RawMessage) (*bool, error) {
	var b *bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, err
	}
	if b == nil {
		return nil, errWrongType
	}
	return b, nil
}

// decodeID reads null as "clear" and a positive integer as "set".
func decodeID(raw json.RawMessage) (optionalID, error) {
	var id *int64
	if err := json.Unmarshal(raw, &id); err != nil {
		return optionalID{}, err
	}
	if id != nil && *id <= 0 {
		return optionalID{}, errNotPositive
	}
	return optionalID{present: true, value: id}, nil
}

// decodeFalsyText stores null, "", false and 0 as NULL. Any other non-string
// value is rejected.
func decodeFalsyText(raw json.RawMessage) (optionalText, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return optionalText{}, err
	}

	switch t := v.(type) {
	case nil:
		return optionalText{present: true}, nil
	case string:
		if t == "" {
			return optionalText{present: true}, nil
		}
		return optionalText{present: true, value: &t}, nil
	case bool:
		if !t {
			return optionalText{present: true}, nil
		}
	case float64:
		if t == 0 {
			return optionalText{present: true}, nil
		}
	}
	return optionalText{}, errWrongType
}
