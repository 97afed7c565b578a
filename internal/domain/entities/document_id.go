package entities

import (
	"strings"

	"github.com/google/uuid"
)

// DocumentID is the store-assigned identifier of a persisted document.
//
// It is distinct from business identifiers such as the reservation code. String()
// is the only serialization used outside the persistence layer.
type DocumentID string

func NewDocumentID() DocumentID {
	return DocumentID(uuid.NewString())
}

// ParseDocumentID normalizes a raw identifier read from the store or a request.
func ParseDocumentID(raw string) (DocumentID, error) {
	u, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", err
	}
	return DocumentID(u.String()), nil
}

func (id DocumentID) String() string {
	return string(id)
}

func (id DocumentID) IsZero() bool {
	return id == ""
}
