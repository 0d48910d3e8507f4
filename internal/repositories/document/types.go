package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrNilInput          = errors.New("input cannot be nil")
	ErrInvalidCollection = errors.New("invalid collection name")
	ErrNilTarget         = errors.New("load target cannot be nil")
)

var collectionName = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// LoadInput contains parameters for loading a collection
type LoadInput struct {
	// Collection is the collection name
	Collection string

	// Default is persisted and returned if the collection does not exist
	Default interface{}

	// Target is a pointer the collection is decoded into
	Target interface{}
}

// SaveInput contains parameters for saving a collection
type SaveInput struct {
	// Collection is the collection name
	Collection string

	// Data is the full collection
	Data interface{}
}

func (i *LoadInput) validate() error {
	if i == nil {
		return ErrNilInput
	}
	if !collectionName.MatchString(i.Collection) {
		return fmt.Errorf("%w: %q", ErrInvalidCollection, i.Collection)
	}
	if i.Target == nil {
		return ErrNilTarget
	}
	return nil
}

func (i *SaveInput) validate() error {
	if i == nil {
		return ErrNilInput
	}
	if !collectionName.MatchString(i.Collection) {
		return fmt.Errorf("%w: %q", ErrInvalidCollection, i.Collection)
	}
	return nil
}

// encode renders a collection the way it is written to disk: two-space
// indented JSON. A nil default is stored as an empty array.
func encode(data interface{}) ([]byte, error) {
	if data == nil {
		return []byte("[]"), nil
	}
	return json.MarshalIndent(data, "", "  ")
}
