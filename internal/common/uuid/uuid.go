package uuid

import (
	"log"

	"github.com/google/uuid"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/sportsmeet/internal/common/uuid UUID

// UUID generates identifiers for issued login tokens
type UUID interface {
	NewUUID() string
}

// TimeOrderedUUID issues version 7 UUIDs, which sort by creation time
type TimeOrderedUUID struct{}

func New() *TimeOrderedUUID {
	return &TimeOrderedUUID{}
}

// NewUUID returns a new version 7 UUID, or a random one if the clock read fails
func (g *TimeOrderedUUID) NewUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		log.Printf("Falling back to random token id: %v", err)
		return uuid.NewString()
	}
	return id.String()
}
