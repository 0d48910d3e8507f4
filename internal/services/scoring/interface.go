package scoring

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/sportsmeet/internal/services/scoring Service

// Service maintains the team score table derived from participant scores
type Service interface {
	// SyncTeamScores recomputes the rows of the given teams from participant scores
	SyncTeamScores(ctx context.Context, input *SyncTeamScoresInput) (*SyncTeamScoresOutput, error)

	// Rebuild recomputes every team row
	Rebuild(ctx context.Context) (*SyncTeamScoresOutput, error)

	// ListTeamScores returns the team score table
	ListTeamScores(ctx context.Context) (*ListTeamScoresOutput, error)

	// TopParticipants ranks participants by total score
	TopParticipants(ctx context.Context, input *TopParticipantsInput) (*TopParticipantsOutput, error)

	// ApplyRanks converts a batch of placements for one program into scores
	ApplyRanks(ctx context.Context, input *ApplyRanksInput) (*ApplyRanksOutput, error)
}
