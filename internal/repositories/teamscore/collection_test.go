package teamscore

import (
	"context"
	"testing"

	"github.com/KirkDiggler/sportsmeet/internal/models"
	"github.com/KirkDiggler/sportsmeet/internal/repositories/document"
	"github.com/stretchr/testify/suite"
)

type CollectionRepositoryTestSuite struct {
	suite.Suite
	store document.Store
	repo  Repository
	ctx   context.Context
}

func (s *CollectionRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = document.NewMemory()

	repo, err := NewCollection(s.ctx, &Config{Store: s.store})
	s.Require().NoError(err)
	s.repo = repo
}

func TestCollectionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CollectionRepositoryTestSuite))
}

func (s *CollectionRepositoryTestSuite) TestUpsertAndRemove() {
	out, err := s.repo.UpdateTeamScores(s.ctx, &UpdateTeamScoresInput{
		Set: []*models.TeamScore{{Team: "Red", Score: 16}, {Team: "Blue", Score: 3}},
	})
	s.Require().NoError(err)
	s.Equal([]string{"Red", "Blue"}, out.Inserted)

	out, err = s.repo.UpdateTeamScores(s.ctx, &UpdateTeamScoresInput{
		Set:    []*models.TeamScore{{Team: "Red", Score: 6}},
		Remove: []string{"Blue", "Green"},
	})
	s.Require().NoError(err)
	s.Equal([]string{"Red"}, out.Updated)
	s.Equal([]string{"Blue"}, out.Removed)

	rows, err := s.repo.ListTeamScores(s.ctx)
	s.Require().NoError(err)
	s.Equal([]*models.TeamScore{{Team: "Red", Score: 6}}, rows)
}

func (s *CollectionRepositoryTestSuite) TestGetTeamScore() {
	_, err := s.repo.GetTeamScore(s.ctx, &GetTeamScoreInput{Team: "Red"})
	s.ErrorIs(err, ErrTeamScoreNotFound)

	_, err = s.repo.UpdateTeamScores(s.ctx, &UpdateTeamScoresInput{
		Set: []*models.TeamScore{{Team: "Red", Score: 20}},
	})
	s.Require().NoError(err)

	row, err := s.repo.GetTeamScore(s.ctx, &GetTeamScoreInput{Team: "Red"})
	s.Require().NoError(err)
	s.Equal(float64(20), row.Score)
}

func (s *CollectionRepositoryTestSuite) TestRejectsUnnamedTeam() {
	_, err := s.repo.UpdateTeamScores(s.ctx, &UpdateTeamScoresInput{
		Set: []*models.TeamScore{{Score: 1}},
	})
	s.Error(err)

	rows, err := s.repo.ListTeamScores(s.ctx)
	s.Require().NoError(err)
	s.Empty(rows)
}
