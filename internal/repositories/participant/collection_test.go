package participant

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

func (s *CollectionRepositoryTestSuite) create(team, chessNumber string) *models.Participant {
	p, err := s.repo.CreateParticipant(s.ctx, &CreateParticipantInput{
		Participant: &models.Participant{
			Team:        team,
			ChessNumber: chessNumber,
			Name:        "Runner " + chessNumber,
			Programs:    []string{"100 mtr"},
		},
	})
	s.Require().NoError(err)
	return p
}

func (s *CollectionRepositoryTestSuite) TestCreateAssignsMaxPlusOne() {
	first := s.create("Red", "101")
	second := s.create("Red", "102")
	s.Equal(1, first.ID)
	s.Equal(2, second.ID)

	_, err := s.repo.DeleteParticipant(s.ctx, &DeleteParticipantInput{ParticipantID: 1})
	s.Require().NoError(err)

	third := s.create("Blue", "201")
	s.Equal(3, third.ID)

	_, err = s.repo.DeleteParticipant(s.ctx, &DeleteParticipantInput{ParticipantID: 3})
	s.Require().NoError(err)
	_, err = s.repo.DeleteParticipant(s.ctx, &DeleteParticipantInput{ParticipantID: 2})
	s.Require().NoError(err)

	// Empty collection restarts at 1
	s.Equal(1, s.create("Blue", "202").ID)
}

func (s *CollectionRepositoryTestSuite) TestGetReturnsCopy() {
	created := s.create("Red", "101")

	got, err := s.repo.GetParticipant(s.ctx, &GetParticipantInput{ParticipantID: created.ID})
	s.Require().NoError(err)
	got.Programs[0] = "Chess"

	again, err := s.repo.GetParticipant(s.ctx, &GetParticipantInput{ParticipantID: created.ID})
	s.Require().NoError(err)
	s.Equal("100 mtr", again.Programs[0])
}

func (s *CollectionRepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.GetParticipant(s.ctx, &GetParticipantInput{ParticipantID: 42})
	s.ErrorIs(err, ErrParticipantNotFound)
}

func (s *CollectionRepositoryTestSuite) TestSaveParticipantsIsAllOrNothing() {
	p := s.create("Red", "101")
	p.Scores = map[string]float64{"100 mtr": 10}

	err := s.repo.SaveParticipants(s.ctx, &SaveParticipantsInput{
		Participants: []*models.Participant{p, {ID: 99, Team: "Ghost"}},
	})
	s.ErrorIs(err, ErrParticipantNotFound)

	got, err := s.repo.GetParticipant(s.ctx, &GetParticipantInput{ParticipantID: p.ID})
	s.Require().NoError(err)
	s.Empty(got.Scores)

	s.Require().NoError(s.repo.SaveParticipants(s.ctx, &SaveParticipantsInput{
		Participants: []*models.Participant{p},
	}))
	got, err = s.repo.GetParticipant(s.ctx, &GetParticipantInput{ParticipantID: p.ID})
	s.Require().NoError(err)
	s.Equal(float64(10), got.Scores["100 mtr"])
}

func (s *CollectionRepositoryTestSuite) TestDeleteMissing() {
	_, err := s.repo.DeleteParticipant(s.ctx, &DeleteParticipantInput{ParticipantID: 5})
	s.ErrorIs(err, ErrParticipantNotFound)
}

func (s *CollectionRepositoryTestSuite) TestPersistsAcrossReload() {
	s.create("Red", "101")
	s.create("Blue", "201")

	reloaded, err := NewCollection(s.ctx, &Config{Store: s.store})
	s.Require().NoError(err)

	participants, err := reloaded.ListParticipants(s.ctx)
	s.Require().NoError(err)
	s.Len(participants, 2)
	s.Equal("Blue", participants[1].Team)
}
