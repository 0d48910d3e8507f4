package registry

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/KirkDiggler/sportsmeet/internal/catalog"
	"github.com/KirkDiggler/sportsmeet/internal/common/errs"
	"github.com/KirkDiggler/sportsmeet/internal/models"
	participantRepo "github.com/KirkDiggler/sportsmeet/internal/repositories/participant"
	participantMocks "github.com/KirkDiggler/sportsmeet/internal/repositories/participant/mocks"
	"github.com/KirkDiggler/sportsmeet/internal/services/scoring"
	scoringMocks "github.com/KirkDiggler/sportsmeet/internal/services/scoring/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RegistryServiceTestSuite struct {
	suite.Suite
	mockCtrl            *gomock.Controller
	mockParticipantRepo *participantMocks.MockRepository
	mockScoring         *scoringMocks.MockService
	registryService     Service
	ctx                 context.Context

	// Reusable test fixtures
	existing *models.Participant
}

func (s *RegistryServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockParticipantRepo = participantMocks.NewMockRepository(s.mockCtrl)
	s.mockScoring = scoringMocks.NewMockService(s.mockCtrl)
	s.ctx = context.Background()

	c, err := catalog.Default()
	s.Require().NoError(err)

	svc, err := New(&Config{
		ParticipantRepo: s.mockParticipantRepo,
		Scoring:         s.mockScoring,
		Catalog:         c,
	})
	s.Require().NoError(err)
	s.registryService = svc

	s.existing = &models.Participant{
		ID:          7,
		Team:        "Usooludheen",
		ChessNumber: "150",
		Name:        "Hamid",
		Programs:    []string{"Chess", "Football"},
		Scores:      map[string]float64{"Chess": 6},
	}
}

func (s *RegistryServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRegistryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RegistryServiceTestSuite))
}

func (s *RegistryServiceTestSuite) expectSync(teams ...string) {
	s.mockScoring.EXPECT().
		SyncTeamScores(s.ctx, &scoring.SyncTeamScoresInput{Teams: teams}).
		Return(&scoring.SyncTeamScoresOutput{}, nil)
}

func (s *RegistryServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{ParticipantRepo: s.mockParticipantRepo})
	s.ErrorIs(err, ErrNilScoring)

	_, err = New(&Config{ParticipantRepo: s.mockParticipantRepo, Scoring: s.mockScoring})
	s.ErrorIs(err, ErrNilCatalog)
}

func (s *RegistryServiceTestSuite) TestCreateParticipant() {
	input := &CreateParticipantInput{
		Team:        "Usooludheen",
		ChessNumber: " 101 ",
		Name:        "Ameen",
		Programs:    []string{"100 mtr", "200 mtr", "Chess", "Football"},
	}

	s.mockParticipantRepo.EXPECT().
		CreateParticipant(s.ctx, &participantRepo.CreateParticipantInput{
			Participant: &models.Participant{
				Team:        "Usooludheen",
				ChessNumber: "101",
				Name:        "Ameen",
				Programs:    []string{"100 mtr", "200 mtr", "Chess", "Football"},
			},
		}).
		DoAndReturn(func(_ context.Context, in *participantRepo.CreateParticipantInput) (*models.Participant, error) {
			created := in.Participant.Clone()
			created.ID = 1
			return created, nil
		})
	s.expectSync("Usooludheen")

	out, err := s.registryService.CreateParticipant(s.ctx, input)
	s.Require().NoError(err)
	s.Equal(1, out.Participant.ID)
	s.Equal("101", out.Participant.ChessNumber)
}

func (s *RegistryServiceTestSuite) TestCreateParticipantCategoryLimit() {
	_, err := s.registryService.CreateParticipant(s.ctx, &CreateParticipantInput{
		Team:        "Shareea",
		ChessNumber: "201",
		Name:        "Basil",
		Programs:    []string{"100 mtr", "200 mtr", "400 mtr", "Chess"},
	})
	s.Require().ErrorIs(err, ErrCategoryLimitExceeded)
	s.Equal(errs.KindValidation, errs.KindOf(err))
}

func (s *RegistryServiceTestSuite) TestCreateParticipantValidation() {
	valid := func() *CreateParticipantInput {
		return &CreateParticipantInput{
			Team:        "Shareea",
			ChessNumber: "201",
			Name:        "Basil",
			Programs:    []string{"Chess"},
		}
	}

	testCases := []struct {
		name   string
		modify func(*CreateParticipantInput)
		want   error
	}{
		{"missing team", func(in *CreateParticipantInput) { in.Team = " " }, ErrMissingTeam},
		{"missing name", func(in *CreateParticipantInput) { in.Name = "" }, ErrMissingName},
		{"missing chess number", func(in *CreateParticipantInput) { in.ChessNumber = "" }, ErrMissingChessNumber},
		{"chess number outside team range", func(in *CreateParticipantInput) { in.ChessNumber = "150" }, ErrInvalidChessNumber},
		{"chess number not numeric", func(in *CreateParticipantInput) { in.ChessNumber = "2a1" }, ErrInvalidChessNumber},
		{"no programs", func(in *CreateParticipantInput) { in.Programs = nil }, ErrNoPrograms},
		{"unknown program", func(in *CreateParticipantInput) { in.Programs = []string{"Quidditch"} }, ErrUnknownProgram},
		{"duplicate program", func(in *CreateParticipantInput) { in.Programs = []string{"Chess", "Chess"} }, ErrDuplicateProgram},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			input := valid()
			tc.modify(input)
			_, err := s.registryService.CreateParticipant(s.ctx, input)
			s.ErrorIs(err, tc.want)
		})
	}
}

func (s *RegistryServiceTestSuite) TestCreateParticipantTeamOutsideRoster() {
	s.mockParticipantRepo.EXPECT().
		CreateParticipant(s.ctx, gomock.Any()).
		Return(&models.Participant{ID: 3, Team: "Red", ChessNumber: "A1"}, nil)
	s.expectSync("Red")

	_, err := s.registryService.CreateParticipant(s.ctx, &CreateParticipantInput{
		Team:        "Red",
		ChessNumber: "A1",
		Name:        "Guest",
		Programs:    []string{"Chess"},
	})
	s.NoError(err)
}

func (s *RegistryServiceTestSuite) TestUpdateParticipantTeamChangeSyncsBothTeams() {
	s.mockParticipantRepo.EXPECT().
		GetParticipant(s.ctx, &participantRepo.GetParticipantInput{ParticipantID: 7}).
		Return(s.existing, nil)
	s.mockParticipantRepo.EXPECT().
		SaveParticipants(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *participantRepo.SaveParticipantsInput) error {
			s.Require().Len(in.Participants, 1)
			s.Equal("Shareea", in.Participants[0].Team)
			s.Equal("250", in.Participants[0].ChessNumber)
			return nil
		})
	s.expectSync("Usooludheen", "Shareea")

	team, chess := "Shareea", "250"
	out, err := s.registryService.UpdateParticipant(s.ctx, &UpdateParticipantInput{
		ParticipantID: 7,
		Team:          &team,
		ChessNumber:   &chess,
	})
	s.Require().NoError(err)
	s.Equal("Hamid", out.Participant.Name)
	s.Equal(map[string]float64{"Chess": 6}, out.Participant.Scores)
}

func (s *RegistryServiceTestSuite) TestUpdateParticipantProgramsOnly() {
	s.mockParticipantRepo.EXPECT().
		GetParticipant(s.ctx, gomock.Any()).
		Return(s.existing, nil)
	s.mockParticipantRepo.EXPECT().
		SaveParticipants(s.ctx, gomock.Any()).
		Return(nil)

	programs := []string{"100 mtr", "200 mtr", "Chess"}
	out, err := s.registryService.UpdateParticipant(s.ctx, &UpdateParticipantInput{
		ParticipantID: 7,
		Programs:      &programs,
	})
	s.Require().NoError(err)
	s.Equal(programs, out.Participant.Programs)
}

func (s *RegistryServiceTestSuite) TestUpdateParticipantRejectsBeforeWriting() {
	testCases := []struct {
		name  string
		input *UpdateParticipantInput
		want  error
	}{
		{
			name: "category limit",
			input: &UpdateParticipantInput{
				ParticipantID: 7,
				Programs:      &[]string{"100 mtr", "200 mtr", "400 mtr", "Chess"},
			},
			want: ErrCategoryLimitExceeded,
		},
		{
			name: "team change keeps out of range chess number",
			input: &UpdateParticipantInput{
				ParticipantID: 7,
				Team:          stringPtr("Shareea"),
			},
			want: ErrInvalidChessNumber,
		},
		{
			name: "blank name",
			input: &UpdateParticipantInput{
				ParticipantID: 7,
				Name:          stringPtr(""),
			},
			want: ErrMissingName,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockParticipantRepo.EXPECT().
				GetParticipant(s.ctx, gomock.Any()).
				Return(s.existing.Clone(), nil)

			_, err := s.registryService.UpdateParticipant(s.ctx, tc.input)
			s.ErrorIs(err, tc.want)
		})
	}
}

func (s *RegistryServiceTestSuite) TestUpdateParticipantNotFound() {
	s.mockParticipantRepo.EXPECT().
		GetParticipant(s.ctx, gomock.Any()).
		Return(nil, participantRepo.ErrParticipantNotFound)

	_, err := s.registryService.UpdateParticipant(s.ctx, &UpdateParticipantInput{
		ParticipantID: 99,
		Name:          stringPtr("Nobody"),
	})
	s.Require().ErrorIs(err, ErrParticipantNotFound)
	s.Equal(errs.KindNotFound, errs.KindOf(err))
}

func (s *RegistryServiceTestSuite) TestDeleteParticipant() {
	s.mockParticipantRepo.EXPECT().
		DeleteParticipant(s.ctx, &participantRepo.DeleteParticipantInput{ParticipantID: 7}).
		Return(s.existing, nil)
	s.expectSync("Usooludheen")

	out, err := s.registryService.DeleteParticipant(s.ctx, &DeleteParticipantInput{ParticipantID: 7})
	s.Require().NoError(err)
	s.Equal(7, out.Participant.ID)
}

func (s *RegistryServiceTestSuite) TestDeleteParticipantNotFound() {
	s.mockParticipantRepo.EXPECT().
		DeleteParticipant(s.ctx, gomock.Any()).
		Return(nil, participantRepo.ErrParticipantNotFound)

	_, err := s.registryService.DeleteParticipant(s.ctx, &DeleteParticipantInput{ParticipantID: 99})
	s.ErrorIs(err, ErrParticipantNotFound)
}

func (s *RegistryServiceTestSuite) TestSetScore() {
	s.mockParticipantRepo.EXPECT().
		GetParticipant(s.ctx, gomock.Any()).
		Return(s.existing, nil)
	s.mockParticipantRepo.EXPECT().
		SaveParticipants(s.ctx, gomock.Any()).
		Return(nil)
	s.mockScoring.EXPECT().
		SyncTeamScores(s.ctx, &scoring.SyncTeamScoresInput{Teams: []string{"Usooludheen"}}).
		Return(&scoring.SyncTeamScoresOutput{
			TeamScores: []*models.TeamScore{{Team: "Usooludheen", Score: 26}},
		}, nil)

	out, err := s.registryService.SetScore(s.ctx, &SetScoreInput{
		ParticipantID: 7,
		Program:       "Football",
		Score:         20,
	})
	s.Require().NoError(err)
	s.Equal(map[string]float64{"Chess": 6, "Football": 20}, out.Participant.Scores)
	s.Require().NotNil(out.TeamScore)
	s.Equal(float64(26), out.TeamScore.Score)
}

func (s *RegistryServiceTestSuite) TestSetScoreNotEnrolled() {
	s.mockParticipantRepo.EXPECT().
		GetParticipant(s.ctx, gomock.Any()).
		Return(s.existing, nil)

	_, err := s.registryService.SetScore(s.ctx, &SetScoreInput{
		ParticipantID: 7,
		Program:       "100 mtr",
		Score:         10,
	})
	s.ErrorIs(err, ErrNotEnrolled)
}

func (s *RegistryServiceTestSuite) TestSetScoreRejectsInvalidScores() {
	for _, score := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err := s.registryService.SetScore(s.ctx, &SetScoreInput{
			ParticipantID: 7,
			Program:       "Chess",
			Score:         score,
		})
		s.ErrorIs(err, ErrInvalidScore)
	}
}

func (s *RegistryServiceTestSuite) TestSetScoreStorageFailure() {
	storageErr := errs.Storage("failed to save teamData", errors.New("disk full"))

	s.mockParticipantRepo.EXPECT().
		GetParticipant(s.ctx, gomock.Any()).
		Return(s.existing, nil)
	s.mockParticipantRepo.EXPECT().
		SaveParticipants(s.ctx, gomock.Any()).
		Return(storageErr)

	_, err := s.registryService.SetScore(s.ctx, &SetScoreInput{
		ParticipantID: 7,
		Program:       "Chess",
		Score:         10,
	})
	s.Equal(errs.KindStorage, errs.KindOf(err))
}

func (s *RegistryServiceTestSuite) TestListParticipantsSortsAndFilters() {
	s.mockParticipantRepo.EXPECT().
		ListParticipants(s.ctx).
		Return([]*models.Participant{
			{ID: 1, Team: "Shareea", ChessNumber: "210"},
			{ID: 2, Team: "Usooludheen", ChessNumber: "120"},
			{ID: 3, Team: "Shareea", ChessNumber: "202"},
			{ID: 4, Team: "Usooludheen", ChessNumber: "99"},
			{ID: 5, Team: "Shareea", ChessNumber: "guest"},
		}, nil).
		Times(2)

	out, err := s.registryService.ListParticipants(s.ctx, &ListParticipantsInput{})
	s.Require().NoError(err)
	s.Equal([]int{3, 1, 5, 4, 2}, participantIDs(out.Participants))

	out, err = s.registryService.ListParticipants(s.ctx, &ListParticipantsInput{Team: "Usooludheen"})
	s.Require().NoError(err)
	s.Equal([]int{4, 2}, participantIDs(out.Participants))
}

func participantIDs(participants []*models.Participant) []int {
	ids := make([]int, 0, len(participants))
	for _, p := range participants {
		ids = append(ids, p.ID)
	}
	return ids
}

func stringPtr(s string) *string {
	return &s
}
