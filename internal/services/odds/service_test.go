package odds

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/probably-dice/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/probably-dice/internal/common/uuid/mocks"
	diceMocks "github.com/KirkDiggler/probably-dice/internal/dice/mocks"
	"github.com/KirkDiggler/probably-dice/internal/metrics"
	metricsMocks "github.com/KirkDiggler/probably-dice/internal/metrics/mocks"
	"github.com/KirkDiggler/probably-dice/internal/models"
	"github.com/KirkDiggler/probably-dice/internal/probability"
	queryRepo "github.com/KirkDiggler/probably-dice/internal/repositories/query"
	queryMocks "github.com/KirkDiggler/probably-dice/internal/repositories/query/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OddsServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockQueryRepo  *queryMocks.MockRepository
	mockDiceRoller *diceMocks.MockRoller
	mockClock      *mocks.MockClock
	mockUUID       *uuidMocks.MockUUID
	mockMetrics    *metricsMocks.MockRecorder
	oddsService    Service
	ctx            context.Context

	// Test data
	testTime      time.Time
	testQueryID   string
	testChannelID string
	testUserID    string
	testUserName  string
	testAsker     Asker
}

func (s *OddsServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueryRepo = queryMocks.NewMockRepository(s.mockCtrl)
	s.mockDiceRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.mockMetrics = metricsMocks.NewMockRecorder(s.mockCtrl)

	s.ctx = context.Background()

	// Initialize test data
	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testQueryID = "test-query-id"
	s.testChannelID = "test-channel-id"
	s.testUserID = "test-user-id"
	s.testUserName = "Test User"
	s.testAsker = Asker{
		ChannelID: s.testChannelID,
		UserID:    s.testUserID,
		UserName:  s.testUserName,
	}

	// Set up the clock mock to return our test time
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	// Create the service with mocked dependencies
	svc, err := New(&Config{
		MaxDice:       20,
		MaxSides:      100,
		MaxTrials:     1000,
		QueryRepo:     s.mockQueryRepo,
		DiceRoller:    s.mockDiceRoller,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
		Metrics:       s.mockMetrics,
	})
	s.Require().NoError(err)
	s.oddsService = svc
}

func (s *OddsServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOddsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OddsServiceTestSuite))
}

func (s *OddsServiceTestSuite) expectSavedQuery(query *models.OddsQuery) {
	query.ID = s.testQueryID
	query.ChannelID = s.testChannelID
	query.UserID = s.testUserID
	query.UserName = s.testUserName
	query.CreatedAt = s.testTime

	s.mockUUID.EXPECT().NewUUID().Return(s.testQueryID)
	s.mockQueryRepo.EXPECT().SaveQuery(gomock.Any(), &queryRepo.SaveQueryInput{Query: query}).Return(nil)
}

func (s *OddsServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Clock: s.mockClock, UUIDGenerator: s.mockUUID})
	s.ErrorIs(err, ErrNilDiceRoller)

	_, err = New(&Config{DiceRoller: s.mockDiceRoller, UUIDGenerator: s.mockUUID})
	s.ErrorIs(err, ErrNilClock)

	_, err = New(&Config{DiceRoller: s.mockDiceRoller, Clock: s.mockClock})
	s.ErrorIs(err, ErrNilUUIDGenerator)
}

func (s *OddsServiceTestSuite) TestNewAppliesDefaults() {
	svc, err := New(&Config{
		DiceRoller:    s.mockDiceRoller,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.Equal(defaultMaxDice, svc.maxDice)
	s.Equal(defaultMaxSides, svc.maxSides)
	s.Equal(defaultMaxTrials, svc.maxTrials)
	s.Equal(metrics.Nop{}, svc.metrics)
	s.Nil(svc.queryRepo)
}

func (s *OddsServiceTestSuite) TestCalculateOddsRecordsQuery() {
	s.mockMetrics.EXPECT().ObserveCalculation(kindExact, metrics.ResultPossible, time.Duration(0))
	s.expectSavedQuery(&models.OddsQuery{
		Kind:        models.QueryKindExact,
		DiceCount:   2,
		Sides:       6,
		Target:      7,
		Probability: 0.1667,
	})

	output, err := s.oddsService.CalculateOdds(s.ctx, &CalculateOddsInput{
		Asker:     s.testAsker,
		DiceCount: 2,
		Sides:     6,
		Target:    7,
	})
	s.Require().NoError(err)

	s.Equal(s.testQueryID, output.QueryID)
	s.Equal("2d6", output.Notation)
	s.Equal(0.1667, output.Probability)
	s.Equal(0.5833, output.AtLeast)
	s.Equal(0.5833, output.AtMost)
	s.Equal("6", output.Ways.String())
	s.Equal("36", output.Outcomes.String())
	s.False(output.Impossible)
}

func (s *OddsServiceTestSuite) TestCalculateOddsReferenceValues() {
	testCases := []struct {
		diceCount int
		sides     int
		target    int
		expected  float64
	}{
		{diceCount: 2, sides: 6, target: 3, expected: 0.0556},
		{diceCount: 2, sides: 6, target: 4, expected: 0.0833},
		{diceCount: 2, sides: 3, target: 5, expected: 0.2222},
		{diceCount: 3, sides: 6, target: 7, expected: 0.0694},
		{diceCount: 10, sides: 10, target: 50, expected: 0.0375},
	}

	s.mockMetrics.EXPECT().ObserveCalculation(kindExact, metrics.ResultPossible, gomock.Any()).Times(len(testCases))

	for _, tc := range testCases {
		// No channel means nothing is recorded
		output, err := s.oddsService.CalculateOdds(s.ctx, &CalculateOddsInput{
			DiceCount: tc.diceCount,
			Sides:     tc.sides,
			Target:    tc.target,
		})
		s.Require().NoError(err)
		s.Equal(tc.expected, output.Probability)
		s.Empty(output.QueryID)
	}
}

func (s *OddsServiceTestSuite) TestCalculateOddsImpossibleTarget() {
	s.mockMetrics.EXPECT().ObserveCalculation(kindExact, metrics.ResultImpossible, time.Duration(0))

	output, err := s.oddsService.CalculateOdds(s.ctx, &CalculateOddsInput{
		DiceCount: 10,
		Sides:     20,
		Target:    1000,
	})
	s.Require().NoError(err)
	s.True(output.Impossible)
	s.Zero(output.Probability)
	s.Zero(output.AtLeast)
	s.Equal(1.0, output.AtMost)
}

func (s *OddsServiceTestSuite) TestCalculateOddsInvalidDice() {
	s.mockMetrics.EXPECT().ObserveCalculation(kindExact, metrics.ResultError, time.Duration(0))

	_, err := s.oddsService.CalculateOdds(s.ctx, &CalculateOddsInput{
		Asker:     s.testAsker,
		DiceCount: 0,
		Sides:     6,
		Target:    3,
	})
	s.ErrorIs(err, ErrInvalidDice)
	s.ErrorIs(err, probability.ErrInvalidArgument)
}

func (s *OddsServiceTestSuite) TestCalculateOddsEnforcesLimits() {
	_, err := s.oddsService.CalculateOdds(s.ctx, &CalculateOddsInput{DiceCount: 21, Sides: 6, Target: 30})
	s.ErrorIs(err, ErrTooManyDice)

	_, err = s.oddsService.CalculateOdds(s.ctx, &CalculateOddsInput{DiceCount: 2, Sides: 101, Target: 30})
	s.ErrorIs(err, ErrTooManySides)

	_, err = s.oddsService.CalculateOdds(s.ctx, nil)
	s.Error(err)
}

func (s *OddsServiceTestSuite) TestCalculateOddsSurvivesHistoryFailure() {
	s.mockMetrics.EXPECT().ObserveCalculation(kindExact, metrics.ResultPossible, time.Duration(0))
	s.mockUUID.EXPECT().NewUUID().Return(s.testQueryID)
	s.mockQueryRepo.EXPECT().SaveQuery(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	output, err := s.oddsService.CalculateOdds(s.ctx, &CalculateOddsInput{
		Asker:     s.testAsker,
		DiceCount: 2,
		Sides:     6,
		Target:    3,
	})
	s.Require().NoError(err)
	s.Equal(0.0556, output.Probability)
	s.Empty(output.QueryID)
}

func (s *OddsServiceTestSuite) TestGetDistribution() {
	s.mockMetrics.EXPECT().ObserveCalculation(kindDistribution, metrics.ResultPossible, time.Duration(0))
	s.expectSavedQuery(&models.OddsQuery{
		Kind:      models.QueryKindDistribution,
		DiceCount: 3,
		Sides:     6,
	})

	output, err := s.oddsService.GetDistribution(s.ctx, &GetDistributionInput{
		Asker:     s.testAsker,
		DiceCount: 3,
		Sides:     6,
	})
	s.Require().NoError(err)

	s.Equal(s.testQueryID, output.QueryID)
	s.Equal("3d6", output.Notation)
	s.Equal(3, output.Distribution.Min)
	s.Equal(18, output.Distribution.Max)
	s.Equal([]int{10, 11}, output.Distribution.Modes)
	s.Equal(0.0694, output.Distribution.Probability(7))
}

func (s *OddsServiceTestSuite) TestGetDistributionInvalidDice() {
	s.mockMetrics.EXPECT().ObserveCalculation(kindDistribution, metrics.ResultError, time.Duration(0))

	_, err := s.oddsService.GetDistribution(s.ctx, &GetDistributionInput{DiceCount: 2, Sides: -1})
	s.ErrorIs(err, ErrInvalidDice)
}

func (s *OddsServiceTestSuite) TestSimulateRolls() {
	s.mockDiceRoller.EXPECT().RollSum(2, 6).Return(7).Times(1)
	s.mockDiceRoller.EXPECT().RollSum(2, 6).Return(3).Times(3)
	s.mockMetrics.EXPECT().ObserveCalculation(kindSimulation, metrics.ResultPossible, time.Duration(0))
	s.expectSavedQuery(&models.OddsQuery{
		Kind:        models.QueryKindSimulation,
		DiceCount:   2,
		Sides:       6,
		Target:      7,
		Probability: 0.1667,
		Observed:    0.25,
	})

	output, err := s.oddsService.SimulateRolls(s.ctx, &SimulateRollsInput{
		Asker:     s.testAsker,
		DiceCount: 2,
		Sides:     6,
		Target:    7,
		Trials:    4,
	})
	s.Require().NoError(err)

	s.Equal(4, output.Trials)
	s.Equal(1, output.Hits)
	s.Equal(0.25, output.Observed)
	s.Equal(0.1667, output.Expected)
	s.Equal(0.0833, output.Difference)
}

func (s *OddsServiceTestSuite) TestSimulateRollsDefaultsTrials() {
	s.mockDiceRoller.EXPECT().RollSum(1, 6).Return(6).Times(defaultTrials)
	s.mockMetrics.EXPECT().ObserveCalculation(kindSimulation, metrics.ResultPossible, time.Duration(0))

	output, err := s.oddsService.SimulateRolls(s.ctx, &SimulateRollsInput{
		DiceCount: 1,
		Sides:     6,
		Target:    6,
	})
	s.Require().NoError(err)
	s.Equal(defaultTrials, output.Trials)
	s.Equal(1.0, output.Observed)
	s.Equal(0.1667, output.Expected)
}

func (s *OddsServiceTestSuite) TestSimulateRollsValidatesTrials() {
	_, err := s.oddsService.SimulateRolls(s.ctx, &SimulateRollsInput{DiceCount: 2, Sides: 6, Target: 7, Trials: -1})
	s.ErrorIs(err, ErrInvalidTrials)

	_, err = s.oddsService.SimulateRolls(s.ctx, &SimulateRollsInput{DiceCount: 2, Sides: 6, Target: 7, Trials: 1001})
	s.ErrorIs(err, ErrTooManyTrials)
}

func (s *OddsServiceTestSuite) TestSimulateRollsStopsWhenCancelled() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.oddsService.SimulateRolls(ctx, &SimulateRollsInput{DiceCount: 2, Sides: 6, Target: 7, Trials: 10})
	s.ErrorIs(err, context.Canceled)
}

func (s *OddsServiceTestSuite) TestGetHistory() {
	queries := []*models.OddsQuery{
		{ID: "query-2", ChannelID: s.testChannelID, Kind: models.QueryKindExact},
		{ID: "query-1", ChannelID: s.testChannelID, Kind: models.QueryKindDistribution},
	}
	s.mockQueryRepo.EXPECT().ListQueriesByChannel(gomock.Any(), &queryRepo.ListQueriesByChannelInput{
		ChannelID: s.testChannelID,
		Limit:     defaultHistoryLimit,
	}).Return(queries, nil)

	output, err := s.oddsService.GetHistory(s.ctx, &GetHistoryInput{ChannelID: s.testChannelID})
	s.Require().NoError(err)
	s.Equal(queries, output.Queries)
}

func (s *OddsServiceTestSuite) TestGetHistoryErrors() {
	_, err := s.oddsService.GetHistory(s.ctx, &GetHistoryInput{})
	s.ErrorIs(err, ErrMissingChannel)

	repoErr := errors.New("redis down")
	s.mockQueryRepo.EXPECT().ListQueriesByChannel(gomock.Any(), gomock.Any()).Return(nil, repoErr)
	_, err = s.oddsService.GetHistory(s.ctx, &GetHistoryInput{ChannelID: s.testChannelID, Limit: 5})
	s.ErrorIs(err, repoErr)
}

func (s *OddsServiceTestSuite) TestHistoryDisabledWithoutRepository() {
	svc, err := New(&Config{
		DiceRoller:    s.mockDiceRoller,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)

	_, err = svc.GetHistory(s.ctx, &GetHistoryInput{ChannelID: s.testChannelID})
	s.ErrorIs(err, ErrHistoryDisabled)

	_, err = svc.ClearHistory(s.ctx, &ClearHistoryInput{ChannelID: s.testChannelID})
	s.ErrorIs(err, ErrHistoryDisabled)

	// Calculations still work and record nothing
	output, err := svc.CalculateOdds(s.ctx, &CalculateOddsInput{Asker: s.testAsker, DiceCount: 2, Sides: 6, Target: 7})
	s.Require().NoError(err)
	s.Empty(output.QueryID)
}

func (s *OddsServiceTestSuite) TestClearHistory() {
	s.mockQueryRepo.EXPECT().DeleteChannelQueries(gomock.Any(), &queryRepo.DeleteChannelQueriesInput{
		ChannelID: s.testChannelID,
	}).Return(&queryRepo.DeleteChannelQueriesOutput{Deleted: 3}, nil)

	output, err := s.oddsService.ClearHistory(s.ctx, &ClearHistoryInput{ChannelID: s.testChannelID})
	s.Require().NoError(err)
	s.Equal(3, output.Deleted)

	_, err = s.oddsService.ClearHistory(s.ctx, nil)
	s.ErrorIs(err, ErrMissingChannel)
}
