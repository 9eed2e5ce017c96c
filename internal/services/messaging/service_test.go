package messaging

import (
	"context"
	"testing"

	"github.com/KirkDiggler/probably-dice/internal/dice/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockDiceRoller *mocks.MockRoller
	service        Service
	ctx            context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockDiceRoller = mocks.NewMockRoller(s.ctrl)
	s.ctx = context.Background()

	var err error
	s.service, err = NewService(&Config{
		DiceRoller: s.mockDiceRoller,
	})
	s.Require().NoError(err)
}

func (s *MessagingServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestMessagingServiceSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) TestNewServiceRequiresRoller() {
	_, err := NewService(nil)
	s.Error(err)

	_, err = NewService(&Config{})
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestGetOddsMessageTones() {
	testCases := []struct {
		name  string
		input *GetOddsMessageInput
		tone  MessageTone
	}{
		{name: "impossible", input: &GetOddsMessageInput{Impossible: true}, tone: ToneSarcastic},
		{name: "likely", input: &GetOddsMessageInput{Probability: 0.5}, tone: ToneEncouraging},
		{name: "fair", input: &GetOddsMessageInput{Probability: 0.1667}, tone: ToneNeutral},
		{name: "long shot", input: &GetOddsMessageInput{Probability: 0.0278}, tone: ToneFunny},
		{name: "miracle", input: &GetOddsMessageInput{Probability: 0.0001}, tone: ToneFunny},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockDiceRoller.EXPECT().Roll(3).Return(1)

			output, err := s.service.GetOddsMessage(s.ctx, tc.input)
			s.Require().NoError(err)
			s.Equal(tc.tone, output.Tone)
			s.NotEmpty(output.Message)
		})
	}
}

func (s *MessagingServiceTestSuite) TestGetOddsMessageUsesRoll() {
	s.mockDiceRoller.EXPECT().Roll(3).Return(3)

	output, err := s.service.GetOddsMessage(s.ctx, &GetOddsMessageInput{Impossible: true})
	s.Require().NoError(err)
	s.Equal("Impossible. Not unlikely, impossible.", output.Message)
}

func (s *MessagingServiceTestSuite) TestGetSimulationMessage() {
	testCases := []struct {
		name     string
		observed float64
		tone     MessageTone
	}{
		{name: "close", observed: 0.17, tone: ToneNeutral},
		{name: "lucky", observed: 0.2, tone: ToneEncouraging},
		{name: "unlucky", observed: 0.1, tone: ToneSarcastic},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockDiceRoller.EXPECT().Roll(3).Return(2)

			output, err := s.service.GetSimulationMessage(s.ctx, &GetSimulationMessageInput{
				Observed: tc.observed,
				Expected: 0.1667,
			})
			s.Require().NoError(err)
			s.Equal(tc.tone, output.Tone)
		})
	}
}

func (s *MessagingServiceTestSuite) TestNilInput() {
	_, err := s.service.GetOddsMessage(s.ctx, nil)
	s.Error(err)

	_, err = s.service.GetSimulationMessage(s.ctx, nil)
	s.Error(err)
}
