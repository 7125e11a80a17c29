package messaging

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	svc Service
	ctx context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	svc, err := NewService(&ServiceConfig{Rand: rand.New(rand.NewSource(7))})
	s.Require().NoError(err)
	s.svc = svc
	s.ctx = context.Background()
}

func TestMessagingServiceSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) TestJoinMessageMentionsName() {
	for _, alreadyJoined := range []bool{false, true} {
		output, err := s.svc.GetJoinMessage(s.ctx, &GetJoinMessageInput{DisplayName: "Alice", AlreadyJoined: alreadyJoined})
		s.Require().NoError(err)
		s.Contains(output.Message, "Alice")
		s.Equal(ToneFunny, output.Tone)
	}
}

func (s *MessagingServiceTestSuite) TestRecommendationMessage() {
	testCases := []struct {
		name     string
		input    *GetRecommendationMessageInput
		title    string
		contains string
	}{
		{
			name:  "empty pool",
			input: &GetRecommendationMessageInput{},
			title: "The shelf is empty",
		},
		{
			name:  "nothing eligible",
			input: &GetRecommendationMessageInput{CandidateCount: 3},
			title: "No eligible games",
		},
		{
			name:     "promoted",
			input:    &GetRecommendationMessageInput{CandidateCount: 3, TopPickName: "Azul", Promoted: true},
			title:    "Host's pick",
			contains: "Azul",
		},
		{
			name:     "voted with vetoes",
			input:    &GetRecommendationMessageInput{CandidateCount: 3, TopPickName: "Pandemic", VetoedCount: 2},
			title:    "Tonight's pick",
			contains: "2 game(s)",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			output, err := s.svc.GetRecommendationMessage(s.ctx, tc.input)
			s.Require().NoError(err)
			s.Equal(tc.title, output.Title)
			s.NotEmpty(output.Message)
			if tc.contains != "" {
				s.Contains(output.Message, tc.contains)
			}
		})
	}
}

func (s *MessagingServiceTestSuite) TestCommitMessageMentionsRepeats() {
	output, err := s.svc.GetCommitMessage(s.ctx, &GetCommitMessageInput{ItemName: "Azul", PreviousCount: 3})
	s.Require().NoError(err)
	s.Contains(output.Message, "Azul")
	s.Contains(output.Message, "3")
}

func (s *MessagingServiceTestSuite) TestErrorMessageFallsBack() {
	output, err := s.svc.GetErrorMessage(s.ctx, &GetErrorMessageInput{ErrorType: "mystery"})
	s.Require().NoError(err)
	s.Equal("Something went wrong", output.Title)

	output, err = s.svc.GetErrorMessage(s.ctx, &GetErrorMessageInput{ErrorType: ErrorTypeNoSession})
	s.Require().NoError(err)
	s.Contains(output.Message, "/gamenight start")
}

func (s *MessagingServiceTestSuite) TestNilInput() {
	_, err := s.svc.GetErrorMessage(s.ctx, nil)
	s.Error(err)
}
