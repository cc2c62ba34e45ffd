package battleerr_test

import (
	"errors"
	"testing"

	"github.com/battlekit/engine/battleerr"
	"github.com/stretchr/testify/suite"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestBasicError() {
	err := battleerr.TeamNotFound("team-1")

	s.Equal(battleerr.CodeTeamNotFound, battleerr.GetCode(err))
	s.Contains(err.Error(), "team-1")
	s.Equal("team-1", battleerr.GetMeta(err)["team_id"])
}

func (s *ErrorsTestSuite) TestIs() {
	err := battleerr.RoundInProgress()
	s.True(battleerr.Is(err, battleerr.CodeRoundInProgress))
	s.False(battleerr.Is(err, battleerr.CodeTeamNotFound))
}

func (s *ErrorsTestSuite) TestEventSinkErrorWrapsCause() {
	cause := errors.New("connection reset")
	err := battleerr.EventSinkError(cause)

	s.Equal(battleerr.CodeEventSinkError, battleerr.GetCode(err))
	s.Equal(cause, errors.Unwrap(err))
	s.True(errors.Is(err, cause))
}

func (s *ErrorsTestSuite) TestNonContiguousEventID() {
	err := battleerr.NonContiguousEventID(1, 0)
	meta := battleerr.GetMeta(err)
	s.Equal(1, meta["got"])
	s.Equal(0, meta["expected"])
}

func (s *ErrorsTestSuite) TestInvalidEventRange() {
	err := battleerr.InvalidEventRange(5, 7, 4)
	meta := battleerr.GetMeta(err)
	s.Equal(5, meta["start"])
	s.Equal(7, meta["end"])
	s.Equal(4, meta["history_len"])
}

func (s *ErrorsTestSuite) TestAuthenticationError() {
	err := battleerr.AuthenticationError("player-1", "team-1")
	s.Equal(battleerr.CodeAuthenticationError, battleerr.GetCode(err))
	s.Equal("player-1", battleerr.GetMeta(err)["player_id"])
	s.Equal("team-1", battleerr.GetMeta(err)["team_id"])
}

func (s *ErrorsTestSuite) TestGetCodeOnPlainError() {
	s.Equal(battleerr.CodeInternal, battleerr.GetCode(errors.New("boom")))
	s.Nil(battleerr.GetMeta(errors.New("boom")))
}
