package battleclient_test

import (
	"errors"
	"testing"

	"github.com/battlekit/engine/battle"
	"github.com/battlekit/engine/battleclient"
	"github.com/battlekit/engine/battleerr"
	"github.com/stretchr/testify/suite"
)

type fakeServerSink struct {
	id           battle.EventSinkID
	sent         []battle.ClientEventPrototype
	failNext     bool
	disconnected bool
}

func (f *fakeServerSink) ID() battle.EventSinkID { return f.id }
func (f *fakeServerSink) OnDisconnect()           { f.disconnected = true }
func (f *fakeServerSink) Send(proto battle.ClientEventPrototype) error {
	if f.failNext {
		return errors.New("upstream unreachable")
	}
	f.sent = append(f.sent, proto)
	return nil
}

type ClientTestSuite struct {
	suite.Suite
	client *battleclient.Client
	sink   *fakeServerSink
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.sink = &fakeServerSink{id: "upstream"}
	s.client = battleclient.NewBuilder(battle.NewBattle(&battle.Binding{}), s.sink).Build()
}

func (s *ClientTestSuite) TestFireShipsThePrototypeUpstreamWithNoPlayerByDefault() {
	err := s.client.Fire(&battle.CreateTeam{TeamID: "alpha"})
	s.Require().NoError(err)
	s.Require().Len(s.sink.sent, 1)
	s.Nil(s.sink.sent[0].Player)
	s.Equal(battle.KindCreateTeam, s.sink.sent[0].Event.Kind())
}

func (s *ClientTestSuite) TestFireDoesNotApplyOptimistically() {
	err := s.client.Fire(&battle.CreateTeam{TeamID: "alpha"})
	s.Require().NoError(err)
	s.Equal(0, s.client.Battle().History.Len(), "the mirror must only advance once the server echoes the event back")
}

func (s *ClientTestSuite) TestFireAttachesPlayerWhenAuthenticationIsEnabled() {
	client := battleclient.NewBuilder(battle.NewBattle(&battle.Binding{}), s.sink).
		EnableAuthentication("player-1").
		Build()

	s.Require().NoError(client.Fire(&battle.CreateTeam{TeamID: "alpha"}))
	s.Require().Len(s.sink.sent, 1)
	s.Require().NotNil(s.sink.sent[0].Player)
	s.Equal(battle.PlayerID("player-1"), *s.sink.sent[0].Player)
}

func (s *ClientTestSuite) TestFireSurfacesTheUpstreamSendFailure() {
	s.sink.failNext = true
	err := s.client.Fire(&battle.CreateTeam{TeamID: "alpha"})
	s.Require().Error(err)
}

func (s *ClientTestSuite) TestFireFailsWithNoUpstreamAttached() {
	client := battleclient.NewBuilder(battle.NewBattle(&battle.Binding{}), nil).Build()
	err := client.Fire(&battle.CreateTeam{TeamID: "alpha"})
	s.Require().Error(err)
	s.True(battleerr.Is(err, battleerr.CodeEventSinkNotFound))
}

func (s *ClientTestSuite) TestReceiveAppliesToTheMirror() {
	w := battle.VersionedEventWrapper{EventID: 0, Version: 0, Event: &battle.CreateTeam{TeamID: "alpha"}}
	_, err := s.client.Receive(w)
	s.Require().NoError(err)
	_, ok := s.client.Battle().Store.Team("alpha")
	s.True(ok)
}

func (s *ClientTestSuite) TestSetServerSinkDisconnectsThePreviousSink() {
	replacement := &fakeServerSink{id: "replacement"}
	s.client.SetServerSink(replacement)
	s.True(s.sink.disconnected)

	s.Require().NoError(s.client.Fire(&battle.CreateTeam{TeamID: "alpha"}))
	s.Require().Len(replacement.sent, 1)
	s.Empty(s.sink.sent)
}
