package engine

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerr "github.com/saeidalz13/battleship-console/internal/error"
	mb "github.com/saeidalz13/battleship-console/models/battleship"
)

func newPlayer(name string) *mb.Player {
	return mb.NewPlayer(name, mb.NewDefaultBoard(nil))
}

func TestNewValidatesSides(t *testing.T) {
	_, err := New(&Side{Player: newPlayer("a")}, &Side{Player: newPlayer("b"), Strategy: &scriptedStrategy{}})
	require.Error(t, err)

	_, err = New(nil, &Side{Player: newPlayer("b"), Strategy: &scriptedStrategy{}})
	require.Error(t, err)
}

func TestWithGameID(t *testing.T) {
	first := &Side{Player: newPlayer("a"), Strategy: &scriptedStrategy{}}
	second := &Side{Player: newPlayer("b"), Strategy: &scriptedStrategy{}}

	_, err := New(first, second, WithGameID("not-a-uuid"))
	require.Error(t, err)

	id := "0b7e6c2a-3f53-4c8e-9d8f-5d7c4d1d2a11"
	e, err := New(first, second, WithGameID(id))
	require.NoError(t, err)
	assert.Equal(t, id, e.Game().Uuid)
}

func TestRunRandomAgainstRandom(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		first := &Side{Player: newPlayer("Ann"), Strategy: NewRandomStrategy(rand.New(rand.NewSource(seed)), nil)}
		second := &Side{Player: newPlayer("Bob"), Strategy: NewRandomStrategy(rand.New(rand.NewSource(seed+100)), nil), Background: true}

		observer := &recordingObserver{}
		recorder := &fakeRecorder{}
		e, err := New(first, second,
			WithLogger(log.New(io.Discard)),
			WithObserver(observer),
			WithRecorder(recorder),
		)
		require.NoError(t, err)

		result, err := e.Run(context.Background())
		require.NoError(t, err)

		game := e.Game()
		require.True(t, game.IsFinished())
		assert.True(t, game.Loser().IsDefeated())
		assert.False(t, game.Winner().IsDefeated())
		assert.Equal(t, game.Winner().Name(), result.Winner)
		assert.Equal(t, game.Loser().Name(), result.Loser)
		assert.Equal(t, game.Uuid, result.GameID)

		for _, p := range game.Players() {
			b := p.Board()
			assert.Equal(t, mb.StandardFleet.Size(), b.TotalShipsPlaced())
			assert.Equal(t, b.TotalShipsPlaced(), b.ShipsRemaining()+b.SunkShipsCount())
		}

		require.Len(t, recorder.results, 1)
		assert.Equal(t, result, recorder.results[0])
		require.NotNil(t, observer.result)
		assert.Equal(t, result.TotalMoves(), game.Players()[0].Stats().Moves+game.Players()[1].Stats().Moves)
		assert.GreaterOrEqual(t, result.TotalMoves(), 20)
	}
}

func TestPlayTurnRules(t *testing.T) {
	annTargets := []mb.Coordinate{
		{X: 0, Y: 0},  // hit
		{X: 0, Y: 0},  // repeated, Ann keeps the turn
		{X: 12, Y: 0}, // off the board, asked again
		{X: 9, Y: 9},  // miss
	}
	annTargets = append(annTargets, layoutCells()[1:]...)

	ann := &Side{Player: newPlayer("Ann"), Strategy: &scriptedStrategy{targets: annTargets}}
	bob := &Side{Player: newPlayer("Bob"), Strategy: &scriptedStrategy{targets: []mb.Coordinate{{X: 9, Y: 8}}}}

	observer := &recordingObserver{}
	e, err := New(ann, bob, WithObserver(observer))
	require.NoError(t, err)

	result, err := e.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ann", result.Winner)

	require.GreaterOrEqual(t, len(observer.events), 6)
	assert.Equal(t, event{kind: "started"}, observer.events[0])
	assert.Equal(t, event{kind: "resolved", attacker: "Ann", target: mb.Coordinate{X: 0, Y: 0}, outcome: mb.OutcomeHit}, observer.events[1])
	assert.Equal(t, event{kind: "resolved", attacker: "Ann", target: mb.Coordinate{X: 0, Y: 0}, outcome: mb.OutcomeAlreadyAttacked}, observer.events[2])
	assert.Equal(t, event{kind: "rejected", attacker: "Ann", target: mb.Coordinate{X: 12, Y: 0}}, observer.events[3])
	assert.Equal(t, event{kind: "resolved", attacker: "Ann", target: mb.Coordinate{X: 9, Y: 9}, outcome: mb.OutcomeMiss}, observer.events[4])
	assert.Equal(t, event{kind: "resolved", attacker: "Bob", target: mb.Coordinate{X: 9, Y: 8}, outcome: mb.OutcomeMiss}, observer.events[5])

	stats := ann.Player.Stats()
	assert.Equal(t, 21, stats.Moves)
	assert.Equal(t, 19, stats.LongestStreak)
	assert.Equal(t, 1, bob.Player.Stats().Moves)
}

func TestRecorderFailureDoesNotFailGame(t *testing.T) {
	ann := &Side{Player: newPlayer("Ann"), Strategy: &scriptedStrategy{targets: layoutCells()}}
	bob := &Side{Player: newPlayer("Bob"), Strategy: &scriptedStrategy{}}

	recorder := &fakeRecorder{err: errors.New("connection refused")}
	e, err := New(ann, bob, WithRecorder(recorder))
	require.NoError(t, err)

	result, err := e.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ann", result.Winner)
	assert.Len(t, recorder.results, 1)
}

func TestPlaceShipsForegroundFailure(t *testing.T) {
	boom := errors.New("input closed")
	ann := &Side{Player: newPlayer("Ann"), Strategy: &scriptedStrategy{placeErr: boom}}
	bob := &Side{Player: newPlayer("Bob"), Strategy: NewRandomStrategy(rand.New(rand.NewSource(7)), nil), Background: true}

	e, err := New(ann, bob)
	require.NoError(t, err)

	err = e.PlaceShips(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Equal(t, mb.PhasePlacingShips, e.Game().Phase())
}

func TestPlaceShipsBackgroundFailure(t *testing.T) {
	boom := errors.New("broken")
	ann := &Side{Player: newPlayer("Ann"), Strategy: &scriptedStrategy{}}
	bob := &Side{Player: newPlayer("Bob"), Strategy: &scriptedStrategy{placeErr: boom}, Background: true}

	e, err := New(ann, bob)
	require.NoError(t, err)

	err = e.PlaceShips(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Equal(t, mb.PhasePlacingShips, e.Game().Phase())
}

func TestPlayBeforePlacement(t *testing.T) {
	e, err := New(
		&Side{Player: newPlayer("Ann"), Strategy: &scriptedStrategy{}},
		&Side{Player: newPlayer("Bob"), Strategy: &scriptedStrategy{}},
	)
	require.NoError(t, err)

	_, err = e.Play(context.Background())
	require.ErrorIs(t, err, cerr.ErrInvariantViolation)
}

func TestPlayStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ann := &Side{Player: newPlayer("Ann"), Strategy: &scriptedStrategy{targets: layoutCells()}, ShotDelay: time.Hour}
	bob := &Side{Player: newPlayer("Bob"), Strategy: &scriptedStrategy{}}

	observer := &recordingObserver{onShot: cancel}
	e, err := New(ann, bob, WithObserver(observer))
	require.NoError(t, err)

	_, err = e.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, e.Game().IsFinished())
}

func TestPlaceShipsWaitsForBackgroundSide(t *testing.T) {
	release := make(chan struct{})
	ann := &Side{Player: newPlayer("Ann"), Strategy: &scriptedStrategy{}}
	bob := &Side{Player: newPlayer("Bob"), Strategy: &gatedStrategy{release: release}, Background: true}

	observer := &recordingObserver{waitingFor: make(chan string, 1)}
	e, err := New(ann, bob, WithObserver(observer))
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		done <- e.PlaceShips(context.Background())
	}()

	select {
	case name := <-observer.waitingFor:
		assert.Equal(t, "Bob", name)
	case <-time.After(2 * time.Second):
		t.Fatal("no waiting notice while the background side was still placing")
	}

	select {
	case err := <-done:
		t.Fatalf("PlaceShips returned before the background side finished: %v", err)
	case <-time.After(50 * time.Millisecond):
	}
	assert.Equal(t, 0, bob.Player.Board().TotalShipsPlaced())

	close(release)
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("PlaceShips did not return after the background side finished")
	}

	assert.Equal(t, mb.PhaseAwaitingTurn, e.Game().Phase())
	assert.Equal(t, mb.StandardFleet.Size(), bob.Player.Board().TotalShipsPlaced())
	assert.Equal(t, []string{"Bob"}, observer.waiting)
}

func TestRunStopsWhileHumanIsPrompted(t *testing.T) {
	prompt := &silentHumanIO{asked: make(chan struct{}, 1)}
	ann := &Side{Player: newPlayer("Ann"), Strategy: NewHumanStrategy(prompt, nil)}
	bob := &Side{Player: newPlayer("Bob"), Strategy: NewRandomStrategy(rand.New(rand.NewSource(5)), nil), Background: true}

	e, err := New(ann, bob)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		_, err := e.Run(ctx)
		done <- err
	}()

	<-prompt.asked
	cancel()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel while waiting for input")
	}
	assert.Equal(t, mb.PhasePlacingShips, e.Game().Phase())
}

func TestBackgroundFailureInterruptsForegroundPlacement(t *testing.T) {
	boom := errors.New("broken")
	prompt := &silentHumanIO{asked: make(chan struct{}, 1)}
	ann := &Side{Player: newPlayer("Ann"), Strategy: NewHumanStrategy(prompt, nil)}
	bob := &Side{Player: newPlayer("Bob"), Strategy: &scriptedStrategy{placeErr: boom}, Background: true}

	e, err := New(ann, bob)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		done <- e.PlaceShips(context.Background())
	}()

	select {
	case err := <-done:
		require.ErrorIs(t, err, boom)
	case <-time.After(2 * time.Second):
		t.Fatal("foreground placement kept waiting after the background side failed")
	}
	assert.Equal(t, mb.PhasePlacingShips, e.Game().Phase())
}
