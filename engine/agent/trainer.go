package agent

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	engine "github.com/jason-s-yu/rummy/engine"
	"github.com/sirupsen/logrus"
)

var (
	// ErrNoLearnerSeat is returned when every seat is a bot.
	ErrNoLearnerSeat = errors.New("at least one seat must be a non-bot player")
	// ErrSeatMismatch is returned when the game was re-seated behind the
	// trainer's back.
	ErrSeatMismatch = errors.New("game players do not match trainer seats")
)

// EpisodeResult summarises one finished episode.
type EpisodeResult struct {
	Episode    int
	Winner     string // empty when the turn budget ran out
	LearnerWon bool
	Rounds     int
	Reward     float64 // total reward collected by non-bot seats
}

// TrainResult summarises a run of episodes.
type TrainResult struct {
	RunID    uuid.UUID
	Episodes int
	Wins     int
	History  []EpisodeResult
}

// WinRate is Wins / Episodes, or 0 for an empty run.
func (r TrainResult) WinRate() float64 {
	if r.Episodes == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.Episodes)
}

// Trainer drives a Game with a Learner in every non-bot seat.
type Trainer struct {
	Game    *engine.Game
	Learner *Learner
	Epsilon float64
	Logger  logrus.FieldLogger
	// LogEvery controls how often progress is logged at Info; 0 disables it.
	LogEvery int
	// OnEpisode, when set, is called after each episode.
	OnEpisode func(EpisodeResult)

	seats   []*engine.Player
	started bool // the game has been reset with seats at least once
}

// NewTrainer validates the seats and returns a trainer using the game's rules.
func NewTrainer(g *engine.Game, l *Learner, seats []*engine.Player, epsilon float64) (*Trainer, error) {
	hasLearner := false
	for _, s := range seats {
		if !s.Bot {
			hasLearner = true
			break
		}
	}
	if !hasLearner {
		return nil, ErrNoLearnerSeat
	}
	return &Trainer{
		Game:     g,
		Learner:  l,
		Epsilon:  epsilon,
		Logger:   logrus.StandardLogger(),
		LogEvery: 1000,
		seats:    seats,
	}, nil
}

// Train plays episodes with epsilon-greedy exploration, updating the value
// table after every learner decision.
func (t *Trainer) Train(ctx context.Context, episodes int) (TrainResult, error) {
	return t.run(ctx, episodes, t.Epsilon, true)
}

// Evaluate plays episodes greedily without touching the value table.
func (t *Trainer) Evaluate(ctx context.Context, episodes int) (TrainResult, error) {
	return t.run(ctx, episodes, 0, false)
}

func (t *Trainer) run(ctx context.Context, episodes int, epsilon float64, learn bool) (TrainResult, error) {
	res := TrainResult{
		RunID:   uuid.New(),
		History: make([]EpisodeResult, 0, episodes),
	}
	log := t.Logger.WithFields(logrus.Fields{
		"run_id": res.RunID,
		"learn":  learn,
	})

	for ep := 0; ep < episodes; ep++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		er, err := t.playEpisode(ep, epsilon, learn)
		if err != nil {
			return res, fmt.Errorf("episode %d: %w", ep, err)
		}
		res.Episodes++
		if er.LearnerWon {
			res.Wins++
		}
		res.History = append(res.History, er)
		if t.OnEpisode != nil {
			t.OnEpisode(er)
		}

		log.WithFields(logrus.Fields{
			"episode": ep,
			"winner":  er.Winner,
			"rounds":  er.Rounds,
			"reward":  er.Reward,
		}).Debug("episode finished")
		if t.LogEvery > 0 && (ep+1)%t.LogEvery == 0 {
			log.WithFields(logrus.Fields{
				"episodes": res.Episodes,
				"wins":     res.Wins,
				"win_rate": res.WinRate(),
			}).Info("training progress")
		}
	}
	return res, nil
}

// playEpisode snapshots points, resets the table, shuffles seating, and
// plays until terminal.
func (t *Trainer) playEpisode(ep int, epsilon float64, learn bool) (EpisodeResult, error) {
	g := t.Game
	players, err := t.seating()
	if err != nil {
		return EpisodeResult{}, err
	}
	if err := g.Reset(players, g.Rules.MaxTurns); err != nil {
		return EpisodeResult{}, err
	}
	t.started = true
	g.ShufflePlayers()

	er := EpisodeResult{Episode: ep}
	start := g.TurnsLeft()
	turn := func(g *engine.Game, p *engine.Player) error {
		r, err := t.playTurn(g, p, epsilon, learn)
		er.Reward += r
		return err
	}
	if err := g.PlayEpisode(turn); err != nil {
		return er, err
	}

	er.Rounds = start - g.TurnsLeft()
	if w := g.Winner(); w != nil {
		er.Winner = w.Name
		er.LearnerWon = !w.Bot
	}
	return er, nil
}

// seating returns the templates for the next Reset. The first episode seats
// t.seats; later episodes reuse the game's players, with points set from
// their stashes, as long as they are still the same seats.
func (t *Trainer) seating() ([]*engine.Player, error) {
	if !t.started {
		return t.seats, nil
	}
	players := t.Game.Players()
	if !sameSeats(players, t.seats) {
		return nil, ErrSeatMismatch
	}
	for _, p := range players {
		p.Points = p.StashScore()
	}
	return players, nil
}

// sameSeats compares by name and bot flag, ignoring seating order.
func sameSeats(players, seats []*engine.Player) bool {
	if len(players) != len(seats) {
		return false
	}
	want := make(map[string]bool, len(seats))
	for _, s := range seats {
		want[s.Name] = s.Bot
	}
	for _, p := range players {
		bot, ok := want[p.Name]
		if !ok || bot != p.Bot {
			return false
		}
	}
	return true
}

// playTurn makes the learner's pick then drop decision for p and returns
// the reward collected.
func (t *Trainer) playTurn(g *engine.Game, p *engine.Player, epsilon float64, learn bool) (float64, error) {
	l := t.Learner
	top, _ := g.PileTop()
	s := EncodePickState(p.Stash(), top)
	a := l.SelectAction(s, KindPick, epsilon)

	pick, err := g.PickCard(p, engine.PickAction(a))
	if err != nil {
		return 0, err
	}
	total := float64(pick.Reward)
	s1 := State(pick.State)
	a1 := l.SelectAction(s1, KindDrop, epsilon)
	if learn {
		l.Update(KindPick, s, a, float64(pick.Reward), s1, a1)
	}
	s, a = s1, a1

	stash := p.Stash()
	switch len(stash) {
	case 0:
		// Every card melded; nothing left to drop.
		return total, nil
	case 1:
		// Dropping the last card empties the stash and wins.
		_, err := g.DropCard(p, stash[0])
		return total, err
	}

	card := stash[min(a, len(stash)-1)]
	drop, err := g.DropCard(p, card)
	if err != nil {
		return total, err
	}
	total += float64(drop.Reward)

	top, _ = g.PileTop()
	s1 = EncodePickState(p.Stash(), top)
	a1 = l.SelectAction(s1, KindPick, epsilon)
	if learn {
		l.Update(KindDrop, s, a, float64(drop.Reward), s1, a1)
	}
	return total, nil
}
