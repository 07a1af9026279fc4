// Package bot provides computer opponents.
package bot

import (
	"context"
	"math/rand"
	"time"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/engine"
	"github.com/lgbarn/termchess-go/internal/errors"
)

// Bot picks a move for colour. Implementations must return a move listed by
// engine.AllLegalMoves and must not modify the board.
type Bot interface {
	NextMove(ctx context.Context, board *chess.Board, colour chess.Colour) (from, to chess.Coord, err error)
}

// RandomBot waits for its think delay and then plays a uniformly chosen
// piece, then a uniformly chosen destination of that piece.
type RandomBot struct {
	delay time.Duration
	rng   *rand.Rand
}

// Option configures a RandomBot.
type Option func(*RandomBot)

// WithDelay sets the think delay. Negative values are ignored.
func WithDelay(d time.Duration) Option {
	return func(b *RandomBot) {
		if d >= 0 {
			b.delay = d
		}
	}
}

// WithSeed makes the bot's choices reproducible.
func WithSeed(seed int64) Option {
	return func(b *RandomBot) {
		b.rng = rand.New(rand.NewSource(seed))
	}
}

// NewRandomBot creates a RandomBot. Default: 1s delay, clock-seeded.
func NewRandomBot(opts ...Option) *RandomBot {
	b := &RandomBot{delay: time.Second}
	for _, opt := range opts {
		opt(b)
	}
	if b.rng == nil {
		b.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return b
}

// Delay returns the think delay.
func (b *RandomBot) Delay() time.Duration {
	return b.delay
}

// NextMove implements Bot.
func (b *RandomBot) NextMove(ctx context.Context, board *chess.Board, colour chess.Colour) (chess.Coord, chess.Coord, error) {
	if err := b.think(ctx); err != nil {
		return chess.Coord{}, chess.Coord{}, err
	}

	all := engine.AllLegalMoves(board, colour)
	if len(all) == 0 {
		return chess.Coord{}, chess.Coord{}, errors.ErrNoLegalMoves
	}
	group := all[b.rng.Intn(len(all))]
	return group.Piece.Pos, group.To[b.rng.Intn(len(group.To))], nil
}

func (b *RandomBot) think(ctx context.Context) error {
	if b.delay == 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(b.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
