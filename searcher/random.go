package searcher

import (
	"chess/experiments/metrics"
	"chess/game"

	"golang.org/x/exp/rand"
)

// Random plays a uniformly random playable move. It is the baseline opponent in experiments.
type Random struct {
	rng       *rand.Rand
	collector metrics.Collector
	last      metrics.SearchMetric
}

func NewRandom(seed uint64) *Random {
	return &Random{
		rng:       rand.New(rand.NewSource(seed)),
		collector: metrics.NewDummyCollector(),
	}
}

func (r *Random) String() string {
	return "Random"
}

func (r *Random) Execute(board *game.Board) game.Move {
	r.collector.Start(r.String(), 0)
	player := board.CurrentPlayer()
	playable := []game.Move{}
	for _, move := range player.LegalMoves() {
		if player.MakeMove(move).Status().IsDone() {
			playable = append(playable, move)
		}
	}
	r.last = r.collector.Complete()
	if len(playable) == 0 {
		return game.NullMove()
	}
	return playable[r.rng.Intn(len(playable))]
}

func (r *Random) NumBoardsEvaluated() int64 {
	return r.collector.Boards()
}

func (r *Random) Metrics() metrics.SearchMetric {
	return r.last
}
