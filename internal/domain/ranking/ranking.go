// Package ranking computes per-region standings, rating points, and rival
// head-to-head records.
package ranking

import (
	"context"
	"fmt"
	"hash/fnv"

	"github.com/lanebreak/tenpin/internal/domain/effects"
	"github.com/lanebreak/tenpin/internal/domain/model"
)

// Leaderboard synthesis constants. Boards are deterministic so snapshots
// and tests are reproducible.
const (
	fieldSize = 20

	ratingPerAverage    = 10
	ratingPerReputation = 2
	ratingPerStatPoint  = 5
)

// regionBaseAverage anchors the synthetic field strength per tier.
var regionBaseAverage = map[model.Region]float64{
	model.RegionLocal:    168,
	model.RegionRegional: 182,
	model.RegionState:    193,
	model.RegionNational: 203,
	model.RegionProTour:  214,
}

// Engine recomputes standings for one career.
type Engine struct {
	ledger     *effects.Ledger
	thresholds map[model.Region]int
	names      []string

	rivals    []model.Rival
	prevRanks map[model.Region]int
	widest    model.Region
}

// New creates an Engine. Thresholds map region names to the reputation
// required for membership; names seed the synthetic leaderboards.
func New(ledger *effects.Ledger, thresholds map[model.Region]int, names []string, rivals []model.Rival) *Engine {
	e := &Engine{
		ledger:     ledger,
		thresholds: thresholds,
		names:      names,
		prevRanks:  map[model.Region]int{},
		widest:     model.RegionLocal,
	}
	for _, r := range rivals {
		if r.HeadToHead.LastResult == "" {
			r.HeadToHead.LastResult = model.ResultNone
		}
		e.rivals = append(e.rivals, r)
	}
	return e
}

// Restore replaces persisted ranking state from a loaded save.
func (e *Engine) Restore(rivals []model.Rival, prevRanks map[model.Region]int, widest model.Region) {
	if len(rivals) > 0 {
		e.rivals = append(e.rivals[:0], rivals...)
	}
	e.prevRanks = map[model.Region]int{}
	for r, n := range prevRanks {
		e.prevRanks[r] = n
	}
	if widest.IsValid() {
		e.widest = widest
	}
}

// State exposes the persisted portion of the engine for saving.
func (e *Engine) State() ([]model.Rival, map[model.Region]int, model.Region) {
	rivals := make([]model.Rival, len(e.rivals))
	copy(rivals, e.rivals)
	prev := map[model.Region]int{}
	for r, n := range e.prevRanks {
		prev[r] = n
	}
	return rivals, prev, e.widest
}

// Rivals returns the tracked rivals with their head-to-head records.
func (e *Engine) Rivals() []model.Rival {
	out := make([]model.Rival, len(e.rivals))
	copy(out, e.rivals)
	return out
}

// Rival returns the rival with the given id, false when unknown.
func (e *Engine) Rival(id string) (model.Rival, bool) {
	for _, r := range e.rivals {
		if r.ID == id {
			return r, true
		}
	}
	return model.Rival{}, false
}

// ReportMatch folds an explicit match result into a rival's head-to-head
// record. Records never change spontaneously.
func (e *Engine) ReportMatch(ctx context.Context, rivalID string, won bool) error {
	for i := range e.rivals {
		if e.rivals[i].ID != rivalID {
			continue
		}
		if won {
			e.rivals[i].HeadToHead.Wins++
			e.rivals[i].HeadToHead.LastResult = model.ResultWin
		} else {
			e.rivals[i].HeadToHead.Losses++
			e.rivals[i].HeadToHead.LastResult = model.ResultLoss
		}
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnknownRival, rivalID)
}

// RatingPoints computes the player's effective rating from base average,
// reputation, and the ledger's stat contributions.
func (e *Engine) RatingPoints(p *model.Profile) int {
	points := int(p.Average()*ratingPerAverage) + p.Reputation()*ratingPerReputation
	points += ratingPerStatPoint * (e.ledger.TotalStatModifier("accuracy") + e.ledger.TotalStatModifier("power"))
	if points < 0 {
		points = 0
	}
	return points
}

// EffectiveAverage is the average adjusted by active stat modifiers; it is
// what the player competes with on a leaderboard.
func (e *Engine) EffectiveAverage(p *model.Profile) float64 {
	return p.Average() + float64(e.ledger.TotalStatModifier("accuracy")+e.ledger.TotalStatModifier("power"))
}

// memberRegions returns every region the player belongs to. Membership
// widens when a reputation threshold is crossed and never narrows: once a
// tier is reached the player keeps a rank in every narrower tier too.
func (e *Engine) memberRegions(p *model.Profile) []model.Region {
	rep := p.Reputation()
	widest := e.widest
	for _, r := range model.Regions() {
		threshold, ok := e.thresholds[r]
		if !ok {
			continue
		}
		if rep >= threshold && r.Wider(widest) {
			widest = r
		}
	}
	e.widest = widest

	var out []model.Region
	for _, r := range model.Regions() {
		out = append(out, r)
		if r == widest {
			break
		}
	}
	return out
}

// Snapshot recomputes the full rankings view. PreviousRank carries the
// prior snapshot's rank so callers can render movement direction.
func (e *Engine) Snapshot(ctx context.Context, p *model.Profile) model.RankingsSnapshot {
	snap := model.RankingsSnapshot{
		TopBowlers: map[model.Region][]model.RankedBowler{},
		Rivals:     e.Rivals(),
	}

	effective := e.EffectiveAverage(p)
	points := e.RatingPoints(p)

	for _, region := range e.memberRegions(p) {
		board := e.syntheticBoard(region)
		snap.TopBowlers[region] = board

		rank := 1
		for _, b := range board {
			if b.Average > effective {
				rank++
			}
		}

		prev, ok := e.prevRanks[region]
		if !ok {
			prev = rank
		}
		snap.PlayerRankings = append(snap.PlayerRankings, model.PlayerRanking{
			Region:       region,
			Rank:         rank,
			PreviousRank: prev,
			RatingPoints: points,
		})
		e.prevRanks[region] = rank
	}

	return snap
}

// syntheticBoard builds the deterministic field for a region. Names are
// drawn from the pool with a region-specific offset; averages descend from
// the tier's base strength with a stable per-bowler wobble.
func (e *Engine) syntheticBoard(region model.Region) []model.RankedBowler {
	base := regionBaseAverage[region]
	offset := int(hashOf(string(region)))

	board := make([]model.RankedBowler, 0, fieldSize)
	for i := 0; i < fieldSize; i++ {
		name := e.names[(offset+i)%len(e.names)]
		// Wobble stays under the 0.8 per-rank step so averages keep
		// descending with rank.
		wobble := float64(hashOf(name+string(region))%7) / 10
		board = append(board, model.RankedBowler{
			ID:           fmt.Sprintf("%s-%02d", region, i+1),
			Name:         name,
			Rank:         i + 1,
			PreviousRank: i + 1,
			Average:      base + float64(fieldSize-i)*0.8 + wobble,
		})
	}
	return board
}

func hashOf(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return h.Sum32()
}
