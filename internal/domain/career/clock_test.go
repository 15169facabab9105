package career_test

import (
	"context"
	"math/rand"
	"testing"

	career "github.com/lanebreak/tenpin/internal/domain/career"
	"github.com/lanebreak/tenpin/internal/domain/catalog"
	"github.com/lanebreak/tenpin/internal/domain/challenge"
	"github.com/lanebreak/tenpin/internal/domain/economy"
	"github.com/lanebreak/tenpin/internal/domain/effects"
	"github.com/lanebreak/tenpin/internal/domain/event"
	"github.com/lanebreak/tenpin/internal/domain/model"
	"github.com/lanebreak/tenpin/internal/domain/ranking"
	. "github.com/smartystreets/goconvey/convey"
)

type noCatalog struct{}

func (noCatalog) RecoveryAction(string) (model.RecoveryAction, bool) {
	return model.RecoveryAction{}, false
}

// fixture wires a minimal component graph around a clock.
type fixture struct {
	ledger   *effects.Ledger
	tracker  *challenge.Tracker
	resolver *event.Resolver
	clock    *career.Clock
}

func newFixture(seasonLength int, ledgerOpts ...effects.Option) *fixture {
	guard := economy.New(100)
	ledger := effects.New(guard, noCatalog{}, ledgerOpts...)
	tracker := challenge.New(guard, []catalog.ChallengeTemplate{
		{ID: "grind", Objective: model.ObjectivePlayGames, Name: "Grinder", Target: 3},
		{ID: "win", Objective: model.ObjectiveWinMatches, Name: "Closer", Target: 2},
	}, challenge.WithWeeklyCount(2), challenge.WithRand(rand.New(rand.NewSource(1))))
	resolver := event.New(guard, ledger, nil, event.WithChances(0, 0))
	rankings := ranking.New(ledger,
		map[model.Region]int{model.RegionLocal: 0},
		[]string{"Al", "Bo", "Cy", "Di"}, nil)

	return &fixture{
		ledger:   ledger,
		tracker:  tracker,
		resolver: resolver,
		clock: career.New(ledger, tracker, resolver, rankings,
			career.WithSeasonLength(seasonLength)),
	}
}

func TestClock_AdvanceWeek(t *testing.T) {
	Convey("Given a career at season 1, week 1", t, func() {
		f := newFixture(20)
		p := &model.Profile{CurrentSeason: 1, CurrentWeek: 1, Energy: 80}

		Convey("When the week advances", func() {
			report := f.clock.AdvanceWeek(context.Background(), p)

			Convey("Then the clock lands on week 2", func() {
				So(report.Season, ShouldEqual, 1)
				So(report.Week, ShouldEqual, 2)
				So(report.SeasonRolled, ShouldBeFalse)
				So(p.CurrentWeek, ShouldEqual, 2)
			})

			Convey("And a fresh challenge set is installed", func() {
				So(report.Challenges, ShouldHaveLength, 2)
				So(report.Challenges[0].Progress, ShouldEqual, 0)
			})

			Convey("And the rankings snapshot rides along", func() {
				So(report.Rankings.TopBowlers, ShouldContainKey, model.RegionLocal)
			})
		})
	})
}

func TestClock_SeasonRollover(t *testing.T) {
	Convey("Given a career at the final week of the season", t, func() {
		f := newFixture(20)
		p := &model.Profile{CurrentSeason: 3, CurrentWeek: 20, Energy: 80}

		Convey("When the week advances", func() {
			report := f.clock.AdvanceWeek(context.Background(), p)

			Convey("Then the season rolls to week 1", func() {
				So(report.Season, ShouldEqual, 4)
				So(report.Week, ShouldEqual, 1)
				So(report.SeasonRolled, ShouldBeTrue)
			})
		})
	})
}

func TestClock_SettlementOrder(t *testing.T) {
	Convey("Given an expiring effect and guaranteed injury odds", t, func() {
		pool := []model.ActiveEffect{{
			ID: "sprain", Type: model.EffectInjury,
			StatDeltas: map[string]int{"accuracy": -3}, WeeksRemaining: 3,
		}}
		f := newFixture(20,
			effects.WithRand(rand.New(rand.NewSource(5))),
			effects.WithRiskPolicy(25, 1.0, 0),
			effects.WithAfflictions(pool),
		)
		f.ledger.Add(model.ActiveEffect{
			ID: "old-buff", Type: model.EffectEventBuff,
			StatDeltas: map[string]int{"power": 2}, WeeksRemaining: 1,
		})
		p := &model.Profile{CurrentSeason: 1, CurrentWeek: 4, Energy: 10}

		Convey("When the exhausted week advances", func() {
			report := f.clock.AdvanceWeek(context.Background(), p)

			Convey("Then the buff decays before the risk roll lands", func() {
				So(report.NewAffliction, ShouldNotBeNil)
				active := f.ledger.Active()
				So(active, ShouldHaveLength, 1)
				So(active[0].ID, ShouldEqual, "sprain")
				So(active[0].WeeksRemaining, ShouldEqual, 3)
			})
		})
	})

	Convey("Given a rested career", t, func() {
		f := newFixture(20,
			effects.WithRiskPolicy(25, 1.0, 1.0),
			effects.WithAfflictions([]model.ActiveEffect{{
				ID: "sprain", Type: model.EffectInjury, WeeksRemaining: 3,
			}}),
		)
		p := &model.Profile{CurrentSeason: 1, CurrentWeek: 4, Energy: 80}

		Convey("When the week advances", func() {
			report := f.clock.AdvanceWeek(context.Background(), p)

			Convey("Then no affliction rolls at healthy energy", func() {
				So(report.NewAffliction, ShouldBeNil)
			})
		})
	})
}
