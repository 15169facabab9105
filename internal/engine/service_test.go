package engine_test

import (
	"context"
	"testing"

	"github.com/lanebreak/tenpin/internal/adapters/repository"
	"github.com/lanebreak/tenpin/internal/domain/catalog"
	"github.com/lanebreak/tenpin/internal/domain/economy"
	"github.com/lanebreak/tenpin/internal/domain/event"
	"github.com/lanebreak/tenpin/internal/domain/model"
	"github.com/lanebreak/tenpin/internal/domain/sim"
	engine "github.com/lanebreak/tenpin/internal/engine"
	"github.com/lanebreak/tenpin/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

// fixedSimulator always returns the same scores.
type fixedSimulator struct {
	player, opponent int
}

func (f fixedSimulator) Simulate(ctx context.Context, in sim.Input) (sim.Result, error) {
	return sim.Result{
		PlayerScore:   f.player,
		OpponentScore: f.opponent,
		Won:           f.player >= f.opponent,
	}, nil
}

// quietConstants disable random events and afflictions so runs are exact.
func quietConstants() engine.Constants {
	c := engine.DefaultConstants()
	c.EventChance = 0
	c.MajorEventChance = 0
	c.InjuryChance = 0
	c.SlumpChance = 0
	return c
}

func newService(t *testing.T, opts ...engine.Option) *engine.Service {
	t.Helper()
	if err := logger.Init(); err != nil {
		t.Fatalf("init logging: %v", err)
	}
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalogs: %v", err)
	}
	registry := repository.NewRegistry(repository.NewMemoryStore(), 3)
	base := []engine.Option{
		engine.WithConstants(quietConstants()),
		engine.WithSeed(1),
	}
	return engine.New(cat, registry, append(base, opts...)...)
}

func TestService_StartNewGame(t *testing.T) {
	Convey("Given an engine with empty slots", t, func() {
		svc := newService(t)

		Convey("When a career starts in slot 1", func() {
			profile, err := svc.StartNewGame(context.Background(), 1, engine.NewGameParams{Name: "Roy"})

			Convey("Then the profile carries the starting grants", func() {
				So(err, ShouldBeNil)
				So(profile.Name, ShouldEqual, "Roy")
				So(profile.Money, ShouldEqual, 500)
				So(profile.Energy, ShouldEqual, 100)
				So(profile.CurrentSeason, ShouldEqual, 1)
				So(profile.CurrentWeek, ShouldEqual, 1)
				So(profile.Handedness, ShouldEqual, model.RightHanded)
				So(profile.Style, ShouldEqual, model.StyleStroker)
			})

			Convey("And week one already has a challenge set", func() {
				So(err, ShouldBeNil)
				challenges, err := svc.WeeklyChallenges(context.Background())
				So(err, ShouldBeNil)
				So(challenges, ShouldHaveLength, 3)
			})

			Convey("And the slot listing shows the occupant", func() {
				So(err, ShouldBeNil)
				slots := svc.Slots(context.Background())
				So(slots, ShouldHaveLength, 3)
				So(slots[0].Empty, ShouldBeFalse)
				So(slots[0].PlayerName, ShouldEqual, "Roy")
				So(slots[1].Empty, ShouldBeTrue)
			})
		})

		Convey("When the name is missing", func() {
			_, err := svc.StartNewGame(context.Background(), 1, engine.NewGameParams{})

			Convey("Then it is rejected", func() {
				So(err, ShouldWrap, engine.ErrInvalidParams)
			})
		})

		Convey("When the slot id is out of range", func() {
			_, err := svc.StartNewGame(context.Background(), 9, engine.NewGameParams{Name: "Roy"})

			Convey("Then it is rejected", func() {
				So(err, ShouldWrap, repository.ErrInvalidSlot)
			})
		})
	})
}

func TestService_RequiresActiveGame(t *testing.T) {
	Convey("Given an engine with no loaded career", t, func() {
		svc := newService(t)

		Convey("Then every career operation refuses", func() {
			_, err := svc.Profile(context.Background())
			So(err, ShouldWrap, engine.ErrNoActiveGame)
			_, err = svc.PlayGame(context.Background())
			So(err, ShouldWrap, engine.ErrNoActiveGame)
			_, err = svc.AdvanceWeek(context.Background())
			So(err, ShouldWrap, engine.ErrNoActiveGame)
			So(svc.DismissEvent(context.Background()), ShouldWrap, engine.ErrNoActiveGame)
			So(svc.ClaimChallengeReward(context.Background(), "x"), ShouldWrap, engine.ErrNoActiveGame)
			So(svc.ApplyRecoveryAction(context.Background(), "a", "e"), ShouldWrap, engine.ErrNoActiveGame)
		})
	})
}

func TestService_PlayGame(t *testing.T) {
	Convey("Given a career and a rigged winning simulator", t, func() {
		svc := newService(t, engine.WithSimulator(fixedSimulator{player: 220, opponent: 180}))
		_, err := svc.StartNewGame(context.Background(), 1, engine.NewGameParams{Name: "Roy"})
		So(err, ShouldBeNil)

		Convey("When a game is played", func() {
			result, err := svc.PlayGame(context.Background())

			Convey("Then energy is spent and the prize lands", func() {
				So(err, ShouldBeNil)
				So(result.Won, ShouldBeTrue)
				So(result.PlayerScore, ShouldEqual, 220)
				So(result.Prize, ShouldEqual, 80)
				So(result.EnergySpent, ShouldEqual, 10)

				p, err := svc.Profile(context.Background())
				So(err, ShouldBeNil)
				So(p.Energy, ShouldEqual, 90)
				So(p.Money, ShouldEqual, 580)
				So(p.GamesPlayed, ShouldEqual, 1)
				So(p.Average(), ShouldEqual, 220.0)
			})

			Convey("And the rival's record sees the win", func() {
				So(err, ShouldBeNil)
				snap, err := svc.RankingsSnapshot(context.Background())
				So(err, ShouldBeNil)
				wins := 0
				for _, r := range snap.Rivals {
					wins += r.HeadToHead.Wins
				}
				So(wins, ShouldEqual, 1)
			})
		})

		Convey("When energy runs dry", func() {
			for i := 0; i < 10; i++ {
				_, err := svc.PlayGame(context.Background())
				So(err, ShouldBeNil)
			}
			_, err := svc.PlayGame(context.Background())

			Convey("Then the next game is refused", func() {
				So(err, ShouldWrap, economy.ErrInsufficientResources)
				p, perr := svc.Profile(context.Background())
				So(perr, ShouldBeNil)
				So(p.Energy, ShouldEqual, 0)
				So(p.GamesPlayed, ShouldEqual, 10)
			})
		})
	})
}

func TestService_AdvanceWeek(t *testing.T) {
	Convey("Given a freshly started career", t, func() {
		svc := newService(t)
		_, err := svc.StartNewGame(context.Background(), 1, engine.NewGameParams{Name: "Roy"})
		So(err, ShouldBeNil)

		Convey("When the week advances", func() {
			report, err := svc.AdvanceWeek(context.Background())

			Convey("Then the clock moves and fresh challenges install", func() {
				So(err, ShouldBeNil)
				So(report.Season, ShouldEqual, 1)
				So(report.Week, ShouldEqual, 2)
				So(report.SeasonRolled, ShouldBeFalse)
				So(report.Challenges, ShouldHaveLength, 3)
				So(report.NewEvent, ShouldBeNil)
				So(report.NewAffliction, ShouldBeNil)
			})
		})

		Convey("When a whole season passes", func() {
			var rolled bool
			for i := 0; i < 20; i++ {
				report, err := svc.AdvanceWeek(context.Background())
				So(err, ShouldBeNil)
				rolled = rolled || report.SeasonRolled
			}

			Convey("Then the season rolls exactly at the boundary", func() {
				So(rolled, ShouldBeTrue)
				p, err := svc.Profile(context.Background())
				So(err, ShouldBeNil)
				So(p.CurrentSeason, ShouldEqual, 2)
				So(p.CurrentWeek, ShouldEqual, 1)
			})
		})
	})
}

func TestService_SaveLoadDelete(t *testing.T) {
	Convey("Given a career with some history", t, func() {
		svc := newService(t, engine.WithSimulator(fixedSimulator{player: 200, opponent: 190}))
		_, err := svc.StartNewGame(context.Background(), 2, engine.NewGameParams{Name: "Roy"})
		So(err, ShouldBeNil)
		_, err = svc.PlayGame(context.Background())
		So(err, ShouldBeNil)
		_, err = svc.AdvanceWeek(context.Background())
		So(err, ShouldBeNil)

		Convey("When the slot is reloaded", func() {
			profile, err := svc.LoadGame(context.Background(), 2)

			Convey("Then the persisted history comes back", func() {
				So(err, ShouldBeNil)
				So(profile.Name, ShouldEqual, "Roy")
				So(profile.GamesPlayed, ShouldEqual, 1)
				So(profile.CurrentWeek, ShouldEqual, 2)
				So(profile.Energy, ShouldEqual, 90)
			})
		})

		Convey("When an empty slot is loaded", func() {
			_, err := svc.LoadGame(context.Background(), 3)

			Convey("Then it fails and the active career stays", func() {
				So(err, ShouldWrap, repository.ErrEmptySlot)
			})
		})

		Convey("When the active slot is deleted", func() {
			So(svc.DeleteGame(context.Background(), 2), ShouldBeNil)

			Convey("Then the career unloads", func() {
				_, err := svc.Profile(context.Background())
				So(err, ShouldWrap, engine.ErrNoActiveGame)
				So(svc.Slots(context.Background())[1].Empty, ShouldBeTrue)
			})
		})
	})
}

func TestService_Events(t *testing.T) {
	Convey("Given a quiet career", t, func() {
		svc := newService(t)
		_, err := svc.StartNewGame(context.Background(), 1, engine.NewGameParams{Name: "Roy"})
		So(err, ShouldBeNil)

		Convey("When no event is pending", func() {
			pending, err := svc.PendingEvent(context.Background())

			Convey("Then the week reads as quiet", func() {
				So(err, ShouldBeNil)
				So(pending, ShouldBeNil)
			})

			Convey("And resolving or dismissing refuses", func() {
				So(svc.ResolveEvent(context.Background(), "x"), ShouldWrap, event.ErrNoPendingEvent)
				So(svc.DismissEvent(context.Background()), ShouldWrap, event.ErrNoPendingEvent)
			})
		})
	})
}

func TestService_Entitlements(t *testing.T) {
	Convey("Given the default entitlement source", t, func() {
		svc := newService(t)

		Convey("Then remove-ads is off", func() {
			So(svc.HasRemoveAds(context.Background()), ShouldBeFalse)
		})
	})

	Convey("Given a purchased entitlement", t, func() {
		svc := newService(t, engine.WithEntitlements(engine.NewStaticEntitlements(true)))

		Convey("Then remove-ads is on", func() {
			So(svc.HasRemoveAds(context.Background()), ShouldBeTrue)
		})
	})
}
