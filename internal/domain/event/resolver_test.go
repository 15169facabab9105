package event_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/lanebreak/tenpin/internal/domain/economy"
	"github.com/lanebreak/tenpin/internal/domain/effects"
	event "github.com/lanebreak/tenpin/internal/domain/event"
	"github.com/lanebreak/tenpin/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

// noCatalog satisfies the ledger's action lookup; events never consult it.
type noCatalog struct{}

func (noCatalog) RecoveryAction(string) (model.RecoveryAction, bool) {
	return model.RecoveryAction{}, false
}

func sponsorOffer() model.WeeklyEvent {
	return model.WeeklyEvent{
		ID:       "sponsor-offer",
		Category: model.CategoryMoney,
		Title:    "Sponsor Offer",
		Major:    true,
		Choices: []model.EventChoice{
			{
				ID:    "accept",
				Label: "Sign the deal",
				Cost:  model.Cost{Money: 150},
				Outcome: model.EventOutcome{
					Money:      400,
					Reputation: 10,
					StatBonus:  &model.TimedStatDelta{Stat: "confidence", Amount: 2, Weeks: 3},
				},
			},
			{
				ID:    "decline",
				Label: "Walk away",
				Outcome: model.EventOutcome{
					Energy:      10,
					StatPenalty: &model.TimedStatDelta{Stat: "confidence", Amount: 1, Weeks: 2},
				},
			},
		},
	}
}

func newResolver(pending model.WeeklyEvent) (*event.Resolver, *effects.Ledger) {
	guard := economy.New(100)
	ledger := effects.New(guard, noCatalog{})
	r := event.New(guard, ledger, nil)
	r.Restore(&pending)
	return r, ledger
}

func TestResolver_Resolve(t *testing.T) {
	Convey("Given a pending sponsor offer", t, func() {
		r, ledger := newResolver(sponsorOffer())
		p := &model.Profile{Money: 200, Energy: 50}

		Convey("When the profile accepts", func() {
			err := r.Resolve(context.Background(), "accept", p)

			Convey("Then cost and outcome both apply", func() {
				So(err, ShouldBeNil)
				So(p.Money, ShouldEqual, 450)
				So(p.Reputation(), ShouldEqual, 10)
			})

			Convey("And the timed bonus lands in the ledger", func() {
				So(err, ShouldBeNil)
				buffs := ledger.ActiveOfType(model.EffectEventBuff)
				So(buffs, ShouldHaveLength, 1)
				So(buffs[0].StatDeltas["confidence"], ShouldEqual, 2)
				So(buffs[0].WeeksRemaining, ShouldEqual, 3)
			})

			Convey("And the pending slot clears", func() {
				So(err, ShouldBeNil)
				So(r.Pending(), ShouldBeNil)
				So(r.Resolve(context.Background(), "accept", p), ShouldWrap, event.ErrNoPendingEvent)
			})
		})

		Convey("When the profile declines", func() {
			err := r.Resolve(context.Background(), "decline", p)

			Convey("Then the penalty is stored with a negative delta", func() {
				So(err, ShouldBeNil)
				penalties := ledger.ActiveOfType(model.EffectEventPenalty)
				So(penalties, ShouldHaveLength, 1)
				So(penalties[0].StatDeltas["confidence"], ShouldEqual, -1)
			})
		})

		Convey("When the profile cannot afford the choice", func() {
			p.Money = 100
			err := r.Resolve(context.Background(), "accept", p)

			Convey("Then nothing changes and the event stays pending", func() {
				So(err, ShouldWrap, economy.ErrInsufficientResources)
				So(p.Money, ShouldEqual, 100)
				So(p.Reputation(), ShouldEqual, 0)
				So(ledger.Active(), ShouldBeEmpty)
				So(r.Pending(), ShouldNotBeNil)
			})
		})

		Convey("When the choice id is unknown", func() {
			err := r.Resolve(context.Background(), "stall", p)

			Convey("Then it fails and the event stays pending", func() {
				So(err, ShouldWrap, event.ErrUnknownChoice)
				So(r.Pending(), ShouldNotBeNil)
			})
		})
	})
}

func TestResolver_Dismiss(t *testing.T) {
	Convey("Given a pending event and a broke profile", t, func() {
		r, ledger := newResolver(sponsorOffer())
		p := &model.Profile{Money: 0, Energy: 0}

		Convey("When the event is dismissed", func() {
			err := r.Dismiss(context.Background())

			Convey("Then it clears with no cost and no outcome", func() {
				So(err, ShouldBeNil)
				So(r.Pending(), ShouldBeNil)
				So(p.Money, ShouldEqual, 0)
				So(ledger.Active(), ShouldBeEmpty)
			})

			Convey("And dismissing again fails", func() {
				So(err, ShouldBeNil)
				So(r.Dismiss(context.Background()), ShouldWrap, event.ErrNoPendingEvent)
			})
		})
	})
}

func TestResolver_MaybeGenerate(t *testing.T) {
	templates := []model.WeeklyEvent{sponsorOffer()}

	Convey("Given a resolver with a 100% event chance", t, func() {
		guard := economy.New(100)
		ledger := effects.New(guard, noCatalog{})
		r := event.New(guard, ledger, templates,
			event.WithRand(rand.New(rand.NewSource(3))),
			event.WithChances(1.0, 1.0),
		)

		Convey("When a week is generated", func() {
			generated := r.MaybeGenerate(context.Background())

			Convey("Then an instance with a fresh id becomes pending", func() {
				So(generated, ShouldNotBeNil)
				So(generated.ID, ShouldNotEqual, "sponsor-offer")
				So(generated.Title, ShouldEqual, "Sponsor Offer")
				So(r.Pending(), ShouldNotBeNil)
			})

			Convey("And generating again while one is pending yields nothing", func() {
				So(generated, ShouldNotBeNil)
				So(r.MaybeGenerate(context.Background()), ShouldBeNil)
			})
		})
	})

	Convey("Given a resolver with a 0% event chance", t, func() {
		guard := economy.New(100)
		ledger := effects.New(guard, noCatalog{})
		r := event.New(guard, ledger, templates, event.WithChances(0, 0))

		Convey("When a week is generated", func() {
			Convey("Then the week stays quiet", func() {
				So(r.MaybeGenerate(context.Background()), ShouldBeNil)
				So(r.Pending(), ShouldBeNil)
			})
		})
	})
}

func TestResolver_Restore(t *testing.T) {
	Convey("Given a saved event already marked resolved", t, func() {
		guard := economy.New(100)
		r := event.New(guard, effects.New(guard, noCatalog{}), nil)
		done := sponsorOffer()
		done.Resolved = true
		r.Restore(&done)

		Convey("Then nothing is pending after restore", func() {
			So(r.Pending(), ShouldBeNil)
		})
	})
}
