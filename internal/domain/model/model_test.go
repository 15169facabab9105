package model_test

import (
	"testing"

	model "github.com/lanebreak/tenpin/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestProfile(t *testing.T) {
	Convey("Given a fresh profile", t, func() {
		p := &model.Profile{}

		Convey("When games are recorded", func() {
			p.RecordGame(200)
			p.RecordGame(180)

			Convey("Then the average tracks total pins over games", func() {
				So(p.GamesPlayed, ShouldEqual, 2)
				So(p.PinsTotal, ShouldEqual, 380)
				So(p.Average(), ShouldEqual, 190.0)
			})
		})

		Convey("When no games are on record", func() {
			Convey("Then the average reads zero", func() {
				So(p.BowlingAverage, ShouldBeNil)
				So(p.Average(), ShouldEqual, 0.0)
			})
		})

		Convey("When stats are adjusted", func() {
			p.AddStat(model.StatReputation, 30)
			p.AddStat(model.StatReputation, -50)

			Convey("Then stats floor at zero", func() {
				So(p.Reputation(), ShouldEqual, 0)
				So(p.Stat("unset"), ShouldEqual, 0)
			})
		})
	})
}

func TestRegionLadder(t *testing.T) {
	Convey("Given the region ladder", t, func() {
		Convey("Then the tiers order from local to pro tour", func() {
			regions := model.Regions()
			So(regions, ShouldHaveLength, 5)
			So(regions[0], ShouldEqual, model.RegionLocal)
			So(regions[4], ShouldEqual, model.RegionProTour)
			So(model.RegionProTour.Wider(model.RegionLocal), ShouldBeTrue)
			So(model.RegionLocal.Wider(model.RegionLocal), ShouldBeFalse)
		})

		Convey("Then unknown names are invalid", func() {
			So(model.Region("galactic").IsValid(), ShouldBeFalse)
			So(model.Region("galactic").Index(), ShouldEqual, -1)
			So(model.RegionState.IsValid(), ShouldBeTrue)
		})
	})
}

func TestWeeklyEventChoice(t *testing.T) {
	Convey("Given an event with two choices", t, func() {
		e := &model.WeeklyEvent{Choices: []model.EventChoice{
			{ID: "a", Label: "first"},
			{ID: "b", Label: "second"},
		}}

		Convey("Then lookup finds choices by id", func() {
			So(e.Choice("b"), ShouldNotBeNil)
			So(e.Choice("b").Label, ShouldEqual, "second")
			So(e.Choice("c"), ShouldBeNil)
		})
	})
}

func TestRecoveryAction(t *testing.T) {
	Convey("Given an injury-only recovery action", t, func() {
		a := model.RecoveryAction{
			MoneyCost:    120,
			EnergyCost:   5,
			ApplicableTo: []model.EffectType{model.EffectInjury},
		}

		Convey("Then applicability follows the declared types", func() {
			So(a.AppliesTo(model.EffectInjury), ShouldBeTrue)
			So(a.AppliesTo(model.EffectSlump), ShouldBeFalse)
		})

		Convey("Then the cost carries both resources", func() {
			So(a.Cost(), ShouldResemble, model.Cost{Money: 120, Energy: 5})
			So(a.Cost().IsFree(), ShouldBeFalse)
			So(model.Cost{}.IsFree(), ShouldBeTrue)
		})
	})
}
