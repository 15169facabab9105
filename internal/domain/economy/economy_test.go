package economy_test

import (
	"testing"

	economy "github.com/lanebreak/tenpin/internal/domain/economy"
	"github.com/lanebreak/tenpin/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGuard_Apply(t *testing.T) {
	Convey("Given a guard with a 100 energy cap", t, func() {
		guard := economy.New(100)

		Convey("When the profile covers the cost", func() {
			p := &model.Profile{Money: 500, Energy: 80}
			err := guard.Apply(model.Cost{Money: 120, Energy: 30}, p)

			Convey("Then both fields are deducted", func() {
				So(err, ShouldBeNil)
				So(p.Money, ShouldEqual, 380)
				So(p.Energy, ShouldEqual, 50)
			})
		})

		Convey("When money is short", func() {
			p := &model.Profile{Money: 100, Energy: 80}
			err := guard.Apply(model.Cost{Money: 150, Energy: 10}, p)

			Convey("Then it fails and nothing is deducted", func() {
				So(err, ShouldWrap, economy.ErrInsufficientResources)
				So(p.Money, ShouldEqual, 100)
				So(p.Energy, ShouldEqual, 80)
			})
		})

		Convey("When energy is short but money is plentiful", func() {
			p := &model.Profile{Money: 9999, Energy: 5}
			err := guard.Apply(model.Cost{Money: 10, Energy: 10}, p)

			Convey("Then the deduction is all-or-nothing", func() {
				So(err, ShouldWrap, economy.ErrInsufficientResources)
				So(p.Money, ShouldEqual, 9999)
				So(p.Energy, ShouldEqual, 5)
			})
		})

		Convey("When the cost is exactly the balance", func() {
			p := &model.Profile{Money: 50, Energy: 10}
			err := guard.Apply(model.Cost{Money: 50, Energy: 10}, p)

			Convey("Then it succeeds and drains to zero", func() {
				So(err, ShouldBeNil)
				So(p.Money, ShouldEqual, 0)
				So(p.Energy, ShouldEqual, 0)
			})
		})

		Convey("When the cost is free", func() {
			p := &model.Profile{Money: 0, Energy: 0}
			err := guard.Apply(model.Cost{}, p)

			Convey("Then even a broke profile affords it", func() {
				So(err, ShouldBeNil)
			})
		})
	})
}

func TestGuard_CanAfford(t *testing.T) {
	Convey("Given a guard", t, func() {
		guard := economy.New(100)
		p := &model.Profile{Money: 100, Energy: 20}

		Convey("Then CanAfford is a pure predicate", func() {
			So(guard.CanAfford(model.Cost{Money: 100, Energy: 20}, p), ShouldBeTrue)
			So(guard.CanAfford(model.Cost{Money: 101}, p), ShouldBeFalse)
			So(guard.CanAfford(model.Cost{Energy: 21}, p), ShouldBeFalse)
			So(p.Money, ShouldEqual, 100)
			So(p.Energy, ShouldEqual, 20)
		})
	})
}

func TestGuard_Credit(t *testing.T) {
	Convey("Given a guard with a 100 energy cap", t, func() {
		guard := economy.New(100)

		Convey("When crediting within bounds", func() {
			p := &model.Profile{Money: 100, Energy: 50}
			guard.Credit(80, 20, p)

			Convey("Then both fields increase", func() {
				So(p.Money, ShouldEqual, 180)
				So(p.Energy, ShouldEqual, 70)
			})
		})

		Convey("When the energy credit overshoots the cap", func() {
			p := &model.Profile{Money: 0, Energy: 90}
			guard.Credit(0, 40, p)

			Convey("Then energy clamps to the cap", func() {
				So(p.Energy, ShouldEqual, 100)
			})
		})

		Convey("When the deltas are negative", func() {
			p := &model.Profile{Money: 30, Energy: 10}
			guard.Credit(-50, -25, p)

			Convey("Then both floor at zero", func() {
				So(p.Money, ShouldEqual, 0)
				So(p.Energy, ShouldEqual, 0)
			})
		})
	})
}
