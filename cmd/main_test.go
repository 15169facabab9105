package main

import (
	"context"
	"net/http"
	"os"
	"testing"

	"github.com/lanebreak/tenpin/internal/adapters/http/api"
	"github.com/lanebreak/tenpin/internal/adapters/repository"
	"github.com/lanebreak/tenpin/internal/config"
	"github.com/lanebreak/tenpin/internal/domain/catalog"
	"github.com/lanebreak/tenpin/internal/engine"
	"github.com/lanebreak/tenpin/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.So(logger.Init(), convey.ShouldBeNil)

		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("TENPIN_ADDR", ":8080")
			_ = os.Setenv("TENPIN_SAVE_SLOTS", "5")
			defer func() {
				_ = os.Unsetenv("TENPIN_ADDR")
				_ = os.Unsetenv("TENPIN_SAVE_SLOTS")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.SaveSlots, convey.ShouldEqual, 5)
			})
		})

		convey.Convey("When testing engine creation", func() {
			cat, err := catalog.Load()
			convey.So(err, convey.ShouldBeNil)
			registry := repository.NewRegistry(repository.NewMemoryStore(), 3)

			convey.Convey("Then the engine should be creatable with defaults", func() {
				svc := engine.New(cat, registry)
				convey.So(svc, convey.ShouldNotBeNil)
			})

			convey.Convey("And with custom options", func() {
				svc := engine.New(cat, registry,
					engine.WithSeed(42),
					engine.WithConstants(engine.DefaultConstants()),
				)
				convey.So(svc, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing HTTP server creation", func() {
			cat, err := catalog.Load()
			convey.So(err, convey.ShouldBeNil)
			svc := engine.New(cat, repository.NewRegistry(repository.NewMemoryStore(), 3))

			mux := http.NewServeMux()
			api.NewServer(svc).Register(context.Background(), mux)

			srv := &http.Server{
				Addr:              ":0",
				Handler:           mux,
				ReadTimeout:       readTimeout,
				WriteTimeout:      writeTimeout,
				IdleTimeout:       idleTimeout,
				ReadHeaderTimeout: readHeaderTimeout,
			}
			convey.So(srv, convey.ShouldNotBeNil)
			convey.So(srv.ReadTimeout, convey.ShouldBeGreaterThan, 0)
		})
	})
}
