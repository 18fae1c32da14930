package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestServiceIntegration(t *testing.T) {
	Convey("Given a started service under concurrent load", t, func() {
		svc, cleanup := startedService()
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		Convey("When many goroutines adjust matches across both strategies", func() {
			const goroutines = 16
			const perGoroutine = 50

			reference, err := svc.Adjust(ctx, testMatch(), "6-2,6-3", "legacy")
			So(err, ShouldBeNil)

			var wg sync.WaitGroup
			errs := make(chan error, goroutines*perGoroutine)
			mismatches := make(chan struct{}, goroutines*perGoroutine)

			for g := 0; g < goroutines; g++ {
				wg.Add(1)
				go func(g int) {
					defer wg.Done()
					for i := 0; i < perGoroutine; i++ {
						strategy := "legacy"
						if (g+i)%2 == 0 {
							strategy = "probability"
						}
						result, err := svc.Adjust(ctx, testMatch(), "6-2,6-3", strategy)
						if err != nil {
							errs <- err
							continue
						}
						if strategy == "legacy" && result != reference {
							mismatches <- struct{}{}
						}
					}
				}(g)
			}
			wg.Wait()
			close(errs)
			close(mismatches)

			Convey("Then no call should fail", func() {
				So(len(errs), ShouldEqual, 0)
			})

			Convey("And identical inputs should produce identical results", func() {
				So(len(mismatches), ShouldEqual, 0)
			})
		})
	})
}
