package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/fieldside/clubmetrics/pkg/metrics"
)

func TestManager(t *testing.T) {
	Convey("Given the metrics package", t, func() {
		Convey("When creating a manager with options", func() {
			m := metrics.NewManager(
				metrics.WithNamespace("testns"),
				metrics.WithSubsystem("testsub"),
				metrics.WithPrometheusRegistry(prometheus.NewRegistry()),
			)
			So(m, ShouldNotBeNil)
		})

		Convey("When using the global registry", func() {
			So(metrics.GetRegistry(), ShouldNotBeNil)
		})

		Convey("When recording through the package helpers", func() {
			Convey("Then none of them panic", func() {
				So(func() {
					metrics.RecordIngested("member")
					metrics.RecordDuplicate()
					metrics.RecordChangeApplied("member")
					metrics.UpdateQueueSize(3)
					metrics.UpdateQueueCapacity(100)
					metrics.UpdateQueueUtilization(0.03)
					metrics.RecordQueueEnqueueError("queue_full")
					metrics.UpdateWorkerCount(4)
					metrics.RecordWorkerError()
					metrics.RecordWorkerProcessingLatency(1.5)
					metrics.RecordRecompute(12)
					metrics.UpdateSnapshotVersion(7)
					metrics.UpdateMembersTracked(30)
					metrics.RecordHTTPRequest("records", "POST", "202")
					metrics.RecordHTTPRequestDuration("records", "POST", "202", 2.5)
					metrics.UpdateSystemMemoryUsage(1 << 20)
					metrics.UpdateSystemGoroutineCount(12)
				}, ShouldNotPanic)
			})
		})
	})
}
