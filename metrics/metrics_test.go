// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			manager := NewManager()

			Convey("Then it uses a private registry and the leaderboard namespace", func() {
				So(manager, ShouldNotBeNil)
				So(manager.Registry(), ShouldNotBeNil)
				So(manager.namespace, ShouldEqual, "leaderboard")
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("custom"),
				WithRegistry(registry),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
			)

			Convey("Then the options are applied", func() {
				So(manager.Registry(), ShouldEqual, registry)
				So(manager.namespace, ShouldEqual, "custom")
				So(manager.histogramBuckets, ShouldResemble, []float64{0.1, 0.5, 1.0})
			})
		})

		Convey("When empty option values are passed", func() {
			manager := NewManager(WithNamespace(""), WithHistogramBuckets(nil), WithRegistry(nil))

			Convey("Then defaults are kept", func() {
				So(manager.namespace, ShouldEqual, "leaderboard")
				So(manager.histogramBuckets, ShouldResemble, prometheus.DefBuckets)
				So(manager.Registry(), ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given a fresh manager", t, func() {
		manager := NewManager(WithRegistry(prometheus.NewRegistry()))

		Convey("When submissions are recorded", func() {
			manager.RecordSubmission(OutcomeAccepted)
			manager.RecordSubmission(OutcomeAccepted)
			manager.RecordSubmission(OutcomeRejected)

			Convey("Then counters are split by outcome", func() {
				So(promtest.ToFloat64(manager.submissions.WithLabelValues(OutcomeAccepted)), ShouldEqual, 2)
				So(promtest.ToFloat64(manager.submissions.WithLabelValues(OutcomeRejected)), ShouldEqual, 1)
				So(promtest.ToFloat64(manager.submissions.WithLabelValues(OutcomeFailed)), ShouldEqual, 0)
			})
		})

		Convey("When storage errors are recorded", func() {
			manager.RecordStorageError("insert_score", KindDuplicate)
			manager.RecordStorageError("insert_score", KindUnavailable)
			manager.RecordStorageError("insert_score", KindUnavailable)

			Convey("Then duplicates and outages are counted apart", func() {
				So(promtest.ToFloat64(manager.storageErrors.WithLabelValues("insert_score", KindDuplicate)), ShouldEqual, 1)
				So(promtest.ToFloat64(manager.storageErrors.WithLabelValues("insert_score", KindUnavailable)), ShouldEqual, 2)
			})
		})

		Convey("When clears and HTTP requests are recorded", func() {
			manager.RecordClear(ClearUnauthorized)
			manager.RecordHTTPRequest(http.MethodGet, "GET /scores", http.StatusOK, 15*time.Millisecond)

			Convey("Then they are exposed on the metrics handler", func() {
				w := httptest.NewRecorder()
				manager.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

				So(w.Code, ShouldEqual, http.StatusOK)
				body, _ := io.ReadAll(w.Body)
				text := string(body)
				So(text, ShouldContainSubstring, `leaderboard_clears_total{outcome="unauthorized"} 1`)
				So(text, ShouldContainSubstring, `leaderboard_http_requests_total{method="GET",route="GET /scores",status="200"} 1`)
				So(strings.Contains(text, "leaderboard_http_request_duration_seconds_bucket"), ShouldBeTrue)
			})
		})
	})
}

func TestNilManager(t *testing.T) {
	Convey("Given a nil manager", t, func() {
		var manager *Manager

		Convey("Then recording is a no-op", func() {
			So(func() {
				manager.RecordSubmission(OutcomeAccepted)
				manager.RecordStorageError("insert_score", KindUnavailable)
				manager.RecordClear(ClearCleared)
				manager.RecordHTTPRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
			}, ShouldNotPanic)
		})

		Convey("Then the handler serves 404 and there is no registry", func() {
			So(manager.Registry(), ShouldBeNil)

			w := httptest.NewRecorder()
			So(func() {
				manager.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
			}, ShouldNotPanic)
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}
