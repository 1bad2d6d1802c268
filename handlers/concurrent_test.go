// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/leaderboard/models"
	"github.com/danielhkuo/leaderboard/testutil"
)

// TestConcurrentSubmissions verifies that simultaneous submissions from
// different participants are all stored exactly once
func TestConcurrentSubmissions(t *testing.T) {
	store, _ := testutil.SetupTestStore(t)
	handler := NewScoreHandler(store, testutil.GetTestConfig(), newTestMetrics())

	numSubmitters := 20

	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numSubmitters; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/score", models.SubmitScoreRequest{
				ID:          fmt.Sprintf("runner-%02d", idx),
				Time:        float64(idx + 1),
				Institution: "Concurrent U",
				TS:          testutil.Int64(int64(idx)),
			}, nil)
			w := httptest.NewRecorder()

			handler.SubmitScore(w, req)

			if w.Code == http.StatusOK {
				successCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numSubmitters {
		t.Errorf("Expected %d successful submissions, got %d", numSubmitters, successCount.Load())
	}
	if n := testutil.CountScores(t, store); n != int64(numSubmitters) {
		t.Errorf("Expected %d rows, got %d", numSubmitters, n)
	}
}

// TestConcurrentDuplicateSubmissions verifies that racing submissions of the
// same (id, ts) leave exactly one row, with every loser seeing a server error
func TestConcurrentDuplicateSubmissions(t *testing.T) {
	store, _ := testutil.SetupTestStore(t)
	handler := NewScoreHandler(store, testutil.GetTestConfig(), newTestMetrics())

	numAttempts := 10

	var okCount, errCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numAttempts; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/score", models.SubmitScoreRequest{
				ID:          "same-run",
				Time:        float64(idx + 1),
				Institution: "Race U",
				TS:          testutil.Int64(1700000000),
			}, nil)
			w := httptest.NewRecorder()

			handler.SubmitScore(w, req)

			switch w.Code {
			case http.StatusOK:
				okCount.Add(1)
			case http.StatusInternalServerError:
				errCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if okCount.Load() != 1 {
		t.Errorf("Expected exactly 1 accepted submission, got %d", okCount.Load())
	}
	if int(errCount.Load()) != numAttempts-1 {
		t.Errorf("Expected %d rejected submissions, got %d", numAttempts-1, errCount.Load())
	}
	if n := testutil.CountScores(t, store); n != 1 {
		t.Errorf("Expected 1 row, got %d", n)
	}
}

// TestConcurrentReadsDuringWrites verifies the leaderboard stays capped and
// ordered while submissions are in flight
func TestConcurrentReadsDuringWrites(t *testing.T) {
	store, _ := testutil.SetupTestStore(t)
	handler := NewScoreHandler(store, testutil.GetTestConfig(), newTestMetrics())

	var wg sync.WaitGroup
	var badReads atomic.Int32

	for i := 0; i < 30; i++ {
		wg.Add(2)
		go func(idx int) {
			defer wg.Done()
			req := testutil.MakeRequest("POST", "/score", models.SubmitScoreRequest{
				ID:          fmt.Sprintf("writer-%02d", idx),
				Time:        float64(100 - idx),
				Institution: "Busy U",
				TS:          testutil.Int64(int64(idx)),
			}, nil)
			handler.SubmitScore(httptest.NewRecorder(), req)
		}(i)

		go func() {
			defer wg.Done()
			w := httptest.NewRecorder()
			handler.GetScores(w, testutil.MakeRequest("GET", "/scores", nil, nil))

			var scores []models.Score
			if w.Code != http.StatusOK || json.Unmarshal(w.Body.Bytes(), &scores) != nil {
				badReads.Add(1)
				return
			}
			if len(scores) > models.DefaultTopLimit {
				badReads.Add(1)
			}
			for j := 1; j < len(scores); j++ {
				if scores[j].Time < scores[j-1].Time {
					badReads.Add(1)
				}
			}
		}()
	}

	wg.Wait()

	if badReads.Load() != 0 {
		t.Errorf("Expected all reads to be capped and ordered, %d were not", badReads.Load())
	}
}
