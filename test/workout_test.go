package test

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/2beens/gymcycle/internal/workout"
)

func (s *IntegrationTestSuite) TestHealth() {
	var health struct {
		Status string `json:"status"`
	}
	status := doRequest(context.Background(), s.T(), s.client, http.MethodGet, "/health", "", "", &health)
	s.Equal(http.StatusOK, status)
	s.Equal("ok", health.Status)
}

func (s *IntegrationTestSuite) TestReferenceData() {
	ctx := context.Background()

	var sessions []workout.Session
	status := doRequest(ctx, s.T(), s.client, http.MethodGet, "/sessions", "", "", &sessions)
	s.Require().Equal(http.StatusOK, status)
	s.Require().NotEmpty(sessions)
	s.Equal("S1", sessions[0].SessionID)

	var exercises []workout.Exercise
	status = doRequest(ctx, s.T(), s.client, http.MethodGet, "/exercises?session_id=S1", "", "", &exercises)
	s.Require().Equal(http.StatusOK, status)
	s.Require().NotEmpty(exercises)
	for _, e := range exercises {
		s.Equal("S1", e.SessionID)
	}
}

// TestCheckinFlow runs the parallel check-ins against the real redis lock and
// reads the stored log rows back through lib/pq.
func (s *IntegrationTestSuite) TestCheckinFlow() {
	ctx := context.Background()

	var plan workout.TodayPlan
	status := doRequest(ctx, s.T(), s.client, http.MethodGet, "/today-plan?mode=4", "", "", &plan)
	s.Require().Equal(http.StatusOK, status)
	s.Require().NotNil(plan.Session)
	s.Equal("S1", plan.Session.SessionID)

	const attempts = 5
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		statuses = map[int]int{}
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			code := doRequest(ctx, s.T(), s.client, http.MethodPost, "/quick-checkin", `{"mode":4}`, "", nil)
			mu.Lock()
			statuses[code]++
			mu.Unlock()
		}()
	}
	wg.Wait()

	s.Equal(1, statuses[http.StatusOK], "exactly one check-in wins: %v", statuses)
	s.Equal(attempts-1, statuses[http.StatusBadRequest]+statuses[http.StatusConflict], "%v", statuses)

	var completedRows int
	err := s.DB.QueryRowContext(ctx, `
		SELECT count(*) FROM sheet_row
		WHERE sheet = 'Workout_Log' AND row_num > 1 AND upper(cells[3]) = 'TRUE'
	`).Scan(&completedRows)
	s.Require().NoError(err)
	s.Equal(1, completedRows)

	month := time.Now().In(mustLoadLocation("Asia/Bangkok")).Format("2006-01")
	var summary workout.Summary
	status = doRequest(ctx, s.T(), s.client, http.MethodGet, "/month-summary?month="+month, "", "", &summary)
	s.Require().Equal(http.StatusOK, status)
	s.Equal(1, summary.CompletedCount)
	s.Equal(1, summary.Streak)

	// the next plan moves on in the rotation
	status = doRequest(ctx, s.T(), s.client, http.MethodGet, "/today-plan?mode=4", "", "", &plan)
	s.Require().Equal(http.StatusOK, status)
	s.Equal("S2", plan.Session.SessionID)
}

func (s *IntegrationTestSuite) TestBodyweight() {
	ctx := context.Background()

	status := doRequest(ctx, s.T(), s.client, http.MethodPost, "/bodyweight", `{"date":"2026-01-05","weight":71.2}`, "", nil)
	s.Require().Equal(http.StatusOK, status)
	status = doRequest(ctx, s.T(), s.client, http.MethodPost, "/bodyweight", `{"date":"2026-01-03","weight":71.8,"note":"sau tết"}`, "", nil)
	s.Require().Equal(http.StatusOK, status)

	var history []workout.BodyweightEntry
	status = doRequest(ctx, s.T(), s.client, http.MethodGet, "/bodyweight-history", "", "", &history)
	s.Require().Equal(http.StatusOK, status)
	s.Require().Len(history, 2)
	s.Equal("2026-01-03", history[0].Date)
	s.InDelta(71.8, history[0].Weight, 0.001)
	s.Equal("sau tết", history[0].Note)
}

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}
