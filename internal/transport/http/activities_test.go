package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gavinkirchner/skills-getting-started-with-github-copilot/internal/app"
	"github.com/gavinkirchner/skills-getting-started-with-github-copilot/internal/domain"
)

type stubService struct {
	activities []domain.Activity
	activity   domain.Activity
	err        error
}

func (s *stubService) List(context.Context) ([]domain.Activity, error) {
	return s.activities, s.err
}

func (s *stubService) Enroll(_ context.Context, _ app.EnrollInput) (domain.Activity, error) {
	return s.activity, s.err
}

func (s *stubService) Withdraw(_ context.Context, _ app.WithdrawInput) (domain.Activity, error) {
	return s.activity, s.err
}

func newSignupRequest(activity, email string) *http.Request {
	target := "/activities/" + url.PathEscape(activity) + "/signup?email=" + url.QueryEscape(email)
	req := httptest.NewRequest(http.MethodPost, target, nil)
	req.SetPathValue("name", activity)
	return req
}

func newUnregisterRequest(activity, email string) *http.Request {
	target := "/activities/" + url.PathEscape(activity) + "/unregister?email=" + url.QueryEscape(email)
	req := httptest.NewRequest(http.MethodPost, target, nil)
	req.SetPathValue("name", activity)
	return req
}

func TestHandleListActivities(t *testing.T) {
	t.Parallel()

	svc := &stubService{activities: []domain.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu"},
		},
		{
			Name:            "Tennis Club",
			Description:     "Learn tennis skills and participate in matches",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 12,
		},
	}}

	req := httptest.NewRequest(http.MethodGet, "/activities", nil)
	rec := httptest.NewRecorder()
	HandleListActivities(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]activityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, []string{"michael@mergington.edu"}, body["Chess Club"].Participants)
	// A participant-less activity still marshals an empty array, not null.
	assert.NotNil(t, body["Tennis Club"].Participants)
	assert.Empty(t, body["Tennis Club"].Participants)
}

func TestHandleListActivities_ServiceError(t *testing.T) {
	t.Parallel()

	svc := &stubService{err: errors.New("boom")}
	rec := httptest.NewRecorder()
	HandleListActivities(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/activities", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"internal_error"`)
}

func TestHandleSignup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		email          string
		serviceErr     error
		expectedStatus int
		expectedSubstr string
	}{
		{
			name:           "success",
			email:          "newstudent@mergington.edu",
			expectedStatus: http.StatusOK,
			expectedSubstr: "newstudent@mergington.edu signed up for Chess Club",
		},
		{
			name:           "missing email",
			email:          "",
			serviceErr:     domain.ErrEmailRequired,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: "email is required",
		},
		{
			name:           "activity not found",
			email:          "x@mergington.edu",
			serviceErr:     domain.ErrActivityNotFound,
			expectedStatus: http.StatusNotFound,
			expectedSubstr: "Activity not found",
		},
		{
			name:           "already signed up",
			email:          "michael@mergington.edu",
			serviceErr:     domain.ErrAlreadyRegistered,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: "michael@mergington.edu is already signed up",
		},
		{
			name:           "activity full",
			email:          "extra@mergington.edu",
			serviceErr:     domain.ErrActivityFull,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: "full",
		},
		{
			name:           "internal error",
			email:          "x@mergington.edu",
			serviceErr:     errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedSubstr: "internal error",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := &stubService{err: tt.serviceErr}
			rec := httptest.NewRecorder()

			HandleSignup(svc).ServeHTTP(rec, newSignupRequest("Chess Club", tt.email))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedSubstr)
		})
	}
}

func TestHandleUnregister(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		email          string
		serviceErr     error
		expectedStatus int
		expectedSubstr string
	}{
		{
			name:           "success",
			email:          "michael@mergington.edu",
			expectedStatus: http.StatusOK,
			expectedSubstr: "michael@mergington.edu unregistered from Chess Club",
		},
		{
			name:           "missing email",
			email:          "",
			serviceErr:     domain.ErrEmailRequired,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: "email is required",
		},
		{
			name:           "activity not found",
			email:          "x@mergington.edu",
			serviceErr:     domain.ErrActivityNotFound,
			expectedStatus: http.StatusNotFound,
			expectedSubstr: "Activity not found",
		},
		{
			name:           "not signed up",
			email:          "stranger@mergington.edu",
			serviceErr:     domain.ErrNotRegistered,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: "stranger@mergington.edu is not signed up",
		},
		{
			name:           "internal error",
			email:          "x@mergington.edu",
			serviceErr:     errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedSubstr: "internal error",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := &stubService{err: tt.serviceErr}
			rec := httptest.NewRecorder()

			HandleUnregister(svc).ServeHTTP(rec, newUnregisterRequest("Chess Club", tt.email))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedSubstr)
		})
	}
}
