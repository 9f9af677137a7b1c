package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gavinkirchner/skills-getting-started-with-github-copilot/internal/app"
	"github.com/gavinkirchner/skills-getting-started-with-github-copilot/internal/domain"
)

// ActivityLister is the minimal interface needed to list activities.
type ActivityLister interface {
	List(ctx context.Context) ([]domain.Activity, error)
}

// Enroller is the minimal interface needed to sign a participant up.
type Enroller interface {
	Enroll(ctx context.Context, in app.EnrollInput) (domain.Activity, error)
}

// Withdrawer is the minimal interface needed to unregister a participant.
type Withdrawer interface {
	Withdraw(ctx context.Context, in app.WithdrawInput) (domain.Activity, error)
}

type activityResponse struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// HandleListActivities returns an HTTP handler serving the full registry
// as a JSON object keyed by activity name.
func HandleListActivities(svc ActivityLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		activities, err := svc.List(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}

		resp := make(map[string]activityResponse, len(activities))
		for _, act := range activities {
			participants := act.Participants
			if participants == nil {
				participants = []string{}
			}
			resp[act.Name] = activityResponse{
				Description:     act.Description,
				Schedule:        act.Schedule,
				MaxParticipants: act.MaxParticipants,
				Participants:    participants,
			}
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

// HandleSignup returns an HTTP handler for signing an email up to the
// activity named in the path. The name is taken literally, spaces and all.
func HandleSignup(svc Enroller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")
		email := r.FormValue("email")

		_, err := svc.Enroll(r.Context(), app.EnrollInput{
			Activity: name,
			Email:    email,
		})
		if err != nil {
			switch err {
			case domain.ErrEmailRequired:
				writeError(w, http.StatusBadRequest, codeEmailRequired, "email is required")
			case domain.ErrActivityNotFound:
				writeError(w, http.StatusNotFound, codeActivityNotFound, "Activity not found")
			case domain.ErrAlreadyRegistered:
				writeError(w, http.StatusBadRequest, codeAlreadySignedUp,
					fmt.Sprintf("%s is already signed up", email))
			case domain.ErrActivityFull:
				writeError(w, http.StatusBadRequest, codeActivityFull, "Activity is full")
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(messageResponse{
			Message: fmt.Sprintf("%s signed up for %s", email, name),
		})
	}
}

// HandleUnregister returns an HTTP handler for removing an email from the
// activity named in the path.
func HandleUnregister(svc Withdrawer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")
		email := r.FormValue("email")

		_, err := svc.Withdraw(r.Context(), app.WithdrawInput{
			Activity: name,
			Email:    email,
		})
		if err != nil {
			switch err {
			case domain.ErrEmailRequired:
				writeError(w, http.StatusBadRequest, codeEmailRequired, "email is required")
			case domain.ErrActivityNotFound:
				writeError(w, http.StatusNotFound, codeActivityNotFound, "Activity not found")
			case domain.ErrNotRegistered:
				writeError(w, http.StatusBadRequest, codeNotSignedUp,
					fmt.Sprintf("%s is not signed up for this activity", email))
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(messageResponse{
			Message: fmt.Sprintf("%s unregistered from %s", email, name),
		})
	}
}
