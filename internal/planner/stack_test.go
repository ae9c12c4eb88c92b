package planner_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	resp "roadtrip/internal/models/response_models"
	"roadtrip/internal/planner"
)

func sampleTripResult() resp.TripResult {
	return resp.TripResult{
		Origin:        "Los Angeles, CA",
		Destination:   "New York, NY",
		TotalDistance: "580 miles",
		TotalDuration: "9 hours 30 mins",
		Waypoints: []resp.Waypoint{
			{ID: "wp-1", Name: "Las Vegas, NV"},
		},
		Steps: []string{"Start from Los Angeles, CA."},
	}
}

func TestStack_StartsAtHome(t *testing.T) {
	s := planner.NewStack(nil)

	assert.Equal(t, planner.FrameHome, s.CurrentFrame().Kind)
	assert.Equal(t, 1, s.Depth())
}

func TestStack_BackAtRootIsNoOp(t *testing.T) {
	s := planner.NewStack(nil)

	s.Back()
	s.Back()

	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, planner.FrameHome, s.CurrentFrame().Kind)
}

func TestStack_PushBackNeverEmpties(t *testing.T) {
	s := planner.NewStack(nil)

	s.Push(planner.NewTripFrame())
	s.Push(planner.SettingsFrame())
	for i := 0; i < 10; i++ {
		s.Back()
	}

	assert.Equal(t, 1, s.Depth())
}

func TestStack_ResetToDiscardsHistory(t *testing.T) {
	s := planner.NewStack(nil)
	s.Push(planner.NewTripFrame())
	s.Push(planner.SettingsFrame())

	s.ResetTo(planner.LoginFrame())

	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, planner.FrameLogin, s.CurrentFrame().Kind)

	// Back at the new root is still a no-op.
	s.Back()
	assert.Equal(t, planner.FrameLogin, s.CurrentFrame().Kind)
}

func TestStack_BackRestoresExactPayload(t *testing.T) {
	s := planner.NewStack(nil)
	tr := sampleTripResult()

	s.Push(planner.TripResultsFrame(tr))
	s.Push(planner.HotelsFrame(tr.Waypoints[0]))
	s.Back()

	got := s.CurrentFrame()
	require.Equal(t, planner.FrameTripResults, got.Kind)
	assert.Equal(t, tr, got.TripResult)
}

func TestStack_ReplaceTopMatchingKind(t *testing.T) {
	s := planner.NewStack(nil)
	s.Push(planner.TripResultsFrame(sampleTripResult()))

	updated := sampleTripResult()
	updated.Steps = append(updated.Steps, "Added stop.")

	ok := s.ReplaceTop(planner.FrameTripResults, func(f planner.Frame) planner.Frame {
		f.TripResult = updated
		return f
	})

	require.True(t, ok)
	assert.Equal(t, updated, s.CurrentFrame().TripResult)
	assert.Equal(t, 2, s.Depth())
}

func TestStack_ReplaceTopMismatchedKindIsNoOp(t *testing.T) {
	s := planner.NewStack(nil)
	tr := sampleTripResult()
	s.Push(planner.TripResultsFrame(tr))
	s.Push(planner.SettingsFrame())

	called := false
	ok := s.ReplaceTop(planner.FrameTripResults, func(f planner.Frame) planner.Frame {
		called = true
		return f
	})

	assert.False(t, ok)
	assert.False(t, called)
	assert.Equal(t, planner.FrameSettings, s.CurrentFrame().Kind)

	// The deeper frame is untouched.
	s.Back()
	assert.Equal(t, tr, s.CurrentFrame().TripResult)
}

func TestStack_ReplaceTopLeavesDeeperFramesAlone(t *testing.T) {
	s := planner.NewStack(nil)
	tr := sampleTripResult()
	s.Push(planner.TripDetailFrame(resp.Trip{ID: "t1", Name: "Old"}))
	s.Push(planner.TripResultsFrame(tr))

	s.ReplaceTop(planner.FrameTripResults, func(f planner.Frame) planner.Frame {
		f.TripResult.TotalDistance = "600 miles"
		return f
	})

	s.Back()
	assert.Equal(t, "t1", s.CurrentFrame().Trip.ID)
}

func TestStack_UnknownKindDegradesToHome(t *testing.T) {
	s := planner.NewStack(nil)
	s.Push(planner.Frame{Kind: planner.FrameKind("bogus")})

	assert.Equal(t, planner.FrameHome, s.CurrentFrame().Kind)
}

func TestStack_LoginResetsToHome(t *testing.T) {
	store := &mockStore{
		loginOrCreateUser: func(_ context.Context, name, email, _ string) (resp.User, error) {
			return resp.User{ID: "u1", Name: name, Email: email}, nil
		},
	}
	session := planner.NewSession(store, newMemSlot())
	s := planner.NewStack(session)
	s.Push(planner.SettingsFrame())

	user, err := s.Login(context.Background(), "Ada", "ada@example.com", "")

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, planner.FrameHome, s.CurrentFrame().Kind)
}

func TestStack_LoginFailureLeavesStackAlone(t *testing.T) {
	store := &mockStore{
		loginOrCreateUser: func(_ context.Context, _, _, _ string) (resp.User, error) {
			return resp.User{}, errors.New("store unavailable")
		},
	}
	session := planner.NewSession(store, newMemSlot())
	s := planner.NewStack(session)
	s.Push(planner.SettingsFrame())

	_, err := s.Login(context.Background(), "Ada", "ada@example.com", "")

	require.Error(t, err)
	assert.Equal(t, 2, s.Depth())
}

func TestStack_LogoutResetsToLogin(t *testing.T) {
	store := &mockStore{
		loginOrCreateUser: func(_ context.Context, name, email, _ string) (resp.User, error) {
			return resp.User{ID: "u1", Name: name, Email: email}, nil
		},
	}
	session := planner.NewSession(store, newMemSlot())
	s := planner.NewStack(session)
	_, err := s.Login(context.Background(), "Ada", "ada@example.com", "")
	require.NoError(t, err)
	s.Push(planner.NewTripFrame())

	s.Logout(context.Background())

	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, planner.FrameLogin, s.CurrentFrame().Kind)
	_, ok := session.Current()
	assert.False(t, ok)
}

func TestStack_SessionGatingForcesLogin(t *testing.T) {
	store := &mockStore{}
	session := planner.NewSession(store, newMemSlot())
	s := planner.NewStack(session)
	s.Push(planner.SettingsFrame())

	// No user signed in: whatever the stack holds, Login is on screen.
	assert.Equal(t, planner.FrameLogin, s.CurrentFrame().Kind)

	store.loginOrCreateUser = func(_ context.Context, _, _, _ string) (resp.User, error) {
		return resp.User{ID: "u1", Name: "Ada", Email: "ada@example.com"}, nil
	}
	_, err := session.Login(context.Background(), "Ada", "ada@example.com", "")
	require.NoError(t, err)

	// The stack resumes from where it was.
	assert.Equal(t, planner.FrameSettings, s.CurrentFrame().Kind)
}
