package planner

import (
	"context"
	"sync"

	resp "roadtrip/internal/models/response_models"
)

// Stack is the navigation state machine: an ordered stack of view frames
// that is never empty. "Back" returns to the exact prior frame with its
// original payload, which is why history is a stack and not a single current
// view pointer.
type Stack struct {
	mu      sync.Mutex
	frames  []Frame
	session *Session
}

// NewStack starts at [Home]. The session gates rendering: while it is empty
// the current frame is forced to Login regardless of stack contents.
func NewStack(session *Session) *Stack {
	return &Stack{
		frames:  []Frame{HomeFrame()},
		session: session,
	}
}

func (s *Stack) Push(frame Frame) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames = append(s.frames, frame)
}

// Back pops the top frame unless it is the only one; at the root it is a
// no-op so the stack can never empty.
func (s *Stack) Back() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.frames) > 1 {
		s.frames = s.frames[:len(s.frames)-1]
	}
}

// ResetTo discards all history and leaves exactly [frame]. Used for logout
// (Login frame) and the logo click (Home frame).
func (s *Stack) ResetTo(frame Frame) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames = []Frame{frame}
}

// ReplaceTop substitutes the top frame with transform(top), but only when
// the top frame's kind matches the expected one. The kind check guards
// against clobbering the wrong frame when an async result lands after an
// intervening navigation; on mismatch nothing changes. Deeper frames are
// never touched. Returns whether the replacement happened.
func (s *Stack) ReplaceTop(kind FrameKind, transform func(Frame) Frame) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	top := s.frames[len(s.frames)-1]
	if top.Kind != kind {
		return false
	}
	s.frames[len(s.frames)-1] = transform(top)
	return true
}

// CurrentFrame is what is on screen: the Login frame while no user is signed
// in, otherwise the top of the stack. An unrecognized kind degrades to Home
// rather than failing.
func (s *Stack) CurrentFrame() Frame {
	if s.session != nil {
		if _, ok := s.session.Current(); !ok {
			return LoginFrame()
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	top := s.frames[len(s.frames)-1]
	if !knownKind(top.Kind) {
		return HomeFrame()
	}
	return top
}

// Login signs in through the attached session and restarts navigation at
// Home, discarding whatever the logged-out stack held. On failure the stack
// is untouched.
func (s *Stack) Login(ctx context.Context, name, email, profilePictureURL string) (resp.User, error) {
	user, err := s.session.Login(ctx, name, email, profilePictureURL)
	if err != nil {
		return resp.User{}, err
	}
	s.ResetTo(HomeFrame())
	return user, nil
}

// Logout clears the session and leaves the Login frame as the only history.
func (s *Stack) Logout(ctx context.Context) {
	s.session.Logout(ctx)
	s.ResetTo(LoginFrame())
}

func (s *Stack) Depth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.frames)
}
