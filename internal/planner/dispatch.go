package planner

import (
	"fmt"

	resp "roadtrip/internal/models/response_models"
)

// Dispatcher routes an ActionLink to its effect: url links open externally,
// skill links invoke a caller-supplied handler. Fire-and-forget, no retry.
type Dispatcher struct {
	OpenURL     func(target string) error
	InvokeSkill func(link resp.ActionLink)
}

func (d Dispatcher) Dispatch(link resp.ActionLink) error {
	switch link.Type {
	case resp.ActionLinkURL:
		if d.OpenURL == nil {
			return fmt.Errorf("no url handler configured")
		}
		return d.OpenURL(link.Target)
	case resp.ActionLinkSkill:
		if d.InvokeSkill == nil {
			return fmt.Errorf("no skill handler configured")
		}
		d.InvokeSkill(link)
		return nil
	default:
		return fmt.Errorf("unknown action link type %q", link.Type)
	}
}
