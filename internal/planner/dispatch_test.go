package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	resp "roadtrip/internal/models/response_models"
	"roadtrip/internal/planner"
)

func TestDispatcher_URLLink(t *testing.T) {
	var opened string
	d := planner.Dispatcher{
		OpenURL: func(target string) error {
			opened = target
			return nil
		},
	}

	err := d.Dispatch(resp.ActionLink{
		Type:        resp.ActionLinkURL,
		DisplayText: "Book Now",
		Target:      "https://example.com/book",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/book", opened)
}

func TestDispatcher_SkillLink(t *testing.T) {
	var invoked resp.ActionLink
	d := planner.Dispatcher{
		InvokeSkill: func(link resp.ActionLink) {
			invoked = link
		},
	}

	err := d.Dispatch(resp.ActionLink{
		Type:        resp.ActionLinkSkill,
		DisplayText: "Expert Help",
		Target:      "contact_hotel_expert",
	})

	require.NoError(t, err)
	assert.Equal(t, "contact_hotel_expert", invoked.Target)
}

func TestDispatcher_UnknownTypeErrors(t *testing.T) {
	d := planner.Dispatcher{
		OpenURL:     func(string) error { return nil },
		InvokeSkill: func(resp.ActionLink) {},
	}

	err := d.Dispatch(resp.ActionLink{Type: "carrier-pigeon"})

	assert.Error(t, err)
}

func TestDispatcher_MissingHandlerErrors(t *testing.T) {
	d := planner.Dispatcher{}

	err := d.Dispatch(resp.ActionLink{Type: resp.ActionLinkURL, Target: "#"})

	assert.Error(t, err)
}
