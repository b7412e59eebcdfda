package telegram

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebAppKeyboardWireFormat(t *testing.T) {
	markup := webAppKeyboard{
		InlineKeyboard: [][]webAppButton{{
			{
				Text:   "Open Wishlist",
				WebApp: webAppInfo{URL: "https://wishlist.example/app"},
			},
		}},
	}

	payload, err := json.Marshal(markup)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"inline_keyboard": [[
			{"text": "Open Wishlist", "web_app": {"url": "https://wishlist.example/app"}}
		]]
	}`, string(payload))
}
