package layout

import (
	"testing"

	"charm.land/bubbles/v2/key"
	"github.com/stretchr/testify/assert"
)

func TestHintsFromBindings_SkipsDisabled(t *testing.T) {
	on := key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "決定"))
	off := key.NewBinding(key.WithKeys("x"), key.WithHelp("X", "消す"))
	off.SetEnabled(false)

	hints := HintsFromBindings(on, off)
	assert.Equal(t, []KeyHint{{Key: "Enter", Description: "決定"}}, hints)
}

func TestRenderHeader_SoundState(t *testing.T) {
	assert.Contains(t, RenderHeader("ホーム", true, 100), "♪ ON")
	assert.Contains(t, RenderHeader("ホーム", false, 100), "♪ OFF")
	assert.Contains(t, RenderHeader("ホーム", false, 100), AppName)
}

func TestIsTooSmall(t *testing.T) {
	assert.True(t, IsTooSmall(MinWidth-1, MinHeight))
	assert.True(t, IsTooSmall(MinWidth, MinHeight-1))
	assert.False(t, IsTooSmall(MinWidth, MinHeight))
}
