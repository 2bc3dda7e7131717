package sound

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBell_OffByDefault(t *testing.T) {
	var buf bytes.Buffer
	b := NewBell(&buf, nil)

	assert.False(t, b.Enabled())
	b.Play(CueStart)
	assert.Zero(t, buf.Len())
}

func TestBell_PlaysWhenEnabled(t *testing.T) {
	var buf bytes.Buffer
	b := NewBell(&buf, nil)
	b.SetEnabled(true)

	b.Play(CueStart)
	b.Play(CueAnswer)
	b.Play(CueResult)
	assert.Equal(t, "\a\a\a\a", buf.String())

	b.SetEnabled(false)
	b.Play(CueResult)
	assert.Equal(t, 4, buf.Len())
}

func TestBell_UnknownCue(t *testing.T) {
	var buf bytes.Buffer
	b := NewBell(&buf, nil)
	b.SetEnabled(true)
	b.Play(Cue(42))
	assert.Zero(t, buf.Len())
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	r.Play(CueStart)
	assert.Empty(t, r.Played)

	r.SetEnabled(true)
	r.Play(CueAnswer)
	assert.Equal(t, []Cue{CueAnswer}, r.Played)
}

func TestCueString(t *testing.T) {
	assert.Equal(t, "start", CueStart.String())
	assert.Equal(t, "answer", CueAnswer.String())
	assert.Equal(t, "result", CueResult.String())
	assert.Equal(t, "unknown", Cue(9).String())
}
