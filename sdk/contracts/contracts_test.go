package contracts

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPitchClassOf(t *testing.T) {
	assert := assert.New(t)
	for note := 0; note <= 127; note++ {
		pc := PitchClassOf(byte(note))
		assert.Less(int(pc), NumPitchClasses)
		if note+12 <= 127 {
			assert.Equal(pc, PitchClassOf(byte(note+12)))
		}
		if note-12 >= 0 {
			assert.Equal(pc, PitchClassOf(byte(note-12)))
		}
	}
	assert.Equal(PitchClass(0), PitchClassOf(60))
	assert.Equal(PitchClass(9), PitchClassOf(69))
}

func TestChordNames(t *testing.T) {
	c := Chord{0, 4, 7, 0}
	assert.Equal(t, []string{"C", "E", "G", "C"}, c.Names())
}

func TestMIDIStatusSplit(t *testing.T) {
	m := MIDI{Status: 0x93}
	assert.Equal(t, NoteOn, m.Command())
	assert.Equal(t, uint8(3), m.Channel())
}

func TestEventFilter(t *testing.T) {
	var none *MIDIEventFilter
	assert.True(t, none.Allows(ControlChange))

	f := &MIDIEventFilter{Commands: []MIDICommand{NoteOn}}
	assert.True(t, f.Allows(NoteOn))
	assert.False(t, f.Allows(NoteOff))
}

func TestChordJSONIsNumeric(t *testing.T) {
	data, err := json.Marshal(Chord{0, 4, 7})
	assert.NoError(t, err)
	assert.JSONEq(t, `[0,4,7]`, string(data))

	var c Chord
	assert.NoError(t, json.Unmarshal([]byte(`[12,16,-5]`), &c))
	assert.Equal(t, Chord{0, 4, 7}, c)
}
