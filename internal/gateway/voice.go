package gateway

// Voice names a Gemini prebuilt speech voice.
type Voice string

const (
	VoiceKore   Voice = "Kore"
	VoicePuck   Voice = "Puck"
	VoiceCharon Voice = "Charon"
	VoiceFenrir Voice = "Fenrir"
	VoiceZephyr Voice = "Zephyr"
	VoiceAoede  Voice = "Aoede"
	VoiceLeda   Voice = "Leda"
	VoiceOrus   Voice = "Orus"
)

// Voices lists every supported voice in display order.
var Voices = []Voice{
	VoiceKore,
	VoicePuck,
	VoiceCharon,
	VoiceFenrir,
	VoiceZephyr,
	VoiceAoede,
	VoiceLeda,
	VoiceOrus,
}

func (v Voice) Valid() bool {
	for _, known := range Voices {
		if v == known {
			return true
		}
	}
	return false
}

func (v Voice) String() string {
	return string(v)
}
