package game

import (
	"encoding/binary"
	"testing"
)

func TestSynthesizeBlipLength(t *testing.T) {
	data := SynthesizeBlip(48000, BlipRecipe{Frequency: 440, EndFrequency: 440, Duration: 0.1})

	// 16 位立体声：每个采样 4 字节
	if want := 4800 * 4; len(data) != want {
		t.Errorf("Expected %d bytes, got %d", want, len(data))
	}
}

func TestSynthesizeBlipEnvelope(t *testing.T) {
	data := SynthesizeBlip(48000, BlipRecipe{Frequency: 440, EndFrequency: 440, Duration: 0.1, Square: true})

	first := int16(binary.LittleEndian.Uint16(data[0:]))
	lastL := int16(binary.LittleEndian.Uint16(data[len(data)-4:]))
	lastR := int16(binary.LittleEndian.Uint16(data[len(data)-2:]))

	if first == 0 {
		t.Error("Square wave should start at full envelope")
	}
	if abs16(lastL) >= abs16(first) {
		t.Errorf("Envelope should decay: first=%d last=%d", first, lastL)
	}
	if lastL != lastR {
		t.Errorf("Channels should match: L=%d R=%d", lastL, lastR)
	}
}

func TestSynthesizeBlipZeroDuration(t *testing.T) {
	if data := SynthesizeBlip(48000, BlipRecipe{Frequency: 440}); data != nil {
		t.Errorf("Expected nil for zero duration, got %d bytes", len(data))
	}
}

func TestAudioManagerWithoutContext(t *testing.T) {
	am := NewAudioManager(nil, NewSettingsManager(nil))

	if len(am.soundData) != len(soundRecipes) {
		t.Errorf("Expected %d synthesized sounds, got %d", len(soundRecipes), len(am.soundData))
	}
	// 无音频上下文时静默忽略
	if am.PlaySound(SoundHit) {
		t.Error("PlaySound should return false without audio context")
	}

	am.SetSoundVolume(0.2)
	if am.GetSoundVolume() != 0.2 {
		t.Errorf("Expected volume 0.2, got %v", am.GetSoundVolume())
	}
}

func TestNilAudioManagerIsSafe(t *testing.T) {
	var am *AudioManager
	if am.PlaySound(SoundShot) {
		t.Error("nil AudioManager should not play")
	}
}

func abs16(v int16) int16 {
	if v < 0 {
		return -v
	}
	return v
}
