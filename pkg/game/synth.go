package game

import (
	"encoding/binary"
	"math"
)

// BlipRecipe 合成音效参数
type BlipRecipe struct {
	Frequency    float64 // 起始频率（Hz）
	EndFrequency float64 // 结束频率（Hz），线性滑音
	Duration     float64 // 时长（秒）
	Square       bool    // true 为方波，false 为正弦波
}

// blipAmplitude 峰值幅度（int16 满幅的比例）
const blipAmplitude = 0.3

// SynthesizeBlip 合成一段带线性衰减包络的短音
//
// 输出格式为 ebiten audio 使用的 16 位有符号小端立体声 PCM。
func SynthesizeBlip(sampleRate int, r BlipRecipe) []byte {
	samples := int(float64(sampleRate) * r.Duration)
	if samples <= 0 {
		return nil
	}

	buf := make([]byte, samples*4)
	phase := 0.0
	for i := 0; i < samples; i++ {
		progress := float64(i) / float64(samples)
		freq := r.Frequency + (r.EndFrequency-r.Frequency)*progress
		phase += 2 * math.Pi * freq / float64(sampleRate)

		v := math.Sin(phase)
		if r.Square {
			if v >= 0 {
				v = 1
			} else {
				v = -1
			}
		}

		envelope := 1 - progress
		sample := int16(v * envelope * blipAmplitude * math.MaxInt16)

		// 左右声道相同
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(sample))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(sample))
	}

	return buf
}
