package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioSampleRate 音频上下文采样率
const AudioSampleRate = 48000

// SoundID 音效标识
type SoundID string

const (
	// SoundShot 开枪
	SoundShot SoundID = "shot"
	// SoundHit 命中靶子
	SoundHit SoundID = "hit"
	// SoundTaunt 嘲讽角色开口
	SoundTaunt SoundID = "taunt"
)

// soundRecipes 合成音效参数
// 靶场不依赖任何音频资源文件，所有音效在启动时合成
var soundRecipes = map[SoundID]BlipRecipe{
	SoundShot:  {Frequency: 880, EndFrequency: 220, Duration: 0.06, Square: true},
	SoundHit:   {Frequency: 660, EndFrequency: 1320, Duration: 0.10},
	SoundTaunt: {Frequency: 180, EndFrequency: 140, Duration: 0.18, Square: true},
}

// AudioManager 音频管理器
// 职责：
//   - 统一管理靶场所有音效的播放
//   - 实现音量控制（从 SettingsManager 读取设置）
//
// audioContext 为 nil 时（无头模拟、测试）所有播放请求直接忽略
type AudioManager struct {
	audioContext    *audio.Context
	settingsManager *SettingsManager
	soundData       map[SoundID][]byte // 合成好的 PCM 数据
}

// NewAudioManager 创建新的音频管理器并合成所有音效
//
// 参数：
//   - ctx: ebiten 音频上下文，可为 nil（静音）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	am := &AudioManager{
		audioContext:    ctx,
		settingsManager: sm,
		soundData:       make(map[SoundID][]byte, len(soundRecipes)),
	}

	for id, recipe := range soundRecipes {
		am.soundData[id] = SynthesizeBlip(AudioSampleRate, recipe)
	}
	log.Printf("[AudioManager] Synthesized %d sounds", len(am.soundData))

	return am
}

// PlaySound 播放音效
// 每次播放创建新的播放器，允许同一音效重叠
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(id SoundID) bool {
	if am == nil || am.audioContext == nil {
		return false
	}

	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	data, ok := am.soundData[id]
	if !ok {
		log.Printf("[AudioManager] Warning: Sound not found: %s", id)
		return false
	}

	player := am.audioContext.NewPlayerFromBytes(data)
	player.SetVolume(am.GetSoundVolume())
	player.Play()

	return true
}

// SetSoundVolume 设置音效音量，影响后续播放的所有音效
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}
}

// GetSoundVolume 获取当前音效音量
func (am *AudioManager) GetSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return DefaultSettings().SoundVolume
}
