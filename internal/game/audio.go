package game

import (
	"io"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies the game's sound effects.
type SoundKind int

const (
	SoundPickup SoundKind = iota
	SoundDrop
	SoundSizzle
	SoundDing
	SoundAngry
	SoundThrow
	SoundEat
	SoundHit
	SoundGameOver
	SoundSelect
)

// AudioSystem manages procedural sound effects. All effects are
// synthesized at trigger time; there are no sample assets.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}
}

var globalAudio *AudioSystem

var sfxVolume = 0.8

// InitAudio initializes the audio system. Failure leaves the game
// silent but otherwise intact.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// PlaySound fires one procedurally generated effect. No-op when audio
// is unavailable or still warming up.
func PlaySound(kind SoundKind) {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	samples := generateSound(kind)
	if len(samples) == 0 {
		return
	}
	go func() {
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both channels.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func makeBuf(n int) []byte { return make([]byte, n*8) }

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundPickup:
		return genBlip(620, 880, 0.09)
	case SoundDrop:
		return genBlip(440, 260, 0.11)
	case SoundSizzle:
		return genSizzle()
	case SoundDing:
		return genDing()
	case SoundAngry:
		return genGrowl()
	case SoundThrow:
		return genWhoosh()
	case SoundEat:
		return genBlip(330, 520, 0.14)
	case SoundHit:
		return genThud()
	case SoundGameOver:
		return genDescend()
	case SoundSelect:
		return genBlip(520, 780, 0.07)
	}
	return nil
}

// genBlip sweeps a sine from f0 to f1 with a quick decay envelope.
func genBlip(f0, f1, dur float64) []byte {
	n := int(dur * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := t / dur
		f := f0 + (f1-f0)*p
		env := (1 - p) * (1 - p)
		putStereoF32(buf, i, 0.5*env*math.Sin(2*math.Pi*f*t))
	}
	return buf
}

// genSizzle is filtered noise: the cook-start sound.
func genSizzle() []byte {
	n := int(0.35 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(0x5EED)
	prev := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		env := math.Sin(math.Pi * p) // swell and fade
		// One-pole high-pass keeps it hissy rather than rumbling.
		s := lcg(&seed)
		hp := s - prev
		prev = s
		putStereoF32(buf, i, 0.3*env*hp)
	}
	return buf
}

// genDing is the dish-ready bell: two partials with a long decay.
func genDing() []byte {
	n := int(0.6 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		env := math.Exp(-5 * t)
		s := math.Sin(2*math.Pi*1046*t) + 0.5*math.Sin(2*math.Pi*1568*t)
		putStereoF32(buf, i, 0.35*env*s)
	}
	return buf
}

// genGrowl marks a customer turning angry.
func genGrowl() []byte {
	n := int(0.4 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(0xA17)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := math.Sin(math.Pi * p)
		s := math.Sin(2*math.Pi*82*t+2.5*math.Sin(2*math.Pi*55*t)) + 0.3*lcg(&seed)
		putStereoF32(buf, i, 0.4*env*s)
	}
	return buf
}

// genWhoosh accompanies a thrown projectile.
func genWhoosh() []byte {
	n := int(0.18 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(0x717)
	lp := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		env := math.Sin(math.Pi * p)
		lp += 0.25 * (lcg(&seed) - lp)
		putStereoF32(buf, i, 0.5*env*lp)
	}
	return buf
}

// genThud is the player-hit impact.
func genThud() []byte {
	n := int(0.2 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(0xBADD)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		env := math.Exp(-18 * t)
		s := math.Sin(2*math.Pi*(120-220*t)*t) + 0.4*lcg(&seed)*env
		putStereoF32(buf, i, 0.6*env*s)
	}
	return buf
}

// genDescend is the game-over slide.
func genDescend() []byte {
	n := int(0.9 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		f := 440 * math.Pow(0.4, p)
		env := 1 - p
		putStereoF32(buf, i, 0.4*env*math.Sin(2*math.Pi*f*t))
	}
	return buf
}
