package audio

import "math"

// Synthesize renders the named sound as interleaved stereo float32 LE
// samples. It returns nil for unknown names.
func Synthesize(id string) []byte {
	switch id {
	case "pongblip":
		return genBlip(880, 0.06)
	case "paddleBlip":
		return genBlip(587.33, 0.08)
	case "BambooBreak":
		return genBreak()
	case "game-won":
		return genWon()
	case "game-over":
		return genGameOver()
	}
	return nil
}

// Sounds lists the names Synthesize knows.
func Sounds() []string {
	return []string{"pongblip", "paddleBlip", "BambooBreak", "game-won", "game-over"}
}

// genBlip: short square-ish bounce with a fast decay.
func genBlip(freq, dur float64) []byte {
	n := int(dur * SampleRate)
	buf := makeBuf(n)
	for i := range n {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.4, 0.2, 0.3)
		s := math.Sin(2*math.Pi*freq*t) * env * 0.45
		s += math.Sin(2*math.Pi*freq*3*t) * env * 0.08
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genBreak: woody knock plus a burst of filtered noise.
func genBreak() []byte {
	n := int(0.22 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(4242)
	lp := 0.0
	for i := range n {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := math.Exp(-p * 9)
		lp = lp*0.7 + lcg(&seed)*0.3
		knock := fm(t, 220*(1-p*0.3), 1.5, 2.5*env) * math.Exp(-p*14)
		s := (lp*0.5 + knock*0.6) * env
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genWon: rising major arpeggio.
func genWon() []byte {
	notes := []float64{523.25, 659.25, 783.99, 1046.5}
	noteStep := int(0.1 * SampleRate)
	total := len(notes)*noteStep + int(0.3*SampleRate)
	mix := make([]float64, total)

	for fi, freq := range notes {
		start := fi * noteStep
		dur := total - start
		for j := range dur {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.004, 0.6, 0.05, 0.3)
			mix[start+j] += fm(t, freq, 2.0, 3.0*env) * env * 0.26
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genGameOver: slow descending minor chord, staggered.
func genGameOver() []byte {
	dur := 0.75
	n := int(dur * SampleRate)
	notes := []struct{ freq, onset float64 }{
		{329.63, 0.00}, // E4
		{261.63, 0.14}, // C4
		{220.00, 0.28}, // A3
	}
	mix := make([]float64, n)
	for _, note := range notes {
		start := int(note.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.25, 0.3, 0.45)
			freq := note.freq * (1 - np*0.025)
			mix[i] += fm(t, freq, 2.0, 2.0*env) * env * 0.32
		}
	}
	buf := makeBuf(n)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for ch := range ChannelCount {
		o := i*8 + ch*4
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
	}
}

// softSat applies gentle saturation instead of hard clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func makeBuf(n int) []byte { return make([]byte, n*4*ChannelCount) }
