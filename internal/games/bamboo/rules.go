package bamboo

// Effect is the outcome of resolving one collision: commands to emit and
// an optional transition request.
type Effect struct {
	Commands []Command
	Next     *State
}

// Rules maps classified collisions to effects for one profile.
type Rules struct {
	profile Profile
}

// NewRules creates the rule engine for profile p.
func NewRules(p Profile) Rules {
	return Rules{profile: p}
}

// Resolve applies the rule for ev. Collisions outside Playing, self-pairs,
// unknown pairs and blocks that are already gone produce an empty Effect.
// A destroyed block is removed from w before Resolve returns.
func (r Rules) Resolve(s State, ev CollisionEvent, w *World) Effect {
	if s.Kind != StatePlaying {
		return Effect{}
	}

	switch ev.Pair {
	case PairBallBorder:
		return r.sound(SoundBounce)

	case PairBallPaddle:
		return r.sound(SoundPaddle)

	case PairBallBottom:
		lost := GameOver(false)
		return Effect{Next: &lost}

	case PairBallBlock:
		return r.breakBlock(ev.Second, w)
	}
	return Effect{}
}

func (r Rules) sound(id SoundID) Effect {
	if !r.profile.Sounds {
		return Effect{}
	}
	return Effect{Commands: []Command{PlaySound(id)}}
}

func (r Rules) breakBlock(block *Entity, w *World) Effect {
	if block == nil || !w.Remove(block.ID) {
		return Effect{}
	}

	var eff Effect
	if r.profile.Sounds {
		eff.Commands = append(eff.Commands, PlaySound(SoundBreak))
	}
	eff.Commands = append(eff.Commands,
		SpawnParticle(EffectBrokenPlatform, block.Pos),
		RemoveEntity(block.ID),
	)

	if w.Count(CategoryBlock) == 0 {
		won := GameOver(true)
		eff.Next = &won
	}
	return eff
}
