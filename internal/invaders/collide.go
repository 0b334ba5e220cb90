package invaders

// resolveCollisions removes every invader hit by a rocket together with the
// first rocket that hit it. Each hit scores once. Survivors are collected
// into fresh slices so nothing is removed while iterating.
func (p *PlayState) resolveCollisions(g *Game) {
	if len(p.rockets) == 0 || len(p.invaders) == 0 {
		return
	}

	spent := make([]bool, len(p.rockets))
	invaders := make([]Invader, 0, len(p.invaders))
	for _, inv := range p.invaders {
		box := inv.Box()
		hit := false
		for i, r := range p.rockets {
			if spent[i] || !box.Contains(r.Pos) {
				continue
			}
			spent[i] = true
			hit = true
			break
		}
		if !hit {
			invaders = append(invaders, inv)
			continue
		}
		g.score += g.cfg.Invaders.Points
		g.play(SoundBang)
	}

	rockets := make([]Rocket, 0, len(p.rockets))
	for i, r := range p.rockets {
		if !spent[i] {
			rockets = append(rockets, r)
		}
	}

	p.invaders = invaders
	p.rockets = rockets
}
