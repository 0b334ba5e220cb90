package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// PlayState runs one level of the simulation.
type PlayState struct {
	level  int
	params config.LevelParams

	ship     Ship
	invaders []Invader
	rockets  []Rocket
	bombs    []Bomb

	speed        float64  // current invader speed
	velocity     core.Vec // current invader velocity
	nextVelocity core.Vec // velocity to resume with after a drop
	dropping     bool
	dropped      float64 // distance descended in the current drop

	fireQueued bool
}

// NewPlayState creates the play state for a level.
func NewPlayState(level int) *PlayState {
	return &PlayState{level: level}
}

func (*PlayState) Name() string { return StatePlay }

// Enter derives the level parameters, places the ship and builds the formation.
func (p *PlayState) Enter(g *Game) {
	params, err := g.cfg.Derive(p.level)
	if err != nil {
		g.log.Error("derive level parameters", "level", p.level, "err", err)
		p.level = 1
		params, _ = g.cfg.Derive(1)
	}
	p.params = params

	p.dropping = false
	p.dropped = 0
	p.speed = params.InvaderInitialVelocity
	p.velocity = core.Vec{X: p.speed}
	p.nextVelocity = core.Vec{}
	p.fireQueued = false
	p.rockets = nil
	p.bombs = nil

	b := g.Bounds()
	p.ship = Ship{Pos: core.Vec{X: g.Width() / 2, Y: b.Bottom}}

	ranks, files := params.InvaderRanks, params.InvaderFiles
	spread := g.cfg.Arena.Width / 2
	p.invaders = make([]Invader, 0, ranks*files)
	for rank := range ranks {
		for file := range files {
			p.invaders = append(p.invaders, Invader{
				Pos: core.Vec{
					X: g.Width()/2 + (float64(files)/2-float64(file))*spread/float64(files),
					Y: b.Top + float64(rank*RankSpacing),
				},
				Rank: rank,
				File: file,
			})
		}
	}

	g.log.Debug("level entered", "level", p.level, "invaders", len(p.invaders),
		"velocity", params.InvaderInitialVelocity, "max_fire", params.RocketMaxFire)
}

func (p *PlayState) KeyDown(g *Game, k core.Key) {
	switch k {
	case core.KeySpace:
		p.fireQueued = true
	case core.KeyP:
		pause := &PauseState{}
		pause.resume = g.PushState(pause)
	}
}

// Update advances the level by dt seconds.
func (p *PlayState) Update(g *Game, dt float64) {
	p.updateShip(g, dt)
	p.updateProjectiles(g, dt)
	p.dropBombs(g, dt)
	p.updateFormation(g, dt)
	p.resolveCollisions(g)

	if g.lives <= 0 {
		g.MoveToState(&GameOverState{})
		return
	}
	if len(p.invaders) == 0 {
		g.level++
		g.MoveToState(NewLevelIntroState(g.level))
		return
	}
}

func (p *PlayState) updateShip(g *Game, dt float64) {
	b := g.Bounds()
	if g.Held(core.KeyLeft) {
		p.ship.Pos.X -= p.params.ShipSpeed * dt
	}
	if g.Held(core.KeyRight) {
		p.ship.Pos.X += p.params.ShipSpeed * dt
	}
	p.ship.Pos.X = core.ClampF(p.ship.Pos.X, b.Left, b.Right)

	if g.Held(core.KeySpace) || p.fireQueued {
		p.fireQueued = false
		p.fire(g)
	}
}

// fire launches a rocket unless the maximum number is already in flight.
func (p *PlayState) fire(g *Game) bool {
	if len(p.rockets) >= p.params.RocketMaxFire {
		return false
	}
	p.rockets = append(p.rockets, Rocket{
		Pos:      p.ship.Nose(),
		Velocity: -g.cfg.Rockets.Velocity,
	})
	g.play(SoundShoot)
	return true
}

func (p *PlayState) updateProjectiles(g *Game, dt float64) {
	b := g.Bounds()

	rockets := make([]Rocket, 0, len(p.rockets))
	for _, r := range p.rockets {
		r.Pos.Y += r.Velocity * dt
		if r.Pos.Y < b.Top {
			continue
		}
		rockets = append(rockets, r)
	}
	p.rockets = rockets

	bombs := make([]Bomb, 0, len(p.bombs))
	shipBox := p.ship.Box()
	for _, bomb := range p.bombs {
		bomb.Pos.Y += bomb.Velocity * dt
		if bomb.Pos.Y > b.Bottom {
			continue
		}
		if shipBox.Contains(bomb.Pos) {
			g.lives--
			g.play(SoundExplosion)
			continue
		}
		bombs = append(bombs, bomb)
	}
	p.bombs = bombs
}

// dropBombs gives the front invader of every file a chance to bomb.
func (p *PlayState) dropBombs(g *Game, dt float64) {
	front := make(map[int]Invader, p.params.InvaderFiles)
	for _, inv := range p.invaders {
		if cur, ok := front[inv.File]; !ok || inv.Rank > cur.Rank {
			front[inv.File] = inv
		}
	}

	chance := p.params.BombRate * dt
	span := p.params.BombMaxVelocity - p.params.BombMinVelocity
	for file := range p.params.InvaderFiles {
		inv, ok := front[file]
		if !ok {
			continue
		}
		if g.rng.Float64() >= chance {
			continue
		}
		p.bombs = append(p.bombs, Bomb{
			Pos:      core.Vec{X: inv.Pos.X, Y: inv.Pos.Y + InvaderHeight/2},
			Velocity: p.params.BombMinVelocity + g.rng.Float64()*span,
		})
	}
}

// updateFormation moves the invaders as one body. Hitting a side wall
// starts a drop instead of moving; the formation reverses once the drop
// distance has been covered.
func (p *PlayState) updateFormation(g *Game, dt float64) {
	b := g.Bounds()
	delta := p.velocity.Scale(dt)

	breach, landed := false, false
	for _, inv := range p.invaders {
		next := inv.Pos.Add(delta)
		if next.X < b.Left || next.X > b.Right {
			breach = true
		}
		if next.Y > b.Bottom {
			landed = true
		}
	}

	if landed {
		g.lives = 0
		return
	}

	if breach {
		p.speed += g.cfg.Invaders.Acceleration
		p.nextVelocity = core.Vec{X: -sign(p.velocity.X) * p.speed}
		p.velocity = core.Vec{Y: p.speed}
		p.dropping = true
		p.dropped = 0
		return
	}

	for i := range p.invaders {
		p.invaders[i].Pos = p.invaders[i].Pos.Add(delta)
	}

	if p.dropping {
		p.dropped += delta.Y
		if p.dropped >= g.cfg.Invaders.DropDistance {
			p.dropping = false
			p.velocity = p.nextVelocity
			p.dropped = 0
		}
	}

	shipBox := p.ship.Box()
	for _, inv := range p.invaders {
		if inv.Box().Intersects(shipBox) {
			g.lives = 0
			return
		}
	}
}

func (p *PlayState) Draw(g *Game, s Surface, _ float64) {
	drawHUD(g, s)

	s.FillRect(p.ship.Box(), colorShip)
	for _, inv := range p.invaders {
		s.FillRect(inv.Box(), colorInvader)
	}
	for _, r := range p.rockets {
		s.FillRect(core.CenteredBox(r.Pos.X, r.Pos.Y, RocketWidth, RocketHeight), colorRocket)
	}
	for _, bomb := range p.bombs {
		s.FillRect(core.CenteredBox(bomb.Pos.X, bomb.Pos.Y, BombWidth, BombHeight), colorBomb)
	}
}

// Level returns the level being played.
func (p *PlayState) Level() int { return p.level }

// Params returns the derived parameters for the level.
func (p *PlayState) Params() config.LevelParams { return p.params }

// Ship returns the player's ship.
func (p *PlayState) Ship() Ship { return p.ship }

// Invaders returns the live invaders. The slice must not be modified.
func (p *PlayState) Invaders() []Invader { return p.invaders }

// Rockets returns the rockets in flight. The slice must not be modified.
func (p *PlayState) Rockets() []Rocket { return p.rockets }

// Bombs returns the bombs in flight. The slice must not be modified.
func (p *PlayState) Bombs() []Bomb { return p.bombs }

func sign(f float64) float64 {
	switch {
	case f < 0:
		return -1
	case f > 0:
		return 1
	default:
		return 0
	}
}
