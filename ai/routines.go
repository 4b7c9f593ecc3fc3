package ai

import "github.com/jakecoffman/cp"

// Routines are deadline fields resumed at the end of every Tick. Each resume
// point checks terminal() before touching anything.

type meleeSwing struct {
	active   bool
	deadline float64
}

type rangedLoop struct {
	scheduled bool
	next      float64
}

type voiceLines struct {
	active bool
	next   float64
}

func (c *Controller) startSwing() {
	if c.swing.active {
		return
	}
	c.weapon.SetActive(true)
	c.weapon.Swing()
	if c.cfg.SwingClip != "" {
		c.audio.Play(c.cfg.SwingClip, true)
	}
	c.swing = meleeSwing{active: true, deadline: c.now + c.cfg.SwingDuration}
}

func (c *Controller) resumeSwing() {
	if !c.swing.active || !reached(c.now, c.swing.deadline) {
		return
	}
	c.swing = meleeSwing{}
	if c.terminal() {
		return
	}
	c.weapon.SetActive(false)
}

func (c *Controller) scheduleRanged() {
	if c.ranged.scheduled {
		return
	}
	c.ranged = rangedLoop{scheduled: true, next: c.now + c.cfg.RangedStartDelay}
	c.log.Debug("ranged attack scheduled", "at", c.ranged.next)
}

// resumeRanged fires one projectile per wait while the target stays beyond
// ranged distance, and ends the loop once it is closer.
func (c *Controller) resumeRanged() {
	if !c.ranged.scheduled || !reached(c.now, c.ranged.next) {
		return
	}
	if c.terminal() || c.distance <= c.cfg.RangedDistance {
		c.ranged = rangedLoop{}
		return
	}

	c.faceTarget()
	c.targetVelocity = cp.Vector{}
	c.setState(StateRanged)
	c.spawner.Spawn(c.muzzle())
	c.ranged.next = c.now + c.cfg.RangedInterval
}

func (c *Controller) muzzle() Transform {
	pos := c.body.Position().
		Add(c.forward.Mult(c.cfg.MuzzleOffset.X)).
		Add(cp.Vector{Y: c.cfg.MuzzleOffset.Y})
	return Transform{Position: pos, Forward: c.forward}
}

func (c *Controller) startVoiceLines() {
	if c.cfg.SpawnClip != "" {
		c.audio.Play(c.cfg.SpawnClip, true)
	}
	c.voice = voiceLines{active: true, next: c.now + c.cfg.VoiceLineInterval}
}

func (c *Controller) resumeVoiceLines() {
	if !c.voice.active || !reached(c.now, c.voice.next) {
		return
	}
	if c.terminal() {
		c.voice = voiceLines{}
		return
	}
	if len(c.cfg.VoiceLines) > 0 {
		c.audio.PlayRandom(c.cfg.VoiceLines, true)
	}
	c.voice.next = c.now + c.cfg.VoiceLineInterval
}

func (c *Controller) cancelRoutines() {
	c.swing = meleeSwing{}
	c.ranged = rangedLoop{}
	c.voice = voiceLines{}
}
