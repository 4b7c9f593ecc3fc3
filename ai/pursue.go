package ai

// updatePursue steers toward the current waypoint. A melee contact preempts
// any pending waypoint advance or replan.
func (c *Controller) updatePursue() {
	if c.inMeleeRange {
		c.enterMelee()
		return
	}

	nodes := c.nav.Waypoints()
	if c.pathNodeIndex < 0 || c.pathNodeIndex >= len(nodes) {
		c.log.Warn("path index out of range, replanning", "index", c.pathNodeIndex, "nodes", len(nodes))
		c.replan(0)
		return
	}

	node := nodes[c.pathNodeIndex]
	c.faceTowards(node)

	if horizontal(node.Sub(c.body.Position())).Length() < c.cfg.WaypointReachDistance {
		c.pathNodeIndex++
		if c.pathNodeIndex >= len(nodes) {
			// End of path. On failure the last target velocity is kept.
			c.replan(0)
			return
		}
	}

	v := c.forward.Mult(c.cfg.Speed)
	v.Y = c.body.Velocity().Y
	c.targetVelocity = v

	if after(c.stateElapsed, c.cfg.ReplanInterval) {
		c.replan(1)
	}
}

// replan is the Pursue self-transition: it requests a fresh path and
// restarts the waypoint walk at index.
func (c *Controller) replan(index int) {
	c.pathNodeIndex = index
	c.setState(StatePursue)
	c.requestPath()
}
