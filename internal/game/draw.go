package game

import "github.com/alien-invasion/alien_invasion/internal/world"

// Draw renders one frame back to front: background, ship, bullets, aliens,
// HUD, message feed and, between games, the Play button.
func (s *Sim) Draw(c Canvas) {
	c.Clear(s.Settings.BgColor.RGBA())

	c.Blit(SpriteShip, s.Ship.Bounds())
	s.Bullets.Draw(c)
	s.Fleet.Draw(c)

	for _, l := range s.Board.Labels(s.Stats) {
		c.Label(l)
	}
	s.drawShipIcons(c)
	s.drawMessages(c)

	if !s.Stats.GameActive {
		c.Blit(SpriteButton, s.PlayButton)
		c.Label(Label{
			Text:  "Play",
			X:     s.PlayButton.CenterX(),
			Y:     s.PlayButton.CenterY(),
			Align: AlignCenter,
			Tone:  ToneButton,
		})
	}

	c.Present()
}

// drawShipIcons shows the remaining ships as a row in the top left corner.
func (s *Sim) drawShipIcons(c Canvas) {
	for i := range s.Stats.ShipsLeft {
		x := float64(iconMargin + i*s.Ship.W)
		c.Blit(SpriteShip, world.NewRect(x, iconMargin, s.Ship.W, s.Ship.H))
	}
}

// drawMessages shows the latest feed lines below the ship icons until they
// expire.
func (s *Sim) drawMessages(c Canvas) {
	var since uint64
	if s.Frames > messageLifetime {
		since = s.Frames - messageLifetime
	}
	y := float64(iconMargin + s.Ship.H + hudMargin + hudLineHeight/2)
	for _, m := range s.Log.Since(since, messageLines) {
		c.Label(Label{Text: m.Text, X: hudMargin, Y: y, Align: AlignLeft, Tone: m.Priority.Tone()})
		y += hudLineHeight
	}
}
