package game

import (
	"github.com/tomz197/snake/internal/config"
	"github.com/tomz197/snake/internal/physics"
)

// handle routes one event to the handler of the current state. Events
// that mean nothing in the current state are dropped.
func (g *Game) handle(ev Event) {
	if ev.Kind == EventQuit {
		g.quit()
		return
	}

	switch g.state {
	case StateMenu:
		g.handleMenu(ev)
	case StateModeSelect:
		g.handleModeSelect(ev)
	case StatePlaying:
		g.handlePlaying(ev)
	case StateSettings:
		g.handleSettings(ev)
	case StateLeaderboard, StateAchievements:
		if ev.Kind == EventBack {
			g.setState(StateMenu)
		}
	case StateGameOver:
		g.handleGameOver(ev)
	}
}

func (g *Game) handleMenu(ev Event) {
	if ev.Kind != EventSelect {
		return
	}
	switch ev.N {
	case 1:
		g.setState(StateModeSelect)
	case 2:
		g.setState(StateSettings)
	case 3:
		g.setState(StateLeaderboard)
	case 4:
		g.setState(StateAchievements)
	case 5:
		g.quit()
	}
}

// modeChoices maps mode select numbers to modes.
var modeChoices = map[int]config.Mode{
	1: config.ModeClassic,
	2: config.ModeTimeTrial,
	3: config.ModeObstacles,
}

func (g *Game) handleModeSelect(ev Event) {
	if ev.Kind != EventSelect {
		return
	}
	if ev.N == 4 {
		g.setState(StateMenu)
		return
	}
	mode, ok := modeChoices[ev.N]
	if !ok {
		return
	}
	g.settings.Mode = mode
	g.resetRound()
	g.setState(StatePlaying)
}

func (g *Game) handlePlaying(ev Event) {
	if ev.Kind == EventEscape {
		g.logger.Info("round abandoned", "round", g.round.ID, "score", g.round.Score)
		g.round = nil
		g.setState(StateMenu)
		return
	}
	if d := ev.direction(); d != physics.None {
		if !g.round.Steer(d) {
			g.logger.Debug("steer rejected", "dir", d, "heading", g.round.Snake.Dir)
		}
	}
}

func (g *Game) handleSettings(ev Event) {
	switch ev.Kind {
	case EventUp:
		g.settings.Speed = config.ClampSpeed(g.settings.Speed + 1)
	case EventDown:
		g.settings.Speed = config.ClampSpeed(g.settings.Speed - 1)
	case EventMode:
		g.saveSettings()
		g.setState(StateModeSelect)
	case EventBack:
		g.saveSettings()
		g.setState(StateMenu)
	}
}

// saveSettings persists the settings on every way out of the settings screen.
func (g *Game) saveSettings() {
	if err := g.settingsStore.Save(g.settings); err != nil {
		g.logger.Warn("settings not saved", "err", err)
	}
}

func (g *Game) handleGameOver(ev Event) {
	switch ev.Kind {
	case EventConfirm:
		g.resetRound()
		g.setState(StatePlaying)
	case EventMode:
		g.round = nil
		g.setState(StateMenu)
	case EventEscape:
		g.quit()
	}
}

// setState switches screens.
func (g *Game) setState(s State) {
	if s == g.state {
		return
	}
	g.logger.Debug("state change", "from", g.state, "to", s)
	g.state = s
}
