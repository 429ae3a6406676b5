package player

import (
	"fmt"
	"time"

	"github.com/atomicstack/player-remote-control/internal/input"
	"github.com/atomicstack/player-remote-control/internal/logging/events"
	"github.com/atomicstack/player-remote-control/internal/mode"
	"github.com/atomicstack/player-remote-control/internal/scroll"
	"github.com/atomicstack/player-remote-control/internal/session"
	"github.com/atomicstack/player-remote-control/internal/stack"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Mode names registered by the simulator.
const (
	ModeHome       = "home"
	ModeBrowse     = "browse"
	ModeSearch     = "search"
	ModeNowPlaying = "nowplaying"
	ModeVolume     = "volume"
	ModeSettings   = "settings"
	ModeMessage    = "message"
)

// Session param keys.
const (
	paramListIndex = "listIndex"
	paramQuery     = "query"
	paramText      = "text"
)

// HomeItems are the root menu entries in display order.
func HomeItems() []string {
	return []string{"Browse Music", "Search", "Now Playing", "Settings"}
}

// SettingsItems are the settings menu entries.
func SettingsItems() []string {
	return []string{"Repeat", "Shuffle"}
}

// Tunables are the scroll and input constants the modes seed new contexts
// with.
type Tunables struct {
	Tc              float64
	MinimumVelocity float64
	MultiTapTimeout time.Duration
	RepeatRate      float64
	RepeatAccel     float64
	RepeatWindow    time.Duration
}

// DefaultTunables mirrors the engine defaults.
func DefaultTunables() Tunables {
	return Tunables{
		Tc:              scroll.DefaultTc,
		MinimumVelocity: scroll.DefaultMinimumVelocity,
		MultiTapTimeout: scroll.DefaultMultiTapTimeout,
		RepeatRate:      10,
		RepeatAccel:     15,
		RepeatWindow:    input.DefaultRepeatWindow,
	}
}

// Modes wires the demo mode set to the control core.
type Modes struct {
	mgr *stack.Manager
	p   *Player
	tun Tunables
	tap scroll.Table

	volumeStep int

	now func() time.Time
}

// RegisterModes builds the standard mode set and installs it, plus the
// cross-cutting default bindings, into the registry.
func RegisterModes(reg *mode.Registry, mgr *stack.Manager, p *Player, tun Tunables) *Modes {
	m := &Modes{
		mgr:        mgr,
		p:          p,
		tun:        tun,
		tap:        scroll.DefaultTable(),
		volumeStep: 2,
		now:        time.Now,
	}

	reg.Register(mode.Definition{
		Name:    ModeHome,
		OnEnter: m.enterList(func() int { return len(HomeItems()) }),
		Functions: map[string]mode.Handler{
			"up":    m.listMove(-1, func() int { return len(HomeItems()) }),
			"down":  m.listMove(1, func() int { return len(HomeItems()) }),
			"right": m.homeSelect,
			"play":  m.homeSelect,
		},
	})

	reg.Register(mode.Definition{
		Name:    ModeBrowse,
		OnEnter: m.enterList(func() int { return len(m.p.Library()) }),
		Functions: map[string]mode.Handler{
			"up":           m.listMove(-1, func() int { return len(m.p.Library()) }),
			"down":         m.listMove(1, func() int { return len(m.p.Library()) }),
			"numberScroll": m.browseNumberScroll,
			"right":        m.browsePlay,
			"play":         m.browsePlay,
		},
	})

	reg.Register(mode.Definition{
		Name:    ModeSearch,
		OnEnter: m.enterSearch,
		Functions: map[string]mode.Handler{
			"numberScroll": m.searchNumber,
			"play":         m.searchSubmit,
			"right":        m.searchSubmit,
		},
	})

	reg.Register(mode.Definition{
		Name:             ModeNowPlaying,
		UpdateInterval:   time.Second,
		ShowExtendedText: true,
		Functions: map[string]mode.Handler{
			"play": m.togglePause,
			"stop": m.stop,
			"up":   m.skip(-1),
			"down": m.skip(1),
		},
	})

	reg.Register(mode.Definition{
		Name:    ModeVolume,
		Screen2: mode.Screen2Inherit,
		Functions: map[string]mode.Handler{
			"up":   m.volumeAdjust("up"),
			"down": m.volumeAdjust("down"),
			"mute": m.toggleMute,
		},
	})

	reg.Register(mode.Definition{
		Name:    ModeSettings,
		OnEnter: m.enterList(func() int { return len(SettingsItems()) }),
		Functions: map[string]mode.Handler{
			"up":    m.listMove(-1, func() int { return len(SettingsItems()) }),
			"down":  m.listMove(1, func() int { return len(SettingsItems()) }),
			"right": m.settingsToggle,
			"play":  m.settingsToggle,
		},
	})

	// The message mode hosts transient notices and must not be disturbed
	// when the stack returns to it mid-flight.
	reg.Register(mode.Definition{
		Name:                 ModeMessage,
		SuppressReenterOnPop: true,
		HandlesTransition:    true,
		Functions: map[string]mode.Handler{
			"play":  m.popMessage,
			"right": m.popMessage,
		},
	})

	reg.RegisterDefault("left", m.popTransition)
	reg.RegisterDefault("home", m.goHome)
	reg.RegisterDefault("volume", m.volumeDefault)
	reg.RegisterDefault("pause", m.togglePause)

	return m
}

// SetClock replaces the time source used for hold and multi-tap timing.
// The UI installs its own clock so both sides agree on press timestamps.
func (m *Modes) SetClock(now func() time.Time) {
	if now != nil {
		m.now = now
	}
}

// holdTime reads the button's current hold duration, treating "not held"
// as a fresh press.
func (m *Modes) holdTime(s *session.Session, token string) float64 {
	h := s.Hold.HoldTimeSeconds(token, m.now())
	if h < 0 {
		return 0
	}
	return h
}

// newScrollState sizes the current scroll context for a list and applies
// the tunables.
func (m *Modes) newScrollState(s *session.Session, length int) {
	st := s.CurrentScroll()
	if st == nil {
		return
	}
	fresh := scroll.NewState(length)
	if m.tun.Tc > 0 {
		fresh.Tc = m.tun.Tc
	}
	if m.tun.MinimumVelocity > 0 {
		fresh.MinimumVelocity = m.tun.MinimumVelocity
	}
	*st = *fresh
}

// enterList returns an enter hook that sizes the scroll context on push.
// Re-entry on pop keeps the restored scroll state untouched.
func (m *Modes) enterList(length func() int) mode.Hook {
	return func(s *session.Session, action string) error {
		if action != mode.ActionPush {
			return nil
		}
		m.newScrollState(s, length())
		if _, ok := s.Param(paramListIndex); !ok {
			s.SetParam(paramListIndex, 0)
		}
		s.MultiTap.Timeout = m.tun.MultiTapTimeout
		return nil
	}
}

// listMove scrolls the current list by one event in the given direction.
func (m *Modes) listMove(direction int, length func() int) mode.Handler {
	return func(s *session.Session, token, arg string) error {
		st := s.CurrentScroll()
		if st == nil {
			return nil
		}
		n := length()
		from := s.IntParam(paramListIndex, 0)
		to := scroll.Scroll(st, direction, n, from, m.holdTime(s, token))
		s.SetParam(paramListIndex, to)
		events.Scroll.Move(s.ID, from, to, st.EstimateStart, st.EstimateEnd)
		return nil
	}
}

func (m *Modes) homeSelect(s *session.Session, token, arg string) error {
	switch s.IntParam(paramListIndex, 0) {
	case 0:
		m.mgr.PushTransition(s, ModeBrowse, nil)
	case 1:
		m.mgr.PushTransition(s, ModeSearch, nil)
	case 2:
		m.mgr.PushTransition(s, ModeNowPlaying, nil)
	case 3:
		m.mgr.PushTransition(s, ModeSettings, nil)
	}
	return nil
}

// browseNumberScroll jumps the library list to the letter produced by the
// pressed digit, scoping the scroll estimate to the letter's span.
func (m *Modes) browseNumberScroll(s *session.Session, token, arg string) error {
	if arg == "" {
		return fmt.Errorf("numberScroll without a digit")
	}
	glyph, _, ok := s.MultiTap.Next(rune(arg[0]), m.now(), m.tap)
	if !ok {
		return nil
	}
	lib := m.p.Library()
	key := func(i int) string { return lib[i].Title }
	idx := scroll.JumpToLetter(len(lib), glyph, key)
	events.Scroll.LetterJump(s.ID, string(glyph), idx)
	if idx < 0 {
		return nil
	}
	s.SetParam(paramListIndex, idx)
	if st := s.CurrentScroll(); st != nil {
		scroll.SeedEstimateForLetter(st, len(lib), idx, key)
		st.LastPositionReturned = idx
		st.LastPosition = float64(idx)
	}
	return nil
}

func (m *Modes) browsePlay(s *session.Session, token, arg string) error {
	m.p.Play(s.IntParam(paramListIndex, 0))
	m.mgr.PushTransition(s, ModeNowPlaying, nil)
	return nil
}

func (m *Modes) enterSearch(s *session.Session, action string) error {
	if action != mode.ActionPush {
		return nil
	}
	s.SetParam(paramQuery, "")
	s.MultiTap.Reset()
	s.MultiTap.Timeout = m.tun.MultiTapTimeout
	return nil
}

// searchNumber spells the query with multi-tap entry: cycling within the
// timeout replaces the last glyph, a new cycle appends.
func (m *Modes) searchNumber(s *session.Session, token, arg string) error {
	if arg == "" {
		return fmt.Errorf("numberScroll without a digit")
	}
	glyph, replace, ok := s.MultiTap.Next(rune(arg[0]), m.now(), m.tap)
	if !ok {
		return nil
	}
	query, _ := s.Param(paramQuery)
	text, _ := query.(string)
	if replace && len(text) > 0 {
		runes := []rune(text)
		runes[len(runes)-1] = glyph
		text = string(runes)
	} else {
		text += string(glyph)
	}
	s.SetParam(paramQuery, text)
	return nil
}

// searchSubmit fuzzy-matches the query against track titles and lands the
// browse list on the best hit.
func (m *Modes) searchSubmit(s *session.Session, token, arg string) error {
	query, _ := s.Param(paramQuery)
	text, _ := query.(string)
	if text == "" {
		return nil
	}
	lib := m.p.Library()
	titles := make([]string, len(lib))
	for i, tr := range lib {
		titles[i] = tr.Title
	}
	ranks := fuzzy.RankFindNormalizedFold(text, titles)
	if len(ranks) == 0 {
		m.mgr.Push(s, ModeMessage, map[string]interface{}{
			paramText: fmt.Sprintf("No matches for %q", text),
		})
		return nil
	}
	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < best.Distance {
			best = r
		}
	}
	m.mgr.Pop(s)
	m.mgr.PushTransition(s, ModeBrowse, map[string]interface{}{
		paramListIndex: best.OriginalIndex,
	})
	return nil
}

func (m *Modes) togglePause(s *session.Session, token, arg string) error {
	m.p.TogglePause()
	return nil
}

func (m *Modes) stop(s *session.Session, token, arg string) error {
	m.p.Stop()
	return nil
}

func (m *Modes) skip(delta int) mode.Handler {
	return func(s *session.Session, token, arg string) error {
		m.p.Skip(delta)
		return nil
	}
}

func (m *Modes) toggleMute(s *session.Session, token, arg string) error {
	m.p.ToggleMute()
	return nil
}

// volumeDefault is the global volume binding: it raises the volume overlay
// when the session is elsewhere, then applies the adjustment.
func (m *Modes) volumeDefault(s *session.Session, token, arg string) error {
	if cur, ok := s.CurrentMode(); !ok || cur.Name != ModeVolume {
		m.mgr.PushTransition(s, ModeVolume, nil)
	}
	return m.adjustVolume(s, token, arg)
}

func (m *Modes) volumeAdjust(direction string) mode.Handler {
	return func(s *session.Session, token, arg string) error {
		return m.adjustVolume(s, token, direction)
	}
}

// adjustVolume applies an accelerated mixer step with a sticky midpoint:
// crossing the centre lands exactly on it and restarts the hold ramp.
func (m *Modes) adjustVolume(s *session.Session, token, direction string) error {
	sign := 1
	if direction == "down" {
		sign = -1
	} else if direction != "up" {
		return fmt.Errorf("volume direction %q", direction)
	}
	count := input.RepeatCount(m.holdTime(s, token), m.tun.RepeatRate, m.tun.RepeatAccel)
	if count > 10 {
		count = 10
	}
	old := m.p.Volume()
	next := old + sign*m.volumeStep*count
	const midpoint = 50
	if (old < midpoint && next > midpoint) || (old > midpoint && next < midpoint) {
		next = midpoint
		s.Hold.Release(token)
	}
	m.p.SetVolume(next)
	return nil
}

func (m *Modes) settingsToggle(s *session.Session, token, arg string) error {
	switch s.IntParam(paramListIndex, 0) {
	case 0:
		m.p.ToggleRepeat()
	case 1:
		m.p.ToggleShuffle()
	}
	return nil
}

func (m *Modes) popMessage(s *session.Session, token, arg string) error {
	m.mgr.Pop(s)
	return nil
}

func (m *Modes) popTransition(s *session.Session, token, arg string) error {
	m.mgr.PopTransition(s)
	return nil
}

func (m *Modes) goHome(s *session.Session, token, arg string) error {
	m.mgr.Set(s, ModeHome, nil)
	return nil
}
