// Package session owns the mutable per-session state: zone/spill
// selection, chat transcript and per-spill cleanup status. Each handler
// runs to completion under the session mutex, so a session behaves as a
// single logical thread of control.
package session

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"go-spillwatch/scenario"
	"go-spillwatch/summarize"
	"go-spillwatch/types"
)

// clickThreshold is the max euclidean distance, in coordinate degrees,
// for a map click to count as a zone hit. Euclidean, not geodesic; at
// this zoom scale the approximation is fine.
const clickThreshold = 0.2

// Default map framing when no zone is selected.
const (
	defaultCenterLat = 40.4
	defaultCenterLon = 50.0
	defaultZoom      = 8
	selectedZoom     = 10
)

var (
	// ErrInvalidTransition rejects a cleanup action the lifecycle does
	// not allow. State is left unchanged.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrNoSelection rejects an operation that needs a zone (and spill)
	// selected first.
	ErrNoSelection = errors.New("no selection")
)

// Gateway is what SubmitChatTurn calls. Implementations must always
// return a string, converting failures into fallback text.
type Gateway interface {
	Ask(ctx context.Context, rc summarize.Context, status types.CleanupStatus, question string) string
}

// Session is one operator's dashboard state. Constructed at session
// start, discarded at session end, never shared across sessions.
type Session struct {
	id      string
	store   *scenario.Store
	gateway Gateway

	mu          sync.Mutex
	zoneID      string
	spillID     string
	transcript  []types.ChatMessage
	cleanup     map[string]types.CleanupStatus
	lastTouched time.Time

	subs    map[int]chan types.SessionSnapshot
	nextSub int
	closed  bool
}

func newSession(id string, store *scenario.Store, gateway Gateway) *Session {
	cleanup := make(map[string]types.CleanupStatus)
	for _, sp := range store.Spills() {
		cleanup[sp.SpillID] = types.CleanupIdle
	}
	return &Session{
		id:          id,
		store:       store,
		gateway:     gateway,
		cleanup:     cleanup,
		lastTouched: time.Now(),
		subs:        make(map[int]chan types.SessionSnapshot),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// SelectZone sets the selected zone. Passing "" clears the selection.
// Either way the spill selection and the chat transcript are reset:
// conversation context is meaningless across a zone change.
func (s *Session) SelectZone(zoneID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if zoneID != "" {
		if _, ok := s.store.GetZone(zoneID); !ok {
			return fmt.Errorf("zone %q: %w", zoneID, scenario.ErrNotFound)
		}
	}

	s.applyZoneLocked(zoneID)
	s.notifyLocked()
	return nil
}

// applyZoneLocked is the shared effect of SelectZone and a click hit.
func (s *Session) applyZoneLocked(zoneID string) {
	s.zoneID = zoneID
	s.spillID = ""
	s.transcript = nil
}

// SelectSpill sets the spill focus. Requires a selected zone and a
// spill from that zone's set. Does not touch the transcript: switching
// spill focus mid-zone keeps the conversation.
func (s *Session) SelectSpill(spillID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.zoneID == "" {
		return fmt.Errorf("select a zone before a spill: %w", ErrNoSelection)
	}
	sp, ok := s.store.GetSpill(spillID)
	if !ok {
		return fmt.Errorf("spill %q: %w", spillID, scenario.ErrNotFound)
	}
	if sp.ZoneID != s.zoneID {
		return fmt.Errorf("spill %q does not belong to zone %q: %w", spillID, s.zoneID, scenario.ErrNotFound)
	}

	s.spillID = spillID
	s.notifyLocked()
	return nil
}

// ResolveClickToZone maps a geographic point to the nearest zone center.
// A click farther than the threshold from every center is a miss and
// changes nothing. Ties go to the first zone in the stable enumeration
// order. A hit behaves exactly like SelectZone.
func (s *Session) ResolveClickToZone(lat, lon float64) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	minDist := math.Inf(1)
	closest := ""
	for _, z := range s.store.Zones() {
		d := math.Hypot(z.Lat-lat, z.Lon-lon)
		if d < minDist {
			minDist = d
			closest = z.ZoneID
		}
	}

	if closest == "" || minDist >= clickThreshold {
		return "", false
	}

	s.applyZoneLocked(closest)
	s.notifyLocked()
	return closest, true
}

// DispatchCleanup moves a spill from idle to cleaning and returns the
// operator confirmation message.
func (s *Session) DispatchCleanup(spillID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	sp, ok := s.store.GetSpill(spillID)
	if !ok {
		return "", fmt.Errorf("spill %q: %w", spillID, scenario.ErrNotFound)
	}

	switch s.cleanup[spillID] {
	case types.CleanupCleaning:
		return "", fmt.Errorf("cleanup for spill %s is already in progress: %w", spillID, ErrInvalidTransition)
	case types.CleanupDone:
		return "", fmt.Errorf("spill %s is already cleaned: %w", spillID, ErrInvalidTransition)
	}

	s.cleanup[spillID] = types.CleanupCleaning
	s.notifyLocked()
	return fmt.Sprintf("Simulated cleanup device dispatched for spill %s in zone %s.", spillID, sp.ZoneID), nil
}

// CompleteCleanup moves a spill from cleaning to done. Done is terminal.
func (s *Session) CompleteCleanup(spillID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if _, ok := s.store.GetSpill(spillID); !ok {
		return "", fmt.Errorf("spill %q: %w", spillID, scenario.ErrNotFound)
	}

	switch s.cleanup[spillID] {
	case types.CleanupIdle:
		return "", fmt.Errorf("cleanup for spill %s has not been dispatched: %w", spillID, ErrInvalidTransition)
	case types.CleanupDone:
		return "", fmt.Errorf("spill %s is already cleaned: %w", spillID, ErrInvalidTransition)
	}

	s.cleanup[spillID] = types.CleanupDone
	s.notifyLocked()
	return fmt.Sprintf("Spill %s marked as cleaned.", spillID), nil
}

// CleanupStatusOf reports a spill's current status.
func (s *Session) CleanupStatusOf(spillID string) types.CleanupStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.cleanup[spillID]; ok {
		return st
	}
	return types.CleanupIdle
}

// SubmitChatTurn runs one atomic chat turn: the user entry and the
// assistant entry are appended together, and since the gateway always
// returns a string the pair is appended on every outcome. Requires both
// a zone and a spill selected. The session lock is held across the
// gateway call, which keeps per-session run-to-completion semantics.
func (s *Session) SubmitChatTurn(ctx context.Context, question string) ([]types.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.zoneID == "" || s.spillID == "" {
		return nil, fmt.Errorf("select a zone and a spill before chatting: %w", ErrNoSelection)
	}

	rc, err := summarize.ResolveContext(s.store, s.zoneID, s.spillID)
	if err != nil {
		// Selection invariants make this unreachable with valid reference data.
		return nil, err
	}

	answer := s.gateway.Ask(ctx, rc, s.cleanup[s.spillID], question)

	pair := []types.ChatMessage{
		{Role: types.RoleUser, Content: question},
		{Role: types.RoleAssistant, Content: answer},
	}
	s.transcript = append(s.transcript, pair...)
	s.notifyLocked()
	return pair, nil
}

// Transcript returns a copy of the chat transcript.
func (s *Session) Transcript() []types.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.ChatMessage, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Selected returns the current (zone, spill) focus. Empty means none.
func (s *Session) Selected() (zoneID, spillID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.zoneID, s.spillID
}

// Snapshot builds the full view model for the presentation layer.
func (s *Session) Snapshot() types.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() types.SessionSnapshot {
	snap := types.SessionSnapshot{
		SessionID:       s.id,
		SelectedZoneID:  s.zoneID,
		SelectedSpillID: s.spillID,
		Map: types.MapView{
			CenterLat: defaultCenterLat,
			CenterLon: defaultCenterLon,
			Zoom:      defaultZoom,
		},
		Transcript: append([]types.ChatMessage(nil), s.transcript...),
	}

	for _, z := range s.store.Zones() {
		selected := z.ZoneID == s.zoneID
		color := "red"
		if selected {
			color = "darkred"
			snap.Map = types.MapView{CenterLat: z.Lat, CenterLon: z.Lon, Zoom: selectedZoom}
		}
		snap.Markers = append(snap.Markers, types.ZoneMarker{
			ZoneID:   z.ZoneID,
			SceneID:  z.SceneID,
			Lat:      z.Lat,
			Lon:      z.Lon,
			Color:    color,
			Selected: selected,
		})

		for _, sp := range s.store.SpillsByZone(z.ZoneID) {
			snap.StatusTable = append(snap.StatusTable, types.StatusRow{
				Zone:    z.ZoneID,
				SpillID: sp.SpillID,
				Status:  types.Capitalize(string(s.cleanup[sp.SpillID])),
			})
		}
	}

	if s.zoneID != "" {
		for _, sp := range s.store.SpillsByZone(s.zoneID) {
			snap.Spills = append(snap.Spills, types.NewSpillInfo(sp, s.cleanup[sp.SpillID]))
		}
		if ov, ok := s.store.OverlayByZone(s.zoneID); ok {
			snap.Overlay = &ov
		}
		snap.HistoryText = summarize.HistorySummary(s.store, s.zoneID)
	}

	return snap
}

// Subscribe registers a state-changed listener. The returned cancel
// func must be called when the subscriber goes away. Slow subscribers
// miss snapshots rather than blocking mutations.
func (s *Session) Subscribe() (<-chan types.SessionSnapshot, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan types.SessionSnapshot, 4)
	if s.closed {
		close(ch)
		return ch, func() {}
	}

	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch

	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}
}

// notifyLocked pushes the current snapshot to every subscriber.
func (s *Session) notifyLocked() {
	if len(s.subs) == 0 {
		return
	}
	snap := s.snapshotLocked()
	for _, ch := range s.subs {
		select {
		case ch <- snap:
		default:
		}
	}
}

// close shuts down subscriber channels. Called by the manager on
// deletion or expiry.
func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
}

func (s *Session) touch() {
	s.lastTouched = time.Now()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastTouched
}
