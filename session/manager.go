package session

import "sync"

// BuyerFinder resolves buyer ids during drill-down. A lookup miss is not an
// error; it simply means the selection falls back to the list view.
type BuyerFinder interface {
	BuyerExists(id string) (bool, error)
}

// Resettable is tab-scoped transient state (the property draft and its plan
// builder) that gets discarded when its tab is left or the session ends.
type Resettable interface {
	Reset()
}

// Manager is the navigation state machine for the single admin session.
// Transitions are synchronous and run to completion; the mutex only guards
// against concurrent HTTP handlers, the semantics stay single-session.
type Manager struct {
	mu     sync.RWMutex
	state  State
	buyers BuyerFinder
	drafts []Resettable
}

func NewManager(buyers BuyerFinder) *Manager {
	return &Manager{
		state:  State{Status: LoggedOut},
		buyers: buyers,
	}
}

// AttachDraft registers tab-scoped state to be discarded on tab switch and logout.
func (m *Manager) AttachDraft(draft Resettable) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drafts = append(m.drafts, draft)
}

// Snapshot returns a copy of the current navigation state for rendering.
func (m *Manager) Snapshot() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Login transitions loggedOut -> dashboard(overview) when both credentials
// are non-empty. An empty field leaves the state untouched: the attempt is
// simply ineffective, no error is raised.
func (m *Manager) Login(email, password string) bool {
	if email == "" || password == "" {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = State{
		Status:                  LoggedIn,
		ActiveTab:               OverviewTab,
		ApplicationStatusFilter: "all",
	}
	return true
}

// Logout is a full state reset, not a session flag flip: search terms,
// filters, buyer selection and in-progress drafts are all discarded.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = State{Status: LoggedOut}
	m.resetDraftsLocked()
}

// SelectTab switches the dashboard tab, discarding transient state local to
// the tab being left. Reports whether a transition happened.
func (m *Manager) SelectTab(tab Tab) bool {
	if !IsValidTab(tab) {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state.Status != LoggedIn {
		return false
	}

	leaving := m.state.ActiveTab
	if leaving == tab {
		return true
	}
	if leaving == PropertiesTab {
		// The unsaved property draft is intentionally not preserved across
		// tab switches in current scope
		m.resetDraftsLocked()
	}
	if leaving == BuyersTab {
		m.state.SelectedBuyerID = ""
		m.state.BuyerSubtab = ""
	}

	m.state.ActiveTab = tab
	return true
}

// SelectBuyer drills into a buyer's detail view. An unknown id is treated as
// "no selection": the state stays on the list view and no error surfaces.
func (m *Manager) SelectBuyer(id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state.Status != LoggedIn || m.state.ActiveTab != BuyersTab {
		return false, nil
	}

	exists, err := m.buyers.BuyerExists(id)
	if err != nil {
		return false, err
	}
	if !exists {
		m.state.SelectedBuyerID = ""
		m.state.BuyerSubtab = ""
		return false, nil
	}

	m.state.SelectedBuyerID = id
	m.state.BuyerSubtab = ProfileSubtab
	return true, nil
}

// SelectSubtab switches between the profile and property views of the
// currently selected buyer.
func (m *Manager) SelectSubtab(subtab Subtab) bool {
	if !IsValidSubtab(subtab) {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state.Status != LoggedIn || m.state.SelectedBuyerID == "" {
		return false
	}
	m.state.BuyerSubtab = subtab
	return true
}

// Back returns from the buyer detail view to the buyers list. Search terms
// and filters set before the drill-down are left intact.
func (m *Manager) Back() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state.Status != LoggedIn || m.state.ActiveTab != BuyersTab || m.state.SelectedBuyerID == "" {
		return false
	}
	m.state.SelectedBuyerID = ""
	m.state.BuyerSubtab = ""
	return true
}

// SetApplicationSearch records the applications register search term.
func (m *Manager) SetApplicationSearch(term string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state.Status != LoggedIn {
		return
	}
	m.state.ApplicationSearch = term
}

// SetApplicationStatusFilter records the status filter. The value must be
// validated by the caller before it reaches the state machine.
func (m *Manager) SetApplicationStatusFilter(filter string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state.Status != LoggedIn {
		return
	}
	m.state.ApplicationStatusFilter = filter
}

// SetBuyerSearch records the buyers list search term.
func (m *Manager) SetBuyerSearch(term string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state.Status != LoggedIn {
		return
	}
	m.state.BuyerSearch = term
}

func (m *Manager) resetDraftsLocked() {
	for _, draft := range m.drafts {
		draft.Reset()
	}
}
