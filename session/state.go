package session

type Status string

const (
	LoggedOut Status = "loggedOut"
	LoggedIn  Status = "loggedIn"
)

type Tab string

const (
	OverviewTab     Tab = "overview"
	PropertiesTab   Tab = "properties"
	ApplicationsTab Tab = "applications"
	BuyersTab       Tab = "buyers"
)

type Subtab string

const (
	ProfileSubtab  Subtab = "profile"
	PropertySubtab Subtab = "property"
)

// State is the complete navigation state of the admin session. One value of
// this type drives every rendered view; it is copied out for rendering and
// only ever mutated through Manager transitions.
type State struct {
	Status    Status `json:"status"`
	ActiveTab Tab    `json:"active_tab,omitempty"`

	// Buyer drill-down, meaningful only while ActiveTab is buyers
	SelectedBuyerID string `json:"selected_buyer_id,omitempty"`
	BuyerSubtab     Subtab `json:"buyer_subtab,omitempty"`

	// Transient per-view inputs, cleared wholesale on logout
	ApplicationSearch       string `json:"application_search"`
	ApplicationStatusFilter string `json:"application_status_filter"`
	BuyerSearch             string `json:"buyer_search"`
}

func IsValidTab(t Tab) bool {
	switch t {
	case OverviewTab, PropertiesTab, ApplicationsTab, BuyersTab:
		return true
	}
	return false
}

func IsValidSubtab(s Subtab) bool {
	return s == ProfileSubtab || s == PropertySubtab
}
