// Package view implements the navigation/view-state controller: which
// category grid, detail view and overlay the client is looking at. It is a
// pure state machine; no transition is invalid.
package view

import "labura/catalog"

// State is the navigation state for one session.
type State struct {
	SelectedCategory string `json:"selected_category"`
	DetailOpen       bool   `json:"detail_open"`
	// SelectedService is retained while the detail view is closed, but
	// unused until it reopens.
	SelectedService string `json:"selected_service,omitempty"`
	OfferFormOpen   bool   `json:"offer_form_open"`
	// Favorites is the per-view-instance favorite toggle set for the
	// open detail view. Not persisted to any document; reset whenever
	// the detail view is (re)entered.
	Favorites []string `json:"favorites,omitempty"`
}

// View kinds produced by the render rule.
const (
	KindGrid   = "grid"
	KindDetail = "detail"
)

// View describes what the client should render.
type View struct {
	Kind     string `json:"kind"`
	Category string `json:"category"`
	Service  string `json:"service,omitempty"`
}

// NewState returns the initial state: home grid, nothing open.
func NewState() *State {
	return &State{SelectedCategory: catalog.DefaultCategory}
}

// SelectHome resets to the home grid. Idempotent regardless of prior
// state.
func (s *State) SelectHome() {
	s.SelectedCategory = catalog.DefaultCategory
	s.DetailOpen = false
	s.SelectedService = ""
	s.Favorites = nil
}

// SelectCategory switches the selected category. Selecting a category
// while the detail view is open does not close it.
func (s *State) SelectCategory(category string) {
	s.SelectedCategory = category
}

// OpenDetail opens the detail view for a service. Re-entering the detail
// view starts a fresh favorite set.
func (s *State) OpenDetail(serviceID string) {
	s.DetailOpen = true
	s.SelectedService = serviceID
	s.Favorites = nil
}

// CloseDetail closes the detail view. The selected service is retained
// but unused while closed.
func (s *State) CloseDetail() {
	s.DetailOpen = false
}

// OpenOfferForm shows the offer-service overlay.
func (s *State) OpenOfferForm() {
	s.OfferFormOpen = true
}

// CloseOfferForm hides the offer-service overlay.
func (s *State) CloseOfferForm() {
	s.OfferFormOpen = false
}

// ToggleFavorite flips a provider id in the detail view's favorite set
// and reports whether it is now a favorite.
func (s *State) ToggleFavorite(providerID string) bool {
	for i, id := range s.Favorites {
		if id == providerID {
			s.Favorites = append(s.Favorites[:i], s.Favorites[i+1:]...)
			return false
		}
	}
	s.Favorites = append(s.Favorites, providerID)
	return true
}

// IsFavorite reports whether the provider is in the favorite set.
func (s *State) IsFavorite(providerID string) bool {
	for _, id := range s.Favorites {
		if id == providerID {
			return true
		}
	}
	return false
}

// Render applies the grid-render rule: the detail view when it is open
// with a selected service, otherwise the grid for the selected category
// (home grid for unset or unrecognized categories).
func (s *State) Render() View {
	if s.DetailOpen && s.SelectedService != "" {
		return View{Kind: KindDetail, Category: s.SelectedCategory, Service: s.SelectedService}
	}
	category := s.SelectedCategory
	if !catalog.ValidCategory(category) {
		category = catalog.DefaultCategory
	}
	return View{Kind: KindGrid, Category: category}
}
