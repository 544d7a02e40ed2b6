package render

// Section names a toggleable part of a slide.
type Section string

const (
	SectionPositive     Section = "positive"
	SectionConstructive Section = "constructive"
	SectionGaps         Section = "gaps"
	SectionDetails      Section = "details"
	SectionPanel        Section = "panel"
	SectionModal        Section = "modal"
)

// CritiqueSections are the three critique columns in display order.
var CritiqueSections = []Section{SectionPositive, SectionConstructive, SectionGaps}

type stateKey struct {
	slide   string
	section Section
}

// UIState holds ephemeral per-slide toggles keyed by (slide key, section)
// plus the active tab per slide. Everything defaults to collapsed / tab 0.
// It is owned by one presentation session and reset on deck change.
type UIState struct {
	flags map[stateKey]bool
	tabs  map[string]int
}

// Snapshot is an opaque copy of a UIState.
type Snapshot struct {
	flags map[stateKey]bool
	tabs  map[string]int
}

// NewUIState returns an empty state container.
func NewUIState() *UIState {
	return &UIState{
		flags: make(map[stateKey]bool),
		tabs:  make(map[string]int),
	}
}

// Expanded reports whether a section of a slide is expanded.
func (s *UIState) Expanded(slide string, section Section) bool {
	if s == nil {
		return false
	}
	return s.flags[stateKey{slide, section}]
}

// Set expands or collapses a section.
func (s *UIState) Set(slide string, section Section, expanded bool) {
	if expanded {
		s.flags[stateKey{slide, section}] = true
		return
	}
	delete(s.flags, stateKey{slide, section})
}

// Toggle flips a section and returns the new value.
func (s *UIState) Toggle(slide string, section Section) bool {
	next := !s.Expanded(slide, section)
	s.Set(slide, section, next)
	return next
}

// Expand forces the given sections of a slide open.
func (s *UIState) Expand(slide string, sections ...Section) {
	for _, section := range sections {
		s.Set(slide, section, true)
	}
}

// Tab returns the active tab of a slide.
func (s *UIState) Tab(slide string) int {
	if s == nil {
		return 0
	}
	return s.tabs[slide]
}

// SetTab selects a tab; negative values select the first tab.
func (s *UIState) SetTab(slide string, tab int) {
	if tab <= 0 {
		delete(s.tabs, slide)
		return
	}
	s.tabs[slide] = tab
}

// Reset clears every toggle, as on deck switch.
func (s *UIState) Reset() {
	s.flags = make(map[stateKey]bool)
	s.tabs = make(map[string]int)
}

// Len returns the number of expanded sections.
func (s *UIState) Len() int {
	return len(s.flags)
}

// Snapshot copies the current state.
func (s *UIState) Snapshot() Snapshot {
	snap := Snapshot{
		flags: make(map[stateKey]bool, len(s.flags)),
		tabs:  make(map[string]int, len(s.tabs)),
	}
	for k, v := range s.flags {
		snap.flags[k] = v
	}
	for k, v := range s.tabs {
		snap.tabs[k] = v
	}
	return snap
}

// Restore replaces the state with a snapshot.
func (s *UIState) Restore(snap Snapshot) {
	s.Reset()
	for k, v := range snap.flags {
		s.flags[k] = v
	}
	for k, v := range snap.tabs {
		s.tabs[k] = v
	}
}
