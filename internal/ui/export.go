package ui

import (
	"fmt"
	"path/filepath"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/pitch/internal/render"
	"github.com/five82/pitch/internal/state"
)

// startExport hands the active deck to the exporter. Export works on a
// copy of the UI state so the slides on screen never change under it.
func (m Model) startExport() (tea.Model, tea.Cmd) {
	if m.exporter == nil || m.store == nil {
		m.setNotice("Export is not available", true)
		return m, nil
	}

	st := render.NewUIState()
	st.Restore(m.sw.State().Snapshot())

	d := m.sw.Active()
	if !m.exporter.Start(m.ctx, d, st) {
		m.setNotice("An export is already running", true)
		return m, nil
	}
	m.logger.Info("export requested", zap.String("deck", d.ID))
	m.exporting = true
	m.exportSnap = state.Snapshot{DeckID: d.ID, Running: true}
	return m, tea.Batch(m.spinner.Tick, statusCmd(m.store, StatusInterval))
}

// handleStatus consumes a polled export snapshot.
func (m Model) handleStatus(snap state.Snapshot) (tea.Model, tea.Cmd) {
	m.exportSnap = snap
	if !m.exporting {
		return m, nil
	}
	if snap.Running || !snap.Done() {
		return m, statusCmd(m.store, StatusInterval)
	}

	m.exporting = false
	if snap.LastError != nil {
		m.setNotice("Export failed: "+snap.LastError.Error(), true)
		return m, nil
	}
	m.setNotice("Exported "+strconv.Itoa(snap.Total)+" pages to "+filepath.Base(snap.Path), false)
	return m, nil
}

// exportLabel describes a running export for the header.
func (m Model) exportLabel() string {
	snap := m.exportSnap
	if snap.Total == 0 {
		return m.spinner.View() + " Exporting"
	}
	return fmt.Sprintf("%s Exporting %d/%d (%.0f%%)", m.spinner.View(), snap.Page, snap.Total, snap.Fraction()*100)
}
