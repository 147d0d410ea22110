package ui

import (
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/spotmobile/internal/model"
)

// TrackRow represents a compact track row widget
type TrackRow struct {
	widget.BaseWidget

	entry        model.TrackEntry
	localization *Localization

	// UI components
	positionLabel *widget.Label
	titleLabel    *widget.Label
	detailLabel   *widget.Label
	playBtn       *widget.Button

	onPlay func(index int)
}

// NewTrackRow creates a new track row widget
func NewTrackRow(localization *Localization) *TrackRow {
	tr := &TrackRow{localization: localization}
	tr.ExtendBaseWidget(tr)
	tr.createUI()
	return tr
}

// SetOnPlay sets the callback receiving the playlist position of the row
func (tr *TrackRow) SetOnPlay(onPlay func(index int)) {
	tr.onPlay = onPlay
}

// UpdateEntry shows entry in the row
func (tr *TrackRow) UpdateEntry(entry model.TrackEntry) {
	tr.entry = entry
	tr.updateFromEntry()
	tr.Refresh()
}

// Entry returns the displayed entry
func (tr *TrackRow) Entry() model.TrackEntry {
	return tr.entry
}

func (tr *TrackRow) createUI() {
	tr.positionLabel = widget.NewLabel("")
	tr.positionLabel.Alignment = fyne.TextAlignTrailing

	tr.titleLabel = widget.NewLabel("")
	tr.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	tr.titleLabel.Truncation = fyne.TextTruncateEllipsis

	tr.detailLabel = widget.NewLabel("")
	tr.detailLabel.Truncation = fyne.TextTruncateEllipsis
	tr.detailLabel.Importance = widget.LowImportance

	tr.playBtn = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), tr.onPlayTapped)
	tr.playBtn.Importance = widget.LowImportance
}

func (tr *TrackRow) onPlayTapped() {
	if tr.onPlay != nil {
		tr.onPlay(tr.entry.Index)
	}
}

func (tr *TrackRow) updateFromEntry() {
	track := tr.entry.Track

	tr.positionLabel.SetText(strconv.Itoa(tr.entry.Index + 1))

	title := track.Name
	if title == "" {
		title = DashPlaceholder
	}
	tr.titleLabel.SetText(title)

	detail := track.ArtistNames()
	if duration := track.DurationString(); duration != "" {
		if detail != "" {
			detail += MiddleDotSeparator
		}
		detail += duration
	}
	tr.detailLabel.SetText(detail)
}

// CreateRenderer creates the widget renderer
func (tr *TrackRow) CreateRenderer() fyne.WidgetRenderer {
	r := &trackRowRenderer{trackRow: tr}
	r.createLayout()
	return r
}

// trackRowRenderer renders the track row widget
type trackRowRenderer struct {
	trackRow *TrackRow
	layout   *fyne.Container
}

// Layout arranges the row
func (r *trackRowRenderer) Layout(size fyne.Size) {
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *trackRowRenderer) MinSize() fyne.Size {
	min := r.layout.MinSize()
	if min.Width < RowMinWidth {
		min.Width = RowMinWidth
	}
	if min.Height < RowMinHeight {
		min.Height = RowMinHeight
	}
	return min
}

// Refresh refreshes the renderer
func (r *trackRowRenderer) Refresh() {
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *trackRowRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *trackRowRenderer) Destroy() {}

func (r *trackRowRenderer) createLayout() {
	tr := r.trackRow

	// Fixed width position column
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(PositionLabelWidth, 0))
	position := container.NewStack(spacer, tr.positionLabel)

	text := container.NewVBox(tr.titleLabel, tr.detailLabel)
	r.layout = container.NewBorder(nil, nil, position, tr.playBtn, text)
}
