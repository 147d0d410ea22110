package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// SheetHeader is shown at the top of an action sheet
type SheetHeader struct {
	Image     fyne.CanvasObject
	Primary   string
	Secondary string
}

// SheetAction is a single button of an action sheet
type SheetAction struct {
	Label  string
	Icon   fyne.Resource
	OnTap  func()
	Danger bool
}

// ActionSheet is a modal menu anchored to the bottom of the window
type ActionSheet struct {
	canvas fyne.Canvas
	popup  *widget.PopUp

	buttons []*widget.Button
}

// NewActionSheet creates a hidden action sheet
func NewActionSheet(c fyne.Canvas, header SheetHeader, actions []SheetAction, cancelLabel string) *ActionSheet {
	as := &ActionSheet{canvas: c}

	primary := widget.NewLabel(header.Primary)
	primary.TextStyle = fyne.TextStyle{Bold: true}
	primary.Truncation = fyne.TextTruncateEllipsis
	secondary := widget.NewLabel(header.Secondary)
	secondary.Importance = widget.LowImportance
	secondary.Truncation = fyne.TextTruncateEllipsis

	var headerRow fyne.CanvasObject = container.NewVBox(primary, secondary)
	if header.Image != nil {
		headerRow = container.NewBorder(nil, nil, header.Image, nil, headerRow)
	}

	items := container.NewVBox(headerRow, widget.NewSeparator())
	for _, action := range actions {
		action := action
		btn := widget.NewButtonWithIcon(action.Label, action.Icon, func() {
			as.Hide()
			if action.OnTap != nil {
				action.OnTap()
			}
		})
		btn.Alignment = widget.ButtonAlignLeading
		btn.Importance = widget.LowImportance
		if action.Danger {
			btn.Importance = widget.DangerImportance
		}
		as.buttons = append(as.buttons, btn)
		items.Add(btn)
	}

	cancelBtn := widget.NewButton(cancelLabel, as.Hide)
	as.buttons = append(as.buttons, cancelBtn)
	items.Add(widget.NewSeparator())
	items.Add(cancelBtn)

	as.popup = widget.NewModalPopUp(items, c)
	return as
}

// Show displays the sheet at the bottom of the canvas
func (as *ActionSheet) Show() {
	size := as.canvas.Size()
	min := as.popup.Content.MinSize()
	width := size.Width
	if width < min.Width {
		width = min.Width
	}
	as.popup.Resize(fyne.NewSize(width, min.Height))
	as.popup.ShowAtPosition(fyne.NewPos(0, size.Height-min.Height))
}

// Hide closes the sheet
func (as *ActionSheet) Hide() {
	as.popup.Hide()
}

// Visible reports whether the sheet is shown
func (as *ActionSheet) Visible() bool {
	return as.popup.Visible()
}

// Buttons returns action buttons followed by the cancel button
func (as *ActionSheet) Buttons() []*widget.Button {
	return as.buttons
}

// sheetArtwork wraps an image into a fixed size for the sheet header
func sheetArtwork(img *canvas.Image) fyne.CanvasObject {
	img.SetMinSize(fyne.NewSize(SheetArtworkSize, SheetArtworkSize))
	return img
}
