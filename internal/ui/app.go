// Package ui assembles the Fyne desktop application around the drawing
// board: toolbar, palette, status bar and export actions.
package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/josefdc/pixel-alchemy-studio/internal/export"
)

// RunApp opens the main window and blocks until it closes. shareLink, when
// non-empty, is shown so other machines on the LAN can join the session.
func RunApp(shareLink string, board *BoardWidget) {
	a := app.New()
	w := a.NewWindow("Pixel Alchemy Studio")
	w.Resize(fyne.NewSize(1100, 860))

	clearBtn := widget.NewButton("Clear", func() {
		board.ClearLocal()
	})
	exportBtn := widget.NewButton("Export PDF", func() {
		showExportDialog(w, board)
	})
	actions := container.NewHBox(clearBtn, exportBtn)

	top := container.NewVBox(
		NewToolbar(board),
		actions,
	)

	bottom := container.NewHBox(board.StatusBar(), layout.NewSpacer())
	if shareLink != "" {
		bottom.Add(widget.NewLabel("Share: " + shareLink))
	}

	w.SetContent(container.NewBorder(top, bottom, nil, nil, container.NewCenter(board)))
	w.SetMaster()
	w.ShowAndRun()
}

// showExportDialog asks for a destination and writes the current board as a
// vector PDF.
func showExportDialog(w fyne.Window, board *BoardWidget) {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, w)
			return
		}
		if writer == nil {
			return // cancelled
		}
		path := writer.URI().Path()
		if err := writer.Close(); err != nil {
			log.Printf("[ui] close export target: %v", err)
		}

		if err := export.PDF(path, board.Board().Shapes()); err != nil {
			dialog.ShowError(err, w)
			return
		}
		board.SetStatus("Exported PDF to " + path)
	}, w)
}
