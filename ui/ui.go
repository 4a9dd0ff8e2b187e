// Package ui is a fyne bench panel for a cutter attached over USB
// serial: one button per machine operation plus the firmware's
// diagnostic stream in a scrolling log.
package ui

import (
	"context"
	"io"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/GadgetReboot/GR-StepperIO/controller"
)

type BenchUI struct {
	logMtx  sync.Mutex
	logText strings.Builder
	logView *widget.Label
}

func NewBenchUI() *BenchUI {
	return &BenchUI{
		logView: widget.NewLabel(""),
	}
}

// Write feeds the device's diagnostic stream into the log view, so the
// BenchUI can sit on the output side of controller.Run.
func (ui *BenchUI) Write(p []byte) (int, error) {
	ui.logMtx.Lock()
	ui.logText.Write(p)
	text := ui.logText.String()
	ui.logMtx.Unlock()

	fyne.Do(func() {
		ui.logView.SetText(text)
	})
	return len(p), nil
}

// Run opens the panel directly, for an already-connected device.
// Command bytes are written to w.
func (ui *BenchUI) Run(ctx context.Context, w io.Writer) {
	application := app.New()

	window := ui.buildWindow(application, w)

	go func() {
		<-ctx.Done()
		fyne.Do(func() {
			application.Quit()
		})
	}()

	window.Resize(fyne.NewSize(400, 420))
	window.ShowAndRun()
}

// Launch shows the configuration window first, then opens the bench
// panel once connect establishes the device connection.
func (ui *BenchUI) Launch(ctx context.Context, connect func(cfg controller.Config) (io.Writer, error)) {
	application := app.New()

	cfg := &controller.Config{}
	cw := NewConfigWindow(application)
	cw.OnSubmit = func() {
		w, err := connect(*cfg)
		if err != nil {
			errWindow := application.NewWindow("StepperIO Bench")
			errWindow.Resize(fyne.NewSize(300, 100))
			errWindow.Show()
			showError(application, errWindow, err)
			return
		}
		window := ui.buildWindow(application, w)
		window.Resize(fyne.NewSize(400, 420))
		window.Show()
	}
	cw.Show(cfg)

	go func() {
		<-ctx.Done()
		fyne.Do(func() {
			application.Quit()
		})
	}()

	application.Run()
}

func (ui *BenchUI) buildWindow(application fyne.App, w io.Writer) fyne.Window {
	window := application.NewWindow("StepperIO Bench")

	cmds := commandWriter{writer: w}

	operations := container.NewVBox(
		widget.NewButton("Run Cut Cycle (x3)", cmds.RunCycle),
		widget.NewButton("Rotate Base", cmds.RotateBase),
		widget.NewButton("Blade Home", cmds.BladeHome),
	)

	travel := container.NewGridWithColumns(3,
		widget.NewButton("Travel -1", cmds.TravelDown),
		widget.NewButton("Travel +1", cmds.TravelUp),
		widget.NewButton("Show Steps", cmds.ShowSteps),
	)

	logScroll := container.NewVScroll(ui.logView)
	logScroll.SetMinSize(fyne.NewSize(360, 140))
	logAccordion := widget.NewAccordion(
		widget.NewAccordionItem("Device Log", logScroll),
	)
	logAccordion.Open(0)

	window.SetContent(container.NewVBox(
		widget.NewCard("Operations", "", operations),
		widget.NewCard("Blade Travel", "", travel),
		widget.NewButton("Status", cmds.Status),
		logAccordion,
	))

	return window
}
