package ui

import (
	"errors"
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/GadgetReboot/GR-StepperIO/controller"
)

// ConfigWindow collects the serial connection settings before the
// bench panel opens. Settings persist through fyne Preferences.
type ConfigWindow struct {
	app      fyne.App
	OnSubmit func()
}

func NewConfigWindow(app fyne.App) *ConfigWindow {
	return &ConfigWindow{
		app: app,
	}
}

func (cw *ConfigWindow) loadConfigFromPreferences(cfg *controller.Config) {
	prefs := cw.app.Preferences()
	cfg.SerialPort = prefs.StringWithFallback("serialPort", "")
	cfg.BaudRate = prefs.StringWithFallback("baudRate", "115200")
}

func (cw *ConfigWindow) saveConfigToPreferences(cfg *controller.Config) {
	prefs := cw.app.Preferences()
	prefs.SetString("serialPort", cfg.SerialPort)
	prefs.SetString("baudRate", cfg.BaudRate)
}

func (cw *ConfigWindow) Show(cfg *controller.Config) {
	window := cw.app.NewWindow("StepperIO - Configuration")
	window.Resize(fyne.NewSize(400, 180))
	window.SetCloseIntercept(func() {
		// Treat window close as cancel
		window.Close()
		cw.app.Quit()
	})
	window.Show()

	cw.loadConfigFromPreferences(cfg)

	serialPorts, err := controller.GetSerialPorts()
	if err != nil && !errors.Is(err, controller.ErrNoUSBSerial) {
		showError(cw.app, window, fmt.Errorf("error getting serial ports: %w", err))
		return
	}
	serialPorts = append(serialPorts, controller.SerialPortNone)

	portSelect := widget.NewSelect(serialPorts, func(selected string) {
		cfg.SerialPort = selected
	})
	if cfg.SerialPort == "" {
		cfg.SerialPort = serialPorts[0]
	}
	portSelect.SetSelected(cfg.SerialPort)

	baudEntry := widget.NewEntry()
	baudEntry.SetText(cfg.BaudRate)
	baudEntry.Validator = func(s string) error {
		if _, err := strconv.Atoi(s); err != nil {
			return errors.New("baud rate must be a number")
		}
		return nil
	}
	baudEntry.OnChanged = func(s string) {
		cfg.BaudRate = s
	}

	form := &widget.Form{
		Items: []*widget.FormItem{
			widget.NewFormItem("Serial Port", portSelect),
			widget.NewFormItem("Baud Rate", baudEntry),
		},
		SubmitText: "Connect",
		CancelText: "Cancel",
		OnSubmit: func() {
			cw.saveConfigToPreferences(cfg)
			cw.OnSubmit()
			window.Close()
		},
		OnCancel: func() {
			window.Close()
			cw.app.Quit()
		},
	}

	window.SetContent(form)
}

func showError(app fyne.App, window fyne.Window, err error) {
	d := dialog.NewError(err, window)
	d.SetOnClosed(func() {
		app.Quit()
	})
	d.Show()
}
