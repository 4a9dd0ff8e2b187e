// Package controller is the host side of the cutter's serial console:
// it connects over USB serial, forwards command bytes, and streams the
// firmware's diagnostic output back.
package controller

import (
	"context"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"go.bug.st/serial"
)

// SerialPortNone can be selected to run the UI without a device attached.
const SerialPortNone = "none"

const defaultBaudRate = 115200

var ErrNoUSBSerial = errors.New("no USB serial ports found")

// Config has the connection settings for a cutter attached over USB serial.
type Config struct {
	SerialPort string
	BaudRate   string
}

// GetSerialPorts lists serial ports that look like USB devices.
func GetSerialPorts() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, err
	}

	var usb []string
	for _, p := range ports {
		lower := strings.ToLower(p)
		if strings.Contains(lower, "usb") || strings.Contains(lower, "acm") {
			usb = append(usb, p)
		}
	}
	if len(usb) == 0 {
		return nil, ErrNoUSBSerial
	}
	return usb, nil
}

// Controller owns one open serial connection to the cutter.
type Controller struct {
	port serial.Port
}

func New(cfg Config) (*Controller, error) {
	if cfg.SerialPort == "" || cfg.SerialPort == SerialPortNone {
		return nil, errors.New("serial port is required")
	}

	baud := defaultBaudRate
	if cfg.BaudRate != "" {
		var err error
		baud, err = strconv.Atoi(cfg.BaudRate)
		if err != nil {
			return nil, errors.New("invalid baud rate: " + cfg.BaudRate)
		}
	}

	port, err := serial.Open(cfg.SerialPort, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, err
	}

	return &Controller{port: port}, nil
}

// NewFromEnv connects using STEPPERIO_PORT and STEPPERIO_BAUD.
func NewFromEnv() (*Controller, error) {
	return New(Config{
		SerialPort: os.Getenv("STEPPERIO_PORT"),
		BaudRate:   os.Getenv("STEPPERIO_BAUD"),
	})
}

func (c *Controller) Close() error {
	return c.port.Close()
}

// Write forwards raw command bytes to the device.
func (c *Controller) Write(p []byte) (int, error) {
	return c.port.Write(p)
}

// Run pipes input bytes to the device and the device's diagnostic
// stream to output until either side closes or ctx is done.
func (c *Controller) Run(ctx context.Context, input io.Reader, output io.Writer) error {
	errCh := make(chan error, 2)
	go func() {
		_, err := io.Copy(c.port, input)
		errCh <- err
	}()
	go func() {
		_, err := io.Copy(output, c.port)
		errCh <- err
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}
