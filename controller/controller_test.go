package controller

import "testing"

func TestNewValidatesConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"EmptyPort", Config{}},
		{"NonePort", Config{SerialPort: SerialPortNone}},
		{"BadBaudRate", Config{SerialPort: "/dev/ttyACM0", BaudRate: "fast"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.cfg)
			if err == nil {
				c.Close()
				t.Error("expected error")
			}
		})
	}
}
