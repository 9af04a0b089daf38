package terminal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.bug.st/serial"
)

// SerialClicker reads key presses from a presenter remote attached as a serial device.
type SerialClicker struct {
	port serial.Port
	path string
}

func OpenClicker(path string, baudRate int) (*SerialClicker, error) {
	port, err := serial.Open(path, &serial.Mode{
		BaudRate: baudRate,
	})
	if err != nil {
		return nil, fmt.Errorf("could not open clicker %s: %w", path, err)
	}

	// Reads that time out return no data and are retried.
	if err := port.SetReadTimeout(time.Hour); err != nil {
		slog.Warn("could not set clicker read timeout", "path", path, "error", err)
	}

	slog.Info("Clicker opened", "path", path, "baud", baudRate)

	return &SerialClicker{port: port, path: path}, nil
}

func (s *SerialClicker) ReadKey(ctx context.Context) (rune, error) {
	return readKey(ctx, s.port)
}

func (s *SerialClicker) Close() error {
	if err := s.port.Close(); err != nil {
		return fmt.Errorf("error closing clicker %s: %w", s.path, err)
	}

	return nil
}

// ListClickers returns the serial ports that look like USB serial adapters.
// When none match, every port is returned.
func ListClickers() ([]string, error) {
	names, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("could not get list of serial ports: %w", err)
	}

	result := make([]string, 0, len(names))

	for _, n := range names {
		if LooksLikeClicker(n) {
			result = append(result, n)
		}
	}

	if len(result) == 0 {
		return names, nil
	}

	return result, nil
}

func LooksLikeClicker(path string) bool {
	for _, marker := range []string{"ttyUSB", "ttyACM", "tty.usbserial", "tty.usbmodem"} {
		if strings.Contains(path, marker) {
			return true
		}
	}

	return false
}
