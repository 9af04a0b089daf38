package presentation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/dasdy/termslides/logging"
	"github.com/dasdy/termslides/model"
)

// KeyInterrupt is the byte a terminal in raw mode delivers for Ctrl-C.
const KeyInterrupt rune = 0x03

type Screen interface {
	io.Writer
	Clear() error
}

// KeySource blocks until a key is pressed or ctx is done.
type KeySource interface {
	ReadKey(ctx context.Context) (rune, error)
}

type Player struct {
	Screen   Screen
	Keys     KeySource
	QuitKeys []rune
	Sleep    func(ctx context.Context, d time.Duration) error
	// Progress, when set, is called before each slide is shown.
	Progress func(index, total int)
}

func NewPlayer(screen Screen, keys KeySource) *Player {
	return &Player{
		Screen: screen,
		Keys:   keys,
		Sleep:  sleepContext,
	}
}

// Show plays slides in order. A slide that needs confirmation waits for a key,
// otherwise a timed slide stays for its duration. After the last slide the
// player waits for one more key and clears the screen. Cancelling ctx, or
// pressing Ctrl-C or a quit key while waiting, stops playback without an error.
func (p *Player) Show(ctx context.Context, pres *model.Presentation) error {
	logCtx := logging.AppendCtx(ctx, slog.String(logging.PackageName, "presentation"))
	slides := pres.Slides()

	for i, slide := range slides {
		slideCtx := logging.SlideCtx(logCtx, i)

		if p.Progress != nil {
			p.Progress(i, len(slides))
		}

		if err := p.draw(slide); err != nil {
			return err
		}

		slog.DebugContext(slideCtx, "slide shown",
			"duration", slide.Duration,
			"confirm", slide.NeedsConfirmation)

		stop, err := p.pause(slideCtx, slide)
		if err != nil {
			return err
		}

		if stop {
			slog.DebugContext(slideCtx, "playback interrupted")

			return p.clear()
		}
	}

	if _, err := p.waitForKey(logCtx); err != nil {
		return err
	}

	return p.clear()
}

func (p *Player) draw(slide model.Slide) error {
	if err := p.clear(); err != nil {
		return err
	}

	if _, err := io.WriteString(p.Screen, slide.Text); err != nil {
		return fmt.Errorf("could not print slide: %w", err)
	}

	return nil
}

func (p *Player) clear() error {
	if err := p.Screen.Clear(); err != nil {
		return fmt.Errorf("could not clear screen: %w", err)
	}

	return nil
}

func (p *Player) pause(ctx context.Context, slide model.Slide) (bool, error) {
	switch {
	case slide.NeedsConfirmation:
		return p.waitForKey(ctx)
	case slide.Duration > 0:
		sleep := p.Sleep
		if sleep == nil {
			sleep = sleepContext
		}

		if err := sleep(ctx, slide.Wait()); err != nil {
			if isInterrupt(err) {
				return true, nil
			}

			return false, fmt.Errorf("could not wait for slide: %w", err)
		}
	}

	return false, nil
}

func (p *Player) waitForKey(ctx context.Context) (bool, error) {
	key, err := p.Keys.ReadKey(ctx)
	if err != nil {
		if isInterrupt(err) || errors.Is(err, io.EOF) {
			return true, nil
		}

		return false, fmt.Errorf("could not read key: %w", err)
	}

	slog.DebugContext(ctx, "key pressed", "key", key)

	return key == KeyInterrupt || slices.Contains(p.QuitKeys, key), nil
}

func isInterrupt(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
