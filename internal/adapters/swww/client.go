// Package swww drives the swww wallpaper daemon through its command-line client.
package swww

import (
	"bufio"
	"context"
	"strconv"
	"strings"

	"github.com/bft-labs/wallcycle/internal/domain"
	"github.com/bft-labs/wallcycle/internal/ports"
)

// DefaultBinary is the client executable looked up in PATH.
const DefaultBinary = "swww"

// currentImageMarker precedes the image path in `swww query` output, e.g.
// "DP-1: 2560x1080, scale: 2, currently displaying: image: /path/to/image.jpg".
const currentImageMarker = "currently displaying: image: "

// Client implements ports.Display on top of the swww command-line client.
type Client struct {
	bin    string
	runner ports.CommandRunner
	logger ports.Logger
}

// NewClient creates a client invoking bin (DefaultBinary if empty) through runner.
func NewClient(bin string, runner ports.CommandRunner, logger ports.Logger) *Client {
	if bin == "" {
		bin = DefaultBinary
	}
	return &Client{
		bin:    bin,
		runner: runner,
		logger: logger,
	}
}

// ProbeCurrent runs `swww query` and extracts the displayed image.
// Any failure yields the zero ImagePath.
func (c *Client) ProbeCurrent(ctx context.Context) domain.ImagePath {
	res, err := c.runner.Run(ctx, c.bin, "query")
	if err != nil {
		c.logger.Warn("could not query current wallpaper", ports.Err(err))
		return ""
	}
	if !res.Success() {
		c.logger.Warn("could not query current wallpaper",
			ports.Int("exit_code", res.ExitCode),
			ports.String("stderr", res.Stderr),
		)
		return ""
	}

	current, ok := ParseQuery(res.Stdout)
	if !ok {
		c.logger.Debug("query output names no current image")
		return ""
	}
	c.logger.Info("current wallpaper", ports.Image("image", current))
	return current
}

// ParseQuery returns the image path from the first output line carrying the
// "currently displaying: image: " marker. An empty path on that line means
// unknown; later lines are not consulted.
func ParseQuery(output string) (domain.ImagePath, bool) {
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		_, rest, found := strings.Cut(scanner.Text(), currentImageMarker)
		if !found {
			continue
		}
		p := domain.NewImagePath(strings.TrimSpace(rest))
		return p, p.Known()
	}
	return "", false
}

// ApplyImage runs `swww img` with the configured transition.
func (c *Client) ApplyImage(ctx context.Context, image domain.ImagePath, transition domain.Transition) error {
	c.logger.Info("setting wallpaper",
		ports.Image("image", image),
		ports.String("transition", transition.String()),
	)

	res, err := c.runner.Run(ctx, c.bin, imgArgs(image, transition)...)
	if err != nil {
		return &domain.SetError{Image: image, ExitCode: -1, Err: err}
	}
	if !res.Success() {
		return &domain.SetError{Image: image, ExitCode: res.ExitCode, Stderr: res.Stderr}
	}

	c.logger.Info("wallpaper changed successfully", ports.Image("image", image))
	return nil
}

func imgArgs(image domain.ImagePath, transition domain.Transition) []string {
	return []string{
		"img",
		"--transition-type", transition.Type,
		"--transition-duration", strconv.Itoa(transition.DurationSecs),
		string(image),
	}
}
