// Command picasso renders canvas proofs and answers challenge servers.
//
// Usage:
//
//	picasso solve -url https://example.com/challenge
//	picasso render -seed 42 -o proof.png
//	picasso backends
package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/gogpu/picasso"
	"github.com/gogpu/picasso/backend/raster"
	_ "github.com/gogpu/picasso/backend/vector"
	"github.com/gogpu/picasso/challenge"
	"github.com/gogpu/picasso/digest"
	"github.com/gogpu/picasso/internal/suggest"
	"github.com/gogpu/picasso/prng"
	"github.com/gogpu/picasso/render"
	"github.com/gogpu/picasso/surface"
)

// errUsage is returned after usage has been printed.
var errUsage = errors.New("usage")

var commands = []string{"solve", "render", "backends", "version"}

func main() {
	surface.Register(surface.RecordingName, surface.RecordingPriority, surface.RecorderFactory, nil)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, "picasso:", err)
		}
		os.Exit(2)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stderr)
		return errUsage
	}
	switch cmd, rest := args[0], args[1:]; cmd {
	case "solve":
		return runSolve(ctx, rest, stdout, stderr)
	case "render":
		return runRender(rest, stdout, stderr)
	case "backends":
		for _, name := range surface.Available() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	case "version":
		fmt.Fprintln(stdout, "picasso", picasso.Version)
		return nil
	case "-h", "-help", "--help", "help":
		usage(stdout)
		return nil
	default:
		msg := "unknown command " + cmd
		if s := suggest.Closest(cmd, commands); s != "" {
			msg += " (did you mean " + s + "?)"
		}
		return errors.New(msg)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: picasso <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "commands:")
	fmt.Fprintln(w, "  solve     fetch, solve and answer a challenge URL")
	fmt.Fprintln(w, "  render    render one proof and print its digest")
	fmt.Fprintln(w, "  backends  list available surface backends")
	fmt.Fprintln(w, "  version   print the version")
}

// common holds the flags shared by solve and render.
type common struct {
	backend string
	digest  string
	arith   string
	verbose bool
}

func (c *common) register(fs *flag.FlagSet) {
	fs.StringVar(&c.backend, "backend", "", "surface backend (default: best available)")
	fs.StringVar(&c.digest, "digest", digest.Default().Name(), "digest function: "+strings.Join(digest.Names(), ", "))
	fs.StringVar(&c.arith, "arith", prng.Exact.String(), "generator arithmetic: "+strings.Join(prng.ArithmeticNames, ", "))
	fs.BoolVar(&c.verbose, "v", false, "log debug output")
}

// renderOptions returns the renderer options selected by the flags.
func (c *common) renderOptions(extra ...render.Option) ([]render.Option, error) {
	a, err := prng.ParseArithmetic(c.arith)
	if err != nil {
		if s := suggest.Closest(c.arith, prng.ArithmeticNames); s != "" {
			err = fmt.Errorf("%w (did you mean %s?)", err, s)
		}
		return nil, err
	}
	return append([]render.Option{render.WithBackend(c.backend), render.WithArithmetic(a)}, extra...), nil
}

func (c *common) setup(stderr io.Writer) (digest.Digester, error) {
	level := slog.LevelInfo
	if c.verbose {
		level = slog.LevelDebug
	}
	picasso.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	return digest.Lookup(c.digest)
}

func runSolve(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		c       common
		url     = fs.String("url", "", "challenge URL")
		workers = fs.Int("workers", 0, "concurrent renders (default: GOMAXPROCS)")
		legacy  = fs.Bool("legacy", false, "answer unavailable challenges with the digest of \""+challenge.LegacySentinel+"\"")
	)
	c.register(fs)
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if *url == "" {
		fmt.Fprintln(stderr, "solve: -url is required")
		fs.Usage()
		return errUsage
	}
	d, err := c.setup(stderr)
	if err != nil {
		return err
	}
	opts, err := c.renderOptions()
	if err != nil {
		return err
	}

	reply, report, err := challenge.SolveURL(ctx, *url,
		challenge.WithRenderer(render.New(opts...)),
		challenge.WithDigester(d),
		challenge.WithWorkers(*workers),
		challenge.WithLegacySentinel(*legacy),
	)
	if err != nil {
		return err
	}
	picasso.Logger().Info("solve: done",
		"rendered", report.Count(render.Rendered),
		"unavailable", report.Count(render.Unavailable),
		"failed", len(report.Failed()))

	_, err = fmt.Fprintf(stdout, "%s\n", bytes.TrimSpace(reply))
	return err
}

func runRender(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		c              common
		seed           = fs.Int64("seed", 1, "generator seed")
		multiplier     = fs.Int64("multiplier", 16807, "generator multiplier")
		modulus        = fs.Int64("modulus", 2147483647, "generator modulus (offsetParameter)")
		width          = fs.Int("width", 220, "canvas width")
		height         = fs.Int("height", 30, "canvas height")
		iterations     = fs.Int("iterations", 10, "drawing iterations")
		fontSizeFactor = fs.Float64("font-size-factor", 1.5, "canvas height divided by font size")
		maxShadowBlur  = fs.Float64("max-shadow-blur", 6, "maximum shadow blur")
		output         = fs.String("o", "", "write the encoded surface to this file")
		ops            = fs.Bool("ops", false, "print the surface call log")
	)
	c.register(fs)
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	d, err := c.setup(stderr)
	if err != nil {
		return err
	}
	opts, err := c.renderOptions(render.WithRecording(*ops))
	if err != nil {
		return err
	}

	res, err := render.Render(render.Settings{
		Seed:       *seed,
		Multiplier: *multiplier,
		Modulus:    *modulus,
		Params: render.Params{
			Width:          *width,
			Height:         *height,
			Iterations:     *iterations,
			FontSizeFactor: *fontSizeFactor,
			MaxShadowBlur:  *maxShadowBlur,
		},
	}, opts...)
	if err != nil {
		return err
	}
	if res.Status == render.Unavailable {
		return errors.New("no surface backend available")
	}

	if *ops {
		for _, op := range res.Ops {
			fmt.Fprintln(stdout, op)
		}
	}
	if *output != "" {
		if err := os.WriteFile(*output, fileData(res.Data), 0o644); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(stdout, d.Digest(res.Data, *seed))
	return err
}

// fileData turns a PNG data URL back into PNG bytes. Other encodings are
// written as they are.
func fileData(data []byte) []byte {
	b64, ok := bytes.CutPrefix(data, []byte(raster.DataURLPrefix))
	if !ok {
		return data
	}
	out, err := base64.StdEncoding.DecodeString(string(b64))
	if err != nil {
		return data
	}
	return out
}
