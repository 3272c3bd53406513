// Package cli wires the geometry pipeline to a terminal: three points in,
// a summary report out, optionally a PNG drawing. It never calls os.Exit;
// Run returns a semantic exit code so tests can drive it end to end with
// plain byte buffers.
package cli

import (
	"bufio"
	"fmt"
	"io"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/logrusorgru/aurora"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"trimetric/geometry"
	"trimetric/render"
	"trimetric/report"
)

const (
	ExitOK              = 0
	ExitInvalidTriangle = 1
	ExitUsage           = 2
	ExitIO              = 3
)

func init() {
	// Auto-generated drawing names should differ between runs.
	petname.NonDeterministicMode()
}

// Run executes one invocation. args excludes argv[0]. Points come either
// from three --point flags or, when none are given, from an interactive
// prompt on stdin.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	app := kingpin.New("trimetric", "Validate a triangle from three points and report its geometry.")
	terminated := false
	app.Terminate(func(int) { terminated = true })
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)

	points := app.Flag("point", "Vertex as 'x, y'. Give exactly three, or none to be prompted.").
		Short('p').PlaceHolder("X,Y").Strings()
	outPath := app.Flag("out", "Write the triangle drawing to this PNG path.").
		Short('o').PlaceHolder("PATH").String()
	draw := app.Flag("draw", "Draw the triangle to a PNG (auto-named unless --out is given).").Bool()
	show := app.Flag("show", "Print the drawing inline (iTerm2 protocol). Implies --draw.").Bool()
	noColor := app.Flag("no-color", "Disable ANSI colors.").Bool()

	if _, err := app.Parse(args); err != nil {
		fmt.Fprintf(stderr, "%s: error: %v\n", app.Name, err)
		return ExitUsage
	}
	if terminated {
		// --help or --version already printed everything there is to say.
		return ExitOK
	}

	au := aurora.NewAurora(!*noColor)

	var pts [3]geometry.Point
	switch len(*points) {
	case 0:
		in := bufio.NewReader(stdin)
		var err error
		pts, err = readPoints(in, stdout, au)
		if err != nil {
			fmt.Fprintln(stderr, au.Red(err.Error()))
			return ExitIO
		}
	case 3:
		for i, raw := range *points {
			p, err := geometry.ParsePoint(raw)
			if err != nil {
				fmt.Fprintln(stderr, au.Red(fmt.Sprintf("point %s: %s", pointLabels[i], err)))
				return ExitInvalidTriangle
			}
			pts[i] = p
		}
	default:
		fmt.Fprintf(stderr, "%s: error: expected three --point flags or none, got %d\n", app.Name, len(*points))
		return ExitUsage
	}

	tri, err := geometry.NewTriangle(pts[0], pts[1], pts[2])
	if err != nil {
		fmt.Fprintln(stderr, au.Red(err.Error()))
		return ExitInvalidTriangle
	}

	fmt.Fprintf(stdout, "Successfully created triangle: %v\n", tri)
	s := tri.Summarize()
	fmt.Fprintln(stdout, report.New(!*noColor).Render(s))

	if *draw || *show || *outPath != "" {
		path := *outPath
		if path == "" {
			path = autoName()
		}
		if err := render.Save(s, path); err != nil {
			fmt.Fprintln(stderr, au.Red(err.Error()))
			return ExitIO
		}
		fmt.Fprintf(stdout, "Saved drawing to %s\n", path)
		if *show {
			render.Show(path, stdout)
		}
	}

	return ExitOK
}

func autoName() string {
	return fmt.Sprintf("triangle-%s.png", petname.Generate(2, "-"))
}
