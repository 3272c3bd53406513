package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"trimetric/geometry"
)

// pointLabels names the prompts, in entry order.
var pointLabels = [3]string{"A", "B", "C"}

// readPoint prompts until a line parses as a point. A malformed line gets a
// warning and a fresh prompt; a closed input stream is an error, since no
// amount of retrying will produce a point from it.
func readPoint(in *bufio.Reader, out io.Writer, au aurora.Aurora, label string) (geometry.Point, error) {
	for {
		fmt.Fprintf(out, "Enter point %s (x, y): ", label)
		line, err := in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return geometry.Point{}, errors.Wrap(err, "reading input")
		}
		if errors.Is(err, io.EOF) && strings.TrimSpace(line) == "" {
			return geometry.Point{}, errors.New("EOF reached")
		}

		p, parseErr := geometry.ParsePoint(line)
		if parseErr != nil {
			fmt.Fprintf(out, "  ⚠  %s\n", au.Yellow(parseErr.Error()))
			fmt.Fprintln(out, "     Please try again using the format 'x, y' (e.g. 1.0, 2.0)")
			continue
		}
		return p, nil
	}
}

func readPoints(in *bufio.Reader, out io.Writer, au aurora.Aurora) ([3]geometry.Point, error) {
	var pts [3]geometry.Point
	for i, label := range pointLabels {
		p, err := readPoint(in, out, au, label)
		if err != nil {
			return pts, err
		}
		pts[i] = p
	}
	return pts, nil
}
