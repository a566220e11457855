package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/katalvlaran/metro/core"
	"github.com/katalvlaran/metro/network"
)

const (
	segmentSep   = "---"
	emDashSep    = "—"
	lineMarker   = "号线"
	headerSuffix = "站点间距"
	byteOrderMrk = "\ufeff"
)

// segmentRow is one parsed "A---B distance" row.
type segmentRow struct {
	from, to string
	distance float64
}

// ReadText feeds text-format records from r into b. Segments are added on
// the most recently declared line; segments before any header carry no
// line.
func ReadText(r io.Reader, b *network.Builder, opts ...Option) (Stats, error) {
	o := applyOptions(opts)

	var st Stats
	sc := bufio.NewScanner(r)
	for rowNo := 1; sc.Scan(); rowNo++ {
		row := sc.Text()
		if rowNo == 1 {
			row = strings.TrimPrefix(row, byteOrderMrk)
		}
		row = strings.TrimSpace(row)
		if row == "" || strings.HasPrefix(row, "#") {
			continue
		}

		if isHeader(row) {
			if err := b.DeclareLine(headerName(row)); err != nil {
				return st, fmt.Errorf("row %d: %w", rowNo, err)
			}
			st.Lines++
			continue
		}

		seg, err := parseSegment(row)
		if err == nil {
			err = b.AddSegmentOnCurrentLine(seg.from, seg.to, seg.distance)
			if err != nil && !rejectedSegment(err) {
				return st, fmt.Errorf("row %d: %w", rowNo, err)
			}
		}
		if err != nil {
			if o.strict {
				return st, fmt.Errorf("%w: row %d %q: %v", ErrMalformedRow, rowNo, row, err)
			}
			st.Skipped++
			o.logger.Warn("skipping malformed row",
				slog.Int("row", rowNo),
				slog.String("text", row),
				slog.String("error", err.Error()),
			)
			continue
		}
		st.Segments++
	}
	if err := sc.Err(); err != nil {
		return st, fmt.Errorf("loader: read: %w", err)
	}

	return st, nil
}

// isHeader reports whether row declares a line rather than a segment.
func isHeader(row string) bool {
	if strings.Contains(row, lineMarker) {
		return true
	}
	if strings.Contains(row, segmentSep) || strings.Contains(row, emDashSep) {
		return false
	}
	return strings.HasPrefix(strings.ToLower(row), "line ") ||
		strings.HasSuffix(row, ":") || strings.HasSuffix(row, "：")
}

// headerName strips the distance-table suffix and a trailing colon.
func headerName(row string) string {
	name, _, _ := strings.Cut(row, headerSuffix)
	name = strings.TrimSpace(name)
	name = strings.TrimRight(name, ":：")

	return strings.TrimSpace(name)
}

// parseSegment splits "A---B 1.2" (or "A—B 1.2") into its parts.
func parseSegment(row string) (segmentRow, error) {
	row = strings.ReplaceAll(row, emDashSep, segmentSep)
	parts := strings.Split(row, segmentSep)
	if len(parts) != 2 {
		return segmentRow{}, fmt.Errorf("want one separator, got %d", len(parts)-1)
	}
	from := strings.TrimSpace(parts[0])
	fields := strings.Fields(parts[1])
	if from == "" || len(fields) < 2 {
		return segmentRow{}, errors.New("want \"A---B distance\"")
	}
	d, err := strconv.ParseFloat(fields[len(fields)-1], 64)
	if err != nil {
		return segmentRow{}, fmt.Errorf("distance: %w", err)
	}

	return segmentRow{
		from:     from,
		to:       strings.Join(fields[:len(fields)-1], " "),
		distance: d,
	}, nil
}

// rejectedSegment reports whether err is a per-row validation failure
// rather than a builder state problem.
func rejectedSegment(err error) bool {
	return errors.Is(err, core.ErrBadWeight) ||
		errors.Is(err, core.ErrLoopNotAllowed) ||
		errors.Is(err, network.ErrEmptyStation)
}
