package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
)

// Stats summarizes a completed render
type Stats struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
	Workers         int
	Duration        time.Duration
}

// TotalSamples returns the number of camera samples taken
func (s Stats) TotalSamples() int {
	return s.Width * s.Height * s.SamplesPerPixel
}

// Table builds a tabular representation of the render statistics
func (s Stats) Table() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Resolution", fmt.Sprintf("%dx%d", s.Width, s.Height)})
	table.Append([]string{"Samples/pixel", fmt.Sprintf("%d", s.SamplesPerPixel)})
	table.Append([]string{"Total samples", fmt.Sprintf("%d", s.TotalSamples())})
	table.Append([]string{"Max depth", fmt.Sprintf("%d", s.MaxDepth)})
	table.Append([]string{"Workers", fmt.Sprintf("%d", s.Workers)})
	table.Append([]string{"Duration", s.Duration.Round(time.Millisecond).String()})
	table.Render()
	return buf.String()
}
