package projection

// Layout carries the chart level presentation hints.
type Layout struct {
	XTitle    string `json:"xTitle,omitempty"`
	YTitle    string `json:"yTitle,omitempty"`
	Y2Title   string `json:"y2Title,omitempty"`
	TickAngle int    `json:"tickAngle,omitempty"`
	// LegendHorizontal lays the legend out below the plot.
	LegendHorizontal bool `json:"legendHorizontal,omitempty"`
	// Geo names the boundary collection a choropleth is drawn on.
	Geo string `json:"geo,omitempty"`
}

// Chart groups the traces drawn on one surface, e.g. a bar ranking with a
// salary line on the secondary axis.
type Chart struct {
	ID     string       `json:"id"`
	Title  string       `json:"title,omitempty"`
	Series []SeriesSpec `json:"series"`
	Layout Layout       `json:"layout"`
}
