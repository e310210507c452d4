package features

// RunSummary is the serialisable form of a Run.
type RunSummary struct {
	Kind string `json:"kind" yaml:"kind"`
	Text string `json:"text" yaml:"text"`
}

// Summary is the serialisable form of a Record, used by the JSON API, the
// static build and the CLI.
type Summary struct {
	Key         int          `json:"key" yaml:"key"`
	Title       string       `json:"title" yaml:"title"`
	Icon        string       `json:"icon" yaml:"icon"`
	IconPath    string       `json:"iconPath" yaml:"icon_path"`
	Description string       `json:"description" yaml:"description"`
	Runs        []RunSummary `json:"runs" yaml:"runs"`
}

// Summaries returns one summary per record in display order.
func (c Catalog) Summaries() []Summary {
	out := make([]Summary, 0, len(c.records))
	for i, r := range c.All() {
		runs := make([]RunSummary, len(r.Description))
		for j, run := range r.Description {
			runs[j] = RunSummary{Kind: run.Kind.String(), Text: run.Text}
		}
		out = append(out, Summary{
			Key:         i,
			Title:       r.Title,
			Icon:        r.Icon.String(),
			IconPath:    r.Icon.Path(),
			Description: r.Description.String(),
			Runs:        runs,
		})
	}
	return out
}
