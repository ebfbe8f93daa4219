package domain

// Summary is the serializable overview of one run
type Summary struct {
	Affix        string          `json:"affix" yaml:"affix"`
	Title        string          `json:"title" yaml:"title"`
	Arity        int             `json:"arity" yaml:"arity"`
	Sets         []SetSummary    `json:"sets" yaml:"sets"`
	Intersection int             `json:"intersection" yaml:"intersection"`
	Union        int             `json:"union" yaml:"union"`
	Regions      []RegionSummary `json:"regions" yaml:"regions"`
}

// SetSummary describes one input list
type SetSummary struct {
	Label  string `json:"label" yaml:"label"`
	Source string `json:"source" yaml:"source"`
	Count  int    `json:"count" yaml:"count"`
}

// RegionSummary is one exclusive region of the diagram
type RegionSummary struct {
	Mask  string `json:"mask" yaml:"mask"`
	Count int    `json:"count" yaml:"count"`
}

// NewSummary collects the counts of a computed run. Regions are listed in
// RegionMasks order.
func NewSummary(c *SetCollection, result *RelationResult, affix, title string) *Summary {
	s := &Summary{
		Affix:        affix,
		Title:        title,
		Arity:        c.Arity(),
		Sets:         make([]SetSummary, 0, c.Arity()),
		Intersection: result.Intersection.Len(),
		Union:        result.Union.Len(),
	}
	for _, set := range c.Sets() {
		s.Sets = append(s.Sets, SetSummary{Label: set.Label, Source: set.SourcePath, Count: set.Len()})
	}

	regions := ComputeRegions(c)
	for _, mask := range RegionMasks(c.Arity()) {
		s.Regions = append(s.Regions, RegionSummary{Mask: mask, Count: regions[mask]})
	}
	return s
}
