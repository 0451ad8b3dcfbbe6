package regions

// List is an ordered collection of regions
type List struct {
	Regions []Region
}

// NewList wraps regions in a List
func NewList(regions ...Region) *List {
	return &List{Regions: regions}
}

// Len returns the number of regions
func (l *List) Len() int {
	return len(l.Regions)
}

// At returns the region at index i
func (l *List) At(i int) Region {
	return l.Regions[i]
}

// Slice returns a new List sharing the regions in [i, j)
func (l *List) Slice(i, j int) *List {
	return &List{Regions: l.Regions[i:j:j]}
}

// Append adds regions to the end of the list
func (l *List) Append(regions ...Region) {
	l.Regions = append(l.Regions, regions...)
}

// Extend appends every region of other
func (l *List) Extend(other *List) {
	l.Regions = append(l.Regions, other.Regions...)
}

// Insert places r before index i
func (l *List) Insert(i int, r Region) {
	l.Regions = append(l.Regions, nil)
	copy(l.Regions[i+1:], l.Regions[i:])
	l.Regions[i] = r
}

// Reverse reverses the list in place
func (l *List) Reverse() {
	for i, j := 0, len(l.Regions)-1; i < j; i, j = i+1, j-1 {
		l.Regions[i], l.Regions[j] = l.Regions[j], l.Regions[i]
	}
}

// Pop removes and returns the region at index i; negative indices count
// from the end.
func (l *List) Pop(i int) Region {
	if i < 0 {
		i += len(l.Regions)
	}
	r := l.Regions[i]
	l.Regions = append(l.Regions[:i], l.Regions[i+1:]...)
	return r
}

// Copy returns a shallow copy of the list
func (l *List) Copy() *List {
	return &List{Regions: append([]Region(nil), l.Regions...)}
}

// Sky returns the regions positioned on the sky
func (l *List) Sky() []SkyRegion {
	var out []SkyRegion
	for _, r := range l.Regions {
		if s, ok := r.(SkyRegion); ok {
			out = append(out, s)
		}
	}
	return out
}

// Pixel returns the regions positioned in pixel coordinates
func (l *List) Pixel() []PixelRegion {
	var out []PixelRegion
	for _, r := range l.Regions {
		if p, ok := r.(PixelRegion); ok {
			out = append(out, p)
		}
	}
	return out
}
