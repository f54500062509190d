package models

// GenreSet is the ordered, duplicate-free list of genre tags of one content
// item. Comparison is exact and case-sensitive.
type GenreSet []string

// NewGenreSet keeps the first occurrence of every tag.
func NewGenreSet(tags ...string) GenreSet {
	seen := make(map[string]struct{}, len(tags))
	set := make(GenreSet, 0, len(tags))
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		set = append(set, t)
	}
	return set
}

func (s GenreSet) Contains(tag string) bool {
	for _, g := range s {
		if g == tag {
			return true
		}
	}
	return false
}

func (s GenreSet) Clone() GenreSet {
	if s == nil {
		return GenreSet{}
	}
	out := make(GenreSet, len(s))
	copy(out, s)
	return out
}

// Add drops every requested tag from s and appends the requested tags, so each
// of them ends up present exactly once. Unmentioned tags keep their position.
func (s GenreSet) Add(tags []string) GenreSet {
	requested := NewGenreSet(tags...)
	out := s.without(requested)
	return append(out, requested...)
}

// Remove drops the requested tags. Tags that are not present are ignored.
func (s GenreSet) Remove(tags []string) GenreSet {
	return s.without(NewGenreSet(tags...))
}

func (s GenreSet) without(drop GenreSet) GenreSet {
	out := make(GenreSet, 0, len(s))
	for _, g := range s {
		if drop.Contains(g) {
			continue
		}
		out = append(out, g)
	}
	return out
}

// GenreCount is the number of content items carrying a tag.
type GenreCount struct {
	Genre string `json:"genre" example:"news"`
	Count int64  `json:"count" example:"12"`
}
