package style

import "maps"

// Class tags views so that class rules declared on their ancestors apply to them.
type Class string

type ClassRule struct {
	Class Class
	Style *Style
}

type responsiveRule struct {
	size  ScreenSize
	style *Style
}

// Style is a set of property values plus conditional rules. The zero value
// is not usable, create styles with New.
type Style struct {
	values map[Key]any

	selectors  map[Selector]*Style
	responsive []responsiveRule
	classes    []ClassRule

	transitions map[Key]Transition
}

func New() *Style {
	return &Style{
		values: make(map[Key]any),
	}
}

// Set stores values on s and returns s.
func (s *Style) Set(values ...Value) *Style {
	for _, v := range values {
		s.values[v.key] = v.value
	}

	return s
}

// Unset removes k from s.
func (s *Style) Unset(k Key) *Style {
	delete(s.values, k)
	return s
}

func (s *Style) Get(k Key) (any, bool) {
	v, ok := s.values[k]
	return v, ok
}

func (s *Style) Len() int {
	return len(s.values)
}

// Selector adds a rule applied while the view is in every state of sel.
func (s *Style) Selector(sel Selector, fn func(*Style) *Style) *Style {
	rule := fn(New())

	if s.selectors == nil {
		s.selectors = make(map[Selector]*Style)
	}
	if existing, ok := s.selectors[sel]; ok {
		existing.Apply(rule)
	} else {
		s.selectors[sel] = rule
	}

	return s
}

func (s *Style) Hover(fn func(*Style) *Style) *Style        { return s.Selector(Hover, fn) }
func (s *Style) Focus(fn func(*Style) *Style) *Style        { return s.Selector(Focus, fn) }
func (s *Style) FocusVisible(fn func(*Style) *Style) *Style { return s.Selector(FocusVisible, fn) }
func (s *Style) Active(fn func(*Style) *Style) *Style       { return s.Selector(Active, fn) }
func (s *Style) Dragging(fn func(*Style) *Style) *Style     { return s.Selector(Dragging, fn) }
func (s *Style) Selected(fn func(*Style) *Style) *Style     { return s.Selector(Selected, fn) }
func (s *Style) FileHover(fn func(*Style) *Style) *Style    { return s.Selector(FileHover, fn) }
func (s *Style) DarkMode(fn func(*Style) *Style) *Style     { return s.Selector(DarkMode, fn) }
func (s *Style) Disabled(fn func(*Style) *Style) *Style     { return s.Selector(Disabled, fn) }

// Responsive adds a rule applied while the window size is in size.
func (s *Style) Responsive(size ScreenSize, fn func(*Style) *Style) *Style {
	s.responsive = append(s.responsive, responsiveRule{size: size, style: fn(New())})
	return s
}

// Class adds a rule applied to every descendant tagged with c.
func (s *Style) Class(c Class, fn func(*Style) *Style) *Style {
	rule := fn(New())

	for _, existing := range s.classes {
		if existing.Class == c {
			existing.Style.Apply(rule)
			return s
		}
	}

	s.classes = append(s.classes, ClassRule{Class: c, Style: rule})
	return s
}

// Transition animates changes of k.
func (s *Style) Transition(k Key, t Transition) *Style {
	if s.transitions == nil {
		s.transitions = make(map[Key]Transition)
	}

	s.transitions[k] = t
	return s
}

// Apply merges o into s, o winning on conflicts, and returns s.
func (s *Style) Apply(o *Style) *Style {
	if o == nil {
		return s
	}

	maps.Copy(s.values, o.values)

	for sel, rule := range o.selectors {
		s.Selector(sel, func(*Style) *Style { return rule.Clone() })
	}

	s.responsive = append(s.responsive, o.responsive...)

	for _, rule := range o.classes {
		s.Class(rule.Class, func(*Style) *Style { return rule.Style.Clone() })
	}

	if len(o.transitions) > 0 {
		if s.transitions == nil {
			s.transitions = make(map[Key]Transition)
		}
		maps.Copy(s.transitions, o.transitions)
	}

	return s
}

func (s *Style) Clone() *Style {
	return New().Apply(s)
}

// ClassRules returns the class rules s declares for its descendants.
func (s *Style) ClassRules() []ClassRule {
	if s == nil {
		return nil
	}

	return s.classes
}

// Simple reports whether s has neither selector nor responsive rules.
func (s *Style) Simple() bool {
	return s == nil || (len(s.selectors) == 0 && len(s.responsive) == 0)
}

// Selectors returns the union of the states s has rules for.
func (s *Style) Selectors() Selector {
	if s == nil {
		return 0
	}

	var out Selector
	for sel := range s.selectors {
		out |= sel
	}
	return out
}
