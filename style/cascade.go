package style

import (
	"maps"
	"slices"
)

// Computed is the resolved style of a view.
type Computed struct {
	values map[Key]any
}

func newComputed() *Computed {
	return &Computed{values: make(map[Key]any)}
}

func (c *Computed) get(k Key) any {
	if c != nil {
		if v, ok := c.values[k]; ok {
			return v
		}
	}

	return k.defaultValue()
}

func (c *Computed) clone() *Computed {
	return &Computed{values: maps.Clone(c.values)}
}

// Context is what a view's style depends on besides its inline style.
type Context struct {
	// Parent is the computed style of the parent, nil for a root.
	Parent *Computed
	// Rules are the class rules declared by ancestors, outermost first.
	Rules [][]ClassRule
	// Classes the view is tagged with.
	Classes     []Class
	Interaction Selector
	Screen      ScreenSize
}

type Result struct {
	Computed    *Computed
	Transitions map[Key]Transition

	// Rules to hand to the children.
	Rules [][]ClassRule

	// FastPath is true when the cascade was skipped: no class matched and
	// the inline style had no conditional rule.
	FastPath bool
	// Selectors the resolved style reacts to.
	Selectors Selector
}

// Resolve computes the style of a view. Values come, lowest priority
// first, from: inherited props of the parent, matching class rules from the
// outermost ancestor to the innermost, the inline style, matching
// responsive rules, then matching selector rules.
func Resolve(inline *Style, ctx Context) Result {
	c := newComputed()

	if ctx.Parent != nil {
		for k, v := range ctx.Parent.values {
			if k.Flags().Has(Inherited) {
				c.values[k] = v
			}
		}
	}

	effective := inline
	fast := !matchesAny(ctx.Rules, ctx.Classes) && inline.Simple()

	if !fast {
		effective = New()
		for _, level := range ctx.Rules {
			for _, rule := range level {
				if slices.Contains(ctx.Classes, rule.Class) {
					effective.Apply(rule.Style)
				}
			}
		}
		effective.Apply(inline)

		// matching responsive rules merge whole, nested rules included;
		// rules they append are visited by the same loop
		for i := 0; i < len(effective.responsive); i++ {
			if rule := effective.responsive[i]; rule.size&ctx.Screen != 0 {
				effective.Apply(rule.style)
			}
		}
	}

	if effective != nil {
		maps.Copy(c.values, effective.values)
	}

	if !fast {
		// selector bits are declared in application order, so combined
		// rules land after the single-state rules they refine
		for _, sel := range slices.Sorted(maps.Keys(effective.selectors)) {
			if ctx.Interaction.Has(sel) {
				maps.Copy(c.values, effective.selectors[sel].values)
			}
		}
	}

	res := Result{
		Computed: c,
		Rules:    ctx.Rules,
		FastPath: fast,
	}

	if effective != nil {
		res.Transitions = effective.transitions
		res.Selectors = effective.Selectors()

		if len(effective.classes) > 0 {
			res.Rules = append(slices.Clip(ctx.Rules), effective.classes)
		}
	}

	return res
}

func matchesAny(rules [][]ClassRule, classes []Class) bool {
	if len(classes) == 0 {
		return false
	}

	for _, level := range rules {
		for _, rule := range level {
			if slices.Contains(classes, rule.Class) {
				return true
			}
		}
	}

	return false
}

// Diff returns the union of the flags of every prop whose value differs
// between a and b. A nil a differs in everything.
func Diff(a, b *Computed) Flags {
	if a == nil {
		return AllFlags
	}

	var flags Flags
	seen := make(map[Key]struct{}, len(a.values)+len(b.values))

	check := func(k Key) {
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}

		if !k.equal(a.get(k), b.get(k)) {
			flags |= k.Flags()
		}
	}

	for k := range a.values {
		check(k)
	}
	for k := range b.values {
		check(k)
	}

	return flags
}
