package xsd

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var errCycle = errors.New("cycle detected")

// topoSort returns node indices so that every node comes after its
// dependencies. depsFn(i) yields the indices i depends on.
//
// When several nodes are ready the smallest index wins, so the order is
// deterministic. On a cycle the partial order is returned with errCycle.
func topoSort(n int, depsFn func(i int) []int) ([]int, error) {
	if n <= 0 {
		return nil, nil
	}

	indeg := make([]int, n)
	out := make([][]int, n)

	for i := range n {
		for _, d := range depsFn(i) {
			if d < 0 || d >= n {
				return nil, fmt.Errorf("dependency index out of range: %d depends on %d", i, d)
			}

			indeg[i]++
			out[d] = append(out[d], i)
		}
	}

	var ready []int

	for i := range n {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}

	order := make([]int, 0, n)

	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]

		order = append(order, i)

		for _, j := range out[i] {
			indeg[j]--
			if indeg[j] == 0 {
				k := sort.SearchInts(ready, j)
				ready = append(ready, 0)
				copy(ready[k+1:], ready[k:])
				ready[k] = j
			}
		}
	}

	if len(order) != n {
		return order, errCycle
	}

	return order, nil
}

// baseOf returns the type t restricts or extends.
func baseOf(t Type) Type {
	switch t := t.(type) {
	case *SimpleType:
		if t.restriction != nil {
			return t.restriction.Base
		}
	case *ComplexType:
		return t.Base
	}

	return nil
}

// checkDerivations reports named types whose derivation chain loops back.
func (l *Loader) checkDerivations() {
	var named []Type

	index := make(map[Type]int)

	for _, doc := range l.docs {
		for _, t := range doc.schema.Types {
			index[t] = len(named)
			named = append(named, t)
		}
	}

	order, err := topoSort(len(named), func(i int) []int {
		// anonymous types cannot be referenced, so walk through them to the
		// next named base
		seen := 0
		for base := baseOf(named[i]); base != nil && seen < len(named)+1; base = baseOf(base) {
			if j, ok := index[base]; ok {
				return []int{j}
			}

			if !base.IsAnonymous() {
				return nil
			}

			seen++
		}

		return nil
	})
	if err == nil {
		return
	}

	if !errors.Is(err, errCycle) {
		l.diags.AddError(CodeCircularDerivation, err.Error(), "", "")
		return
	}

	sorted := make(map[int]bool, len(order))
	for _, i := range order {
		sorted[i] = true
	}

	var names []string

	for i, t := range named {
		if !sorted[i] {
			names = append(names, TypeName(t).String())
		}
	}

	l.diags.AddError(CodeCircularDerivation,
		"circular type derivation involving "+strings.Join(names, ", "),
		"", "")
}
