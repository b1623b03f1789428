package output

import (
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"xsd-validator-generator/internal/convert"
)

// Marshal renders classes as one YAML document, sorted by class name.
func Marshal(classes []*convert.Class) ([]byte, error) {
	doc := &yaml.Node{Kind: yaml.MappingNode}

	sorted := slices.Clone(classes)
	slices.SortStableFunc(sorted, func(a, b *convert.Class) int {
		return strings.Compare(a.Name, b.Name)
	})

	for _, cls := range sorted {
		value, err := classNode(cls)
		if err != nil {
			return nil, fmt.Errorf("marshalling class %s: %w", cls.Name, err)
		}

		doc.Content = append(doc.Content, scalar(cls.Name), value)
	}

	if len(doc.Content) == 0 {
		return []byte("{}\n"), nil
	}

	return yaml.Marshal(doc)
}

func classNode(cls *convert.Class) (*yaml.Node, error) {
	props := &yaml.Node{Kind: yaml.MappingNode}

	for _, name := range cls.Properties.Names() {
		p, _ := cls.Properties.Get(name)

		list := &yaml.Node{Kind: yaml.SequenceNode}
		if p != nil {
			for _, r := range p.Rules {
				var item yaml.Node
				if err := item.Encode(r); err != nil {
					return nil, fmt.Errorf("property %s: %w", name, err)
				}

				list.Content = append(list.Content, &item)
			}
		}

		props.Content = append(props.Content, scalar(name), list)
	}

	return &yaml.Node{
		Kind:    yaml.MappingNode,
		Content: []*yaml.Node{scalar("properties"), props},
	}, nil
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}
