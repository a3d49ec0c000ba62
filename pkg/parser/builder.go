package parser

import (
	"fmt"
	"slices"

	"github.com/yaklabco/textright/pkg/blocks"
	"github.com/yaklabco/textright/pkg/doctree"
	"github.com/yaklabco/textright/pkg/source"
)

// builder turns the blocks of one nesting level into nodes.
// Style blocks push onto tags; the next node that consumes them clears it.
type builder struct {
	parser *Parser
	depth  int
	tags   []string
}

func (b *builder) build(blks []blocks.Block) ([]doctree.Node, error) {
	nodes := make([]doctree.Node, 0, len(blks))

	for _, blk := range blks {
		switch blk := blk.(type) {
		case *blocks.Heading:
			nodes = append(nodes, &doctree.Heading{
				Base:    b.base(blk, nil),
				Level:   blk.Level,
				Content: doctree.Inline{Spans: []source.Span{blk.Content}},
			})
			b.tags = nil

		case *blocks.ListItem:
			children, err := b.parser.build(blk.Body, b.depth+1)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, listNode(b.base(blk, children), blk))
			b.tags = nil

		case *blocks.Raw:
			// Raw blocks pass pending tags on to the next node as well.
			nodes = append(nodes, &doctree.Raw{
				Base:       b.base(blk, nil),
				Name:       blk.Name.Text(),
				Attributes: ParseAttributes(blk.Attributes.Text()),
				Closed:     blk.Closed,
				Lines:      spanTexts(blk.Content),
			})

		case *blocks.Quote:
			children, err := b.parser.build(blk.Body, b.depth+1)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, &doctree.Quote{Base: b.base(blk, children)})
			b.tags = nil

		case *blocks.Style:
			b.tags = append(b.tags, blk.Content.Text())

		case *blocks.Paragraph:
			nodes = append(nodes, &doctree.Paragraph{
				Base:    b.base(blk, nil),
				Content: doctree.Inline{Spans: blk.Content},
			})
			b.tags = nil

		default:
			return nil, fmt.Errorf("%w: block %s", ErrUnhandledKind, blk.Kind())
		}
	}

	return nodes, nil
}

// base returns the shared node fields for blk. The pending tags are copied so
// later pushes never alias an emitted node.
func (b *builder) base(blk blocks.Block, children []doctree.Node) doctree.Base {
	members := blk.Lines()
	return doctree.Base{
		Tags:     slices.Clone(b.tags),
		Children: children,
		Range: doctree.LineRange{
			Start: members[0].Source().LineIndex(),
			End:   members[len(members)-1].Source().LineIndex() + 1,
		},
	}
}

func listNode(base doctree.Base, item *blocks.ListItem) doctree.Node {
	prefix := item.Prefix()
	if item.Ordered {
		return &doctree.OrderedList{
			Base:         base,
			InitialValue: prefix,
			Type:         OrderedListType(prefix),
		}
	}
	return &doctree.UnorderedList{
		Base:         base,
		InitialValue: prefix,
		Type:         UnorderedListType(prefix),
	}
}

func spanTexts(spans []source.Span) []string {
	texts := make([]string, len(spans))
	for idx, span := range spans {
		texts[idx] = span.Text()
	}
	return texts
}
