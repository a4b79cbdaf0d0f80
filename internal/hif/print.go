package hif

import (
	"fmt"
	"io"
	"strings"
)

// DumpOptions configures tree dumping.
type DumpOptions struct {
	ShowProperties bool
	ShowCodeInfo   bool
}

// Printer writes a tree in an indented text format, one node per line.
type Printer struct {
	w    io.Writer
	opts DumpOptions
}

// NewPrinter creates a new tree printer.
func NewPrinter(w io.Writer) *Printer {
	return NewPrinterWithOptions(w, DumpOptions{})
}

// NewPrinterWithOptions creates a new tree printer with the given options.
func NewPrinterWithOptions(w io.Writer, opts DumpOptions) *Printer {
	return &Printer{w: w, opts: opts}
}

// Dump writes root and everything it owns to the writer.
func Dump(w io.Writer, root Object) error {
	return NewPrinter(w).Print(root)
}

// DumpWithOptions writes root with the given options.
func DumpWithOptions(w io.Writer, root Object, opts DumpOptions) error {
	return NewPrinterWithOptions(w, opts).Print(root)
}

type dumpItem struct {
	obj   Object
	depth int
	label string
}

// Print writes the tree rooted at root. The traversal is iterative so deeply
// nested generated trees cannot exhaust the call stack.
func (p *Printer) Print(root Object) error {
	if root == nil {
		_, err := fmt.Fprintln(p.w, "<nil>")
		return err
	}
	stack := []dumpItem{{obj: root}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if err := p.printNode(it); err != nil {
			return err
		}

		slots := it.obj.slots()
		var kids []dumpItem
		for _, s := range slots {
			if s.IsList() {
				pos := 1
				for e := s.list.head; e != nil; e = e.next {
					kids = append(kids, dumpItem{
						obj:   e.obj,
						depth: it.depth + 1,
						label: fmt.Sprintf("%s[%d]", s.Name, pos),
					})
					pos++
				}
				continue
			}
			if c := s.Get(); c != nil {
				kids = append(kids, dumpItem{obj: c, depth: it.depth + 1, label: s.Name})
			}
		}
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, kids[i])
		}
	}
	return nil
}

func (p *Printer) printNode(it dumpItem) error {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("  ", it.depth))
	if it.label != "" {
		sb.WriteString(it.label)
		sb.WriteString(": ")
	}
	sb.WriteString(it.obj.Class().String())
	if name, ok := NameOf(it.obj); ok && name != "" {
		fmt.Fprintf(&sb, " %q", name)
	}
	if attrs := attrSummary(it.obj); attrs != "" {
		sb.WriteString(" ")
		sb.WriteString(attrs)
	}
	if p.opts.ShowCodeInfo {
		if ci := it.obj.CodeInfo(); ci.FileName != "" {
			fmt.Fprintf(&sb, " @%s:%d", ci.FileName, ci.Line)
		}
	}
	if p.opts.ShowProperties {
		for _, prop := range it.obj.Properties() {
			fmt.Fprintf(&sb, " {%s}", prop.Name)
		}
	}
	sb.WriteString("\n")
	_, err := io.WriteString(p.w, sb.String())
	return err
}

// attrSummary renders the persistent attributes that matter when reading a
// dump. Variants without interesting attributes render nothing.
func attrSummary(o Object) string {
	switch n := o.(type) {
	case *IntValue:
		return fmt.Sprintf("= %d", n.Value())
	case *RealValue:
		return fmt.Sprintf("= %g", n.Value())
	case *BoolValue:
		return fmt.Sprintf("= %t", n.Value())
	case *BitValue:
		return fmt.Sprintf("= %s", n.Value())
	case *CharValue:
		return fmt.Sprintf("= %q", n.Value())
	case *StringValue:
		return fmt.Sprintf("= %q", n.Value())
	case *TimeValue:
		return fmt.Sprintf("= %g %s", n.Value(), n.Unit())
	case *Expression:
		return fmt.Sprintf("op=%s", n.Operator())
	case *Range:
		return fmt.Sprintf("dir=%s", n.Direction())
	case *Bit:
		return fmt.Sprintf("logic=%t resolved=%t", n.Logic(), n.Resolved())
	case *Bitvector:
		return fmt.Sprintf("signed=%t logic=%t resolved=%t", n.Signed(), n.Logic(), n.Resolved())
	case *Port:
		return fmt.Sprintf("dir=%s", n.Direction())
	case *Parameter:
		return fmt.Sprintf("dir=%s", n.Direction())
	default:
		return ""
	}
}
