package paramtable

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/Aman-s12345/go-routedoc/internal/doclet"
	"github.com/Aman-s12345/go-routedoc/internal/errors"
)

// HTMLBuilder renders an <h5> title and a <table class="params">, the
// layout documentation templates already style for function parameters.
type HTMLBuilder struct{}

func (HTMLBuilder) Build(title string, entries []doclet.Entry) (string, error) {
	l, err := newLayout(title, entries)
	if err != nil {
		return "", err
	}

	heading := element(atom.H5, nil, text(title+":"))

	headRow := element(atom.Tr, nil)
	for _, h := range l.headers() {
		headRow.AppendChild(element(atom.Th, nil, text(h)))
	}
	thead := element(atom.Thead, nil, headRow)

	tbody := element(atom.Tbody, nil)
	for _, r := range l.rows {
		tbody.AppendChild(htmlRow(l, r))
	}

	table := element(atom.Table, []html.Attribute{{Key: "class", Val: "params"}}, thead, tbody)

	var sb strings.Builder
	for _, n := range []*html.Node{heading, table} {
		if err := html.Render(&sb, n); err != nil {
			return "", errors.Wrapf(err, errors.KindInternal, "failed to render %s table", title)
		}
	}
	return sb.String(), nil
}

func htmlRow(l layout, r row) *html.Node {
	tr := element(atom.Tr, nil)
	tr.AppendChild(cell("name", element(atom.Code, nil, text(r.name))))
	tr.AppendChild(cell("type", element(atom.Span, []html.Attribute{{Key: "class", Val: "param-type"}}, text(r.typ))))

	if l.attributes {
		attrs := cell("attributes")
		if r.optional {
			attrs.AppendChild(text("<" + doclet.OptionalMarker + ">"))
		}
		tr.AppendChild(attrs)

		def := cell("default")
		if r.hasDefault {
			def.AppendChild(text(r.def))
		}
		tr.AppendChild(def)
	}

	tr.AppendChild(cell("description last", text(r.description)))
	return tr
}

func cell(class string, children ...*html.Node) *html.Node {
	return element(atom.Td, []html.Attribute{{Key: "class", Val: class}}, children...)
}

func element(a atom.Atom, attrs []html.Attribute, children ...*html.Node) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
