// Package startxml serializes a layout tree into the Start layout-modification
// XML dialect.
//
// The dialect is schema-precise: element names, attribute order, and nesting
// are fixed, and the policy mechanism consuming the document rejects
// deviations. Rendering therefore walks the tree and emits the document
// fragment by fragment rather than going through encoding/xml, which does not
// guarantee attribute order and would escape identifier values the schema
// expects verbatim.
package startxml

import (
	"bytes"
	"fmt"
	"io"

	"github.com/mkessler/startlayout/pkg/layout"
)

// SizeUnit is the only tile and folder size the dialect supports here.
const SizeUnit = "2x2"

// Element and attribute names of the dialect.
const (
	groupElem    = "start:Group"
	folderElem   = "start:Folder"
	desktopElem  = "start:DesktopApplicationTile"
	packagedElem = "start:Tile"

	desktopIDAttr  = "DesktopApplicationID"
	packagedIDAttr = "AppUserModelID"
)

// Indentation levels below the header's StartLayout element.
const (
	groupIndent      = "        "
	folderIndent     = "          "
	folderTileIndent = "            "
	groupTileIndent  = "          "
)

// docWriter wraps an io.Writer with a sticky error so the tree walk can
// stay free of per-line error plumbing.
type docWriter struct {
	w   io.Writer
	err error
}

func (d *docWriter) line(format string, args ...any) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, format+"\n", args...)
}

// Write renders the layout document to w. It is a pure function of the tree:
// serializing the same layout twice produces byte-identical output.
func Write(w io.Writer, l *layout.Layout) error {
	header := l.Header
	if header == "" {
		header = DefaultHeader
	}
	footer := l.Footer
	if footer == "" {
		footer = DefaultFooter
	}

	d := &docWriter{w: w}
	d.line("%s", expandTemplate(header, l.Width, l.OverrideOptions))
	for i := range l.Groups {
		writeGroup(d, &l.Groups[i])
	}
	d.line("%s", expandTemplate(footer, l.Width, l.OverrideOptions))
	return d.err
}

// Render is a convenience wrapper returning the document as a byte slice.
func Render(l *layout.Layout) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, l); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeGroup emits one group: folders first in traversal order, then the
// group's top-level tiles, matching the order their positions were assigned.
func writeGroup(d *docWriter, g *layout.Group) {
	d.line(`%s<%s Name="%s">`, groupIndent, groupElem, g.Name)
	for i := range g.Folders {
		writeFolder(d, &g.Folders[i])
	}
	for i := range g.Tiles {
		writeTile(d, groupTileIndent, &g.Tiles[i])
	}
	d.line("%s</%s>", groupIndent, groupElem)
}

func writeFolder(d *docWriter, f *layout.Folder) {
	d.line(`%s<%s Size="%s" Column="%d" Row="%d">`, folderIndent, folderElem, SizeUnit, f.Column, f.Row)
	for i := range f.Tiles {
		writeTile(d, folderTileIndent, &f.Tiles[i])
	}
	d.line("%s</%s>", folderIndent, folderElem)
}

// writeTile emits one self-closing tile element. Attribute order is fixed:
// Size, Column, Row, then the identity attribute. The identifier is written
// verbatim, unescaped.
func writeTile(d *docWriter, indent string, t *layout.Tile) {
	elem, idAttr := desktopElem, desktopIDAttr
	if t.Kind == layout.KindPackagedApp {
		elem, idAttr = packagedElem, packagedIDAttr
	}
	d.line(`%s<%s Size="%s" Column="%d" Row="%d" %s="%s" />`, indent, elem, SizeUnit, t.Column, t.Row, idAttr, t.ID)
}
