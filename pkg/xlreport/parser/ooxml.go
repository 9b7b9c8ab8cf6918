// Package parser reads back the presentation of a generated xlsx report:
// column widths and formats through excelize, and embedded charts directly
// from the OOXML parts, which excelize can write but not read.
package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}

func readElementText(decoder *xml.Decoder) (string, error) {
	var text string
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return text, err
		}
		switch t := token.(type) {
		case xml.CharData:
			text += string(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return text, nil
}

// resolveRelativePath resolves a relationship target against the part directory.
func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "../") {
		clean := target
		for strings.HasPrefix(clean, "../") {
			clean = strings.TrimPrefix(clean, "../")
		}
		return "xl/" + clean
	}
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return baseDir + "/" + target
}

// relsPathFor returns the relationships part of a part, e.g.
// xl/drawings/drawing1.xml -> xl/drawings/_rels/drawing1.xml.rels.
func relsPathFor(partPath string) string {
	i := strings.LastIndex(partPath, "/")
	return partPath[:i] + "/_rels/" + partPath[i+1:] + ".rels"
}

// parseWorkbookSheets returns sheet names in workbook order and their rIds.
func parseWorkbookSheets(data []byte) (names []string, rIDs map[string]string) {
	rIDs = make(map[string]string) // sheet name -> rId
	walk(newDecoder(data), func(_ *xml.Decoder, se xml.StartElement) bool {
		if se.Name.Local == "sheet" {
			name, rID := attrValue(se, "name"), attrValue(se, "id")
			if name != "" && rID != "" {
				names = append(names, name)
				rIDs[name] = rID
			}
		}
		return false
	})
	return names, rIDs
}

// parseRelationships returns rId -> target for relationships of the given
// type, e.g. "worksheet", "drawing" or "chart".
func parseRelationships(data []byte, kind string) map[string]string {
	result := make(map[string]string)
	walk(newDecoder(data), func(_ *xml.Decoder, se xml.StartElement) bool {
		if se.Name.Local == "Relationship" &&
			strings.HasSuffix(strings.ToLower(attrValue(se, "Type")), "/"+kind) {
			result[attrValue(se, "Id")] = attrValue(se, "Target")
		}
		return false
	})
	return result
}

func newDecoder(data []byte) *xml.Decoder {
	return xml.NewDecoder(bytes.NewReader(data))
}

// walk reads tokens up to the end of the current element (or of the input),
// calling visit for every start tag below it. visit returns true when it has
// read the element's subtree itself.
func walk(d *xml.Decoder, visit func(d *xml.Decoder, se xml.StartElement) bool) {
	depth := 1
	for depth > 0 {
		token, err := d.Token()
		if err != nil {
			return
		}
		switch t := token.(type) {
		case xml.StartElement:
			if !visit(d, t) {
				depth++
			}
		case xml.EndElement:
			depth--
		}
	}
}

// attrValue returns the value of the attribute with the given local name.
func attrValue(se xml.StartElement, local string) string {
	for _, attr := range se.Attr {
		if attr.Name.Local == local {
			return attr.Value
		}
	}
	return ""
}
