package parser

import (
	"archive/zip"
	"encoding/xml"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/xlreport-go/pkg/xlreport/models"
)

// chartRef locates one chart part and the drawing object showing it.
type chartRef struct {
	name   string
	part   string
	anchor string
}

// ExtractCharts reads the charts embedded in an xlsx file, keyed by sheet name.
// Charts are ordered by their drawing object name.
func ExtractCharts(xlsxPath string) (map[string][]models.Chart, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	refs, err := sheetCharts(&r.Reader)
	if err != nil {
		return nil, err
	}

	result := make(map[string][]models.Chart)
	for sheetName, sheetRefs := range refs {
		var charts []models.Chart
		for _, ref := range sheetRefs {
			data, err := readZipFile(&r.Reader, ref.part)
			if err != nil {
				return nil, err
			}
			if data == nil {
				continue
			}
			charts = append(charts, parseChartPart(data, ref))
		}
		sort.Slice(charts, func(i, j int) bool { return charts[i].Name < charts[j].Name })
		result[sheetName] = charts
	}

	return result, nil
}

// sheetCharts follows workbook -> worksheet -> drawing -> chart relationships.
func sheetCharts(r *zip.Reader) (map[string][]chartRef, error) {
	result := make(map[string][]chartRef)

	workbookXML, err := readZipFile(r, "xl/workbook.xml")
	if err != nil || workbookXML == nil {
		return result, err
	}
	names, sheetRIDs := parseWorkbookSheets(workbookXML)

	wbRelsXML, err := readZipFile(r, "xl/_rels/workbook.xml.rels")
	if err != nil || wbRelsXML == nil {
		return result, err
	}
	sheetTargets := parseRelationships(wbRelsXML, "worksheet")

	for _, sheetName := range names {
		target, ok := sheetTargets[sheetRIDs[sheetName]]
		if !ok {
			continue
		}
		sheetPath := resolveRelativePath(target, "xl")

		sheetRelsXML, err := readZipFile(r, relsPathFor(sheetPath))
		if err != nil {
			return nil, err
		}
		if sheetRelsXML == nil {
			continue
		}

		for _, drawingTarget := range parseRelationships(sheetRelsXML, "drawing") {
			refs, err := drawingCharts(r, resolveRelativePath(drawingTarget, "xl/drawings"))
			if err != nil {
				return nil, err
			}
			result[sheetName] = append(result[sheetName], refs...)
		}
	}

	return result, nil
}

// drawingCharts lists the charts placed by one drawing part.
func drawingCharts(r *zip.Reader, drawingPath string) ([]chartRef, error) {
	drawingXML, err := readZipFile(r, drawingPath)
	if err != nil || drawingXML == nil {
		return nil, err
	}
	relsXML, err := readZipFile(r, relsPathFor(drawingPath))
	if err != nil || relsXML == nil {
		return nil, err
	}
	parts := parseRelationships(relsXML, "chart")

	var refs []chartRef
	for _, a := range parseAnchors(drawingXML) {
		if part, ok := parts[a.rID]; ok {
			refs = append(refs, chartRef{
				name:   a.name,
				part:   resolveRelativePath(part, "xl/charts"),
				anchor: a.cell,
			})
		}
	}
	return refs, nil
}

// anchor is a graphic frame in a drawing: its object name, the relationship
// id of its chart and the cell its top-left corner sits in.
type anchor struct {
	rID, name, cell string
}

func parseAnchors(data []byte) []anchor {
	var anchors []anchor
	walk(newDecoder(data), func(d *xml.Decoder, se xml.StartElement) bool {
		if se.Name.Local != "twoCellAnchor" && se.Name.Local != "oneCellAnchor" {
			return false
		}
		var a anchor
		walk(d, func(d *xml.Decoder, se xml.StartElement) bool {
			switch se.Name.Local {
			case "from":
				a.cell = parseFromCell(d)
				return true
			case "cNvPr":
				a.name = attrValue(se, "name")
			case "chart":
				a.rID = attrValue(se, "id")
			}
			return false
		})
		if a.rID != "" {
			anchors = append(anchors, a)
		}
		return true
	})
	return anchors
}

// parseFromCell converts the zero-based col/row of xdr:from into a cell name.
func parseFromCell(d *xml.Decoder) string {
	col, row := -1, -1
	walk(d, func(d *xml.Decoder, se xml.StartElement) bool {
		if se.Name.Local != "col" && se.Name.Local != "row" {
			return false
		}
		txt, _ := readElementText(d)
		if n, err := strconv.Atoi(strings.TrimSpace(txt)); err == nil {
			if se.Name.Local == "col" {
				col = n
			} else {
				row = n
			}
		}
		return true
	})
	if col < 0 || row < 0 {
		return ""
	}
	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return ""
	}
	return cell
}

// parseChartPart reads title, plot type, axis titles and series of a chart part.
func parseChartPart(data []byte, ref chartRef) models.Chart {
	chart := models.Chart{Name: ref.name, Anchor: ref.anchor}

	walk(newDecoder(data), func(d *xml.Decoder, se xml.StartElement) bool {
		switch se.Name.Local {
		case "title":
			chart.Title = parseRichText(d)
		case "plotArea":
			parsePlotArea(d, &chart)
		default:
			return false
		}
		return true
	})

	if chart.ChartType == "" {
		chart.ChartType = "unknown"
	}
	return chart
}

func parsePlotArea(d *xml.Decoder, chart *models.Chart) {
	walk(d, func(d *xml.Decoder, se xml.StartElement) bool {
		switch name := se.Name.Local; {
		case strings.HasSuffix(name, "Chart"):
			chart.ChartType = plotTypeName(name)
			walk(d, func(d *xml.Decoder, se xml.StartElement) bool {
				switch se.Name.Local {
				case "barDir":
					if attrValue(se, "val") == "col" {
						chart.ChartType = "Column"
					}
				case "ser":
					chart.Series = append(chart.Series, parseSeries(d))
					return true
				}
				return false
			})
		case name == "valAx":
			chart.YAxisTitle = parseAxisTitle(d)
		case name == "catAx" || name == "dateAx":
			chart.XAxisTitle = parseAxisTitle(d)
		default:
			return false
		}
		return true
	})
}

// plotTypeName turns a plot element such as "barChart" into "Bar".
func plotTypeName(element string) string {
	base := []rune(strings.TrimSuffix(element, "Chart"))
	if len(base) == 0 {
		return "unknown"
	}
	base[0] = unicode.ToUpper(base[0])
	return string(base)
}

func parseSeries(d *xml.Decoder) models.ChartSeries {
	var s models.ChartSeries
	walk(d, func(d *xml.Decoder, se xml.StartElement) bool {
		switch se.Name.Local {
		case "tx":
			walk(d, func(d *xml.Decoder, se xml.StartElement) bool {
				switch se.Name.Local {
				case "f":
					s.NameRange = parseText(d)
				case "v":
					s.Name = parseText(d)
				default:
					return false
				}
				return true
			})
		case "spPr":
			if color := parseSolidFill(d); s.Color == "" {
				s.Color = color
			}
		case "cat":
			s.XRange = parseFormula(d)
		case "val":
			s.YRange = parseFormula(d)
		default:
			return false
		}
		return true
	})
	return s
}

// parseSolidFill returns the RGB value of the first solid fill, if any.
func parseSolidFill(d *xml.Decoder) string {
	var color string
	walk(d, func(d *xml.Decoder, se xml.StartElement) bool {
		if se.Name.Local == "srgbClr" && color == "" {
			color = attrValue(se, "val")
		}
		return false
	})
	return color
}

// parseFormula returns the range formula (c:f) of a cat or val element.
func parseFormula(d *xml.Decoder) string {
	var ref string
	walk(d, func(d *xml.Decoder, se xml.StartElement) bool {
		if se.Name.Local != "f" {
			return false
		}
		ref = parseText(d)
		return true
	})
	return ref
}

func parseAxisTitle(d *xml.Decoder) string {
	var title string
	walk(d, func(d *xml.Decoder, se xml.StartElement) bool {
		if se.Name.Local != "title" {
			return false
		}
		title = parseRichText(d)
		return true
	})
	return title
}

// parseRichText concatenates the a:t runs of a title.
func parseRichText(d *xml.Decoder) string {
	var sb strings.Builder
	walk(d, func(d *xml.Decoder, se xml.StartElement) bool {
		if se.Name.Local != "t" {
			return false
		}
		txt, _ := readElementText(d)
		sb.WriteString(txt)
		return true
	})
	return strings.TrimSpace(sb.String())
}

func parseText(d *xml.Decoder) string {
	txt, _ := readElementText(d)
	return strings.TrimSpace(txt)
}
