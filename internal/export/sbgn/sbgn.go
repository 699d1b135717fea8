// Package sbgn serializes a finished export model into an SBGN-ML process
// description map. Glyph placement is a simple banded grid, one band per
// compartment; coordinates exist so viewers can open the file, they are not
// a real layout.
package sbgn

import (
	"encoding/xml"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/skm-tools/pss-export/internal/core/mapping"
	"github.com/skm-tools/pss-export/internal/core/model"
)

const sbgnNamespace = "http://sbgn.org/libsbgn/0.2"

const (
	entityWidth  = 108
	entityHeight = 60
	processSide  = 24
	cellWidth    = 150
	cellHeight   = 100
	bandPadding  = 40
	glyphsPerRow = 6
	renderXMLNS  = "http://www.sbml.org/sbml/level3/version1/render/version1"
)

type Writer struct {
	reg *mapping.Registry
}

func NewWriter(reg *mapping.Registry) *Writer {
	return &Writer{reg: reg}
}

// Write renders m as an SBGN-ML document. Entities tagged excluded are
// skipped, as are reactions touching them.
func (w *Writer) Write(m *model.Model) ([]byte, error) {
	doc := document{
		XMLNS: sbgnNamespace,
		Map:   mapElem{Language: "process description"},
	}

	centers := make(map[string]point)
	fills := make(map[string][]string)

	y, err := w.compartmentBands(m, &doc.Map, centers, fills)
	if err != nil {
		return nil, err
	}
	w.processGlyphs(m, &doc.Map, centers, y)
	w.arcs(m, &doc.Map, centers)
	doc.Map.Extension = renderExtension(fills)

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal SBGN: %w", err)
	}
	return append([]byte(xml.Header), append(out, '\n')...), nil
}

// compartmentBands lays each compartment out as a horizontal band holding a
// grid of its entity glyphs. Returns the y coordinate below the last band.
func (w *Writer) compartmentBands(m *model.Model, mp *mapElem, centers map[string]point, fills map[string][]string) (float64, error) {
	byCompartment := make(map[string][]*model.Entity)
	for _, e := range m.Entities {
		if e.Excluded {
			log.Printf("sbgn: skipping excluded entity %s", e.ID)
			continue
		}
		byCompartment[e.Compartment] = append(byCompartment[e.Compartment], e)
	}

	y := float64(bandPadding)
	for _, c := range m.Compartments {
		entities := byCompartment[c]
		if len(entities) == 0 {
			continue
		}
		compID, ok := m.CompartmentIDs[c]
		if !ok {
			return 0, fmt.Errorf("no identifier assigned for compartment %q", c)
		}
		colour, err := w.reg.CompartmentColour(c)
		if err != nil {
			return 0, err
		}

		rows := (len(entities) + glyphsPerRow - 1) / glyphsPerRow
		band := glyph{
			ID:    compID,
			Class: "compartment",
			Label: &label{Text: c},
			BBox: bbox{
				X: bandPadding / 2,
				Y: y - bandPadding/2,
				W: glyphsPerRow*cellWidth + bandPadding,
				H: float64(rows)*cellHeight + bandPadding,
			},
		}
		mp.Glyphs = append(mp.Glyphs, band)
		fills[colour] = append(fills[colour], compID)

		for i, e := range entities {
			g := w.entityGlyph(e, compID, i, y)
			mp.Glyphs = append(mp.Glyphs, g)
			centers[e.ID] = point{X: g.BBox.X + entityWidth/2, Y: g.BBox.Y + entityHeight/2}
			fills[e.Colour] = append(fills[e.Colour], e.ID)
		}
		y += float64(rows)*cellHeight + bandPadding
	}
	return y, nil
}

func (w *Writer) entityGlyph(e *model.Entity, compID string, index int, bandY float64) glyph {
	g := glyph{
		ID:             e.ID,
		Class:          e.DiagramClass,
		CompartmentRef: compID,
		Label:          &label{Text: e.Label},
		BBox: bbox{
			X: float64(bandPadding + (index%glyphsPerRow)*cellWidth),
			Y: bandY + float64(index/glyphsPerRow)*cellHeight,
			W: entityWidth,
			H: entityHeight,
		},
	}
	if e.State != model.StateNone {
		g.Glyphs = append(g.Glyphs, glyph{
			ID:    e.ID + "_state",
			Class: "state variable",
			State: &state{Value: string(e.State)},
			BBox:  bbox{X: g.BBox.X + entityWidth/4, Y: g.BBox.Y - 8, W: 48, H: 16},
		})
	}
	return g
}

// processGlyphs places one process glyph per reaction in a band below the
// compartments.
func (w *Writer) processGlyphs(m *model.Model, mp *mapElem, centers map[string]point, y float64) {
	i := 0
	for _, r := range m.Reactions() {
		if r.Type == model.ReactionUnknown {
			log.Printf("sbgn: %s has unknown reaction type", r.Key)
		}
		if touchesExcluded(r) {
			continue
		}
		first := r.Relations[0]
		g := glyph{
			ID:    first.ID,
			Class: first.ProcessClass,
			BBox: bbox{
				X: float64(bandPadding + (i%glyphsPerRow)*cellWidth),
				Y: y + float64(i/glyphsPerRow)*cellHeight,
				W: processSide,
				H: processSide,
			},
		}
		mp.Glyphs = append(mp.Glyphs, g)
		centers[first.ID] = point{X: g.BBox.X + processSide/2, Y: g.BBox.Y + processSide/2}
		i++
	}
}

// arcs connects entity glyphs to process glyphs, one arc per relation
// endpoint, deduplicated per reaction.
func (w *Writer) arcs(m *model.Model, mp *mapElem, centers map[string]point) {
	for _, r := range m.Reactions() {
		if touchesExcluded(r) {
			continue
		}
		processID := r.Relations[0].ID
		seen := make(map[string]bool)
		for _, rel := range r.Relations {
			w.appendArc(mp, centers, seen, rel.Source.ID, processID, rel.SourceArc, true)
			w.appendArc(mp, centers, seen, rel.Target.ID, processID, rel.TargetArc, false)
		}
	}
}

func (w *Writer) appendArc(mp *mapElem, centers map[string]point, seen map[string]bool, entityID, processID, arcName string, toProcess bool) {
	class := arcClass(arcName)
	source, target := entityID, processID
	// Production-style arcs run process to entity.
	if !toProcess {
		source, target = processID, entityID
	}
	id := fmt.Sprintf("arc_%s_%s_%s", source, target, class)
	if seen[id] {
		return
	}
	seen[id] = true
	mp.Arcs = append(mp.Arcs, arc{
		ID:     id,
		Class:  class,
		Source: source,
		Target: target,
		Start:  centers[source],
		End:    centers[target],
	})
}

// arcClass converts a mapping-table arc name such as CONSUMPTION or
// NECESSARY_STIMULATION into its SBGN-ML class.
func arcClass(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "_", " "))
}

func touchesExcluded(r *model.Reaction) bool {
	for _, rel := range r.Relations {
		if rel.Source.Excluded || rel.Target.Excluded {
			return true
		}
	}
	return false
}

// renderExtension groups glyphs by fill colour into a render-information
// block. Colours are sorted so output is stable.
func renderExtension(fills map[string][]string) *extension {
	if len(fills) == 0 {
		return nil
	}
	colours := make([]string, 0, len(fills))
	for colour := range fills {
		colours = append(colours, colour)
	}
	sort.Strings(colours)

	info := renderInformation{XMLNS: renderXMLNS, ID: "renderInfo"}
	for i, colour := range colours {
		id := fmt.Sprintf("colour_%d", i)
		info.Colors = append(info.Colors, colorDef{ID: id, Value: colour})
		info.Styles = append(info.Styles, style{
			IDList: strings.Join(fills[colour], " "),
			G:      styleG{Fill: id},
		})
	}
	return &extension{RenderInformation: info}
}
