package sbgn

import "encoding/xml"

// XML element types for the SBGN-ML document tree.

type document struct {
	XMLName xml.Name `xml:"sbgn"`
	XMLNS   string   `xml:"xmlns,attr"`
	Map     mapElem  `xml:"map"`
}

type mapElem struct {
	Language  string     `xml:"language,attr"`
	Extension *extension `xml:"extension,omitempty"`
	Glyphs    []glyph    `xml:"glyph"`
	Arcs      []arc      `xml:"arc"`
}

type glyph struct {
	ID             string  `xml:"id,attr"`
	Class          string  `xml:"class,attr"`
	CompartmentRef string  `xml:"compartmentRef,attr,omitempty"`
	Label          *label  `xml:"label,omitempty"`
	State          *state  `xml:"state,omitempty"`
	BBox           bbox    `xml:"bbox"`
	Glyphs         []glyph `xml:"glyph,omitempty"`
}

type label struct {
	Text string `xml:"text,attr"`
}

type state struct {
	Value string `xml:"value,attr"`
}

type bbox struct {
	X float64 `xml:"x,attr"`
	Y float64 `xml:"y,attr"`
	W float64 `xml:"w,attr"`
	H float64 `xml:"h,attr"`
}

type arc struct {
	ID     string `xml:"id,attr"`
	Class  string `xml:"class,attr"`
	Source string `xml:"source,attr"`
	Target string `xml:"target,attr"`
	Start  point  `xml:"start"`
	End    point  `xml:"end"`
}

type point struct {
	X float64 `xml:"x,attr"`
	Y float64 `xml:"y,attr"`
}

// extension carries fill colours for the glyphs as a render-information
// block, the convention SBGN editors understand.
type extension struct {
	RenderInformation renderInformation `xml:"renderInformation"`
}

type renderInformation struct {
	XMLNS  string     `xml:"xmlns,attr"`
	ID     string     `xml:"id,attr"`
	Colors []colorDef `xml:"listOfColorDefinitions>colorDefinition,omitempty"`
	Styles []style    `xml:"listOfStyles>style,omitempty"`
}

type colorDef struct {
	ID    string `xml:"id,attr"`
	Value string `xml:"value,attr"`
}

type style struct {
	IDList string `xml:"idList,attr"`
	G      styleG `xml:"g"`
}

type styleG struct {
	Fill string `xml:"fill,attr"`
}
