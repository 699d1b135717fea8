package sbml

import "encoding/xml"

// XML element types for the SBML document tree. Only the subset of the
// schema this exporter populates is modeled.

type document struct {
	XMLName xml.Name  `xml:"sbml"`
	XMLNS   string    `xml:"xmlns,attr"`
	Level   int       `xml:"level,attr"`
	Version int       `xml:"version,attr"`
	Model   modelElem `xml:"model"`
}

type modelElem struct {
	ID    string `xml:"id,attr"`
	Name  string `xml:"name,attr"`
	Notes *notes `xml:"notes,omitempty"`

	Compartments []compartment `xml:"listOfCompartments>compartment,omitempty"`
	Species      []species     `xml:"listOfSpecies>species,omitempty"`
	Reactions    []reaction    `xml:"listOfReactions>reaction,omitempty"`
}

type compartment struct {
	ID       string  `xml:"id,attr"`
	Name     string  `xml:"name,attr"`
	Size     float64 `xml:"size,attr"`
	Constant bool    `xml:"constant,attr"`
	SBOTerm  string  `xml:"sboTerm,attr,omitempty"`
}

type species struct {
	ID                    string `xml:"id,attr"`
	MetaID                string `xml:"metaid,attr,omitempty"`
	Name                  string `xml:"name,attr"`
	Compartment           string `xml:"compartment,attr"`
	SBOTerm               string `xml:"sboTerm,attr,omitempty"`
	HasOnlySubstanceUnits bool   `xml:"hasOnlySubstanceUnits,attr"`
	BoundaryCondition     bool   `xml:"boundaryCondition,attr"`
	Constant              bool   `xml:"constant,attr"`
}

type reaction struct {
	ID         string      `xml:"id,attr"`
	MetaID     string      `xml:"metaid,attr,omitempty"`
	SBOTerm    string      `xml:"sboTerm,attr,omitempty"`
	Reversible bool        `xml:"reversible,attr"`
	Notes      *notes      `xml:"notes,omitempty"`
	Annotation *annotation `xml:"annotation,omitempty"`

	Reactants []speciesRef  `xml:"listOfReactants>speciesReference,omitempty"`
	Products  []speciesRef  `xml:"listOfProducts>speciesReference,omitempty"`
	Modifiers []modifierRef `xml:"listOfModifiers>modifierSpeciesReference,omitempty"`
}

type speciesRef struct {
	Species       string  `xml:"species,attr"`
	Stoichiometry float64 `xml:"stoichiometry,attr"`
	Constant      bool    `xml:"constant,attr"`
}

type modifierRef struct {
	Species string `xml:"species,attr"`
}

type notes struct {
	Body notesBody `xml:"body"`
}

type notesBody struct {
	XMLNS string `xml:"xmlns,attr"`
	P     string `xml:"p"`
}

func newNotes(text string) *notes {
	return &notes{Body: notesBody{XMLNS: "http://www.w3.org/1999/xhtml", P: text}}
}

// annotation carries identifiers.org resource links as a biology-qualifier
// RDF block, the MIRIAM convention.
type annotation struct {
	RDF rdf `xml:"rdf:RDF"`
}

type rdf struct {
	XMLNSRDF    string         `xml:"xmlns:rdf,attr"`
	XMLNSBQBiol string         `xml:"xmlns:bqbiol,attr"`
	Description rdfDescription `xml:"rdf:Description"`
}

type rdfDescription struct {
	About         string      `xml:"rdf:about,attr"`
	IsDescribedBy describedBy `xml:"bqbiol:isDescribedBy"`
}

type describedBy struct {
	Bag rdfBag `xml:"rdf:Bag"`
}

type rdfBag struct {
	Items []rdfLi `xml:"rdf:li"`
}

type rdfLi struct {
	Resource string `xml:"rdf:resource,attr"`
}

func newAnnotation(metaID string, links []string) *annotation {
	bag := rdfBag{}
	for _, link := range links {
		bag.Items = append(bag.Items, rdfLi{Resource: "http://identifiers.org/" + link})
	}
	return &annotation{
		RDF: rdf{
			XMLNSRDF:    "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
			XMLNSBQBiol: "http://biomodels.net/biology-qualifiers/",
			Description: rdfDescription{
				About:         "#" + metaID,
				IsDescribedBy: describedBy{Bag: bag},
			},
		},
	}
}
