package mapping

// DefaultConfig returns the mapping tables shipped with the exporter. They
// mirror the production export configuration of the knowledge graph, so the
// engine and its tests run without an external YAML file. A file loaded via
// the config package replaces these wholesale.
func DefaultConfig() Config {
	return Config{
		CompartmentToShort: Table{
			Default: "cyt",
			Values: map[string]string{
				"cytoplasm":             "cyt",
				"nucleus":               "nuc",
				"extracellular":         "ext",
				"mitochondrion":         "mit",
				"chloroplast":           "chl",
				"endoplasmic reticulum": "er",
				"vacuole":               "vac",
				"golgi apparatus":       "gol",
				"peroxisome":            "per",
				"plasma membrane":       "pm",
				"cell wall":             "cw",
				"apoplast":              "apo",
			},
		},
		NodeFormToShort: Table{
			// No default: an unmapped form here is a configuration bug and
			// must surface, not silently share a code.
			Values: map[string]string{
				"metabolite":      "met",
				"protein":         "p",
				"protein_active":  "pa",
				"complex":         "cx",
				"complex_active":  "cxa",
				"gene":            "g",
				"mRNA":            "rna",
				"miRNA":           "mir",
				"ncRNA":           "ncr",
				"process":         "proc",
				"process_active":  "proca",
				"abiotic":         "ab",
				"foreign_entity":  "fe",
				"abstract":        "abst",
				"abstract_active": "absta",
				"unknown":         "x",
			},
		},
		CompartmentToSBO: IntTable{
			Default: intp(290), // physical compartment
		},
		NodeFormToSBO: IntTable{
			Default: intp(285), // material entity of unspecified nature
			Values: map[string]int{
				"metabolite":      247,
				"protein":         252,
				"protein_active":  252,
				"complex":         253,
				"complex_active":  253,
				"gene":            243,
				"mRNA":            278,
				"miRNA":           316,
				"ncRNA":           334,
				"process":         375,
				"process_active":  375,
				"abiotic":         405,
			},
		},
		ReactionTypeToSBO: IntTable{
			Default: intp(176), // biochemical reaction
			Values: map[string]int{
				"binding/oligomerisation":                  177,
				"dissociation":                             180,
				"catalysis":                                172,
				"degradation/secretion":                    179,
				"protein activation":                       656,
				"protein deactivation":                     665,
				"transcriptional/translational activation": 183,
				"transcriptional/translational repression": 169,
				"translocation":                            185,
				"cleavage/auto-cleavage":                   178,
			},
		},
		NodeRoleToSBO: IntTable{
			Default: intp(3), // participant role
			Values: map[string]int{
				"SUBSTRATE":        15,
				"PRODUCT":          11,
				"MODIFIER":         19,
				"ACTIVATES":        459,
				"INHIBITS":         20,
				"TRANSLOCATE_FROM": 15,
				"TRANSLOCATE_TO":   11,
			},
		},
		LabelToClass: Table{
			Default: "unspecified entity",
			Values: map[string]string{
				"metabolite":      "simple chemical",
				"protein":         "macromolecule",
				"protein_active":  "macromolecule",
				"complex":         "complex",
				"complex_active":  "complex",
				"gene":            "nucleic acid feature",
				"mRNA":            "nucleic acid feature",
				"miRNA":           "nucleic acid feature",
				"ncRNA":           "nucleic acid feature",
				"process":         "phenotype",
				"process_active":  "phenotype",
				"abiotic":         "perturbing agent",
			},
		},
		LabelToForm: Table{
			Default: "unknown",
			Values: map[string]string{
				"metabolite":      "metabolite",
				"protein":         "protein",
				"protein_active":  "protein_active",
				"protein active":  "protein_active",
				"complex":         "complex",
				"complex_active":  "complex_active",
				"complex active":  "complex_active",
				"gene":            "gene",
				"mRNA":            "mRNA",
				"mrna":            "mRNA",
				"miRNA":           "miRNA",
				"mirna":           "miRNA",
				"ncRNA":           "ncRNA",
				"ncrna":           "ncRNA",
				"process":         "process",
				"process_active":  "process_active",
				"process active":  "process_active",
				"abiotic":         "abiotic",
				"condition":       "abiotic",
				"foreign_entity":  "foreign_entity",
				"foreign entity":  "foreign_entity",
				"abstract":        "abstract",
				"abstract_active": "abstract_active",
			},
		},
		FormToState: Table{
			// Forms absent here are stateless.
			Values: map[string]string{
				"protein":         "inactive",
				"protein_active":  "active",
				"complex":         "inactive",
				"complex_active":  "active",
				"process":         "inactive",
				"process_active":  "active",
				"abstract":        "inactive",
				"abstract_active": "active",
			},
		},
		ReactionTypeToProcess: Table{
			Default: "process",
			Values: map[string]string{
				"binding/oligomerisation": "association",
				"dissociation":            "dissociation",
			},
		},
		EdgeToArc: ArcTable{
			"unknown": {
				"SUBSTRATE":        "CONSUMPTION",
				"PRODUCT":          "PRODUCTION",
				"MODIFIER":         "MODULATION",
				"ACTIVATES":        "STIMULATION",
				"INHIBITS":         "INHIBITION",
				"TRANSLOCATE_FROM": "CONSUMPTION",
				"TRANSLOCATE_TO":   "PRODUCTION",
			},
			"catalysis": {
				"SUBSTRATE": "CONSUMPTION",
				"PRODUCT":   "PRODUCTION",
				"MODIFIER":  "CATALYSIS",
				"ACTIVATES": "CATALYSIS",
				"INHIBITS":  "INHIBITION",
			},
			"dissociation": {
				"SUBSTRATE": "CONSUMPTION",
				"PRODUCT":   "PRODUCTION",
				"MODIFIER":  "CATALYSIS",
			},
			"binding/oligomerisation": {
				"SUBSTRATE": "CONSUMPTION",
				"PRODUCT":   "PRODUCTION",
				"MODIFIER":  "CATALYSIS",
			},
			"protein activation": {
				"SUBSTRATE": "CONSUMPTION",
				"PRODUCT":   "PRODUCTION",
				"ACTIVATES": "STIMULATION",
				"MODIFIER":  "NECESSARY_STIMULATION",
			},
			"transcriptional/translational activation": {
				"SUBSTRATE": "CONSUMPTION",
				"PRODUCT":   "PRODUCTION",
				"ACTIVATES": "NECESSARY_STIMULATION",
			},
			"transcriptional/translational repression": {
				"SUBSTRATE": "CONSUMPTION",
				"PRODUCT":   "PRODUCTION",
				"INHIBITS":  "INHIBITION",
			},
		},
		FormToColour: Table{
			Default: "#FFFFFF",
			Values: map[string]string{
				"metabolite":     "#A5D6A7",
				"protein":        "#90CAF9",
				"protein_active": "#42A5F5",
				"complex":        "#CE93D8",
				"complex_active": "#AB47BC",
				"gene":           "#FFE082",
				"mRNA":           "#FFCC80",
				"miRNA":          "#FFAB91",
				"ncRNA":          "#BCAAA4",
				"process":        "#E0E0E0",
				"process_active": "#BDBDBD",
				"abiotic":        "#EF9A9A",
			},
		},
		CompartmentToColour: Table{
			Default: "#F5F5F5",
			Values: map[string]string{
				"cytoplasm":             "#FAFAFA",
				"nucleus":               "#E8EAF6",
				"extracellular":         "#FFFDE7",
				"mitochondrion":         "#FBE9E7",
				"chloroplast":           "#E8F5E9",
				"endoplasmic reticulum": "#F3E5F5",
				"vacuole":               "#E0F7FA",
			},
		},
		NodesToIgnore: []string{"water", "proton"},
	}
}

func intp(v int) *int { return &v }
