package model

// Form is the biological category of a node as stored in the graph.
type Form string

const (
	FormMetabolite     Form = "metabolite"
	FormProtein        Form = "protein"
	FormProteinActive  Form = "protein_active"
	FormComplex        Form = "complex"
	FormComplexActive  Form = "complex_active"
	FormGene           Form = "gene"
	FormMRNA           Form = "mRNA"
	FormMiRNA          Form = "miRNA"
	FormNcRNA          Form = "ncRNA"
	FormProcess        Form = "process"
	FormProcessActive  Form = "process_active"
	FormAbiotic        Form = "abiotic"
	FormForeign        Form = "foreign_entity"
	FormAbstract       Form = "abstract"
	FormAbstractActive Form = "abstract_active"
	FormUnknown        Form = "unknown"
)

// activePairs maps each inactive form to its activated counterpart.
var activePairs = map[Form]Form{
	FormProtein:  FormProteinActive,
	FormComplex:  FormComplexActive,
	FormProcess:  FormProcessActive,
	FormAbstract: FormAbstractActive,
}

// ActiveVariant returns the activated counterpart of f, if one exists.
func (f Form) ActiveVariant() (Form, bool) {
	active, ok := activePairs[f]
	return active, ok
}

// IsInactiveVariant reports whether f is the inactive form of a species
// that also has an activated form (protein, complex, process, abstract).
func (f Form) IsInactiveVariant() bool {
	_, ok := activePairs[f]
	return ok
}

// State is the activation state assigned by the classifier.
type State string

const (
	StateActive   State = "active"
	StateInactive State = "inactive"
	StateNone     State = ""
)

// Role is the participant role carried on one endpoint of a graph edge.
type Role string

const (
	RoleProduct         Role = "PRODUCT"
	RoleSubstrate       Role = "SUBSTRATE"
	RoleModifier        Role = "MODIFIER"
	RoleActivates       Role = "ACTIVATES"
	RoleInhibits        Role = "INHIBITS"
	RoleTranslocateFrom Role = "TRANSLOCATE_FROM"
	RoleTranslocateTo   Role = "TRANSLOCATE_TO"
)

// ConsumingRoles are the endpoint roles under which a species enters a
// reaction (reactant side). ProducingRoles are the roles under which a
// species leaves one. ModifierRoles influence a reaction without being
// consumed.
var (
	ConsumingRoles = []Role{RoleSubstrate, RoleTranslocateFrom}
	ProducingRoles = []Role{RoleProduct, RoleTranslocateTo}
	ModifierRoles  = []Role{RoleModifier, RoleActivates, RoleInhibits}
)

// ReactionType is the kind of interaction an edge represents.
type ReactionType string

const (
	ReactionBinding          ReactionType = "binding/oligomerisation"
	ReactionDissociation     ReactionType = "dissociation"
	ReactionCatalysis        ReactionType = "catalysis"
	ReactionDegradation      ReactionType = "degradation/secretion"
	ReactionDeactivation     ReactionType = "protein deactivation"
	ReactionActivation       ReactionType = "protein activation"
	ReactionTranscriptionAct ReactionType = "transcriptional/translational activation"
	ReactionTranscriptionRep ReactionType = "transcriptional/translational repression"
	ReactionTranslocation    ReactionType = "translocation"
	ReactionCleavage         ReactionType = "cleavage/auto-cleavage"
	ReactionUnknown          ReactionType = "unknown"
)

// IsTranscriptionTranslation reports whether t produces a gene product.
func (t ReactionType) IsTranscriptionTranslation() bool {
	return t == ReactionTranscriptionAct || t == ReactionTranscriptionRep
}

// IsActivationClass reports whether t converts a species between its
// inactive and active forms.
func (t ReactionType) IsActivationClass() bool {
	return t == ReactionActivation || t == ReactionDeactivation
}

// IsTransport reports whether t moves a species between compartments.
func (t ReactionType) IsTransport() bool {
	return t == ReactionTranslocation
}
