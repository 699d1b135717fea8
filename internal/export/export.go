// Package export holds the shared pieces of the format serializers, plus
// the tab-separated entities table used for eyeballing a finished model.
package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/skm-tools/pss-export/internal/core/model"
)

// EntitiesTSV renders one row per entity with the identifiers and
// classifications the serializers will use. Excluded entities are listed
// with their exclusion flag set rather than dropped, so the table can be
// used to audit fixer decisions.
func EntitiesTSV(m *model.Model) []byte {
	var buf bytes.Buffer
	buf.WriteString("id\tkey\tname\tform\tcompartment\tstate\tsbo_term\texcluded\tpathways\n")
	for _, e := range m.Entities {
		fmt.Fprintf(&buf, "%s\t%s\t%s\t%s\t%s\t%s\t%d\t%t\t%s\n",
			e.ID, e.Key, e.Label, e.Form, e.Compartment, e.State,
			e.SBOTerm, e.Excluded, strings.Join(e.Pathways, ","))
	}
	return buf.Bytes()
}
