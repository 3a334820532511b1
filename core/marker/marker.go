// core/marker/marker.go
package marker

import (
	"fmt"

	"plasmid-core/dna"
)

// Type classifies a catalog entry. The set is closed: assembly dispatches on
// it exhaustively.
type Type uint8

const (
	RestrictionEnzyme Type = iota
	AntibioticResistance
	ReplicationOrigin
	Other
)

var typeNames = map[string]Type{
	"RestrictionEnzyme":    RestrictionEnzyme,
	"AntibioticResistance": AntibioticResistance,
	"ReplicationOrigin":    ReplicationOrigin,
	"Other":                Other,
}

// ParseType maps the table's Type column (case-sensitive) to a Type.
func ParseType(s string) (Type, bool) {
	t, ok := typeNames[s]
	return t, ok
}

func (t Type) String() string {
	switch t {
	case RestrictionEnzyme:
		return "RestrictionEnzyme"
	case AntibioticResistance:
		return "AntibioticResistance"
	case ReplicationOrigin:
		return "ReplicationOrigin"
	default:
		return "Other"
	}
}

// Record is one catalog entry. Seq may be empty for descriptive-only markers.
type Record struct {
	Name string
	Type Type
	Seq  dna.Sequence
	Desc string
}

// UnknownMarkerError reports a design reference absent from the catalog.
type UnknownMarkerError struct {
	Name string
}

func (e *UnknownMarkerError) Error() string {
	return fmt.Sprintf("unknown marker %q", e.Name)
}
