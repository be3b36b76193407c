package component

import "github.com/milk9111/hyperspace/starfield"

// StarfieldRebuildRequest is a one-shot request to replace the star pool of
// every starfield with one built from Spec.
type StarfieldRebuildRequest struct {
	Spec starfield.Spec
}

var StarfieldRebuildRequestComponent = NewComponent[StarfieldRebuildRequest]()
