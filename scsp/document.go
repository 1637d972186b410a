package scsp

// Document is the fully decoded, JSON-ready representation of an SCSP
// image. Field order matches the exported document's fixed top-level key
// order; encoding/json preserves struct field declaration order, so no
// custom MarshalJSON is needed to pin it.
type Document struct {
	Skeleton   Skeleton             `json:"skeleton"`
	Slots      []Slot               `json:"slots"`
	Skins      []Skin               `json:"skins"`
	Bones      []Bone               `json:"bones"`
	IK         []IKConstraint       `json:"ik"`
	Transform  []TransformConstraint `json:"transform"`
	Path       []PathConstraint     `json:"path"`
	Events     map[string]EventDef  `json:"events"`
	Animations map[string]Animation `json:"animations"`
}
