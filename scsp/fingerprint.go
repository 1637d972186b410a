package scsp

import (
	"fmt"

	"github.com/himeope/scsp2json/internal/hash"
)

// Fingerprint returns a stable identity hash for a decoded document, built
// from its skeleton version string and section counts. It has no bearing
// on the JSON output; it exists so a regression fixture can assert "this
// decode produced the same shape as last time" without diffing the whole
// document.
func Fingerprint(doc *Document) uint64 {
	summary := fmt.Sprintf("%s|%s|b=%d|ik=%d|s=%d|t=%d|p=%d|sk=%d|e=%d|a=%d",
		doc.Skeleton.Hash, doc.Skeleton.Spine,
		len(doc.Bones), len(doc.IK), len(doc.Slots), len(doc.Transform),
		len(doc.Path), len(doc.Skins), len(doc.Events), len(doc.Animations))

	return hash.ID(summary)
}
