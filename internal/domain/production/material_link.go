package production

import (
	"strconv"
	"strings"
)

const (
	// ExternalSource marks a link fed by a natural resource or a declared external input.
	// It contains characters that are never valid in a recipe identifier.
	ExternalSource = "<external>"

	// SurplusSink marks a link whose material has no consumer
	SurplusSink = ""

	// linkIDSeparator is the ASCII unit separator, which cannot appear in identifiers or formatted amounts
	linkIDSeparator = "\x1f"
)

// MaterialLink is a directed, quantified flow of one material between two ends of the chain.
// Source and Sink are recipe names, ExternalSource, or SurplusSink.
type MaterialLink struct {
	Source   string
	Sink     string
	Material string
	Amount   float64 // per minute
}

// NewMaterialLink creates a new material link
func NewMaterialLink(source, sink, material string, amount float64) MaterialLink {
	return MaterialLink{
		Source:   source,
		Sink:     sink,
		Material: material,
		Amount:   amount,
	}
}

// ID returns the stable identity of the link
func (l MaterialLink) ID() string {
	return LinkID(l.Source, l.Sink, l.Material, l.Amount)
}

// IsExternal returns true if the link is fed from outside the resolved chain
func (l MaterialLink) IsExternal() bool {
	return l.Source == ExternalSource
}

// IsSurplus returns true if the link has no consumer
func (l MaterialLink) IsSurplus() bool {
	return l.Sink == SurplusSink
}

// LinkID builds the identity string for a link from its four fields.
// The amount uses the shortest representation that round-trips, so equal floats give equal ids.
func LinkID(source, sink, material string, amount float64) string {
	var b strings.Builder
	b.WriteString(source)
	b.WriteString(linkIDSeparator)
	b.WriteString(sink)
	b.WriteString(linkIDSeparator)
	b.WriteString(material)
	b.WriteString(linkIDSeparator)
	b.WriteString(strconv.FormatFloat(amount, 'g', -1, 64))
	return b.String()
}
