// Package atom models the constructs of the Atom Syndication Format
// (RFC 4287) as immutable values.
//
// Every construct is built through a New* function, which applies defaults
// and rejects values that violate an Atom invariant with a *ValidationError.
// Built values are never modified afterwards and can be shared freely
// between goroutines.
package atom

// Namespace is the Atom XML namespace.
const Namespace = "http://www.w3.org/2005/Atom"

// XHTMLNamespace wraps xhtml text and content in a div.
const XHTMLNamespace = "http://www.w3.org/1999/xhtml"
