package editor

// LanguageRust is the language identifier the host editor assigns to Rust
// sources.
const LanguageRust = "rust"

// SchemeFile is the plain local-file URI scheme. Only documents on this
// scheme qualify for language features: virtual schemes (git diff views,
// in-memory previews) can surface corrupted or partial text in secondary
// views even when they report themselves as the primary one.
const SchemeFile = "file"

// DocumentURI locates a document in the host's resource space.
type DocumentURI struct {
	Scheme string
	Path   string
}

func (u DocumentURI) String() string {
	return u.Scheme + "://" + u.Path
}

// Document is an open text document as reported by the host editor.
type Document struct {
	URI        DocumentURI
	LanguageID string
	Version    int32
}

// Editor is a visible editor pane together with its active document.
type Editor struct {
	Document Document
}

// IsRustDocument reports whether doc is a Rust source backed by a plain
// local file.
func IsRustDocument(doc Document) bool {
	return doc.LanguageID == LanguageRust && doc.URI.Scheme == SchemeFile
}

// IsRustEditor reports whether the editor's active document qualifies.
func IsRustEditor(ed Editor) bool {
	return IsRustDocument(ed.Document)
}

// RustDocument is a Document that has been validated as a Rust source on the
// file scheme. Holding one is proof the checks passed.
type RustDocument struct {
	Document
}

// AsRustDocument validates doc and returns the confirmed variant.
func AsRustDocument(doc Document) (RustDocument, bool) {
	if !IsRustDocument(doc) {
		return RustDocument{}, false
	}
	return RustDocument{Document: doc}, true
}
