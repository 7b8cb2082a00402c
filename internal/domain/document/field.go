package document

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/linskybing/docflow/internal/domain/user"
)

type FieldType string

const (
	FieldText            FieldType = "text"
	FieldSignerSignature FieldType = "signer_signature"

	legacyReviewerSignature FieldType = "reviewer_signature"
)

// Field is one entry of a document's coordinateFields. Layout keys the
// workflow does not interpret are carried through in extra.
type Field struct {
	ID          string    `json:"id"`
	Type        FieldType `json:"type"`
	Label       string    `json:"label,omitempty"`
	Required    bool      `json:"required"`
	Value       string    `json:"value"`
	SignerEmail string    `json:"signerEmail,omitempty"`
	SignerName  string    `json:"signerName,omitempty"`

	extra map[string]json.RawMessage
}

var knownFieldKeys = map[string]struct{}{
	"id": {}, "type": {}, "label": {}, "required": {}, "value": {},
	"signerEmail": {}, "signerName": {}, "reviewerEmail": {}, "reviewerName": {},
}

func (f Field) IsSignature() bool {
	return f.Type == FieldSignerSignature
}

func (f Field) IsEmpty() bool {
	return strings.TrimSpace(f.Value) == ""
}

// BoundTo reports whether the signature field belongs to email.
func (f Field) BoundTo(email string) bool {
	return f.IsSignature() && f.SignerEmail != "" && user.EqualEmail(f.SignerEmail, email)
}

func (f Field) displayName() string {
	if strings.TrimSpace(f.Label) != "" {
		return f.Label
	}
	return "field " + f.ID
}

// UnmarshalJSON normalizes the legacy reviewer_signature type and the
// reviewerEmail/reviewerName binding keys into the signer variant.
func (f *Field) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*f = Field{}
	f.ID = scalarString(raw["id"])
	f.Type = FieldType(scalarString(raw["type"]))
	f.Label = scalarString(raw["label"])
	f.Value = scalarString(raw["value"])
	f.SignerEmail = scalarString(raw["signerEmail"])
	f.SignerName = scalarString(raw["signerName"])
	f.Required = scalarBool(raw["required"])

	if f.Type == legacyReviewerSignature {
		f.Type = FieldSignerSignature
	}
	if f.SignerEmail == "" {
		f.SignerEmail = scalarString(raw["reviewerEmail"])
	}
	if f.SignerName == "" {
		f.SignerName = scalarString(raw["reviewerName"])
	}

	for k, v := range raw {
		if _, known := knownFieldKeys[k]; known {
			continue
		}
		if f.extra == nil {
			f.extra = make(map[string]json.RawMessage)
		}
		f.extra[k] = v
	}
	return nil
}

func (f Field) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(f.extra)+7)
	for k, v := range f.extra {
		out[k] = v
	}
	out["id"] = f.ID
	out["type"] = f.Type
	out["required"] = f.Required
	out["value"] = f.Value
	if f.Label != "" {
		out["label"] = f.Label
	}
	if f.SignerEmail != "" {
		out["signerEmail"] = f.SignerEmail
	}
	if f.SignerName != "" {
		out["signerName"] = f.SignerName
	}
	return json.Marshal(out)
}

// scalarString renders a JSON scalar as text; null becomes "".
func scalarString(v json.RawMessage) string {
	v = bytes.TrimSpace(v)
	if len(v) == 0 || bytes.Equal(v, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	return string(v)
}

// scalarBool reads a flag written as a boolean, the text "true", or a
// non-zero number. Anything else is false.
func scalarBool(v json.RawMessage) bool {
	s := strings.TrimSpace(scalarString(v))
	if strings.EqualFold(s, "true") {
		return true
	}
	n, err := strconv.ParseFloat(s, 64)
	return err == nil && n != 0
}

// FieldData is the structured payload of a document.
type FieldData struct {
	CoordinateFields []Field `json:"coordinateFields"`
}

// Blank copies a field schema with every value cleared.
func Blank(schema []Field) FieldData {
	fields := make([]Field, len(schema))
	for i, f := range schema {
		f.Value = ""
		fields[i] = f
	}
	return FieldData{CoordinateFields: fields}
}

// MissingRequired lists the label (or "field <id>") of each required empty field.
func (d FieldData) MissingRequired() []string {
	var missing []string
	for _, f := range d.CoordinateFields {
		if f.Required && f.IsEmpty() {
			missing = append(missing, f.displayName())
		}
	}
	return missing
}

// SignBy writes signature into every field bound to email and returns how
// many fields were written.
func (d *FieldData) SignBy(email, signature string) int {
	n := 0
	for i := range d.CoordinateFields {
		if d.CoordinateFields[i].BoundTo(email) {
			d.CoordinateFields[i].Value = signature
			n++
		}
	}
	return n
}

// SignedEmails returns the normalized emails that have a non-empty bound signature.
func (d FieldData) SignedEmails() map[string]struct{} {
	signed := make(map[string]struct{})
	for _, f := range d.CoordinateFields {
		if f.IsSignature() && f.SignerEmail != "" && !f.IsEmpty() {
			signed[user.NormalizeEmail(f.SignerEmail)] = struct{}{}
		}
	}
	return signed
}

// Sanitized strips signature payloads and signer bindings for template
// level listings.
func (d FieldData) Sanitized() FieldData {
	out := FieldData{CoordinateFields: make([]Field, len(d.CoordinateFields))}
	for i, f := range d.CoordinateFields {
		if f.IsSignature() {
			f.Value = ""
			f.SignerEmail = ""
			f.SignerName = ""
		}
		out.CoordinateFields[i] = f
	}
	return out
}
