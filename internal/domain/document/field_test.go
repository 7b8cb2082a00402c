package document

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldUnmarshal_NormalizesLegacySignature(t *testing.T) {
	raw := `{"coordinateFields":[
		{"id":"sig1","type":"reviewer_signature","reviewerEmail":"Prof@Example.com","reviewerName":"Prof","value":null,"x":12,"y":40.5},
		{"id":7,"type":"text","label":"Name","required":true,"value":"  "}
	]}`

	var data FieldData
	require.NoError(t, json.Unmarshal([]byte(raw), &data))
	require.Len(t, data.CoordinateFields, 2)

	sig := data.CoordinateFields[0]
	assert.Equal(t, FieldSignerSignature, sig.Type)
	assert.Equal(t, "Prof@Example.com", sig.SignerEmail)
	assert.Equal(t, "Prof", sig.SignerName)
	assert.Equal(t, "", sig.Value)
	assert.True(t, sig.BoundTo("prof@example.com"))

	assert.Equal(t, "7", data.CoordinateFields[1].ID)
	assert.True(t, data.CoordinateFields[1].IsEmpty())
}

func TestFieldMarshal_KeepsLayoutKeys(t *testing.T) {
	var f Field
	require.NoError(t, json.Unmarshal([]byte(`{"id":"a","type":"text","value":"v","x":12,"page":2}`), &f))

	out, err := json.Marshal(f)
	require.NoError(t, err)

	var back map[string]any
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, float64(12), back["x"])
	assert.Equal(t, float64(2), back["page"])
	assert.Equal(t, "v", back["value"])
	assert.NotContains(t, back, "reviewerEmail")
}

func TestMissingRequired_AggregatesLabels(t *testing.T) {
	data := FieldData{CoordinateFields: []Field{
		{ID: "1", Label: "Name", Required: true},
		{ID: "2", Label: "Date", Required: true, Value: "2025-09-01"},
		{ID: "3", Required: true, Value: " "},
		{ID: "4", Label: "Memo"},
	}}

	assert.Equal(t, []string{"Name", "field 3"}, data.MissingRequired())
}

func TestSignByAndSanitized(t *testing.T) {
	data := FieldData{CoordinateFields: []Field{
		{ID: "s1", Type: FieldSignerSignature, SignerEmail: "a@x.io", SignerName: "A"},
		{ID: "s2", Type: FieldSignerSignature, SignerEmail: "A@X.io"},
		{ID: "s3", Type: FieldSignerSignature, SignerEmail: "b@x.io"},
		{ID: "t", Type: FieldText, Value: "kept"},
	}}

	assert.Equal(t, 2, data.SignBy("a@x.io", "data:image/png;base64,AAA"))
	assert.Equal(t, 0, data.SignBy("nobody@x.io", "sig"))
	assert.Contains(t, data.SignedEmails(), "a@x.io")
	assert.NotContains(t, data.SignedEmails(), "b@x.io")

	clean := data.Sanitized()
	for _, f := range clean.CoordinateFields {
		if f.IsSignature() {
			assert.Empty(t, f.Value)
			assert.Empty(t, f.SignerEmail)
			assert.Empty(t, f.SignerName)
		}
	}
	assert.Equal(t, "kept", clean.CoordinateFields[3].Value)
	assert.Equal(t, "a@x.io", data.CoordinateFields[0].SignerEmail)
}

func TestBlank(t *testing.T) {
	schema := []Field{{ID: "1", Label: "Name", Value: "template default"}}
	data := Blank(schema)

	assert.Equal(t, "", data.CoordinateFields[0].Value)
	assert.Equal(t, "template default", schema[0].Value)
}

func TestFieldUnmarshal_RequiredFlagForms(t *testing.T) {
	cases := map[string]bool{
		`true`:    true,
		`false`:   false,
		`"true"`:  true,
		`"TRUE"`:  true,
		`"false"`: false,
		`"yes"`:   false,
		`1`:       true,
		`0`:       false,
		`null`:    false,
	}
	for raw, want := range cases {
		var f Field
		require.NoError(t, json.Unmarshal([]byte(`{"id":"f1","type":"text","required":`+raw+`,"value":""}`), &f), raw)
		assert.Equal(t, want, f.Required, raw)
	}
}

func TestMissingRequired_TextFlagSurvivesRoundTrip(t *testing.T) {
	var data FieldData
	require.NoError(t, json.Unmarshal([]byte(`{"coordinateFields":[{"id":"f1","type":"text","label":"Name","required":"true","value":""}]}`), &data))
	assert.Equal(t, []string{"Name"}, data.MissingRequired())

	b, err := json.Marshal(data)
	require.NoError(t, err)
	var again FieldData
	require.NoError(t, json.Unmarshal(b, &again))
	assert.True(t, again.CoordinateFields[0].Required)
}
