package beanxml_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trameview/internal/beanxml"
)

func loadFixture(t *testing.T, name string) string {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(raw)
}

func wrap(body string) string {
	return `<java version="1.8" class="java.beans.XMLDecoder">` + body + `</java>`
}

func TestParse_Fixture(t *testing.T) {
	doc, err := beanxml.Parse(loadFixture(t, "trames.xml"))
	require.NoError(t, err)

	assert.Equal(t, "1.8.0_202", doc.Version)
	assert.Equal(t, "java.beans.XMLDecoder", doc.Class)
	require.Len(t, doc.Objects, 3)

	first := doc.Objects[0]
	assert.Equal(t, "fr.radio.capture.Trame", first.Class)
	require.Len(t, first.Properties, 7)

	assert.Equal(t, "FN", first.Properties[0].Name)
	assert.Equal(t, beanxml.Long(42), first.Properties[0].Value)
	assert.Equal(t, beanxml.Int(3), first.Properties[1].Value)

	arr, ok := first.Properties[2].Value.(*beanxml.Array)
	require.True(t, ok)
	require.NotNil(t, arr.Class)
	assert.Equal(t, "byte", *arr.Class)
	require.NotNil(t, arr.Length)
	assert.Equal(t, int32(4), *arr.Length)
	assert.Equal(t, []beanxml.IndexedByte{
		{Index: "0", Value: 10},
		{Index: "1", Value: -1},
		{Index: "2", Value: 0},
		{Index: "3", Value: 127},
	}, arr.Elements)

	date, ok := first.Properties[3].Value.(*beanxml.Date)
	require.True(t, ok)
	require.NotNil(t, date.Millis)
	assert.Equal(t, int64(1600000000000), *date.Millis)
	assert.Equal(t, "java.util.Date", *date.Class)

	assert.Equal(t, beanxml.Byte(2), first.Properties[5].Value)
	assert.Equal(t, beanxml.String("station nord"), first.Properties[6].Value)

	assert.Empty(t, doc.Objects[2].Properties)
}

func TestParse_PreservesArrayDocumentOrder(t *testing.T) {
	doc, err := beanxml.Parse(loadFixture(t, "trames.xml"))
	require.NoError(t, err)

	arr := doc.Objects[1].Properties[1].Value.(*beanxml.Array)
	assert.Equal(t, "1", arr.Elements[0].Index)
	assert.Equal(t, "0", arr.Elements[1].Index)
}

func TestParse_KeepsPropertyNamesVerbatim(t *testing.T) {
	doc, err := beanxml.Parse(wrap(`<object class="T">
		<void property="Canal_logique"><int>1</int></void>
		<void property="canal_Logique"><int>2</int></void>
	</object>`))
	require.NoError(t, err)

	props := doc.Objects[0].Properties
	assert.Equal(t, "Canal_logique", props[0].Name)
	assert.Equal(t, "canal_Logique", props[1].Name)
}

func TestParse_AbsentValues(t *testing.T) {
	doc, err := beanxml.Parse(wrap(`<object class="T"><void property="heure"/>
		<void property="contenuSegment"><array class="byte"/></void>
		<void property="x"><object class="java.util.Date"/></void></object>`))
	require.NoError(t, err)

	props := doc.Objects[0].Properties
	assert.Nil(t, props[0].Value)
	assert.Equal(t, beanxml.KindAbsent, beanxml.KindOf(props[0].Value))

	arr := props[1].Value.(*beanxml.Array)
	assert.Nil(t, arr.Length)
	assert.Empty(t, arr.Elements)

	date := props[2].Value.(*beanxml.Date)
	assert.Nil(t, date.Millis)
}

func TestParse_ScalarText(t *testing.T) {
	doc, err := beanxml.Parse(wrap(`<object class="T">
		<void property="s"><string>  a b </string></void>
		<void property="i"><int> -5 </int></void>
		<void property="e"><string></string></void>
	</object>`))
	require.NoError(t, err)

	props := doc.Objects[0].Properties
	assert.Equal(t, beanxml.String("  a b "), props[0].Value)
	assert.Equal(t, beanxml.Int(-5), props[1].Value)
	assert.Equal(t, beanxml.String(""), props[2].Value)
}

func TestParse_SkipsCommentsAndProlog(t *testing.T) {
	raw := `<?xml version="1.0" encoding="UTF-8"?>
<!-- capture -->
` + wrap(`<!-- first --><object class="T"><void property="FN"><long>1</long></void></object>`) + "\n<!-- end -->\n"

	doc, err := beanxml.Parse(raw)
	require.NoError(t, err)
	assert.Len(t, doc.Objects, 1)
}

func TestParse_Latin1Declaration(t *testing.T) {
	raw := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>" +
		wrap("<object class=\"T\"><void property=\"nom\"><string>r\xe9seau</string></void></object>")

	doc, err := beanxml.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, beanxml.String("réseau"), doc.Objects[0].Properties[0].Value)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		sentinel error
		path     string
	}{
		{"empty", "", beanxml.ErrEmptyDocument, ""},
		{"blank", "  \n ", beanxml.ErrEmptyDocument, ""},
		{"wrong root", `<beans/>`, beanxml.ErrUnexpectedElement, ""},
		{"missing version", `<java class="c"></java>`, beanxml.ErrMissingAttribute, "java"},
		{"missing object class", wrap(`<object/>`), beanxml.ErrMissingAttribute, "java/object[1]"},
		{"missing property name", wrap(`<object class="T"><void><int>1</int></void></object>`), beanxml.ErrMissingAttribute, "java/object[1]/void[1]"},
		{"unexpected child of object", wrap(`<object class="T"><foo/></object>`), beanxml.ErrUnexpectedElement, "java/object[1]"},
		{"unexpected payload", wrap(`<object class="T"><void property="x"><double>1.5</double></void></object>`), beanxml.ErrUnexpectedElement, "java/object[1]/void[1]"},
		{"stray text", wrap(`<object class="T">hello</object>`), beanxml.ErrUnexpectedText, "java/object[1]"},
		{"two payloads", wrap(`<object class="T"><void property="x"><int>1</int><string>a</string></void></object>`), beanxml.ErrMultipleValues, "java/object[1]/void[1]"},
		{"int overflow", wrap(`<object class="T"><void property="x"><int>4294967296</int></void></object>`), beanxml.ErrInvalidValue, "java/object[1]/void[1]/int"},
		{"byte out of range", wrap(`<object class="T"><void property="x"><byte>300</byte></void></object>`), beanxml.ErrInvalidValue, "java/object[1]/void[1]/byte"},
		{"long not numeric", wrap(`<object class="T"><void property="FN"><long>abc</long></void></object>`), beanxml.ErrInvalidValue, "java/object[1]/void[1]/long"},
		{"array element without byte", wrap(`<object class="T"><void property="c"><array class="byte"><void index="0"/></array></void></object>`), beanxml.ErrMissingValue, "java/object[1]/void[1]/array/void[1]"},
		{"array element without index", wrap(`<object class="T"><void property="c"><array class="byte"><void><byte>1</byte></void></array></void></object>`), beanxml.ErrMissingAttribute, "java/object[1]/void[1]/array/void[1]"},
		{"bad array length", wrap(`<object class="T"><void property="c"><array length="x"/></void></object>`), beanxml.ErrInvalidValue, "java/object[1]/void[1]/array"},
		{"unclosed", `<java version="1" class="c"><object class="T">`, beanxml.ErrMalformed, "java/object[1]"},
		{"mismatched tags", `<java version="1" class="c"><object class="T"></java>`, beanxml.ErrMalformed, "java/object[1]"},
		{"second root", wrap(``) + wrap(``), beanxml.ErrUnexpectedElement, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := beanxml.Parse(tt.raw)
			require.Error(t, err)
			assert.Nil(t, doc)

			var perr *beanxml.ParseError
			require.True(t, errors.As(err, &perr), "want *ParseError, got %T", err)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.Equal(t, tt.path, perr.Path)
			assert.GreaterOrEqual(t, perr.Line, 1)
		})
	}
}

func TestParseError_Message(t *testing.T) {
	_, err := beanxml.Parse("<java version=\"1\" class=\"c\">\n<object class=\"T\">\n<void/>\n</object></java>")
	require.Error(t, err)

	var perr *beanxml.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 3, perr.Line)
	assert.True(t, strings.HasPrefix(err.Error(), "beanxml: java/object[1]/void[1] (line 3"))
	assert.Contains(t, err.Error(), `"property"`)
}

func TestDecode_Reader(t *testing.T) {
	doc, err := beanxml.Decode(strings.NewReader(loadFixture(t, "trames.xml")))
	require.NoError(t, err)
	assert.Len(t, doc.Objects, 3)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "absent", beanxml.KindOf(nil).String())
	assert.Equal(t, "long", beanxml.Long(1).Kind().String())
	assert.Equal(t, "array", (&beanxml.Array{}).Kind().String())
	assert.Equal(t, "unknown", beanxml.Kind(99).String())
}
